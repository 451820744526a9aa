package push

import (
	"context"
	"log/slog"

	"passbook/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// fcmTransport delivers update notifications through Firebase Cloud
// Messaging. Used for pass holders on platforms that receive pushes via FCM
// tokens instead of the Apple gateway.
type fcmTransport struct {
	client             *messaging.Client
	passTypeIdentifier string
	logger             *slog.Logger
}

// newFCMTransport builds a messaging client from the operation's staged
// service account credentials.
func newFCMTransport(ctx context.Context, projectID, passTypeIdentifier string, creds *service.TransportCredentials, logger *slog.Logger) (service.PushTransport, error) {
	opt := option.WithCredentialsFile(creds.CertificatePath)
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &fcmTransport{
		client:             client,
		passTypeIdentifier: passTypeIdentifier,
		logger:             logger,
	}, nil
}

// Send dispatches one content-changed signal to the device token. The message
// is data-only; pass content never travels through the push channel.
func (t *fcmTransport) Send(ctx context.Context, pushToken string) error {
	message := &messaging.Message{
		Token: pushToken,
		Data: map[string]string{
			"passTypeIdentifier": t.passTypeIdentifier,
		},
	}

	if _, err := t.client.Send(ctx, message); err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return errors.Wrap(service.ErrBadDeviceToken, err.Error())
		}

		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

func (t *fcmTransport) Close() error {
	return nil
}
