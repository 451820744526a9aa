package push

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"passbook/internal/domain/service"

	"github.com/pkg/errors"
)

const apnsRequestTimeout = 10 * time.Second

// Gateway rejection reasons that mean the token will never work again.
var apnsPermanentReasons = map[string]struct{}{
	"BadDeviceToken":         {},
	"Unregistered":           {},
	"DeviceTokenNotForTopic": {},
	"TopicDisallowed":        {},
	"MissingDeviceToken":     {},
}

// apnsTransport delivers empty update notifications over the Apple push
// gateway, authenticated with the operation's provisioned client certificate.
type apnsTransport struct {
	gateway string
	topic   string
	client  *http.Client
	logger  *slog.Logger
}

// newAPNsTransport builds a gateway transport from provisioned credentials.
// The pass type identifier doubles as the notification topic.
func newAPNsTransport(gateway, passTypeIdentifier string, creds *service.TransportCredentials, logger *slog.Logger) (service.PushTransport, error) {
	cert, err := tls.LoadX509KeyPair(creds.CertificatePath, creds.PrivateKeyPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load delivery certificate")
	}

	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		},
		ForceAttemptHTTP2: true,
	}

	return &apnsTransport{
		gateway: gateway,
		topic:   passTypeIdentifier,
		client: &http.Client{
			Transport: transport,
			Timeout:   apnsRequestTimeout,
		},
		logger: logger,
	}, nil
}

// Send posts one empty notification to the device token. The payload carries
// no content: it only tells the device to re-poll the web service.
func (t *apnsTransport) Send(ctx context.Context, pushToken string) error {
	body := []byte(`{"aps":{}}`)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.gateway+"/3/device/"+pushToken, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apns-topic", t.topic)
	req.Header.Set("apns-push-type", "alert")

	resp, err := t.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to reach push gateway")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return nil
	}

	reason := decodeAPNsReason(resp.Body)

	// 410 means the device reported the pass deleted; the token is dead.
	if resp.StatusCode == http.StatusGone {
		return errors.Wrapf(service.ErrBadDeviceToken, "gateway reason %s", reason)
	}
	if _, permanent := apnsPermanentReasons[reason]; permanent {
		return errors.Wrapf(service.ErrBadDeviceToken, "gateway reason %s", reason)
	}

	return errors.Errorf("gateway rejected notification: status %d reason %s", resp.StatusCode, reason)
}

func (t *apnsTransport) Close() error {
	t.client.CloseIdleConnections()

	return nil
}

func decodeAPNsReason(body io.Reader) string {
	var payload struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return "unknown"
	}

	return payload.Reason
}
