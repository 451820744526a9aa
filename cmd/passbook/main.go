package main

import (
	"context"
	"log/slog"
	"os"

	"passbook/config"
	"passbook/internal/delivery"
	"passbook/internal/delivery/http"
	"passbook/internal/delivery/http/middleware"
	"passbook/internal/delivery/http/router/handler"
	"passbook/internal/domain/service"
	logs "passbook/internal/infra/log"
	"passbook/internal/infra/passes"
	"passbook/internal/infra/persistence/postgres"
	"passbook/internal/infra/pubsub"
	"passbook/internal/infra/push"
	"passbook/internal/infra/qrcode"
	"passbook/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewPassRepository,
			postgres.NewDeviceRepository,
			postgres.NewRegistrationRepository,
			postgres.NewErrorLogRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		push.Module,
		pubsub.Module,
		fx.Provide(
			newQRCodeService,
			newRendererRegistry,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "http://localhost:8080", "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.BaseURL, cfg.QRCode.ErrorCorrectionLevel)
}

// newRendererRegistry binds the file renderer to every configured pass type
func newRendererRegistry(cfg *config.Config) *service.RendererRegistry {
	registry := service.NewRendererRegistry()
	if cfg.Passes != nil {
		passes.RegisterConfiguredRenderers(registry, cfg.Passes.Dir, cfg.Passes.PassTypes)
	}

	return registry
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRegistrationService,
			impl.NewSyncService,
			impl.NewPassService,
			impl.NewPushService,
			impl.NewLogService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRegistrationHandler,
			handler.NewPassHandler,
			handler.NewPushHandler,
			handler.NewLogHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
