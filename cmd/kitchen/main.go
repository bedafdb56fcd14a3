package main

import (
	"context"
	"log/slog"
	"os"
	_ "time/tzdata"

	"kitchen/config"
	"kitchen/internal/delivery"
	"kitchen/internal/delivery/api"
	apimiddleware "kitchen/internal/delivery/api/middleware"
	"kitchen/internal/delivery/api/router/handler"
	"kitchen/internal/delivery/relay"
	"kitchen/internal/infra/auth"
	"kitchen/internal/infra/cache"
	"kitchen/internal/infra/email"
	"kitchen/internal/infra/export"
	"kitchen/internal/infra/firebase"
	logs "kitchen/internal/infra/log"
	"kitchen/internal/infra/metrics"
	"kitchen/internal/infra/persistence/postgres"
	"kitchen/internal/infra/pubsub"
	"kitchen/internal/infra/qrcode"
	"kitchen/internal/infra/sms"
	"kitchen/internal/usecase"
	"kitchen/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
			seedData,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		firebase.Module,
		cache.Module,
		metrics.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRoleAssignmentRepository,
			postgres.NewCredentialRepository,
			postgres.NewItemRepository,
			postgres.NewOrderRepository,
			postgres.NewSettingsRepository,
			postgres.NewDeviceRepository,
			postgres.NewNotificationDeliveryRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		auth.Module,
		sms.Module,
		email.Module,
		pubsub.Module,
		fx.Provide(
			qrcode.NewQRCodeServiceFromConfig,
			export.NewExcelExporterFromConfig,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewRoleAssignmentService,
			impl.NewItemService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewSettingsService,
			impl.NewNotifyService,
			impl.NewDeviceService,
			impl.NewBootstrapService,
			impl.NewOutboxRelayService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewItemHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewSettingsHandler,
			handler.NewRoleAssignmentHandler,
			handler.NewNotifyHandler,
			handler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				relay.NewOutboxRelay,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedData loads the configured catalog and first admin before the servers start
func seedData(lc fx.Lifecycle, bootstrap usecase.BootstrapUsecase) {
	lc.Append(fx.Hook{
		OnStart: bootstrap.Seed,
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		if delivery == nil {
			continue
		}

		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
