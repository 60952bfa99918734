package main

import (
	"context"
	"log/slog"
	"os"

	"lifelink/config"
	"lifelink/internal/delivery"
	"lifelink/internal/delivery/api"
	"lifelink/internal/delivery/api/middleware"
	"lifelink/internal/delivery/api/router/handler"
	"lifelink/internal/infra/auth"
	logs "lifelink/internal/infra/log"
	"lifelink/internal/infra/notification"
	"lifelink/internal/infra/persistence/store"
	"lifelink/internal/infra/qrcode"
	"lifelink/internal/usecase"
	"lifelink/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type seedCodesParams struct {
	fx.In
	fx.Lifecycle

	CodeUC usecase.CodeUsecase
	Logger *slog.Logger
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
			seedCodes,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		store.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			store.NewUserRepository,
			store.NewAuthRepository,
			store.NewRefreshTokenRepository,
			store.NewQRCodeRepository,
			store.NewProfileRepository,
			store.NewReportRepository,
			store.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			qrcode.NewCodeGenerator,
			notification.NewScanNotifier,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCodeService,
			impl.NewProfileService,
			impl.NewResolverService,
			impl.NewSnapshotService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewEmergencyHandler,
			handler.NewAdminHandler,
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
		),
	)
}

// seedCodes issues the configured number of unused codes into an empty registry.
func seedCodes(params seedCodesParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			issued, err := params.CodeUC.SeedIfEmpty(ctx)
			if err != nil {
				return err
			}
			if issued > 0 {
				params.Logger.Info("Seeded unused codes", slog.Int("count", issued))
			}

			return nil
		},
	})
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
