package main

import (
	"context"
	"log/slog"
	"os"

	"wallet/config"
	"wallet/internal/delivery"
	"wallet/internal/delivery/http"
	"wallet/internal/delivery/http/middleware"
	"wallet/internal/delivery/http/router/handler"
	"wallet/internal/domain/service"
	"wallet/internal/infra/activation"
	logs "wallet/internal/infra/log"
	"wallet/internal/infra/persistence/postgres"
	"wallet/internal/infra/retryqueue"
	"wallet/internal/usecase/impl"

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
			postgres.NewPaymentAccountRepository,
			postgres.NewLoyaltyAccountRepository,
			postgres.NewBaseLinkRepository,
			postgres.NewLinkViewRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newActivationGateway,
			retryqueue.NewRetryPublisher,
		),
	)
}

// newActivationGateway creates the card-network gateway client with dependency injection
func newActivationGateway(cfg *config.Config, logger *slog.Logger) service.ActivationGateway {
	return activation.NewHTTPGateway(cfg.Activation, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewReconciliationService,
			impl.NewWalletService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewWalletHandler,
			handler.NewLinkHandler,
			handler.NewCallbackHandler,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
