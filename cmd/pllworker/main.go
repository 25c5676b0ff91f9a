package main

import (
	"context"
	"log/slog"
	"os"

	"wallet/config"
	"wallet/internal/delivery"
	"wallet/internal/delivery/worker"
	"wallet/internal/delivery/worker/handler"
	"wallet/internal/domain/service"
	"wallet/internal/infra/activation"
	logs "wallet/internal/infra/log"
	"wallet/internal/infra/persistence/postgres"
	"wallet/internal/infra/retryqueue"

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
		injectHandler(),
		injectDelivery(),
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
			postgres.NewBaseLinkRepository,
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

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRetryHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
