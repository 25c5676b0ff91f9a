// Package retryqueue hands failed activation calls to the asynchronous retry
// worker, either through Google Pub/Sub or a local HTTP endpoint.
package retryqueue

import (
	"context"
	"log/slog"

	"wallet/config"
	"wallet/internal/domain/constants"
	"wallet/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher is a no-op implementation when the retry queue is disabled.
// Failed activation calls are dropped; the periodic full reconciliation sweep
// is then the only repair path.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishRetryJob(ctx context.Context, job *service.RetryJob) error {
	p.logger.Debug("[NoopRetryQueue] Retry queue disabled, dropping job",
		slog.String("base_link_id", job.BaseLinkID),
		slog.String("action", string(job.Action)),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for RetryPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewRetryPublisher creates a RetryPublisher based on configuration
func NewRetryPublisher(params PublisherParams) (service.RetryPublisher, error) {
	cfg := params.Config.Retry
	logger := params.Logger

	// If the retry queue is not configured, return a no-op publisher
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Retry queue not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.RetryPublisher
	var err error

	switch cfg.Provider {
	case constants.RetryProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for retry queue",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.RetryProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher for retry queue",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown retry queue provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing RetryPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the retry queue FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRetryPublisher),
)
