package service

import (
	"context"
)

// RetryAction names the gateway call a retry job will replay.
type RetryAction string

const (
	// RetryActionActivate replays ActivationGateway.Activate.
	RetryActionActivate RetryAction = "activate"
	// RetryActionDeactivate replays ActivationGateway.Deactivate.
	RetryActionDeactivate RetryAction = "deactivate"
)

// RetryJob is an idempotent replay of a failed activation call, consumed by
// the external periodic retry worker. The base link ID is the idempotency
// key: replaying a job that already succeeded is harmless.
type RetryJob struct {
	RequestID    string      `json:"request_id,omitempty"` // For distributed tracing
	BaseLinkID   string      `json:"base_link_id"`
	Action       RetryAction `json:"action"`
	PaymentToken string      `json:"payment_token"`
	PlanSlug     string      `json:"plan_slug"`
	Attempt      int         `json:"attempt"` // 1-based; the worker gives up past the configured maximum
}

// RetryPublisher defines the interface for handing failed activation calls
// to the retry collaborator. The engine's only contract with it is "accepts
// an idempotent retry job and will call the gateway again later".
type RetryPublisher interface {
	// PublishRetryJob enqueues a retry job for async processing.
	PublishRetryJob(ctx context.Context, job *RetryJob) error

	// Close releases any resources held by the publisher.
	Close() error
}
