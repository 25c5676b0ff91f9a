// Package service defines interfaces for outbound collaborators of the
// domain layer.
package service

import (
	"context"
	"fmt"

	"wallet/internal/errors"

	"github.com/google/uuid"
)

// ActivationRequest identifies a base link to the card-network activation
// API. The base link ID doubles as the idempotency key: the network treats
// repeated activations of the same link as one.
type ActivationRequest struct {
	BaseLinkID   uuid.UUID `json:"base_link_id"`
	PaymentToken string    `json:"payment_token"`
	PlanSlug     string    `json:"plan_slug"`
}

// ActivationGateway is the card-network API that must be told which base
// links are live. The reconciliation engine guarantees at most one call per
// transition by checking the committed ActiveLink flag before dispatching;
// the gateway itself is stateless.
type ActivationGateway interface {
	// Activate tells the network to start matching transactions on the link.
	Activate(ctx context.Context, req *ActivationRequest) error

	// Deactivate tells the network to stop matching transactions on the link.
	Deactivate(ctx context.Context, req *ActivationRequest) error
}

// GatewayError classifies an activation call failure. Retryable errors
// (5xx, timeouts, transport failures) are handed to the retry publisher;
// fatal errors (4xx validation) are logged and dropped, leaving local state
// authoritative.
type GatewayError struct {
	StatusCode int
	Retryable  bool
	Err        error
}

// Error implements the error interface.
func (e *GatewayError) Error() string {
	kind := "fatal"
	if e.Retryable {
		kind = "retryable"
	}

	return fmt.Sprintf("activation gateway %s error (status %d): %v", kind, e.StatusCode, e.Err)
}

// Unwrap exposes the underlying transport or decode error.
func (e *GatewayError) Unwrap() error {
	return e.Err
}

// IsRetryableGatewayError reports whether err is a gateway error worth
// re-attempting later.
func IsRetryableGatewayError(err error) bool {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return gwErr.Retryable
	}

	return false
}
