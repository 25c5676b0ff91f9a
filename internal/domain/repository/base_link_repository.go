package repository

import (
	"context"

	"wallet/internal/domain/entity"
	"wallet/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for base link persistence.
var (
	// ErrBaseLinkNotFound is returned when a base link is not found.
	ErrBaseLinkNotFound = errors.New("base link not found")
	// ErrDuplicateBaseLink is returned when a concurrent creator inserted the
	// same (payment account, loyalty account) pairing first. GetOrCreate
	// retries on it; it never escapes to callers of the engine.
	ErrDuplicateBaseLink = errors.New("base link already exists")
)

// BaseLinkRepository is the store for wallet-independent link records. It is
// a pure keyed store: one row per (payment account, loyalty account) pair,
// no business logic.
type BaseLinkRepository interface {
	// GetOrCreate returns the base link for the pairing, creating it if it
	// does not exist yet. Concurrent creators must converge on a single row;
	// the unique constraint on the pairing plus a retry-on-conflict makes
	// the call idempotent.
	GetOrCreate(ctx context.Context, paymentAccountID, loyaltyAccountID uuid.UUID) (*entity.BaseLink, error)

	// FindByID retrieves a base link by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BaseLink, error)

	// FindByPaymentAndLoyalty retrieves the base link for a specific pairing.
	FindByPaymentAndLoyalty(ctx context.Context, paymentAccountID, loyaltyAccountID uuid.UUID) (*entity.BaseLink, error)

	// FindByPayment retrieves all base links that contain the payment account.
	FindByPayment(ctx context.Context, paymentAccountID uuid.UUID) ([]*entity.BaseLink, error)

	// FindByLoyalty retrieves all base links that contain the loyalty account.
	FindByLoyalty(ctx context.Context, loyaltyAccountID uuid.UUID) ([]*entity.BaseLink, error)

	// FindPlanLinks retrieves the base links joining the payment account to
	// any loyalty account of the given plan, ordered by creation sequence
	// ascending. This is the candidate set for collision resolution.
	FindPlanLinks(ctx context.Context, paymentAccountID, planID uuid.UUID) ([]*entity.BaseLink, error)

	// SetActive writes the wallet-independent active flag.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	// Delete removes a base link. Only called once no view references it.
	Delete(ctx context.Context, id uuid.UUID) error
}
