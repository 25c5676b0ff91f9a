package repository

import (
	"context"

	"wallet/internal/domain/entity"
	"wallet/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for link view persistence.
var (
	// ErrLinkViewNotFound is returned when a user link view is not found.
	ErrLinkViewNotFound = errors.New("user link view not found")
	// ErrStateReasonMismatch is returned when a write would break the
	// state/slug coupling invariant (active with a slug, or non-active
	// without one). This is a programmer error: the store fails loudly
	// instead of auto-correcting, because silent correction could mask a
	// collision-resolution bug.
	ErrStateReasonMismatch = errors.New("link state and reason slug are inconsistent")
)

// LinkViewRepository is the store for per-wallet link views. It enforces the
// state/slug coupling invariant on every write.
type LinkViewRepository interface {
	// GetOrCreate returns the user's view of a base link, creating it in
	// LinkStatePending with ReasonLoyaltyCardPending if it does not exist.
	GetOrCreate(ctx context.Context, userID, baseLinkID uuid.UUID) (*entity.UserLinkView, error)

	// SetState writes the user-visible state and reason. Returns
	// ErrStateReasonMismatch if the pair violates the coupling invariant.
	SetState(ctx context.Context, userID, baseLinkID uuid.UUID, state entity.LinkState, reason entity.ReasonSlug) error

	// FindByUserAndBaseLink retrieves a single view.
	FindByUserAndBaseLink(ctx context.Context, userID, baseLinkID uuid.UUID) (*entity.UserLinkView, error)

	// FindByBaseLink retrieves every wallet's view of a base link.
	FindByBaseLink(ctx context.Context, baseLinkID uuid.UUID) ([]*entity.UserLinkView, error)

	// FindByUserAndLoyalty retrieves the user's views across all base links
	// of one loyalty account.
	FindByUserAndLoyalty(ctx context.Context, userID, loyaltyAccountID uuid.UUID) ([]*entity.UserLinkView, error)

	// AnyActive reports whether at least one view of the base link is
	// active. The engine uses it to recompute BaseLink.ActiveLink.
	AnyActive(ctx context.Context, baseLinkID uuid.UUID) (bool, error)

	// CountByBaseLink returns the number of views referencing the base link.
	CountByBaseLink(ctx context.Context, baseLinkID uuid.UUID) (int64, error)

	// Delete removes a user's view of a base link.
	Delete(ctx context.Context, userID, baseLinkID uuid.UUID) error
}
