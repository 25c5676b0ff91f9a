package repository

import (
	"context"

	"wallet/internal/domain/entity"
	"wallet/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for loyalty account persistence.
var (
	// ErrLoyaltyAccountNotFound is returned when a loyalty account is not found.
	ErrLoyaltyAccountNotFound = errors.New("loyalty account not found")
	// ErrMembershipNotFound is returned when a user holds no membership for
	// the loyalty account.
	ErrMembershipNotFound = errors.New("loyalty membership not found")
)

// LoyaltyAccountRepository defines the interface for loyalty-card-related
// database operations, covering both the shared account rows and the
// per-wallet memberships.
type LoyaltyAccountRepository interface {
	// CreateAccount persists a new loyalty account.
	CreateAccount(ctx context.Context, account *entity.LoyaltyAccount) error

	// FindAccountByID retrieves a loyalty account by its unique ID.
	FindAccountByID(ctx context.Context, id uuid.UUID) (*entity.LoyaltyAccount, error)

	// UpsertMembership creates a user's membership for a loyalty account or
	// updates its status if the membership already exists.
	UpsertMembership(ctx context.Context, membership *entity.LoyaltyMembership) error

	// FindMembership retrieves a single (user, loyalty account) membership.
	FindMembership(ctx context.Context, userID, accountID uuid.UUID) (*entity.LoyaltyMembership, error)

	// FindMembershipsByAccount retrieves every wallet's membership for a
	// loyalty account. Collision resolution scans these for eligibility.
	FindMembershipsByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.LoyaltyMembership, error)

	// FindMembershipsByUser retrieves all loyalty memberships in a user's
	// wallet. Used to auto-link a freshly added payment card.
	FindMembershipsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.LoyaltyMembership, error)

	// DeleteMembership removes a user's membership for a loyalty account.
	DeleteMembership(ctx context.Context, userID, accountID uuid.UUID) error
}
