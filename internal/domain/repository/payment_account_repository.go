// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"wallet/internal/domain/entity"
	"wallet/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for payment account persistence.
var (
	// ErrPaymentAccountNotFound is returned when a payment account is not found.
	ErrPaymentAccountNotFound = errors.New("payment account not found")
)

// PaymentAccountRepository defines the interface for payment-account-related
// database operations.
type PaymentAccountRepository interface {
	// CreateAccount persists a new payment account.
	CreateAccount(ctx context.Context, account *entity.PaymentAccount) error

	// FindByID retrieves a payment account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentAccount, error)

	// FindByToken retrieves a payment account by its network token. Used to
	// deduplicate the same physical card added from several wallets.
	FindByToken(ctx context.Context, token string) (*entity.PaymentAccount, error)

	// FindWalletAccounts retrieves all payment accounts held by a user's
	// wallet. Used to auto-link a freshly added loyalty card.
	FindWalletAccounts(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentAccount, error)

	// FindByIDForUpdate retrieves a payment account and takes a row-level
	// write lock on it. Reconciliation uses this inside a transaction to
	// serialize all link mutations touching one payment card.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.PaymentAccount, error)

	// UpdateStatus applies a provider-reported status change.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentAccountStatus) error

	// AddToWallet records that a user's wallet holds this payment account.
	// Adding an account a wallet already holds is a no-op.
	AddToWallet(ctx context.Context, userID, accountID uuid.UUID) error

	// RemoveFromWallet removes the account from a user's wallet.
	RemoveFromWallet(ctx context.Context, userID, accountID uuid.UUID) error

	// FindWalletHolders returns the IDs of all users whose wallet holds the
	// account.
	FindWalletHolders(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error)

	// DeleteAccount soft-deletes a payment account.
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}
