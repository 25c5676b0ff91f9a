package repository

import (
	"context"

	"wallet/internal/errors"
)

// ErrTxConflict is returned when a transaction lost a serialization or
// deadlock race. Callers retry a small bounded number of times before
// surfacing a transient error; this local retry is distinct from the
// external activation retry queue.
var ErrTxConflict = errors.New("transaction conflict")

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations within the
	// function must go through the provided factory so they share the same
	// database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction.
type RepositoryFactory interface {
	// PaymentAccountRepo returns a PaymentAccountRepository bound to the
	// current transaction.
	PaymentAccountRepo() PaymentAccountRepository

	// LoyaltyAccountRepo returns a LoyaltyAccountRepository bound to the
	// current transaction.
	LoyaltyAccountRepo() LoyaltyAccountRepository

	// BaseLinkRepo returns a BaseLinkRepository bound to the current
	// transaction.
	BaseLinkRepo() BaseLinkRepository

	// LinkViewRepo returns a LinkViewRepository bound to the current
	// transaction.
	LinkViewRepo() LinkViewRepository
}
