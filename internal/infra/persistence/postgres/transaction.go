package postgres

import (
	"context"
	"fmt"

	"wallet/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object (*gorm.Tx) and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
}

// PaymentAccountRepo creates a payment account repository bound to the transaction.
func (f *gormRepositoryFactory) PaymentAccountRepo() repository.PaymentAccountRepository {
	return NewPaymentAccountRepository(f.tx)
}

// LoyaltyAccountRepo creates a loyalty account repository bound to the transaction.
func (f *gormRepositoryFactory) LoyaltyAccountRepo() repository.LoyaltyAccountRepository {
	return NewLoyaltyAccountRepository(f.tx)
}

// BaseLinkRepo creates a base link repository bound to the transaction.
func (f *gormRepositoryFactory) BaseLinkRepo() repository.BaseLinkRepository {
	return NewBaseLinkRepository(f.tx)
}

// LinkViewRepo creates a link view repository bound to the transaction.
func (f *gormRepositoryFactory) LinkViewRepo() repository.LinkViewRepository {
	return NewLinkViewRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
// Serialization failures and deadlocks are translated to
// repository.ErrTxConflict so the use case layer can retry them.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	// Begin a new transaction
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// This defer block ensures that if a panic occurs within the callback function,
	// the transaction is always rolled back. This is a critical safety measure.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			// Re-panic to allow Fx or other middleware to handle the panic.
			panic(r)
		}
	}()

	// Create a repository factory that is bound to this specific transaction.
	factory := &gormRepositoryFactory{tx: tx}

	// Execute the application logic (the use case's core work)
	err := fn(factory)
	if err != nil {
		// If the business logic returns an error, roll back the transaction.
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Log the rollback error, but return the original, more meaningful business error.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}
		if isSerializationFailure(err) {
			return errors.Wrap(repository.ErrTxConflict, err.Error())
		}

		return err // Return the original business error.
	}

	// If the business logic completes without error, commit the transaction.
	if err := tx.Commit().Error; err != nil {
		if isSerializationFailure(err) {
			return errors.Wrap(repository.ErrTxConflict, err.Error())
		}

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
