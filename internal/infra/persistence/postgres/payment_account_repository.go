// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"wallet/internal/domain/entity"
	domainerrors "wallet/internal/domain/errors"
	"wallet/internal/domain/repository"
	"wallet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// paymentAccountRepository implements the repository.PaymentAccountRepository interface.
type paymentAccountRepository struct {
	db *gorm.DB
}

// NewPaymentAccountRepository is the constructor for paymentAccountRepository.
func NewPaymentAccountRepository(db *gorm.DB) repository.PaymentAccountRepository {
	return &paymentAccountRepository{
		db: db,
	}
}

// CreateAccount persists a new payment account.
func (repo *paymentAccountRepository) CreateAccount(ctx context.Context, account *entity.PaymentAccount) error {
	accountM := fromPaymentAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPaymentAccountCreationFailed.WrapMessage("payment token already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrPaymentAccountCreationFailed.WrapMessage("missing required payment account information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment account")
	}

	// Update the entity with generated values
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// FindByID retrieves a payment account by its unique ID.
func (repo *paymentAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentAccount, error) {
	var accountM model.PaymentAccountModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment account by ID")
	}

	return toPaymentAccountDomain(&accountM), nil
}

// FindByToken retrieves a payment account by its network token.
func (repo *paymentAccountRepository) FindByToken(ctx context.Context, token string) (*entity.PaymentAccount, error) {
	var accountM model.PaymentAccountModel

	if err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment account by token")
	}

	return toPaymentAccountDomain(&accountM), nil
}

// FindWalletAccounts retrieves all payment accounts held by a user's wallet.
func (repo *paymentAccountRepository) FindWalletAccounts(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentAccount, error) {
	var accountModels []*model.PaymentAccountModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN wallet_payment_entries ON wallet_payment_entries.payment_account_id = payment_accounts.id").
		Where("wallet_payment_entries.user_id = ?", userID).
		Order("payment_accounts.created_at ASC").
		Find(&accountModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find wallet payment accounts")
	}

	accounts := make([]*entity.PaymentAccount, 0, len(accountModels))
	for _, accountM := range accountModels {
		accounts = append(accounts, toPaymentAccountDomain(accountM))
	}

	return accounts, nil
}

// FindByIDForUpdate retrieves a payment account and takes a row-level write lock.
// Must run inside a transaction; the lock is the serialization point for all
// link mutations touching this card.
func (repo *paymentAccountRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.PaymentAccount, error) {
	var accountM model.PaymentAccountModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to lock payment account")
	}

	return toPaymentAccountDomain(&accountM), nil
}

// UpdateStatus applies a provider-reported status change.
func (repo *paymentAccountRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentAccountStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentAccountModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update payment account status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPaymentAccountNotFound
	}

	return nil
}

// AddToWallet records that a user's wallet holds this payment account.
// Adding an account the wallet already holds is a no-op.
func (repo *paymentAccountRepository) AddToWallet(ctx context.Context, userID, accountID uuid.UUID) error {
	entryM := &model.WalletPaymentEntryModel{
		UserID:           userID,
		PaymentAccountID: accountID,
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPaymentAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add payment account to wallet")
	}

	return nil
}

// RemoveFromWallet removes the account from a user's wallet.
func (repo *paymentAccountRepository) RemoveFromWallet(ctx context.Context, userID, accountID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND payment_account_id = ?", userID, accountID).
		Delete(&model.WalletPaymentEntryModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove payment account from wallet")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPaymentAccountNotFound
	}

	return nil
}

// FindWalletHolders returns the IDs of all users whose wallet holds the account.
func (repo *paymentAccountRepository) FindWalletHolders(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error) {
	var userIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.WalletPaymentEntryModel{}).
		Where("payment_account_id = ?", accountID).
		Order("created_at ASC").
		Pluck("user_id", &userIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find wallet holders")
	}

	return userIDs, nil
}

// DeleteAccount soft-deletes a payment account.
func (repo *paymentAccountRepository) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PaymentAccountModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete payment account")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPaymentAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPaymentAccountDomain converts a GORM PaymentAccountModel to a domain PaymentAccount entity.
func toPaymentAccountDomain(data *model.PaymentAccountModel) *entity.PaymentAccount {
	if data == nil {
		return nil
	}

	return &entity.PaymentAccount{
		ID:        data.ID,
		Token:     data.Token,
		Status:    entity.PaymentAccountStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPaymentAccountDomain converts a domain PaymentAccount entity to a GORM PaymentAccountModel.
func fromPaymentAccountDomain(data *entity.PaymentAccount) *model.PaymentAccountModel {
	if data == nil {
		return nil
	}

	return &model.PaymentAccountModel{
		ID:        data.ID,
		Token:     data.Token,
		Status:    string(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
