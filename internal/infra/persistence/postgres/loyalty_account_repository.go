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

// loyaltyAccountRepository implements the repository.LoyaltyAccountRepository interface.
type loyaltyAccountRepository struct {
	db *gorm.DB
}

// NewLoyaltyAccountRepository is the constructor for loyaltyAccountRepository.
func NewLoyaltyAccountRepository(db *gorm.DB) repository.LoyaltyAccountRepository {
	return &loyaltyAccountRepository{
		db: db,
	}
}

// CreateAccount persists a new loyalty account.
func (repo *loyaltyAccountRepository) CreateAccount(ctx context.Context, account *entity.LoyaltyAccount) error {
	accountM := fromLoyaltyAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required loyalty account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create loyalty account")
	}

	// Update the entity with generated values
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// FindAccountByID retrieves a loyalty account by its unique ID.
func (repo *loyaltyAccountRepository) FindAccountByID(ctx context.Context, id uuid.UUID) (*entity.LoyaltyAccount, error) {
	var accountM model.LoyaltyAccountModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLoyaltyAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find loyalty account by ID")
	}

	return toLoyaltyAccountDomain(&accountM), nil
}

// UpsertMembership creates a user's membership for a loyalty account or
// updates its status if the membership already exists.
func (repo *loyaltyAccountRepository) UpsertMembership(ctx context.Context, membership *entity.LoyaltyMembership) error {
	membershipM := fromMembershipDomain(membership)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "loyalty_account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
		}).
		Create(membershipM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrLoyaltyAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert loyalty membership")
	}

	membership.CreatedAt = membershipM.CreatedAt
	membership.UpdatedAt = membershipM.UpdatedAt

	return nil
}

// FindMembership retrieves a single (user, loyalty account) membership.
func (repo *loyaltyAccountRepository) FindMembership(ctx context.Context, userID, accountID uuid.UUID) (*entity.LoyaltyMembership, error) {
	var membershipM model.LoyaltyMembershipModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND loyalty_account_id = ?", userID, accountID).
		First(&membershipM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMembershipNotFound
		}

		return nil, errors.Wrap(err, "failed to find loyalty membership")
	}

	return toMembershipDomain(&membershipM), nil
}

// FindMembershipsByAccount retrieves every wallet's membership for a loyalty account.
func (repo *loyaltyAccountRepository) FindMembershipsByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.LoyaltyMembership, error) {
	var membershipModels []*model.LoyaltyMembershipModel

	if err := repo.db.WithContext(ctx).
		Where("loyalty_account_id = ?", accountID).
		Order("created_at ASC").
		Find(&membershipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find memberships by loyalty account")
	}

	memberships := make([]*entity.LoyaltyMembership, 0, len(membershipModels))
	for _, membershipM := range membershipModels {
		memberships = append(memberships, toMembershipDomain(membershipM))
	}

	return memberships, nil
}

// FindMembershipsByUser retrieves all loyalty memberships in a user's wallet.
func (repo *loyaltyAccountRepository) FindMembershipsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.LoyaltyMembership, error) {
	var membershipModels []*model.LoyaltyMembershipModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&membershipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find memberships by user")
	}

	memberships := make([]*entity.LoyaltyMembership, 0, len(membershipModels))
	for _, membershipM := range membershipModels {
		memberships = append(memberships, toMembershipDomain(membershipM))
	}

	return memberships, nil
}

// DeleteMembership removes a user's membership for a loyalty account.
func (repo *loyaltyAccountRepository) DeleteMembership(ctx context.Context, userID, accountID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND loyalty_account_id = ?", userID, accountID).
		Delete(&model.LoyaltyMembershipModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete loyalty membership")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMembershipNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toLoyaltyAccountDomain converts a GORM LoyaltyAccountModel to a domain LoyaltyAccount entity.
func toLoyaltyAccountDomain(data *model.LoyaltyAccountModel) *entity.LoyaltyAccount {
	if data == nil {
		return nil
	}

	return &entity.LoyaltyAccount{
		ID:        data.ID,
		PlanID:    data.PlanID,
		PlanSlug:  data.PlanSlug,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromLoyaltyAccountDomain converts a domain LoyaltyAccount entity to a GORM LoyaltyAccountModel.
func fromLoyaltyAccountDomain(data *entity.LoyaltyAccount) *model.LoyaltyAccountModel {
	if data == nil {
		return nil
	}

	return &model.LoyaltyAccountModel{
		ID:        data.ID,
		PlanID:    data.PlanID,
		PlanSlug:  data.PlanSlug,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toMembershipDomain converts a GORM LoyaltyMembershipModel to a domain LoyaltyMembership entity.
func toMembershipDomain(data *model.LoyaltyMembershipModel) *entity.LoyaltyMembership {
	if data == nil {
		return nil
	}

	return &entity.LoyaltyMembership{
		UserID:           data.UserID,
		LoyaltyAccountID: data.LoyaltyAccountID,
		Status:           entity.MembershipStatus(data.Status),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromMembershipDomain converts a domain LoyaltyMembership entity to a GORM LoyaltyMembershipModel.
func fromMembershipDomain(data *entity.LoyaltyMembership) *model.LoyaltyMembershipModel {
	if data == nil {
		return nil
	}

	return &model.LoyaltyMembershipModel{
		UserID:           data.UserID,
		LoyaltyAccountID: data.LoyaltyAccountID,
		Status:           string(data.Status),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
