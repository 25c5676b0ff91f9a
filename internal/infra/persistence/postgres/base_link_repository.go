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
)

// baseLinkRepository implements the repository.BaseLinkRepository interface.
// It is a pure keyed store; link semantics live in the reconciliation engine.
type baseLinkRepository struct {
	db *gorm.DB
}

// NewBaseLinkRepository is the constructor for baseLinkRepository.
func NewBaseLinkRepository(db *gorm.DB) repository.BaseLinkRepository {
	return &baseLinkRepository{
		db: db,
	}
}

// GetOrCreate returns the base link for the pairing, creating it if it does
// not exist yet. A concurrent creator losing the insert race re-reads the
// winner's row, so both callers converge on the same record.
func (repo *baseLinkRepository) GetOrCreate(ctx context.Context, paymentAccountID, loyaltyAccountID uuid.UUID) (*entity.BaseLink, error) {
	link, err := repo.FindByPaymentAndLoyalty(ctx, paymentAccountID, loyaltyAccountID)
	if err == nil {
		return link, nil
	}
	if !errors.Is(err, repository.ErrBaseLinkNotFound) {
		return nil, err
	}

	linkM := &model.BaseLinkModel{
		PaymentAccountID: paymentAccountID,
		LoyaltyAccountID: loyaltyAccountID,
	}

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Lost the insert race; the winner's row is what we want.
			link, findErr := repo.FindByPaymentAndLoyalty(ctx, paymentAccountID, loyaltyAccountID)
			if findErr != nil {
				return nil, repository.ErrDuplicateBaseLink
			}

			return link, nil
		}
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrBaseLinkNotFound.WrapMessage("invalid payment or loyalty account reference")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create base link")
	}

	return toBaseLinkDomain(linkM), nil
}

// FindByID retrieves a base link by its unique ID.
func (repo *baseLinkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BaseLink, error) {
	var linkM model.BaseLinkModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBaseLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find base link by ID")
	}

	return toBaseLinkDomain(&linkM), nil
}

// FindByPaymentAndLoyalty retrieves the base link for a specific pairing.
func (repo *baseLinkRepository) FindByPaymentAndLoyalty(ctx context.Context, paymentAccountID, loyaltyAccountID uuid.UUID) (*entity.BaseLink, error) {
	var linkM model.BaseLinkModel

	if err := repo.db.WithContext(ctx).
		Where("payment_account_id = ? AND loyalty_account_id = ?", paymentAccountID, loyaltyAccountID).
		First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBaseLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find base link by pairing")
	}

	return toBaseLinkDomain(&linkM), nil
}

// FindByPayment retrieves all base links that contain the payment account.
func (repo *baseLinkRepository) FindByPayment(ctx context.Context, paymentAccountID uuid.UUID) ([]*entity.BaseLink, error) {
	var linkModels []*model.BaseLinkModel

	if err := repo.db.WithContext(ctx).
		Where("payment_account_id = ?", paymentAccountID).
		Order("created_seq ASC").
		Find(&linkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find base links by payment account")
	}

	return toBaseLinkDomainSlice(linkModels), nil
}

// FindByLoyalty retrieves all base links that contain the loyalty account.
func (repo *baseLinkRepository) FindByLoyalty(ctx context.Context, loyaltyAccountID uuid.UUID) ([]*entity.BaseLink, error) {
	var linkModels []*model.BaseLinkModel

	if err := repo.db.WithContext(ctx).
		Where("loyalty_account_id = ?", loyaltyAccountID).
		Order("created_seq ASC").
		Find(&linkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find base links by loyalty account")
	}

	return toBaseLinkDomainSlice(linkModels), nil
}

// FindPlanLinks retrieves the base links joining the payment account to any
// loyalty account of the given plan, ordered by creation sequence ascending.
// The ordering is what makes collision resolution deterministic.
func (repo *baseLinkRepository) FindPlanLinks(ctx context.Context, paymentAccountID, planID uuid.UUID) ([]*entity.BaseLink, error) {
	var linkModels []*model.BaseLinkModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN loyalty_accounts ON loyalty_accounts.id = pll_base_links.loyalty_account_id").
		Where("pll_base_links.payment_account_id = ? AND loyalty_accounts.plan_id = ? AND loyalty_accounts.deleted_at IS NULL",
			paymentAccountID, planID).
		Order("pll_base_links.created_seq ASC").
		Find(&linkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find plan base links")
	}

	return toBaseLinkDomainSlice(linkModels), nil
}

// SetActive writes the wallet-independent active flag.
func (repo *baseLinkRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BaseLinkModel{}).
		Where("id = ?", id).
		Update("active_link", active)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update base link active flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBaseLinkNotFound
	}

	return nil
}

// Delete removes a base link.
func (repo *baseLinkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BaseLinkModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete base link")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBaseLinkNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBaseLinkDomain converts a GORM BaseLinkModel to a domain BaseLink entity.
func toBaseLinkDomain(data *model.BaseLinkModel) *entity.BaseLink {
	if data == nil {
		return nil
	}

	return &entity.BaseLink{
		ID:               data.ID,
		PaymentAccountID: data.PaymentAccountID,
		LoyaltyAccountID: data.LoyaltyAccountID,
		ActiveLink:       data.ActiveLink,
		CreatedSeq:       data.CreatedSeq,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func toBaseLinkDomainSlice(data []*model.BaseLinkModel) []*entity.BaseLink {
	links := make([]*entity.BaseLink, 0, len(data))
	for _, linkM := range data {
		links = append(links, toBaseLinkDomain(linkM))
	}

	return links
}
