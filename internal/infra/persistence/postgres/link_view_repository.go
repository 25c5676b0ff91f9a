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

// linkViewRepository implements the repository.LinkViewRepository interface.
type linkViewRepository struct {
	db *gorm.DB
}

// NewLinkViewRepository is the constructor for linkViewRepository.
func NewLinkViewRepository(db *gorm.DB) repository.LinkViewRepository {
	return &linkViewRepository{
		db: db,
	}
}

// GetOrCreate returns the user's view of a base link, creating it in the
// pending state if it does not exist yet.
func (repo *linkViewRepository) GetOrCreate(ctx context.Context, userID, baseLinkID uuid.UUID) (*entity.UserLinkView, error) {
	view, err := repo.FindByUserAndBaseLink(ctx, userID, baseLinkID)
	if err == nil {
		return view, nil
	}
	if !errors.Is(err, repository.ErrLinkViewNotFound) {
		return nil, err
	}

	viewM := &model.UserLinkViewModel{
		UserID:     userID,
		BaseLinkID: baseLinkID,
		State:      string(entity.LinkStatePending),
		ReasonSlug: string(entity.ReasonLoyaltyCardPending),
	}

	if err := repo.db.WithContext(ctx).Create(viewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repo.FindByUserAndBaseLink(ctx, userID, baseLinkID)
		}
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrBaseLinkNotFound.WrapMessage("invalid base link reference")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create user link view")
	}

	return toLinkViewDomain(viewM), nil
}

// SetState writes the user-visible state and reason. The state/slug pair is
// validated before the write; an inconsistent pair is a caller bug and is
// rejected rather than corrected.
func (repo *linkViewRepository) SetState(ctx context.Context, userID, baseLinkID uuid.UUID, state entity.LinkState, reason entity.ReasonSlug) error {
	candidate := entity.UserLinkView{State: state, ReasonSlug: reason}
	if !candidate.Consistent() {
		return repository.ErrStateReasonMismatch
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserLinkViewModel{}).
		Where("user_id = ? AND base_link_id = ?", userID, baseLinkID).
		Updates(map[string]any{
			"state":       string(state),
			"reason_slug": string(reason),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update user link view state")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLinkViewNotFound
	}

	return nil
}

// FindByUserAndBaseLink retrieves a single view.
func (repo *linkViewRepository) FindByUserAndBaseLink(ctx context.Context, userID, baseLinkID uuid.UUID) (*entity.UserLinkView, error) {
	var viewM model.UserLinkViewModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND base_link_id = ?", userID, baseLinkID).
		First(&viewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLinkViewNotFound
		}

		return nil, errors.Wrap(err, "failed to find user link view")
	}

	return toLinkViewDomain(&viewM), nil
}

// FindByBaseLink retrieves every wallet's view of a base link.
func (repo *linkViewRepository) FindByBaseLink(ctx context.Context, baseLinkID uuid.UUID) ([]*entity.UserLinkView, error) {
	var viewModels []*model.UserLinkViewModel

	if err := repo.db.WithContext(ctx).
		Where("base_link_id = ?", baseLinkID).
		Order("created_at ASC").
		Find(&viewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find views by base link")
	}

	return toLinkViewDomainSlice(viewModels), nil
}

// FindByUserAndLoyalty retrieves the user's views across all base links of one
// loyalty account.
func (repo *linkViewRepository) FindByUserAndLoyalty(ctx context.Context, userID, loyaltyAccountID uuid.UUID) ([]*entity.UserLinkView, error) {
	var viewModels []*model.UserLinkViewModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN pll_base_links ON pll_base_links.id = pll_user_link_views.base_link_id").
		Where("pll_user_link_views.user_id = ? AND pll_base_links.loyalty_account_id = ?", userID, loyaltyAccountID).
		Order("pll_base_links.created_seq ASC").
		Find(&viewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find views by user and loyalty account")
	}

	return toLinkViewDomainSlice(viewModels), nil
}

// AnyActive reports whether at least one view of the base link is active.
func (repo *linkViewRepository) AnyActive(ctx context.Context, baseLinkID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserLinkViewModel{}).
		Where("base_link_id = ? AND state = ?", baseLinkID, string(entity.LinkStateActive)).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count active views")
	}

	return count > 0, nil
}

// CountByBaseLink returns the number of views referencing the base link.
func (repo *linkViewRepository) CountByBaseLink(ctx context.Context, baseLinkID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserLinkViewModel{}).
		Where("base_link_id = ?", baseLinkID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count views by base link")
	}

	return count, nil
}

// Delete removes a user's view of a base link.
func (repo *linkViewRepository) Delete(ctx context.Context, userID, baseLinkID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND base_link_id = ?", userID, baseLinkID).
		Delete(&model.UserLinkViewModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user link view")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLinkViewNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toLinkViewDomain converts a GORM UserLinkViewModel to a domain UserLinkView entity.
func toLinkViewDomain(data *model.UserLinkViewModel) *entity.UserLinkView {
	if data == nil {
		return nil
	}

	return &entity.UserLinkView{
		UserID:     data.UserID,
		BaseLinkID: data.BaseLinkID,
		State:      entity.LinkState(data.State),
		ReasonSlug: entity.ReasonSlug(data.ReasonSlug),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toLinkViewDomainSlice(data []*model.UserLinkViewModel) []*entity.UserLinkView {
	views := make([]*entity.UserLinkView, 0, len(data))
	for _, viewM := range data {
		views = append(views, toLinkViewDomain(viewM))
	}

	return views
}
