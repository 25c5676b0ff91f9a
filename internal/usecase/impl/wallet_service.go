package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "wallet/internal/delivery/context"
	"wallet/internal/domain/entity"
	domainerrors "wallet/internal/domain/errors"
	"wallet/internal/domain/repository"
	"wallet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// walletService implements the WalletUsecase interface. It owns the card
// inventory of wallets; every status mutation explicitly dispatches the
// matching reconciliation trigger instead of relying on persistence hooks.
type walletService struct {
	paymentRepo repository.PaymentAccountRepository
	loyaltyRepo repository.LoyaltyAccountRepository
	pll         usecase.PLLUsecase
	logger      *slog.Logger
}

// WalletServiceParams holds dependencies for WalletService, injected by Fx.
type WalletServiceParams struct {
	fx.In

	PaymentRepo repository.PaymentAccountRepository
	LoyaltyRepo repository.LoyaltyAccountRepository
	PLL         usecase.PLLUsecase
	Logger      *slog.Logger
}

// NewWalletService is the constructor for walletService.
func NewWalletService(params WalletServiceParams) usecase.WalletUsecase {
	return &walletService{
		paymentRepo: params.PaymentRepo,
		loyaltyRepo: params.LoyaltyRepo,
		pll:         params.PLL,
		logger:      params.Logger,
	}
}

func (srv *walletService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddPaymentAccount registers a payment card in the wallet, deduplicating by
// network token, and auto-links it against the wallet's loyalty cards.
func (srv *walletService) AddPaymentAccount(ctx context.Context, input *usecase.AddPaymentAccountInput) (*entity.PaymentAccount, error) {
	account, err := srv.paymentRepo.FindByToken(ctx, input.Token)
	if err != nil && !errors.Is(err, repository.ErrPaymentAccountNotFound) {
		return nil, errors.Wrap(err, "failed to find payment account by token")
	}

	if account == nil {
		account = &entity.PaymentAccount{
			ID:        uuid.New(),
			Token:     input.Token,
			Status:    entity.PaymentAccountPending,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := srv.paymentRepo.CreateAccount(ctx, account); err != nil {
			return nil, errors.Wrap(err, "failed to create payment account")
		}
	}

	if err := srv.paymentRepo.AddToWallet(ctx, input.UserID, account.ID); err != nil {
		return nil, errors.Wrap(err, "failed to add payment account to wallet")
	}

	srv.autoLinkPayment(ctx, input.UserID, account.ID)

	return account, nil
}

// RemovePaymentAccount takes the card out of the wallet. The account row is
// soft-deleted only once no wallet holds it.
func (srv *walletService) RemovePaymentAccount(ctx context.Context, userID, paymentAccountID uuid.UUID) error {
	if _, err := srv.paymentRepo.FindByID(ctx, paymentAccountID); err != nil {
		if errors.Is(err, repository.ErrPaymentAccountNotFound) {
			return errors.Wrap(domainerrors.ErrPaymentAccountNotFound, paymentAccountID.String())
		}

		return errors.Wrap(err, "failed to find payment account")
	}

	if err := srv.pll.UnlinkPaymentAccount(ctx, userID, paymentAccountID); err != nil {
		return errors.Wrap(err, "failed to unlink payment account")
	}

	if err := srv.paymentRepo.RemoveFromWallet(ctx, userID, paymentAccountID); err != nil {
		return errors.Wrap(err, "failed to remove payment account from wallet")
	}

	holders, err := srv.paymentRepo.FindWalletHolders(ctx, paymentAccountID)
	if err != nil {
		return errors.Wrap(err, "failed to find wallet holders")
	}
	if len(holders) == 0 {
		if err := srv.paymentRepo.DeleteAccount(ctx, paymentAccountID); err != nil {
			return errors.Wrap(err, "failed to delete payment account")
		}
	}

	return nil
}

// UpdatePaymentAccountStatus applies a provider status callback and triggers
// re-reconciliation of every affected pairing.
func (srv *walletService) UpdatePaymentAccountStatus(ctx context.Context, paymentAccountID uuid.UUID, status entity.PaymentAccountStatus) error {
	if err := srv.paymentRepo.UpdateStatus(ctx, paymentAccountID, status); err != nil {
		if errors.Is(err, repository.ErrPaymentAccountNotFound) {
			return errors.Wrap(domainerrors.ErrPaymentAccountNotFound, paymentAccountID.String())
		}

		return errors.Wrap(err, "failed to update payment account status")
	}

	if err := srv.pll.OnPaymentAccountChanged(ctx, paymentAccountID); err != nil {
		return errors.Wrap(err, "failed to reconcile after payment status change")
	}

	return nil
}

// AddLoyaltyCard registers a loyalty card in the wallet, joining the shared
// account row when another wallet already holds the same card.
func (srv *walletService) AddLoyaltyCard(ctx context.Context, input *usecase.AddLoyaltyCardInput) (*entity.LoyaltyAccount, error) {
	var account *entity.LoyaltyAccount
	if input.LoyaltyAccountID != uuid.Nil {
		existing, err := srv.loyaltyRepo.FindAccountByID(ctx, input.LoyaltyAccountID)
		if err != nil {
			if errors.Is(err, repository.ErrLoyaltyAccountNotFound) {
				return nil, errors.Wrap(domainerrors.ErrLoyaltyAccountNotFound, input.LoyaltyAccountID.String())
			}

			return nil, errors.Wrap(err, "failed to find loyalty account")
		}
		account = existing
	} else {
		account = &entity.LoyaltyAccount{
			ID:        uuid.New(),
			PlanID:    input.PlanID,
			PlanSlug:  input.PlanSlug,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := srv.loyaltyRepo.CreateAccount(ctx, account); err != nil {
			return nil, errors.Wrap(err, "failed to create loyalty account")
		}
	}

	membership := &entity.LoyaltyMembership{
		UserID:           input.UserID,
		LoyaltyAccountID: account.ID,
		Status:           entity.MembershipPending,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	if err := srv.loyaltyRepo.UpsertMembership(ctx, membership); err != nil {
		return nil, errors.Wrap(err, "failed to upsert loyalty membership")
	}

	srv.autoLinkLoyalty(ctx, input.UserID, account.ID)

	return account, nil
}

// RemoveLoyaltyCard removes the user's membership and unlinks the card's
// pairings in this wallet.
func (srv *walletService) RemoveLoyaltyCard(ctx context.Context, userID, loyaltyAccountID uuid.UUID) error {
	if _, err := srv.loyaltyRepo.FindMembership(ctx, userID, loyaltyAccountID); err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return errors.Wrap(domainerrors.ErrMembershipNotFound, loyaltyAccountID.String())
		}

		return errors.Wrap(err, "failed to find loyalty membership")
	}

	if err := srv.pll.UnlinkLoyaltyAccount(ctx, userID, loyaltyAccountID); err != nil {
		return errors.Wrap(err, "failed to unlink loyalty account")
	}

	if err := srv.loyaltyRepo.DeleteMembership(ctx, userID, loyaltyAccountID); err != nil {
		return errors.Wrap(err, "failed to delete loyalty membership")
	}

	return nil
}

// UpdateMembershipStatus applies a credential-check result and triggers
// re-reconciliation of the membership's pairings.
func (srv *walletService) UpdateMembershipStatus(ctx context.Context, userID, loyaltyAccountID uuid.UUID, status entity.MembershipStatus) error {
	membership, err := srv.loyaltyRepo.FindMembership(ctx, userID, loyaltyAccountID)
	if err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return errors.Wrap(domainerrors.ErrMembershipNotFound, loyaltyAccountID.String())
		}

		return errors.Wrap(err, "failed to find loyalty membership")
	}

	membership.Status = status
	membership.UpdatedAt = time.Now()
	if err := srv.loyaltyRepo.UpsertMembership(ctx, membership); err != nil {
		return errors.Wrap(err, "failed to update loyalty membership")
	}

	if err := srv.pll.OnLoyaltyMembershipChanged(ctx, userID, loyaltyAccountID); err != nil {
		return errors.Wrap(err, "failed to reconcile after membership change")
	}

	return nil
}

// autoLinkPayment links a freshly added payment card against every loyalty
// card the wallet holds. Failures are logged; the card add itself succeeded.
func (srv *walletService) autoLinkPayment(ctx context.Context, userID, paymentAccountID uuid.UUID) {
	memberships, err := srv.loyaltyRepo.FindMembershipsByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to enumerate memberships for auto-link",
			slog.Any("userID", userID),
			slog.Any("error", err),
		)

		return
	}

	for _, membership := range memberships {
		input := &usecase.LinkInput{
			UserID:            userID,
			LoyaltyAccountID:  membership.LoyaltyAccountID,
			PaymentAccountIDs: []uuid.UUID{paymentAccountID},
		}
		if _, err := srv.pll.Link(ctx, input); err != nil {
			srv.log(ctx).Error("Failed to auto-link payment account",
				slog.Any("userID", userID),
				slog.Any("loyaltyAccountID", membership.LoyaltyAccountID),
				slog.Any("error", err),
			)
		}
	}
}

// autoLinkLoyalty links a freshly added loyalty card against every payment
// card the wallet holds.
func (srv *walletService) autoLinkLoyalty(ctx context.Context, userID, loyaltyAccountID uuid.UUID) {
	accounts, err := srv.paymentRepo.FindWalletAccounts(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to enumerate payment accounts for auto-link",
			slog.Any("userID", userID),
			slog.Any("error", err),
		)

		return
	}
	if len(accounts) == 0 {
		return
	}

	paymentIDs := make([]uuid.UUID, 0, len(accounts))
	for _, account := range accounts {
		paymentIDs = append(paymentIDs, account.ID)
	}

	input := &usecase.LinkInput{
		UserID:            userID,
		LoyaltyAccountID:  loyaltyAccountID,
		PaymentAccountIDs: paymentIDs,
	}
	if _, err := srv.pll.Link(ctx, input); err != nil {
		srv.log(ctx).Error("Failed to auto-link loyalty account",
			slog.Any("userID", userID),
			slog.Any("loyaltyAccountID", loyaltyAccountID),
			slog.Any("error", err),
		)
	}
}
