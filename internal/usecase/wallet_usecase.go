package usecase

import (
	"context"

	"wallet/internal/domain/entity"

	"github.com/google/uuid"
)

// AddPaymentAccountInput registers a payment card in a user's wallet. Cards
// are deduplicated by network token: two wallets adding the same physical
// card share one account row.
type AddPaymentAccountInput struct {
	UserID uuid.UUID
	Token  string
}

// AddLoyaltyCardInput registers a loyalty card in a user's wallet.
// LoyaltyAccountID is set when joining a card that already exists in another
// wallet; otherwise a new account is created under the plan.
type AddLoyaltyCardInput struct {
	UserID           uuid.UUID
	LoyaltyAccountID uuid.UUID
	PlanID           uuid.UUID
	PlanSlug         string
}

// WalletUsecase manages the card inventory of wallets and dispatches the
// matching reconciliation trigger after every status mutation.
type WalletUsecase interface {
	// AddPaymentAccount registers a payment card in the wallet and
	// auto-links it against every loyalty card the wallet already holds.
	AddPaymentAccount(ctx context.Context, input *AddPaymentAccountInput) (*entity.PaymentAccount, error)

	// RemovePaymentAccount takes the card out of the wallet, unlinking all
	// of the user's pairings for it. The account row survives while other
	// wallets still hold it.
	RemovePaymentAccount(ctx context.Context, userID, paymentAccountID uuid.UUID) error

	// UpdatePaymentAccountStatus applies a provider status callback and
	// re-reconciles every affected pairing.
	UpdatePaymentAccountStatus(ctx context.Context, paymentAccountID uuid.UUID, status entity.PaymentAccountStatus) error

	// AddLoyaltyCard registers a loyalty card (or joins an existing one) and
	// auto-links it against every payment card the wallet already holds.
	AddLoyaltyCard(ctx context.Context, input *AddLoyaltyCardInput) (*entity.LoyaltyAccount, error)

	// RemoveLoyaltyCard removes the user's membership and unlinks the
	// card's pairings in this wallet.
	RemoveLoyaltyCard(ctx context.Context, userID, loyaltyAccountID uuid.UUID) error

	// UpdateMembershipStatus applies a credential-check result and
	// re-reconciles the membership's pairings.
	UpdateMembershipStatus(ctx context.Context, userID, loyaltyAccountID uuid.UUID, status entity.MembershipStatus) error
}
