// Package usecase defines the application's use case interfaces and their
// input/output DTOs.
package usecase

import (
	"context"

	"wallet/internal/domain/entity"

	"github.com/google/uuid"
)

// LinkInput is an explicit or automatic link request: pair one loyalty card
// in one wallet with a batch of payment accounts.
type LinkInput struct {
	UserID            uuid.UUID
	LoyaltyAccountID  uuid.UUID
	PaymentAccountIDs []uuid.UUID
}

// PairingResult is the per-pairing delta produced by a reconciliation pass.
// Failed is set when the pairing could not be reconciled; sibling pairings
// in the same batch are unaffected.
type PairingResult struct {
	BaseLink *entity.BaseLink
	View     *entity.UserLinkView
	Failed   error
}

// LinkOutput carries one result per requested payment account, in request
// order.
type LinkOutput struct {
	Results []*PairingResult
}

// PLLUsecase is the payment-linked-loyalty reconciliation engine. The three
// mutating entry points are the only places link state is ever recomputed;
// nothing happens as a hidden side effect of saving a card.
type PLLUsecase interface {
	// Link processes a link request for each (loyalty card, payment account)
	// pairing, creating base links and views as needed and activating the
	// pairing when it wins collision resolution.
	Link(ctx context.Context, input *LinkInput) (*LinkOutput, error)

	// OnLoyaltyMembershipChanged re-reconciles every pairing of the user's
	// membership after its status changed. Other wallets sharing the same
	// loyalty card are not touched.
	OnLoyaltyMembershipChanged(ctx context.Context, userID, loyaltyAccountID uuid.UUID) error

	// OnPaymentAccountChanged re-reconciles every view of every base link
	// containing the payment account, across all wallets.
	OnPaymentAccountChanged(ctx context.Context, paymentAccountID uuid.UUID) error

	// UnlinkPaymentAccount removes the user's views of every base link
	// containing the payment account, deactivating base links whose last
	// active view disappears and deleting base links nobody references.
	UnlinkPaymentAccount(ctx context.Context, userID, paymentAccountID uuid.UUID) error

	// UnlinkLoyaltyAccount is the loyalty-side counterpart of
	// UnlinkPaymentAccount.
	UnlinkLoyaltyAccount(ctx context.Context, userID, loyaltyAccountID uuid.UUID) error

	// GetUserLinkViews returns the user's views across all base links of one
	// loyalty card.
	GetUserLinkViews(ctx context.Context, userID, loyaltyAccountID uuid.UUID) ([]*entity.UserLinkView, error)

	// GetBaseLink returns the wallet-independent link record for a pairing.
	GetBaseLink(ctx context.Context, paymentAccountID, loyaltyAccountID uuid.UUID) (*entity.BaseLink, error)
}
