package entity

import (
	"time"

	"github.com/google/uuid"
)

// LinkState is the user-visible state of a pairing in one wallet.
type LinkState string

const (
	LinkStateActive   LinkState = "active"
	LinkStatePending  LinkState = "pending"
	LinkStateInactive LinkState = "inactive"
)

// ReasonSlug explains a non-active link state to the wallet owner.
type ReasonSlug string

const (
	// ReasonNone accompanies an active link. It is the only slug valid with
	// LinkStateActive, and LinkStateActive is the only state valid with it.
	ReasonNone                    ReasonSlug = ""
	ReasonLoyaltyCardPending      ReasonSlug = "LOYALTY_CARD_PENDING"
	ReasonPaymentAccountPending   ReasonSlug = "PAYMENT_ACCOUNT_PENDING"
	ReasonLoyaltyCardUnauthorised ReasonSlug = "LOYALTY_CARD_NOT_AUTHORISED"
	ReasonPaymentAccountInactive  ReasonSlug = "PAYMENT_ACCOUNT_INACTIVE"
	ReasonUbiquityCollision       ReasonSlug = "UBIQUITY_COLLISION"
)

// UserLinkView is the per-wallet visible state of a BaseLink. One row per
// (user, base link) pair.
type UserLinkView struct {
	UserID     uuid.UUID
	BaseLinkID uuid.UUID
	State      LinkState
	ReasonSlug ReasonSlug
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Consistent reports whether the state/slug coupling invariant holds:
// an active view carries no reason slug and a non-active view carries one.
func (v *UserLinkView) Consistent() bool {
	if v.State == LinkStateActive {
		return v.ReasonSlug == ReasonNone
	}

	return v.ReasonSlug != ReasonNone
}
