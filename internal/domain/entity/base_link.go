package entity

import (
	"time"

	"github.com/google/uuid"
)

// BaseLink is the wallet-independent record of a (payment account, loyalty
// account) pairing. There is exactly one row per pairing no matter how many
// wallets reference it, and the row is the unit the activation gateway is
// billed against.
//
// Invariant: ActiveLink is true iff at least one UserLinkView referencing
// this BaseLink is in LinkStateActive. The reconciliation engine recomputes
// the flag on every pass; nothing else may write it.
type BaseLink struct {
	ID               uuid.UUID
	PaymentAccountID uuid.UUID
	LoyaltyAccountID uuid.UUID
	ActiveLink       bool
	// CreatedSeq is a monotonically increasing creation sequence assigned by
	// the store. Collision resolution orders candidates by it, so it must
	// never change after creation.
	CreatedSeq int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
