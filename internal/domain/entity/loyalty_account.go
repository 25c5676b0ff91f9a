package entity

import (
	"time"

	"github.com/google/uuid"
)

// LoyaltyAccount is a loyalty/membership card. The card itself carries no
// usability status; that lives on the per-wallet LoyaltyMembership, because
// two wallets may hold the same physical card with different credentials.
type LoyaltyAccount struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the loyalty account.
	PlanID    uuid.UUID // The merchant scheme this card belongs to; scopes collision rules.
	PlanSlug  string    // Human-readable scheme identifier sent to the activation gateway.
	CreatedAt time.Time // Timestamp of when this account was first registered.
	UpdatedAt time.Time // Timestamp of the last modification.
}
