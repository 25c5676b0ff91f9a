// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentAccountStatus is the provider-reported status of a payment card.
type PaymentAccountStatus string

const (
	// PaymentAccountPending means the provider has not yet confirmed enrolment.
	PaymentAccountPending PaymentAccountStatus = "pending"
	// PaymentAccountActive means the card is enrolled and usable for matching.
	PaymentAccountActive PaymentAccountStatus = "active"
	// PaymentAccountInvalid means the provider rejected the card.
	PaymentAccountInvalid PaymentAccountStatus = "invalid"
	// PaymentAccountInactive covers every other non-usable provider state
	// (expired, suspended, closed).
	PaymentAccountInactive PaymentAccountStatus = "inactive"
)

// IsActive reports whether the card can carry live loyalty links.
func (s PaymentAccountStatus) IsActive() bool {
	return s == PaymentAccountActive
}

// IsPending reports whether the card is still waiting on provider enrolment.
func (s PaymentAccountStatus) IsPending() bool {
	return s == PaymentAccountPending
}

// PaymentAccount is a payment instrument registered in one or more wallets.
// The same physical card added by several users maps to a single account row;
// wallet membership is tracked separately so removal from one wallet does not
// disturb the others.
type PaymentAccount struct {
	ID        uuid.UUID            // The Global Unique Identifier (GUID) for the payment account.
	Token     string               // Network token handed to the activation gateway.
	Status    PaymentAccountStatus // Provider-reported status, mutated by provider callbacks.
	CreatedAt time.Time            // Timestamp of when this account was first registered.
	UpdatedAt time.Time            // Timestamp of the last modification.
}

// WalletPaymentEntry records that a user's wallet holds a payment account.
type WalletPaymentEntry struct {
	UserID           uuid.UUID
	PaymentAccountID uuid.UUID
	CreatedAt        time.Time
}
