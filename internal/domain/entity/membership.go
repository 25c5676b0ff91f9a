package entity

import (
	"time"

	"github.com/google/uuid"
)

// MembershipStatus is the per-wallet usability of a loyalty card. It is an
// upstream input to link reconciliation: the engine only consumes the
// three coarse classes exposed by the predicate methods below.
type MembershipStatus string

const (
	// MembershipPending means the card was added but credentials have not
	// been checked yet.
	MembershipPending MembershipStatus = "pending"
	// MembershipAuthInProgress means an asynchronous credential check is
	// running against the merchant scheme.
	MembershipAuthInProgress MembershipStatus = "auth_in_progress"
	// MembershipActive means the credential check succeeded.
	MembershipActive MembershipStatus = "active"
	// MembershipInvalidCredentials means the merchant scheme rejected the
	// stored credentials.
	MembershipInvalidCredentials MembershipStatus = "invalid_credentials"
	// MembershipUnauthorised means the scheme refused the account for a
	// non-credential reason (blocked, closed).
	MembershipUnauthorised MembershipStatus = "unauthorised"
)

// IsActive reports whether the membership can back a live link.
func (s MembershipStatus) IsActive() bool {
	return s == MembershipActive
}

// IsPending reports whether the membership may still become active without
// user intervention.
func (s MembershipStatus) IsPending() bool {
	return s == MembershipPending || s == MembershipAuthInProgress
}

// IsRejected reports whether the membership failed hard and needs the user
// to fix credentials before it can be linked again.
func (s MembershipStatus) IsRejected() bool {
	return s == MembershipInvalidCredentials || s == MembershipUnauthorised
}

// LoyaltyMembership is a user's relationship to a LoyaltyAccount.
type LoyaltyMembership struct {
	UserID           uuid.UUID
	LoyaltyAccountID uuid.UUID
	Status           MembershipStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
