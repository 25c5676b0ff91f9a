package model

import (
	"time"

	"github.com/google/uuid"
)

// BaseLinkModel is the GORM-specific struct for the 'pll_base_links' table.
// The composite unique index enforces one row per (payment account, loyalty
// account) pairing no matter how many wallets request it; CreatedSeq is a
// bigserial used as the stable tie-break for collision resolution.
type BaseLinkModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PaymentAccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_pll_base_links_pairing;index"`
	LoyaltyAccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_pll_base_links_pairing;index"`
	ActiveLink       bool      `gorm:"not null;default:false"`
	CreatedSeq       int64     `gorm:"not null;autoIncrement;uniqueIndex"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (BaseLinkModel) TableName() string {
	return "pll_base_links"
}
