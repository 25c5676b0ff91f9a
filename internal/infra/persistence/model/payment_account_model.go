// Package model contains the GORM-specific structs mapping domain entities
// to PostgreSQL tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentAccountModel is the GORM-specific struct for the 'payment_accounts'
// table. One row per physical card; wallets reference it through
// WalletPaymentEntryModel.
type PaymentAccountModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Token     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Status    string    `gorm:"type:varchar(32);not null;default:'pending'"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentAccountModel) TableName() string {
	return "payment_accounts"
}

// WalletPaymentEntryModel is the GORM-specific struct for the
// 'wallet_payment_entries' join table between users and payment accounts.
type WalletPaymentEntryModel struct {
	UserID           uuid.UUID `gorm:"type:uuid;primary_key"`
	PaymentAccountID uuid.UUID `gorm:"type:uuid;primary_key;index"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (WalletPaymentEntryModel) TableName() string {
	return "wallet_payment_entries"
}
