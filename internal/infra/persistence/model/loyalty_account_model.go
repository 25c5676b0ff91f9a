package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoyaltyAccountModel is the GORM-specific struct for the 'loyalty_accounts'
// table. One row per physical card shared by every wallet that holds it.
type LoyaltyAccountModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PlanID    uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanSlug  string    `gorm:"type:varchar(128);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (LoyaltyAccountModel) TableName() string {
	return "loyalty_accounts"
}

// LoyaltyMembershipModel is the GORM-specific struct for the
// 'loyalty_memberships' table holding each wallet's relationship to a
// loyalty account.
type LoyaltyMembershipModel struct {
	UserID           uuid.UUID `gorm:"type:uuid;primary_key"`
	LoyaltyAccountID uuid.UUID `gorm:"type:uuid;primary_key;index"`
	Status           string    `gorm:"type:varchar(32);not null;default:'pending'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (LoyaltyMembershipModel) TableName() string {
	return "loyalty_memberships"
}
