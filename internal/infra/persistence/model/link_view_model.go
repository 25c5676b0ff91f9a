package model

import (
	"time"

	"github.com/google/uuid"
)

// UserLinkViewModel is the GORM-specific struct for the
// 'pll_user_link_views' table holding each wallet's visible state of a base
// link.
type UserLinkViewModel struct {
	UserID     uuid.UUID `gorm:"type:uuid;primary_key"`
	BaseLinkID uuid.UUID `gorm:"type:uuid;primary_key;index"`
	State      string    `gorm:"type:varchar(16);not null;default:'pending'"`
	ReasonSlug string    `gorm:"type:varchar(64);not null;default:'LOYALTY_CARD_PENDING'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserLinkViewModel) TableName() string {
	return "pll_user_link_views"
}
