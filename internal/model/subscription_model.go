package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionModel struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID     string    `gorm:"type:uuid;not null;uniqueIndex:idx_subscription_edge" json:"user_id"`
	CreatorID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_subscription_edge" json:"creator_id"`
	Tier       string    `gorm:"type:varchar(10);not null" json:"tier"`
	Status     string    `gorm:"type:varchar(10);default:'ACTIVE';index" json:"status"`
	StartDate  time.Time `json:"start_date"`
	ExpiryDate time.Time `gorm:"index" json:"expiry_date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
