package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WalletModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Balance   float64   `gorm:"default:0" json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (WalletModel) TableName() string {
	return "wallets"
}

func (w *WalletModel) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return nil
}

type TransactionModel struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID        string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Type          string    `gorm:"type:varchar(10);not null" json:"type"`
	Status        string    `gorm:"type:varchar(10);default:'PENDING'" json:"status"`
	Amount        float64   `gorm:"not null" json:"amount"`
	BalanceBefore float64   `json:"balance_before"`
	BalanceAfter  float64   `json:"balance_after"`
	Reference     string    `gorm:"type:varchar(255)" json:"reference"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
}

func (TransactionModel) TableName() string {
	return "transactions"
}

func (t *TransactionModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

type PaymentModel struct {
	ID             string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID         string    `gorm:"type:uuid;not null;index" json:"user_id"`
	RecipientID    string    `gorm:"type:varchar(36);index" json:"recipient_id"`
	PostID         string    `gorm:"type:varchar(36)" json:"post_id"`
	SubscriptionID string    `gorm:"type:varchar(36);index" json:"subscription_id"`
	Purpose        string    `gorm:"type:varchar(20);not null" json:"purpose"`
	Status         string    `gorm:"type:varchar(10);default:'PENDING'" json:"status"`
	Amount         float64   `gorm:"not null" json:"amount"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

func (p *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// ProcessedEventModel keys on the upstream event id, not a generated
// uuid. A second insert of the same id conflicts and is dropped.
type ProcessedEventModel struct {
	ID         string    `gorm:"type:varchar(255);primary_key" json:"id"`
	Purpose    string    `gorm:"type:varchar(20)" json:"purpose"`
	ReceivedAt time.Time `json:"received_at"`
}

func (ProcessedEventModel) TableName() string {
	return "processed_events"
}
