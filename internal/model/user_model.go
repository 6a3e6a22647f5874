package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID               string    `gorm:"type:uuid;primary_key" json:"id"`
	Name             string    `gorm:"type:varchar(100)" json:"name"`
	Username         string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Email            string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password         string    `gorm:"type:varchar(255);not null" json:"-"`
	Avatar           string    `gorm:"type:varchar(500)" json:"avatar"`
	CoverImage       string    `gorm:"type:varchar(500)" json:"cover_image"`
	Bio              string    `gorm:"type:text" json:"bio"`
	IsCreator        bool      `gorm:"default:false" json:"is_creator"`
	IsFan            bool      `gorm:"default:true" json:"is_fan"`
	LastActiveRole   string    `gorm:"type:varchar(20);default:'FAN'" json:"last_active_role"`
	TotalSubscribers int       `gorm:"default:0" json:"total_subscribers"`
	MonthlyPrice     float64   `gorm:"default:9" json:"monthly_price"`
	YearlyPrice      float64   `gorm:"default:99" json:"yearly_price"`
	StripeAccountID  string    `gorm:"type:varchar(255)" json:"stripe_account_id"`
	IsBlocked        bool      `gorm:"default:false" json:"is_blocked"`
	OTPCode          string    `gorm:"type:varchar(10)" json:"-"`
	OTPExpiresAt     time.Time `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

type BlockEdgeModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	BlockerID string    `gorm:"type:uuid;not null;uniqueIndex:idx_block_edge" json:"blocker_id"`
	BlockedID string    `gorm:"type:uuid;not null;uniqueIndex:idx_block_edge" json:"blocked_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (BlockEdgeModel) TableName() string {
	return "block_list"
}

func (b *BlockEdgeModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}

type ReportModel struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	ReporterID string    `gorm:"type:uuid;not null;index" json:"reporter_id"`
	ReportedID string    `gorm:"type:uuid;not null;index" json:"reported_id"`
	Reason     string    `gorm:"type:text" json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}

func (ReportModel) TableName() string {
	return "reports"
}

func (r *ReportModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
