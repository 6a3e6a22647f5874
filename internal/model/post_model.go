package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type PostModel struct {
	ID               string         `gorm:"type:uuid;primary_key" json:"id"`
	UserID           string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Title            string         `gorm:"type:varchar(255)" json:"title"`
	Description      string         `gorm:"type:text" json:"description"`
	Type             string         `gorm:"type:varchar(10);not null" json:"type"`
	Status           string         `gorm:"type:varchar(10);default:'ACTIVE';index" json:"status"`
	AccessIdentifier string         `gorm:"type:varchar(20);default:'FREE'" json:"access_identifier"`
	Price            float64        `gorm:"default:0" json:"price"`
	Images           pq.StringArray `gorm:"type:text[]" json:"images"`
	Likes            int            `gorm:"default:0" json:"likes"`
	Comments         int            `gorm:"default:0" json:"comments"`
	CreatedAt        time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type PostLikeModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	PostID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_post_like" json:"post_id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_post_like" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (PostLikeModel) TableName() string {
	return "post_likes"
}

func (l *PostLikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

// BookmarkModel holds both post and product bookmarks, discriminated by
// ItemKind.
type BookmarkModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_bookmark" json:"user_id"`
	ItemID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_bookmark" json:"item_id"`
	ItemKind  string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_bookmark" json:"item_kind"`
	CreatedAt time.Time `json:"created_at"`
}

func (BookmarkModel) TableName() string {
	return "bookmarks"
}

func (b *BookmarkModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}

type PurchaseModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	PostID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_purchase" json:"post_id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_purchase" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (PurchaseModel) TableName() string {
	return "purchases"
}

func (p *PurchaseModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type NotInterestedModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_not_interested" json:"user_id"`
	PostID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_not_interested" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (NotInterestedModel) TableName() string {
	return "not_interested_posts"
}

func (n *NotInterestedModel) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}
