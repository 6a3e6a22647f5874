package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ProductModel struct {
	ID          string         `gorm:"type:uuid;primary_key" json:"id"`
	UserID      string         `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID  string         `gorm:"type:varchar(36);index" json:"category_id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	Stock       int            `gorm:"default:0" json:"stock"`
	Kind        string         `gorm:"type:varchar(10);default:'DIGITAL'" json:"kind"`
	Images      pq.StringArray `gorm:"type:text[]" json:"images"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (ProductModel) TableName() string {
	return "products"
}

func (p *ProductModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type CategoryModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

func (c *CategoryModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

type OrderModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	ProductID string    `gorm:"type:uuid;not null;index" json:"product_id"`
	BuyerID   string    `gorm:"type:uuid;not null;index" json:"buyer_id"`
	SellerID  string    `gorm:"type:uuid;not null;index" json:"seller_id"`
	Quantity  int       `gorm:"default:1" json:"quantity"`
	Total     float64   `gorm:"not null" json:"total"`
	Status    string    `gorm:"type:varchar(20);default:'PLACED'" json:"status"`
	Address   string    `gorm:"type:text" json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (OrderModel) TableName() string {
	return "orders"
}

func (o *OrderModel) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return nil
}
