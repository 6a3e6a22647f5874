package entity

import "time"

type ProductKind string

const (
	ProductDigital  ProductKind = "DIGITAL"
	ProductPhysical ProductKind = "PHYSICAL"
)

type Product struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	CategoryID  string      `json:"category_id,omitempty"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Stock       int         `json:"stock"`
	Kind        ProductKind `json:"kind"`
	Images      []string    `json:"images"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
