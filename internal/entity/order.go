package entity

import "time"

type OrderStatus string

const (
	OrderPlaced    OrderStatus = "PLACED"
	OrderShipped   OrderStatus = "SHIPPED"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCanceled  OrderStatus = "CANCELED"
)

type Order struct {
	ID        string      `json:"id"`
	ProductID string      `json:"product_id"`
	BuyerID   string      `json:"buyer_id"`
	SellerID  string      `json:"seller_id"`
	Quantity  int         `json:"quantity"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	Address   string      `json:"address,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`

	Product *Product `json:"product,omitempty"`
}
