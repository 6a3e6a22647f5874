package persistent

import (
	"fanbase/internal/entity"
	"fanbase/internal/model"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	ListByBuyer(buyerID string, limit, offset int) ([]*entity.Order, int64, error)
	ListBySeller(sellerID string, limit, offset int) ([]*entity.Order, int64, error)
	UpdateStatus(id string, status entity.OrderStatus) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *entity.Order) error {
	m := &model.OrderModel{
		ProductID: order.ProductID,
		BuyerID:   order.BuyerID,
		SellerID:  order.SellerID,
		Quantity:  order.Quantity,
		Total:     order.Total,
		Status:    string(order.Status),
		Address:   order.Address,
	}
	if err := r.db.Create(m).Error; err != nil {
		return err
	}
	order.ID = m.ID
	order.CreatedAt = m.CreatedAt
	return nil
}

func (r *orderRepository) GetByID(id string) (*entity.Order, error) {
	var m model.OrderModel
	if err := r.db.Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return ToOrderEntity(&m), nil
}

func (r *orderRepository) ListByBuyer(buyerID string, limit, offset int) ([]*entity.Order, int64, error) {
	return r.list("buyer_id", buyerID, limit, offset)
}

func (r *orderRepository) ListBySeller(sellerID string, limit, offset int) ([]*entity.Order, int64, error) {
	return r.list("seller_id", sellerID, limit, offset)
}

func (r *orderRepository) list(column, id string, limit, offset int) ([]*entity.Order, int64, error) {
	q := r.db.Model(&model.OrderModel{}).Where(column+" = ?", id)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []model.OrderModel
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]*entity.Order, len(ms))
	for i := range ms {
		orders[i] = ToOrderEntity(&ms[i])
	}
	return orders, total, nil
}

func (r *orderRepository) UpdateStatus(id string, status entity.OrderStatus) error {
	return r.db.Model(&model.OrderModel{}).Where("id = ?", id).
		UpdateColumn("status", string(status)).Error
}
