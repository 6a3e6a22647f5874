package usecase

import (
	"errors"

	"fanbase/internal/entity"
	"fanbase/internal/repo/persistent"
	"fanbase/pkg/logger"

	"gorm.io/gorm"
)

type OrderUseCase interface {
	Place(buyerID, productID string, quantity int, address string) (*entity.Order, error)
	Purchases(buyerID string, page, limit int) ([]*entity.Order, int64, error)
	Sales(sellerID string, page, limit int) ([]*entity.Order, int64, error)
	UpdateStatus(sellerID, orderID string, status entity.OrderStatus) error
}

type orderUseCase struct {
	orderRepo  persistent.OrderRepository
	prodRepo   persistent.ProductRepository
	walletRepo persistent.WalletRepository
	payRepo    persistent.PaymentRepository
	log        *logger.Logger
}

func NewOrderUseCase(
	orderRepo persistent.OrderRepository,
	prodRepo persistent.ProductRepository,
	walletRepo persistent.WalletRepository,
	payRepo persistent.PaymentRepository,
	log *logger.Logger,
) OrderUseCase {
	return &orderUseCase{
		orderRepo:  orderRepo,
		prodRepo:   prodRepo,
		walletRepo: walletRepo,
		payRepo:    payRepo,
		log:        log,
	}
}

// Place pays for the order from the buyer's wallet. Physical products
// need an address and available stock.
func (uc *orderUseCase) Place(buyerID, productID string, quantity int, address string) (*entity.Order, error) {
	if quantity < 1 {
		return nil, ErrInvalidInput
	}

	product, err := uc.prodRepo.GetByID(productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if product.UserID == buyerID {
		return nil, ErrForbidden
	}
	if product.Kind == entity.ProductPhysical && address == "" {
		return nil, ErrInvalidInput
	}

	if product.Kind == entity.ProductPhysical {
		ok, err := uc.prodRepo.DecrementStock(productID, quantity)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrOutOfStock
		}
	}

	total := product.Price * float64(quantity)
	if _, err := uc.walletRepo.Debit(buyerID, total, "order:"+productID); err != nil {
		if product.Kind == entity.ProductPhysical {
			if _, rsErr := uc.prodRepo.DecrementStock(productID, -quantity); rsErr != nil {
				uc.log.Error("Failed to restore stock for %s: %v", productID, rsErr)
			}
		}
		if errors.Is(err, persistent.ErrInsufficientFunds) {
			return nil, ErrInsufficientFunds
		}
		return nil, err
	}

	order := &entity.Order{
		ProductID: productID,
		BuyerID:   buyerID,
		SellerID:  product.UserID,
		Quantity:  quantity,
		Total:     total,
		Status:    entity.OrderPlaced,
		Address:   address,
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}

	payment := &entity.Payment{
		UserID:      buyerID,
		RecipientID: product.UserID,
		Purpose:     entity.PurposeOrder,
		Status:      entity.PaymentDone,
		Amount:      total,
	}
	if err := uc.payRepo.Create(payment); err != nil {
		uc.log.Error("Failed to record order payment: %v", err)
	}

	order.Product = product
	return order, nil
}

func (uc *orderUseCase) Purchases(buyerID string, page, limit int) ([]*entity.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	orders, total, err := uc.orderRepo.ListByBuyer(buyerID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	uc.attachProducts(orders)
	return orders, total, nil
}

func (uc *orderUseCase) Sales(sellerID string, page, limit int) ([]*entity.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	orders, total, err := uc.orderRepo.ListBySeller(sellerID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	uc.attachProducts(orders)
	return orders, total, nil
}

func (uc *orderUseCase) attachProducts(orders []*entity.Order) {
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ProductID)
	}
	products, err := uc.prodRepo.GetByIDs(ids)
	if err != nil {
		uc.log.Warn("Failed to load order products: %v", err)
		return
	}

	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	for _, o := range orders {
		o.Product = byID[o.ProductID]
	}
}

func (uc *orderUseCase) UpdateStatus(sellerID, orderID string, status entity.OrderStatus) error {
	switch status {
	case entity.OrderShipped, entity.OrderDelivered, entity.OrderCanceled:
	default:
		return ErrInvalidInput
	}

	order, err := uc.orderRepo.GetByID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if order.SellerID != sellerID {
		return ErrForbidden
	}
	if order.Status == entity.OrderDelivered || order.Status == entity.OrderCanceled {
		return ErrInvalidInput
	}
	return uc.orderRepo.UpdateStatus(orderID, status)
}
