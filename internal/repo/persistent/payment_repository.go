package persistent

import (
	"time"

	"fanbase/internal/entity"
	"fanbase/internal/model"

	"gorm.io/gorm"
)

type PaymentListFilter struct {
	Purpose string
	Status  string
	From    *time.Time
	To      *time.Time
}

type PaymentRepository interface {
	Create(payment *entity.Payment) error
	ListByUser(userID string, filter PaymentListFilter, limit, offset int) ([]*entity.Payment, int64, error)
	// ListEarnings lists payments received by a creator.
	ListEarnings(recipientID string, limit, offset int) ([]*entity.Payment, int64, error)
	SumEarnings(recipientID string) (float64, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(payment *entity.Payment) error {
	m := ToPaymentModel(payment)
	if err := r.db.Create(m).Error; err != nil {
		return err
	}
	payment.ID = m.ID
	payment.CreatedAt = m.CreatedAt
	return nil
}

func (r *paymentRepository) ListByUser(userID string, filter PaymentListFilter, limit, offset int) ([]*entity.Payment, int64, error) {
	q := r.db.Model(&model.PaymentModel{}).Where("user_id = ?", userID)
	if filter.Purpose != "" {
		q = q.Where("purpose = ?", filter.Purpose)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.From != nil {
		q = q.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("created_at <= ?", *filter.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []model.PaymentModel
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	payments := make([]*entity.Payment, len(ms))
	for i := range ms {
		payments[i] = ToPaymentEntity(&ms[i])
	}
	return payments, total, nil
}

func (r *paymentRepository) ListEarnings(recipientID string, limit, offset int) ([]*entity.Payment, int64, error) {
	q := r.db.Model(&model.PaymentModel{}).
		Where("recipient_id = ? AND status = ?", recipientID, string(entity.PaymentDone))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []model.PaymentModel
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	payments := make([]*entity.Payment, len(ms))
	for i := range ms {
		payments[i] = ToPaymentEntity(&ms[i])
	}
	return payments, total, nil
}

func (r *paymentRepository) SumEarnings(recipientID string) (float64, error) {
	var sum float64
	err := r.db.Model(&model.PaymentModel{}).
		Where("recipient_id = ? AND status = ?", recipientID, string(entity.PaymentDone)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}
