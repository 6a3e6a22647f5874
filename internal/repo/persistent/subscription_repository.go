package persistent

import (
	"errors"
	"time"

	"fanbase/internal/entity"
	"fanbase/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrActiveSubscription   = errors.New("subscription already active")
	ErrNoActiveSubscription = errors.New("no active subscription")
)

type SubscriptionRepository interface {
	GetEdge(userID, creatorID string) (*entity.Subscription, error)
	Subscribe(userID, creatorID string, tier entity.SubscriptionTier, price float64, now time.Time) (*entity.Subscription, error)
	Cancel(userID, creatorID string, now time.Time) error
	ListByUser(userID string, status string, limit, offset int) ([]*entity.Subscription, int64, error)
	ActiveCreatorIDs(userID string, now time.Time) ([]string, error)
	IsActivelySubscribed(userID, creatorID string, now time.Time) (bool, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func tierExpiry(tier entity.SubscriptionTier, from time.Time) time.Time {
	if tier == entity.TierYearly {
		return from.AddDate(1, 0, 0)
	}
	return from.AddDate(0, 1, 0)
}

// newSubscriptionRow builds a fresh ACTIVE edge. The id is left empty
// for the BeforeCreate hook.
func newSubscriptionRow(userID, creatorID string, tier entity.SubscriptionTier, now time.Time) model.SubscriptionModel {
	return model.SubscriptionModel{
		UserID:     userID,
		CreatorID:  creatorID,
		Tier:       string(tier),
		Status:     string(entity.SubscriptionActive),
		StartDate:  now,
		ExpiryDate: tierExpiry(tier, now),
	}
}

// reviseSubscription returns the column updates that reactivate an
// existing edge in place. The id is never among them, so a resubscribe
// keeps the original row. A still-active edge fails with
// ErrActiveSubscription.
func reviseSubscription(m *model.SubscriptionModel, tier entity.SubscriptionTier, now time.Time) (map[string]interface{}, error) {
	if m.Status == string(entity.SubscriptionActive) && now.Before(m.ExpiryDate) {
		return nil, ErrActiveSubscription
	}
	return map[string]interface{}{
		"tier":        string(tier),
		"status":      string(entity.SubscriptionActive),
		"start_date":  now,
		"expiry_date": tierExpiry(tier, now),
	}, nil
}

// applySubscription creates or reactivates the unique (user, creator)
// edge inside the caller's transaction and bumps the creator's
// subscriber count.
func applySubscription(tx *gorm.DB, userID, creatorID string, tier entity.SubscriptionTier, now time.Time) (*model.SubscriptionModel, error) {
	var m model.SubscriptionModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND creator_id = ?", userID, creatorID).
		First(&m).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		m = newSubscriptionRow(userID, creatorID, tier, now)
		if err := tx.Create(&m).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		updates, err := reviseSubscription(&m, tier, now)
		if err != nil {
			return nil, err
		}
		if err := tx.Model(&m).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	err = tx.Model(&model.UserModel{}).Where("id = ?", creatorID).
		UpdateColumn("total_subscribers", gorm.Expr("total_subscribers + 1")).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *subscriptionRepository) GetEdge(userID, creatorID string) (*entity.Subscription, error) {
	var m model.SubscriptionModel
	err := r.db.Where("user_id = ? AND creator_id = ?", userID, creatorID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ToSubscriptionEntity(&m), nil
}

func (r *subscriptionRepository) Subscribe(userID, creatorID string, tier entity.SubscriptionTier, price float64, now time.Time) (*entity.Subscription, error) {
	var m *model.SubscriptionModel
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var err error
		m, err = applySubscription(tx, userID, creatorID, tier, now)
		if err != nil {
			return err
		}

		payment := &model.PaymentModel{
			UserID:         userID,
			RecipientID:    creatorID,
			SubscriptionID: m.ID,
			Purpose:        string(entity.PurposeSubscription),
			Status:         string(entity.PaymentDone),
			Amount:         price,
		}
		return tx.Create(payment).Error
	})
	if err != nil {
		return nil, err
	}
	return ToSubscriptionEntity(m), nil
}

func (r *subscriptionRepository) Cancel(userID, creatorID string, now time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var m model.SubscriptionModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND creator_id = ?", userID, creatorID).
			First(&m).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoActiveSubscription
		}
		if err != nil {
			return err
		}

		if m.Status != string(entity.SubscriptionActive) || !now.Before(m.ExpiryDate) {
			return ErrNoActiveSubscription
		}

		updates := map[string]interface{}{
			"status":      string(entity.SubscriptionExpired),
			"expiry_date": now,
		}
		if err := tx.Model(&m).Updates(updates).Error; err != nil {
			return err
		}

		err = tx.Model(&model.UserModel{}).Where("id = ?", creatorID).
			UpdateColumn("total_subscribers", gorm.Expr("GREATEST(total_subscribers - 1, 0)")).Error
		if err != nil {
			return err
		}

		return tx.Model(&model.PaymentModel{}).
			Where("subscription_id = ? AND status = ?", m.ID, string(entity.PaymentDone)).
			UpdateColumn("status", string(entity.PaymentCanceled)).Error
	})
}

func (r *subscriptionRepository) ListByUser(userID string, status string, limit, offset int) ([]*entity.Subscription, int64, error) {
	q := r.db.Model(&model.SubscriptionModel{}).Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []model.SubscriptionModel
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	subs := make([]*entity.Subscription, len(ms))
	for i := range ms {
		subs[i] = ToSubscriptionEntity(&ms[i])
	}
	return subs, total, nil
}

func (r *subscriptionRepository) ActiveCreatorIDs(userID string, now time.Time) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.SubscriptionModel{}).
		Where("user_id = ? AND status = ? AND expiry_date > ?", userID, string(entity.SubscriptionActive), now).
		Pluck("creator_id", &ids).Error
	return ids, err
}

func (r *subscriptionRepository) IsActivelySubscribed(userID, creatorID string, now time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&model.SubscriptionModel{}).
		Where("user_id = ? AND creator_id = ? AND status = ? AND expiry_date > ?",
			userID, creatorID, string(entity.SubscriptionActive), now).
		Count(&count).Error
	return count > 0, err
}
