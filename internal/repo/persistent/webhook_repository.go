package persistent

import (
	"time"

	"fanbase/internal/entity"
	"fanbase/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WebhookRepository applies payment-processor events. Every apply
// method inserts the event id into processed_events inside the same
// transaction as its side effects, so a redelivered event id is a
// no-op across all purposes.
type WebhookRepository interface {
	ApplyDeposit(eventID, userID string, amount float64) (bool, error)
	ApplyPostPurchase(eventID, userID, postID, ownerID string, amount float64) (bool, error)
	ApplySubscription(eventID, userID, creatorID string, tier entity.SubscriptionTier, amount float64, now time.Time) (bool, error)
}

type webhookRepository struct {
	db *gorm.DB
}

func NewWebhookRepository(db *gorm.DB) WebhookRepository {
	return &webhookRepository{db: db}
}

// markProcessed claims the event id. False means another delivery of
// the same event already claimed it.
func markProcessed(tx *gorm.DB, eventID, purpose string) (bool, error) {
	row := &model.ProcessedEventModel{ID: eventID, Purpose: purpose, ReceivedAt: time.Now()}
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *webhookRepository) ApplyDeposit(eventID, userID string, amount float64) (bool, error) {
	var applied bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		claimed, err := markProcessed(tx, eventID, string(entity.PurposeWalletDeposit))
		if err != nil || !claimed {
			return err
		}

		var balance float64
		if err := creditWallet(tx, userID, amount, eventID, &balance); err != nil {
			return err
		}
		applied = true
		return nil
	})
	return applied, err
}

func (r *webhookRepository) ApplyPostPurchase(eventID, userID, postID, ownerID string, amount float64) (bool, error) {
	var applied bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		claimed, err := markProcessed(tx, eventID, string(entity.PurposePostPurchase))
		if err != nil || !claimed {
			return err
		}

		purchase := &model.PurchaseModel{PostID: postID, UserID: userID}
		ins := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(purchase)
		if ins.Error != nil {
			return ins.Error
		}
		if ins.RowsAffected == 0 {
			// Already a purchaser through another path; keep the ledger as is.
			applied = true
			return nil
		}

		payment := &model.PaymentModel{
			UserID:      userID,
			RecipientID: ownerID,
			PostID:      postID,
			Purpose:     string(entity.PurposePostPurchase),
			Status:      string(entity.PaymentDone),
			Amount:      amount,
		}
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		applied = true
		return nil
	})
	return applied, err
}

func (r *webhookRepository) ApplySubscription(eventID, userID, creatorID string, tier entity.SubscriptionTier, amount float64, now time.Time) (bool, error) {
	var applied bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		claimed, err := markProcessed(tx, eventID, string(entity.PurposeSubscription))
		if err != nil || !claimed {
			return err
		}

		sub, err := applySubscription(tx, userID, creatorID, tier, now)
		if err != nil {
			return err
		}

		payment := &model.PaymentModel{
			UserID:         userID,
			RecipientID:    creatorID,
			SubscriptionID: sub.ID,
			Purpose:        string(entity.PurposeSubscription),
			Status:         string(entity.PaymentDone),
			Amount:         amount,
		}
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		applied = true
		return nil
	})
	return applied, err
}
