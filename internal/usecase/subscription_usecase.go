package usecase

import (
	"errors"
	"time"

	"fanbase/internal/entity"
	"fanbase/internal/repo/persistent"
	"fanbase/pkg/logger"
	"fanbase/pkg/queue"

	"gorm.io/gorm"
)

type SubscriptionUseCase interface {
	Subscribe(userID, creatorID string, tier entity.SubscriptionTier) (*entity.Subscription, error)
	Cancel(userID, creatorID string) error
	List(userID string, status string, page, limit int) ([]*entity.Subscription, int64, error)
	Status(userID, creatorID string) (*entity.Subscription, error)
}

type subscriptionUseCase struct {
	subRepo  persistent.SubscriptionRepository
	userRepo persistent.UserRepository
	queue    *queue.Client
	log      *logger.Logger
	now      func() time.Time
}

func NewSubscriptionUseCase(
	subRepo persistent.SubscriptionRepository,
	userRepo persistent.UserRepository,
	queueClient *queue.Client,
	log *logger.Logger,
) SubscriptionUseCase {
	return &subscriptionUseCase{
		subRepo:  subRepo,
		userRepo: userRepo,
		queue:    queueClient,
		log:      log,
		now:      time.Now,
	}
}

func (uc *subscriptionUseCase) Subscribe(userID, creatorID string, tier entity.SubscriptionTier) (*entity.Subscription, error) {
	if userID == creatorID {
		return nil, ErrInvalidInput
	}
	if tier != entity.TierMonthly && tier != entity.TierYearly {
		return nil, ErrInvalidInput
	}

	creator, err := uc.userRepo.GetByID(creatorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !creator.IsCreator {
		return nil, ErrForbidden
	}

	price := creator.MonthlyPrice
	if tier == entity.TierYearly {
		price = creator.YearlyPrice
	}

	sub, err := uc.subRepo.Subscribe(userID, creatorID, tier, price, uc.now())
	if errors.Is(err, persistent.ErrActiveSubscription) {
		return nil, ErrAlreadySubscribed
	}
	if err != nil {
		return nil, err
	}

	if uc.queue != nil {
		task := map[string]interface{}{
			"type":       "new_subscriber",
			"creator_id": creatorID,
			"user_id":    userID,
			"priority":   5,
		}
		if err := uc.queue.PublishNotificationTask(task); err != nil {
			uc.log.Warn("Failed to publish subscription notification: %v", err)
		}
	}
	return sub, nil
}

func (uc *subscriptionUseCase) Cancel(userID, creatorID string) error {
	err := uc.subRepo.Cancel(userID, creatorID, uc.now())
	if errors.Is(err, persistent.ErrNoActiveSubscription) {
		return ErrNotSubscribed
	}
	return err
}

func (uc *subscriptionUseCase) List(userID string, status string, page, limit int) ([]*entity.Subscription, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return uc.subRepo.ListByUser(userID, status, limit, (page-1)*limit)
}

func (uc *subscriptionUseCase) Status(userID, creatorID string) (*entity.Subscription, error) {
	sub, err := uc.subRepo.GetEdge(userID, creatorID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrNotFound
	}
	return sub, nil
}
