package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"fanbase/internal/entity"
	"fanbase/internal/repo/persistent"
	"fanbase/pkg/logger"

	"github.com/stripe/stripe-go/v76"
	"gorm.io/gorm"
)

// WebhookVerifier checks the event signature against the shared secret
// before anything is parsed or applied.
type WebhookVerifier interface {
	VerifyWebhook(payload []byte, sigHeader string) (stripe.Event, error)
}

type WebhookUseCase interface {
	HandleEvent(payload []byte, sigHeader string) error
}

type webhookUseCase struct {
	verifier    WebhookVerifier
	webhookRepo persistent.WebhookRepository
	postRepo    persistent.PostRepository
	log         *logger.Logger
	now         func() time.Time
}

func NewWebhookUseCase(
	verifier WebhookVerifier,
	webhookRepo persistent.WebhookRepository,
	postRepo persistent.PostRepository,
	log *logger.Logger,
) WebhookUseCase {
	return &webhookUseCase{
		verifier:    verifier,
		webhookRepo: webhookRepo,
		postRepo:    postRepo,
		log:         log,
		now:         time.Now,
	}
}

type checkoutSession struct {
	ID          string            `json:"id"`
	AmountTotal int64             `json:"amount_total"`
	Metadata    map[string]string `json:"metadata"`
}

func (uc *webhookUseCase) HandleEvent(payload []byte, sigHeader string) error {
	event, err := uc.verifier.VerifyWebhook(payload, sigHeader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if event.Type != "checkout.session.completed" {
		return nil
	}

	var session checkoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return fmt.Errorf("%w: malformed session payload: %v", ErrInvalidInput, err)
	}

	userID := session.Metadata["userId"]
	purpose := session.Metadata["paymentType"]
	if userID == "" || purpose == "" {
		return fmt.Errorf("%w: missing userId or paymentType metadata", ErrInvalidInput)
	}

	amount := float64(session.AmountTotal) / 100
	if raw := session.Metadata["amount"]; raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			amount = parsed
		}
	}

	switch entity.PaymentPurpose(purpose) {
	case entity.PurposeWalletDeposit:
		applied, err := uc.webhookRepo.ApplyDeposit(event.ID, userID, amount)
		if err != nil {
			return err
		}
		if !applied {
			uc.log.Info("Skipping replayed deposit event %s", event.ID)
		}
		return nil

	case entity.PurposePostPurchase:
		postID := session.Metadata["postId"]
		if postID == "" {
			return fmt.Errorf("%w: missing postId metadata", ErrInvalidInput)
		}
		post, err := uc.postRepo.GetByID(postID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: unknown post %s", ErrInvalidInput, postID)
		}
		if err != nil {
			return err
		}

		applied, err := uc.webhookRepo.ApplyPostPurchase(event.ID, userID, postID, post.UserID, amount)
		if err != nil {
			return err
		}
		if !applied {
			uc.log.Info("Skipping replayed purchase event %s", event.ID)
		}
		return nil

	case entity.PurposeSubscription:
		creatorID := session.Metadata["creatorId"]
		tier := entity.SubscriptionTier(session.Metadata["subscriptionType"])
		if creatorID == "" || (tier != entity.TierMonthly && tier != entity.TierYearly) {
			return fmt.Errorf("%w: missing creatorId or subscriptionType metadata", ErrInvalidInput)
		}

		applied, err := uc.webhookRepo.ApplySubscription(event.ID, userID, creatorID, tier, amount, uc.now())
		if errors.Is(err, persistent.ErrActiveSubscription) {
			// Paid while already active; nothing to re-apply.
			uc.log.Warn("Subscription event %s for an already-active edge", event.ID)
			return nil
		}
		if err != nil {
			return err
		}
		if !applied {
			uc.log.Info("Skipping replayed subscription event %s", event.ID)
		}
		return nil

	default:
		return fmt.Errorf("%w: unknown paymentType %q", ErrInvalidInput, purpose)
	}
}
