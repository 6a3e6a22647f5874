package usecase

import (
	"errors"
	"fmt"
	"strconv"

	"fanbase/internal/entity"
	"fanbase/internal/repo/persistent"
	"fanbase/pkg/logger"
	"fanbase/pkg/payments"

	"gorm.io/gorm"
)

// platformFeePercent is the application fee taken on creator-bound
// checkouts.
const platformFeePercent = 10

// PaymentGateway is the slice of the payment-processor client the
// usecases need. Satisfied by *payments.Client.
type PaymentGateway interface {
	CreateCheckoutSession(p payments.CheckoutParams) (*payments.CheckoutSession, error)
	CreateAccount(email string) (string, error)
	CreateAccountLink(accountID, refreshURL, returnURL string) (string, error)
	GetBalance(accountID string) (*payments.AccountBalance, error)
	CreatePayout(accountID string, amount int64, currency string) (*payments.Payout, error)
	ListPayouts(accountID string, limit int64) ([]payments.Payout, error)
	CancelPayout(accountID, payoutID string) error
	CreateTransfer(destinationAccount string, amount int64, currency string) (string, error)
}

type PaymentUseCase interface {
	CreatePurchaseSession(userID, postID string) (*payments.CheckoutSession, error)
	CreateSubscriptionSession(userID, creatorID string, tier entity.SubscriptionTier) (*payments.CheckoutSession, error)
	CreateDepositSession(userID string, amount float64) (*payments.CheckoutSession, error)

	ConnectAccount(userID string) (string, error)
	Balance(userID string) (*payments.AccountBalance, error)
	CreatePayout(userID string, amount float64) (*payments.Payout, error)
	ListPayouts(userID string) ([]payments.Payout, error)
	CancelPayout(userID, payoutID string) error

	History(userID string, filter persistent.PaymentListFilter, page, limit int) ([]*entity.Payment, int64, error)
	Earnings(userID string, page, limit int) ([]*entity.Payment, float64, int64, error)
}

type paymentUseCase struct {
	gateway     PaymentGateway
	userRepo    persistent.UserRepository
	postRepo    persistent.PostRepository
	subRepo     persistent.SubscriptionRepository
	paymentRepo persistent.PaymentRepository
	clientURL   string
	log         *logger.Logger
}

func NewPaymentUseCase(
	gateway PaymentGateway,
	userRepo persistent.UserRepository,
	postRepo persistent.PostRepository,
	subRepo persistent.SubscriptionRepository,
	paymentRepo persistent.PaymentRepository,
	clientURL string,
	log *logger.Logger,
) PaymentUseCase {
	return &paymentUseCase{
		gateway:     gateway,
		userRepo:    userRepo,
		postRepo:    postRepo,
		subRepo:     subRepo,
		paymentRepo: paymentRepo,
		clientURL:   clientURL,
		log:         log,
	}
}

func toCents(amount float64) int64 {
	return int64(amount*100 + 0.5)
}

func (uc *paymentUseCase) CreatePurchaseSession(userID, postID string) (*payments.CheckoutSession, error) {
	post, err := uc.postRepo.GetByID(postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if post.UserID == userID {
		return nil, ErrForbidden
	}
	if post.AccessIdentifier != entity.AccessPaid || post.Price <= 0 {
		return nil, ErrInvalidInput
	}

	purchased, err := uc.postRepo.HasPurchased(postID, userID)
	if err != nil {
		return nil, err
	}
	if purchased {
		return nil, ErrAlreadyPurchased
	}

	owner, err := uc.userRepo.GetByID(post.UserID)
	if err != nil {
		return nil, err
	}

	params := payments.CheckoutParams{
		Amount:      toCents(post.Price),
		Currency:    "usd",
		ProductName: post.Title,
		Metadata: map[string]string{
			"userId":      userID,
			"postId":      postID,
			"paymentType": string(entity.PurposePostPurchase),
			"amount":      strconv.FormatFloat(post.Price, 'f', 2, 64),
		},
		SuccessURL:         uc.clientURL + "/payments/success",
		CancelURL:          uc.clientURL + "/payments/cancel",
		DestinationAccount: owner.StripeAccountID,
	}
	if owner.StripeAccountID != "" {
		params.ApplicationFee = params.Amount * platformFeePercent / 100
	}
	return uc.gateway.CreateCheckoutSession(params)
}

func (uc *paymentUseCase) CreateSubscriptionSession(userID, creatorID string, tier entity.SubscriptionTier) (*payments.CheckoutSession, error) {
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

	edge, err := uc.subRepo.GetEdge(userID, creatorID)
	if err != nil {
		return nil, err
	}
	if edge != nil && edge.Status == entity.SubscriptionActive && !edge.Expired(timeNow()) {
		return nil, ErrAlreadySubscribed
	}

	price := creator.MonthlyPrice
	if tier == entity.TierYearly {
		price = creator.YearlyPrice
	}

	params := payments.CheckoutParams{
		Amount:      toCents(price),
		Currency:    "usd",
		ProductName: fmt.Sprintf("%s subscription to %s", tier, creator.Username),
		Metadata: map[string]string{
			"userId":           userID,
			"creatorId":        creatorID,
			"subscriptionType": string(tier),
			"paymentType":      string(entity.PurposeSubscription),
			"amount":           strconv.FormatFloat(price, 'f', 2, 64),
		},
		SuccessURL:         uc.clientURL + "/payments/success",
		CancelURL:          uc.clientURL + "/payments/cancel",
		DestinationAccount: creator.StripeAccountID,
	}
	if creator.StripeAccountID != "" {
		params.ApplicationFee = params.Amount * platformFeePercent / 100
	}
	return uc.gateway.CreateCheckoutSession(params)
}

func (uc *paymentUseCase) CreateDepositSession(userID string, amount float64) (*payments.CheckoutSession, error) {
	if amount <= 0 {
		return nil, ErrInvalidInput
	}

	params := payments.CheckoutParams{
		Amount:      toCents(amount),
		Currency:    "usd",
		ProductName: "Wallet deposit",
		Metadata: map[string]string{
			"userId":      userID,
			"paymentType": string(entity.PurposeWalletDeposit),
			"amount":      strconv.FormatFloat(amount, 'f', 2, 64),
		},
		SuccessURL: uc.clientURL + "/wallet/success",
		CancelURL:  uc.clientURL + "/wallet/cancel",
	}
	return uc.gateway.CreateCheckoutSession(params)
}

// ConnectAccount creates the connected account on first call and
// returns a fresh onboarding link either way.
func (uc *paymentUseCase) ConnectAccount(userID string) (string, error) {
	user, err := uc.userRepo.GetByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}

	accountID := user.StripeAccountID
	if accountID == "" {
		accountID, err = uc.gateway.CreateAccount(user.Email)
		if err != nil {
			return "", err
		}
		if err := uc.userRepo.UpdateFields(userID, map[string]interface{}{"stripe_account_id": accountID}); err != nil {
			return "", err
		}
	}

	return uc.gateway.CreateAccountLink(accountID,
		uc.clientURL+"/payouts/refresh",
		uc.clientURL+"/payouts/return")
}

func (uc *paymentUseCase) accountID(userID string) (string, error) {
	user, err := uc.userRepo.GetByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	if user.StripeAccountID == "" {
		return "", ErrNoStripeAccount
	}
	return user.StripeAccountID, nil
}

func (uc *paymentUseCase) Balance(userID string) (*payments.AccountBalance, error) {
	accountID, err := uc.accountID(userID)
	if err != nil {
		return nil, err
	}
	return uc.gateway.GetBalance(accountID)
}

func (uc *paymentUseCase) CreatePayout(userID string, amount float64) (*payments.Payout, error) {
	if amount <= 0 {
		return nil, ErrInvalidInput
	}
	accountID, err := uc.accountID(userID)
	if err != nil {
		return nil, err
	}
	return uc.gateway.CreatePayout(accountID, toCents(amount), "usd")
}

func (uc *paymentUseCase) ListPayouts(userID string) ([]payments.Payout, error) {
	accountID, err := uc.accountID(userID)
	if err != nil {
		return nil, err
	}
	return uc.gateway.ListPayouts(accountID, 50)
}

func (uc *paymentUseCase) CancelPayout(userID, payoutID string) error {
	accountID, err := uc.accountID(userID)
	if err != nil {
		return err
	}
	return uc.gateway.CancelPayout(accountID, payoutID)
}

func (uc *paymentUseCase) History(userID string, filter persistent.PaymentListFilter, page, limit int) ([]*entity.Payment, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return uc.paymentRepo.ListByUser(userID, filter, limit, (page-1)*limit)
}

func (uc *paymentUseCase) Earnings(userID string, page, limit int) ([]*entity.Payment, float64, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	earnings, total, err := uc.paymentRepo.ListEarnings(userID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, 0, err
	}
	sum, err := uc.paymentRepo.SumEarnings(userID)
	if err != nil {
		return nil, 0, 0, err
	}
	return earnings, sum, total, nil
}
