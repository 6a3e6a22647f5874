package usecase

import (
	"errors"

	"fanbase/internal/entity"
	"fanbase/internal/repo/persistent"
	"fanbase/pkg/logger"

	"gorm.io/gorm"
)

type WalletUseCase interface {
	Get(userID string) (*entity.Wallet, error)
	// Transfer moves wallet funds to a creator, mirroring the movement
	// to the creator's connected account when one exists.
	Transfer(userID, creatorID string, amount float64) (float64, error)
	Transactions(userID string, filter persistent.TransactionListFilter, page, limit int) ([]*entity.Transaction, int64, error)
}

type walletUseCase struct {
	walletRepo  persistent.WalletRepository
	userRepo    persistent.UserRepository
	paymentRepo persistent.PaymentRepository
	gateway     PaymentGateway
	log         *logger.Logger
}

func NewWalletUseCase(
	walletRepo persistent.WalletRepository,
	userRepo persistent.UserRepository,
	paymentRepo persistent.PaymentRepository,
	gateway PaymentGateway,
	log *logger.Logger,
) WalletUseCase {
	return &walletUseCase{
		walletRepo:  walletRepo,
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
		log:         log,
	}
}

func (uc *walletUseCase) Get(userID string) (*entity.Wallet, error) {
	return uc.walletRepo.GetOrCreate(userID)
}

func (uc *walletUseCase) Transfer(userID, creatorID string, amount float64) (float64, error) {
	if amount <= 0 || userID == creatorID {
		return 0, ErrInvalidInput
	}

	creator, err := uc.userRepo.GetByID(creatorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	balance, err := uc.walletRepo.Debit(userID, amount, "transfer:"+creatorID)
	if errors.Is(err, persistent.ErrInsufficientFunds) {
		return 0, ErrInsufficientFunds
	}
	if err != nil {
		return 0, err
	}

	if creator.StripeAccountID != "" {
		if _, err := uc.gateway.CreateTransfer(creator.StripeAccountID, toCents(amount), "usd"); err != nil {
			// Put the money back rather than leave it stranded.
			if _, crErr := uc.walletRepo.Credit(userID, amount, "transfer-reversal:"+creatorID); crErr != nil {
				uc.log.Error("Failed to reverse debit for %s after transfer failure: %v", userID, crErr)
			}
			return 0, err
		}
	}

	payment := &entity.Payment{
		UserID:      userID,
		RecipientID: creatorID,
		Purpose:     entity.PurposeTip,
		Status:      entity.PaymentDone,
		Amount:      amount,
	}
	if err := uc.paymentRepo.Create(payment); err != nil {
		uc.log.Error("Failed to record transfer payment: %v", err)
	}
	return balance, nil
}

func (uc *walletUseCase) Transactions(userID string, filter persistent.TransactionListFilter, page, limit int) ([]*entity.Transaction, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return uc.walletRepo.ListTransactions(userID, filter, limit, (page-1)*limit)
}
