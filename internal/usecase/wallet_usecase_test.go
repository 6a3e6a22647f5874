package usecase

import (
	"errors"
	"testing"

	"fanbase/internal/entity"
	"fanbase/internal/repo/persistent"
	"fanbase/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type walletMocks struct {
	walletRepo *MockWalletRepository
	userRepo   *MockUserRepository
	payRepo    *MockPaymentRepository
	gateway    *MockPaymentGateway
}

func newWalletUseCase() (WalletUseCase, walletMocks) {
	m := walletMocks{
		walletRepo: new(MockWalletRepository),
		userRepo:   new(MockUserRepository),
		payRepo:    new(MockPaymentRepository),
		gateway:    new(MockPaymentGateway),
	}
	uc := NewWalletUseCase(m.walletRepo, m.userRepo, m.payRepo, m.gateway, logger.New())
	return uc, m
}

func TestTransfer_InvalidAmount(t *testing.T) {
	uc, m := newWalletUseCase()

	_, err := uc.Transfer("user-1", "creator-1", 0)

	assert.ErrorIs(t, err, ErrInvalidInput)
	m.walletRepo.AssertNotCalled(t, "Debit")
}

func TestTransfer_SelfTransfer(t *testing.T) {
	uc, m := newWalletUseCase()

	_, err := uc.Transfer("user-1", "user-1", 10)

	assert.ErrorIs(t, err, ErrInvalidInput)
	m.walletRepo.AssertNotCalled(t, "Debit")
}

func TestTransfer_InsufficientFunds(t *testing.T) {
	uc, m := newWalletUseCase()

	m.userRepo.On("GetByID", "creator-1").Return(&entity.User{ID: "creator-1"}, nil)
	m.walletRepo.On("Debit", "user-1", 10.0, "transfer:creator-1").
		Return(0.0, persistent.ErrInsufficientFunds)

	_, err := uc.Transfer("user-1", "creator-1", 10)

	assert.ErrorIs(t, err, ErrInsufficientFunds)
	m.payRepo.AssertNotCalled(t, "Create")
}

func TestTransfer_WithoutConnectedAccount(t *testing.T) {
	uc, m := newWalletUseCase()

	m.userRepo.On("GetByID", "creator-1").Return(&entity.User{ID: "creator-1"}, nil)
	m.walletRepo.On("Debit", "user-1", 10.0, "transfer:creator-1").Return(90.0, nil)
	m.payRepo.On("Create", mock.MatchedBy(func(p *entity.Payment) bool {
		return p.RecipientID == "creator-1" && p.Amount == 10.0 && p.Status == entity.PaymentDone
	})).Return(nil)

	balance, err := uc.Transfer("user-1", "creator-1", 10)

	assert.NoError(t, err)
	assert.Equal(t, 90.0, balance)
	m.gateway.AssertNotCalled(t, "CreateTransfer")
	m.payRepo.AssertExpectations(t)
}

func TestTransfer_MirrorsToConnectedAccount(t *testing.T) {
	uc, m := newWalletUseCase()

	creator := &entity.User{ID: "creator-1", StripeAccountID: "acct_1"}
	m.userRepo.On("GetByID", "creator-1").Return(creator, nil)
	m.walletRepo.On("Debit", "user-1", 10.0, "transfer:creator-1").Return(90.0, nil)
	m.gateway.On("CreateTransfer", "acct_1", int64(1000), "usd").Return("tr_1", nil)
	m.payRepo.On("Create", mock.AnythingOfType("*entity.Payment")).Return(nil)

	balance, err := uc.Transfer("user-1", "creator-1", 10)

	assert.NoError(t, err)
	assert.Equal(t, 90.0, balance)
	m.gateway.AssertExpectations(t)
}

func TestTransfer_GatewayFailureReversesDebit(t *testing.T) {
	uc, m := newWalletUseCase()

	creator := &entity.User{ID: "creator-1", StripeAccountID: "acct_1"}
	m.userRepo.On("GetByID", "creator-1").Return(creator, nil)
	m.walletRepo.On("Debit", "user-1", 10.0, "transfer:creator-1").Return(90.0, nil)
	m.gateway.On("CreateTransfer", "acct_1", int64(1000), "usd").
		Return("", errors.New("transfer declined"))
	m.walletRepo.On("Credit", "user-1", 10.0, "transfer-reversal:creator-1").Return(100.0, nil)

	_, err := uc.Transfer("user-1", "creator-1", 10)

	assert.Error(t, err)
	m.walletRepo.AssertExpectations(t)
	m.payRepo.AssertNotCalled(t, "Create")
}

func TestGetWallet(t *testing.T) {
	uc, m := newWalletUseCase()

	m.walletRepo.On("GetOrCreate", "user-1").
		Return(&entity.Wallet{ID: "wallet-1", UserID: "user-1", Balance: 42}, nil)

	wallet, err := uc.Get("user-1")

	assert.NoError(t, err)
	assert.Equal(t, 42.0, wallet.Balance)
}
