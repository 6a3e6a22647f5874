package persistent

import (
	"errors"
	"time"

	"fanbase/internal/entity"
	"fanbase/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInsufficientFunds = errors.New("insufficient wallet balance")

type TransactionListFilter struct {
	Type string
	From *time.Time
	To   *time.Time
}

type WalletRepository interface {
	GetOrCreate(userID string) (*entity.Wallet, error)
	// Credit upserts the wallet and atomically adds the amount,
	// recording a completed deposit transaction. Returns the new
	// balance.
	Credit(userID string, amount float64, reference string) (float64, error)
	// Debit withdraws only when the balance covers the amount and
	// records a completed payment transaction.
	Debit(userID string, amount float64, reference string) (float64, error)
	ListTransactions(userID string, filter TransactionListFilter, limit, offset int) ([]*entity.Transaction, int64, error)
}

type walletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) GetOrCreate(userID string) (*entity.Wallet, error) {
	var m model.WalletModel
	err := r.db.Where("user_id = ?", userID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		m = model.WalletModel{UserID: userID}
		if err := r.db.Create(&m).Error; err != nil {
			return nil, err
		}
		return ToWalletEntity(&m), nil
	}
	if err != nil {
		return nil, err
	}
	return ToWalletEntity(&m), nil
}

func (r *walletRepository) Credit(userID string, amount float64, reference string) (float64, error) {
	var balance float64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return creditWallet(tx, userID, amount, reference, &balance)
	})
	return balance, err
}

// creditWallet runs the upsert-increment inside the caller's
// transaction so webhook reconciliation can bundle it with the
// processed-event insert.
func creditWallet(tx *gorm.DB, userID string, amount float64, reference string, balance *float64) error {
	err := tx.Raw(`
		INSERT INTO wallets (id, user_id, balance, created_at, updated_at)
		VALUES (?, ?, ?, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET balance = wallets.balance + EXCLUDED.balance, updated_at = NOW()
		RETURNING balance`,
		uuid.New().String(), userID, amount).Scan(balance).Error
	if err != nil {
		return err
	}

	txn := &model.TransactionModel{
		UserID:        userID,
		Type:          string(entity.TransactionDeposit),
		Status:        string(entity.TransactionCompleted),
		Amount:        amount,
		BalanceBefore: *balance - amount,
		BalanceAfter:  *balance,
		Reference:     reference,
	}
	return tx.Create(txn).Error
}

func (r *walletRepository) Debit(userID string, amount float64, reference string) (float64, error) {
	var balance float64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Raw(`
			UPDATE wallets
			SET balance = balance - ?, updated_at = NOW()
			WHERE user_id = ? AND balance >= ?
			RETURNING balance`,
			amount, userID, amount).Scan(&balance)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientFunds
		}

		txn := &model.TransactionModel{
			UserID:        userID,
			Type:          string(entity.TransactionPayment),
			Status:        string(entity.TransactionCompleted),
			Amount:        amount,
			BalanceBefore: balance + amount,
			BalanceAfter:  balance,
			Reference:     reference,
		}
		return tx.Create(txn).Error
	})
	return balance, err
}

func (r *walletRepository) ListTransactions(userID string, filter TransactionListFilter, limit, offset int) ([]*entity.Transaction, int64, error) {
	q := r.db.Model(&model.TransactionModel{}).Where("user_id = ?", userID)
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
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

	var ms []model.TransactionModel
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	txns := make([]*entity.Transaction, len(ms))
	for i := range ms {
		txns[i] = ToTransactionEntity(&ms[i])
	}
	return txns, total, nil
}
