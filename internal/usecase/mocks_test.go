package usecase

import (
	"time"

	"fanbase/internal/entity"
	"fanbase/internal/repo/persistent"
	"fanbase/pkg/payments"

	"github.com/stripe/stripe-go/v76"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*entity.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateFields(id string, fields map[string]interface{}) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

func (m *MockUserRepository) Search(query string, excludedIDs []string, limit, offset int) ([]*entity.User, error) {
	args := m.Called(query, excludedIDs, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) List(limit, offset int) ([]*entity.User, int64, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) SetOTP(id, code string, expiresAt time.Time) error {
	args := m.Called(id, code, expiresAt)
	return args.Error(0)
}

func (m *MockUserRepository) GetOTP(id string) (string, time.Time, error) {
	args := m.Called(id)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockUserRepository) ClearOTP(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

// MockBlockRepository is a mock implementation of persistent.BlockRepository
type MockBlockRepository struct {
	mock.Mock
}

func (m *MockBlockRepository) CreateEdge(blockerID, blockedID string) (bool, error) {
	args := m.Called(blockerID, blockedID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBlockRepository) DeleteEdge(blockerID, blockedID string) (bool, error) {
	args := m.Called(blockerID, blockedID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBlockRepository) Exists(blockerID, blockedID string) (bool, error) {
	args := m.Called(blockerID, blockedID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBlockRepository) BlockedUserIDs(userID string) ([]string, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBlockRepository) ListBlockedUsers(blockerID string) ([]*entity.User, error) {
	args := m.Called(blockerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

var _ persistent.BlockRepository = (*MockBlockRepository)(nil)

// MockReportRepository is a mock implementation of persistent.ReportRepository
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(report *entity.Report) error {
	args := m.Called(report)
	return args.Error(0)
}

func (m *MockReportRepository) List(limit, offset int) ([]*entity.Report, int64, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Report), args.Get(1).(int64), args.Error(2)
}

func (m *MockReportRepository) CountByReported(reportedID string) (int64, error) {
	args := m.Called(reportedID)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.ReportRepository = (*MockReportRepository)(nil)

// MockPostRepository is a mock implementation of persistent.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(post *entity.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(id string) (*entity.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) GetByIDs(ids []string) ([]*entity.Post, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostRepository) List(filter persistent.PostListFilter, limit, offset int) ([]*entity.Post, int64, error) {
	args := m.Called(filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockPostRepository) Update(post *entity.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) UpdateStatus(id string, status entity.PostStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPostRepository) CountByUser(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) ToggleLike(postID, userID string) (bool, error) {
	args := m.Called(postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) ToggleBookmark(userID, itemID, itemKind string) (bool, error) {
	args := m.Called(userID, itemID, itemKind)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) AddPurchase(postID, userID string) (bool, error) {
	args := m.Called(postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) HasPurchased(postID, userID string) (bool, error) {
	args := m.Called(postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) MarkNotInterested(userID, postID string) error {
	args := m.Called(userID, postID)
	return args.Error(0)
}

func (m *MockPostRepository) NotInterestedPostIDs(userID string) ([]string, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ persistent.PostRepository = (*MockPostRepository)(nil)

// MockProductRepository is a mock implementation of persistent.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(product *entity.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(id string) (*entity.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) GetByIDs(ids []string) ([]*entity.Product, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *MockProductRepository) List(filter persistent.ProductListFilter, limit, offset int) ([]*entity.Product, int64, error) {
	args := m.Called(filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) Update(product *entity.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProductRepository) DecrementStock(id string, quantity int) (bool, error) {
	args := m.Called(id, quantity)
	return args.Bool(0), args.Error(1)
}

var _ persistent.ProductRepository = (*MockProductRepository)(nil)

// MockOrderRepository is a mock implementation of persistent.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(order *entity.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(id string) (*entity.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByBuyer(buyerID string, limit, offset int) ([]*entity.Order, int64, error) {
	args := m.Called(buyerID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) ListBySeller(sellerID string, limit, offset int) ([]*entity.Order, int64, error) {
	args := m.Called(sellerID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) UpdateStatus(id string, status entity.OrderStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

var _ persistent.OrderRepository = (*MockOrderRepository)(nil)

// MockFeedRepository is a mock implementation of persistent.FeedRepository
type MockFeedRepository struct {
	mock.Mock
}

func (m *MockFeedRepository) RecentPosts(excludedOwners, notInterested, onlyOwners []string, max int) ([]*entity.Post, error) {
	args := m.Called(excludedOwners, notInterested, onlyOwners, max)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockFeedRepository) RecentProducts(excludedOwners, onlyOwners []string, max int) ([]*entity.Product, error) {
	args := m.Called(excludedOwners, onlyOwners, max)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *MockFeedRepository) PopularPosts(excludedOwners, notInterested []string, limit, offset int) ([]*entity.Post, error) {
	args := m.Called(excludedOwners, notInterested, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockFeedRepository) CountActivePosts(notInterested, onlyOwners []string) (int64, error) {
	args := m.Called(notInterested, onlyOwners)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFeedRepository) CountProducts(onlyOwners []string) (int64, error) {
	args := m.Called(onlyOwners)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFeedRepository) CountPopular(excludedOwners []string) (int64, error) {
	args := m.Called(excludedOwners)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFeedRepository) LikedPostIDs(userID string, postIDs []string) (map[string]bool, error) {
	args := m.Called(userID, postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockFeedRepository) BookmarkedItemIDs(userID string, itemIDs []string, kind string) (map[string]bool, error) {
	args := m.Called(userID, itemIDs, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockFeedRepository) PurchasedPostIDs(userID string, postIDs []string) (map[string]bool, error) {
	args := m.Called(userID, postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockFeedRepository) SubscribedOwnerIDs(userID string, ownerIDs []string, now time.Time) (map[string]bool, error) {
	args := m.Called(userID, ownerIDs, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockFeedRepository) BookmarkedIDs(userID, kind string) ([]string, error) {
	args := m.Called(userID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ persistent.FeedRepository = (*MockFeedRepository)(nil)

// MockSubscriptionRepository is a mock implementation of persistent.SubscriptionRepository
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) GetEdge(userID, creatorID string) (*entity.Subscription, error) {
	args := m.Called(userID, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) Subscribe(userID, creatorID string, tier entity.SubscriptionTier, price float64, now time.Time) (*entity.Subscription, error) {
	args := m.Called(userID, creatorID, tier, price, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) Cancel(userID, creatorID string, now time.Time) error {
	args := m.Called(userID, creatorID, now)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) ListByUser(userID string, status string, limit, offset int) ([]*entity.Subscription, int64, error) {
	args := m.Called(userID, status, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Subscription), args.Get(1).(int64), args.Error(2)
}

func (m *MockSubscriptionRepository) ActiveCreatorIDs(userID string, now time.Time) ([]string, error) {
	args := m.Called(userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSubscriptionRepository) IsActivelySubscribed(userID, creatorID string, now time.Time) (bool, error) {
	args := m.Called(userID, creatorID, now)
	return args.Bool(0), args.Error(1)
}

var _ persistent.SubscriptionRepository = (*MockSubscriptionRepository)(nil)

// MockWalletRepository is a mock implementation of persistent.WalletRepository
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) GetOrCreate(userID string) (*entity.Wallet, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Wallet), args.Error(1)
}

func (m *MockWalletRepository) Credit(userID string, amount float64, reference string) (float64, error) {
	args := m.Called(userID, amount, reference)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockWalletRepository) Debit(userID string, amount float64, reference string) (float64, error) {
	args := m.Called(userID, amount, reference)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockWalletRepository) ListTransactions(userID string, filter persistent.TransactionListFilter, limit, offset int) ([]*entity.Transaction, int64, error) {
	args := m.Called(userID, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Transaction), args.Get(1).(int64), args.Error(2)
}

var _ persistent.WalletRepository = (*MockWalletRepository)(nil)

// MockPaymentRepository is a mock implementation of persistent.PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(payment *entity.Payment) error {
	args := m.Called(payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) ListByUser(userID string, filter persistent.PaymentListFilter, limit, offset int) ([]*entity.Payment, int64, error) {
	args := m.Called(userID, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Payment), args.Get(1).(int64), args.Error(2)
}

func (m *MockPaymentRepository) ListEarnings(recipientID string, limit, offset int) ([]*entity.Payment, int64, error) {
	args := m.Called(recipientID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Payment), args.Get(1).(int64), args.Error(2)
}

func (m *MockPaymentRepository) SumEarnings(recipientID string) (float64, error) {
	args := m.Called(recipientID)
	return args.Get(0).(float64), args.Error(1)
}

var _ persistent.PaymentRepository = (*MockPaymentRepository)(nil)

// MockWebhookRepository is a mock implementation of persistent.WebhookRepository
type MockWebhookRepository struct {
	mock.Mock
}

func (m *MockWebhookRepository) ApplyDeposit(eventID, userID string, amount float64) (bool, error) {
	args := m.Called(eventID, userID, amount)
	return args.Bool(0), args.Error(1)
}

func (m *MockWebhookRepository) ApplyPostPurchase(eventID, userID, postID, ownerID string, amount float64) (bool, error) {
	args := m.Called(eventID, userID, postID, ownerID, amount)
	return args.Bool(0), args.Error(1)
}

func (m *MockWebhookRepository) ApplySubscription(eventID, userID, creatorID string, tier entity.SubscriptionTier, amount float64, now time.Time) (bool, error) {
	args := m.Called(eventID, userID, creatorID, tier, amount, now)
	return args.Bool(0), args.Error(1)
}

var _ persistent.WebhookRepository = (*MockWebhookRepository)(nil)

// MockWebhookVerifier is a mock implementation of WebhookVerifier
type MockWebhookVerifier struct {
	mock.Mock
}

func (m *MockWebhookVerifier) VerifyWebhook(payload []byte, sigHeader string) (stripe.Event, error) {
	args := m.Called(payload, sigHeader)
	return args.Get(0).(stripe.Event), args.Error(1)
}

var _ WebhookVerifier = (*MockWebhookVerifier)(nil)

// MockMailSender is a mock implementation of MailSender
type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) SendOTP(to, code string) error {
	args := m.Called(to, code)
	return args.Error(0)
}

var _ MailSender = (*MockMailSender)(nil)

// MockPaymentGateway is a mock implementation of PaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateCheckoutSession(p payments.CheckoutParams) (*payments.CheckoutSession, error) {
	args := m.Called(p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.CheckoutSession), args.Error(1)
}

func (m *MockPaymentGateway) CreateAccount(email string) (string, error) {
	args := m.Called(email)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentGateway) CreateAccountLink(accountID, refreshURL, returnURL string) (string, error) {
	args := m.Called(accountID, refreshURL, returnURL)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentGateway) GetBalance(accountID string) (*payments.AccountBalance, error) {
	args := m.Called(accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.AccountBalance), args.Error(1)
}

func (m *MockPaymentGateway) CreatePayout(accountID string, amount int64, currency string) (*payments.Payout, error) {
	args := m.Called(accountID, amount, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.Payout), args.Error(1)
}

func (m *MockPaymentGateway) ListPayouts(accountID string, limit int64) ([]payments.Payout, error) {
	args := m.Called(accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]payments.Payout), args.Error(1)
}

func (m *MockPaymentGateway) CancelPayout(accountID, payoutID string) error {
	args := m.Called(accountID, payoutID)
	return args.Error(0)
}

func (m *MockPaymentGateway) CreateTransfer(destinationAccount string, amount int64, currency string) (string, error) {
	args := m.Called(destinationAccount, amount, currency)
	return args.String(0), args.Error(1)
}

var _ PaymentGateway = (*MockPaymentGateway)(nil)
