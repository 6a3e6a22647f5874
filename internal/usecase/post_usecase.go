package usecase

import (
	"errors"
	"fmt"
	"io"
	"time"

	"fanbase/internal/entity"
	"fanbase/internal/repo/persistent"
	"fanbase/pkg/logger"
	"fanbase/pkg/queue"
	"fanbase/pkg/s3"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostUseCase interface {
	Create(post *entity.Post) (*entity.Post, error)
	GetByID(viewerID, id string) (*entity.FeedItem, error)
	List(filter persistent.PostListFilter, page, limit int) ([]*entity.Post, int64, error)
	Update(userID string, post *entity.Post) (*entity.Post, error)
	UpdateStatus(userID, postID string, status entity.PostStatus) error
	Delete(userID, postID string) error

	ToggleLike(userID, postID string) (bool, error)
	ToggleBookmark(userID, itemID string, kind entity.FeedItemKind) (bool, error)
	Purchase(userID, postID string) error
	Tip(userID, postID string, amount float64) error
	MarkNotInterested(userID, postID string) error
	UploadMedia(userID, filename string, file io.Reader, contentType string) (string, error)
}

type postUseCase struct {
	postRepo   persistent.PostRepository
	prodRepo   persistent.ProductRepository
	feedRepo   persistent.FeedRepository
	walletRepo persistent.WalletRepository
	payRepo    persistent.PaymentRepository
	s3Client   *s3.Client
	queue      *queue.Client
	log        *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	prodRepo persistent.ProductRepository,
	feedRepo persistent.FeedRepository,
	walletRepo persistent.WalletRepository,
	payRepo persistent.PaymentRepository,
	s3Client *s3.Client,
	queueClient *queue.Client,
	log *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:   postRepo,
		prodRepo:   prodRepo,
		feedRepo:   feedRepo,
		walletRepo: walletRepo,
		payRepo:    payRepo,
		s3Client:   s3Client,
		queue:      queueClient,
		log:        log,
	}
}

func (uc *postUseCase) Create(post *entity.Post) (*entity.Post, error) {
	if post.UserID == "" || post.Type == "" {
		return nil, ErrInvalidInput
	}
	if post.Status == "" {
		post.Status = entity.PostStatusActive
	}
	if post.AccessIdentifier == "" {
		post.AccessIdentifier = entity.AccessFree
	}
	if post.AccessIdentifier == entity.AccessPaid && post.Price <= 0 {
		return nil, ErrInvalidInput
	}

	if err := uc.postRepo.Create(post); err != nil {
		return nil, err
	}

	if uc.queue != nil {
		task := map[string]interface{}{
			"type":     "new_post",
			"post_id":  post.ID,
			"user_id":  post.UserID,
			"priority": 3,
		}
		if err := uc.queue.PublishNotificationTask(task); err != nil {
			uc.log.Warn("Failed to publish new post notification: %v", err)
		}
	}
	return post, nil
}

func (uc *postUseCase) GetByID(viewerID, id string) (*entity.FeedItem, error) {
	post, err := uc.postRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	item := &entity.FeedItem{Kind: entity.FeedItemPost, Post: post}
	if viewerID == "" {
		return item, nil
	}

	liked, err := uc.feedRepo.LikedPostIDs(viewerID, []string{id})
	if err != nil {
		return nil, err
	}
	purchased, err := uc.feedRepo.PurchasedPostIDs(viewerID, []string{id})
	if err != nil {
		return nil, err
	}
	bookmarked, err := uc.feedRepo.BookmarkedItemIDs(viewerID, []string{id}, string(entity.FeedItemPost))
	if err != nil {
		return nil, err
	}
	subscribed, err := uc.feedRepo.SubscribedOwnerIDs(viewerID, []string{post.UserID}, time.Now())
	if err != nil {
		return nil, err
	}

	item.IsLiked = liked[id]
	item.IsPurchased = purchased[id]
	item.IsBookmarked = bookmarked[id]
	item.IsSubscribed = subscribed[post.UserID]
	return item, nil
}

func (uc *postUseCase) List(filter persistent.PostListFilter, page, limit int) ([]*entity.Post, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return uc.postRepo.List(filter, limit, (page-1)*limit)
}

func (uc *postUseCase) Update(userID string, post *entity.Post) (*entity.Post, error) {
	existing, err := uc.postRepo.GetByID(post.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, ErrForbidden
	}

	existing.Title = post.Title
	existing.Description = post.Description
	existing.Price = post.Price
	existing.AccessIdentifier = post.AccessIdentifier
	if len(post.Images) > 0 {
		existing.Images = post.Images
	}
	if err := uc.postRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (uc *postUseCase) UpdateStatus(userID, postID string, status entity.PostStatus) error {
	if status != entity.PostStatusActive && status != entity.PostStatusInactive {
		return ErrInvalidInput
	}

	post, err := uc.postRepo.GetByID(postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return ErrForbidden
	}
	return uc.postRepo.UpdateStatus(postID, status)
}

func (uc *postUseCase) Delete(userID, postID string) error {
	post, err := uc.postRepo.GetByID(postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return ErrForbidden
	}
	return uc.postRepo.Delete(postID)
}

func (uc *postUseCase) ToggleLike(userID, postID string) (bool, error) {
	_, err := uc.postRepo.GetByID(postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, ErrNotFound
	}
	if err != nil {
		return false, err
	}
	return uc.postRepo.ToggleLike(postID, userID)
}

func (uc *postUseCase) ToggleBookmark(userID, itemID string, kind entity.FeedItemKind) (bool, error) {
	switch kind {
	case entity.FeedItemPost:
		if _, err := uc.postRepo.GetByID(itemID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, ErrNotFound
			}
			return false, err
		}
	case entity.FeedItemProduct:
		if _, err := uc.prodRepo.GetByID(itemID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, ErrNotFound
			}
			return false, err
		}
	default:
		return false, ErrInvalidInput
	}
	return uc.postRepo.ToggleBookmark(userID, itemID, string(kind))
}

// Purchase is the wallet-funded path to unlock a paid post.
func (uc *postUseCase) Purchase(userID, postID string) error {
	post, err := uc.postRepo.GetByID(postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if post.UserID == userID {
		return ErrForbidden
	}
	if post.AccessIdentifier != entity.AccessPaid || post.Price <= 0 {
		return ErrInvalidInput
	}

	purchased, err := uc.postRepo.HasPurchased(postID, userID)
	if err != nil {
		return err
	}
	if purchased {
		return ErrAlreadyPurchased
	}

	if _, err := uc.walletRepo.Debit(userID, post.Price, "purchase:"+postID); err != nil {
		if errors.Is(err, persistent.ErrInsufficientFunds) {
			return ErrInsufficientFunds
		}
		return err
	}

	added, err := uc.postRepo.AddPurchase(postID, userID)
	if err != nil {
		return err
	}
	if !added {
		// Raced with another purchase of the same post; refund.
		if _, crErr := uc.walletRepo.Credit(userID, post.Price, "purchase-reversal:"+postID); crErr != nil {
			uc.log.Error("Failed to reverse purchase debit for %s: %v", userID, crErr)
		}
		return ErrAlreadyPurchased
	}

	payment := &entity.Payment{
		UserID:      userID,
		RecipientID: post.UserID,
		PostID:      postID,
		Purpose:     entity.PurposePostPurchase,
		Status:      entity.PaymentDone,
		Amount:      post.Price,
	}
	return uc.payRepo.Create(payment)
}

func (uc *postUseCase) Tip(userID, postID string, amount float64) error {
	if amount <= 0 {
		return ErrInvalidInput
	}

	post, err := uc.postRepo.GetByID(postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if post.UserID == userID {
		return ErrForbidden
	}

	if _, err := uc.walletRepo.Debit(userID, amount, "tip:"+postID); err != nil {
		if errors.Is(err, persistent.ErrInsufficientFunds) {
			return ErrInsufficientFunds
		}
		return err
	}

	payment := &entity.Payment{
		UserID:      userID,
		RecipientID: post.UserID,
		PostID:      postID,
		Purpose:     entity.PurposeTip,
		Status:      entity.PaymentDone,
		Amount:      amount,
	}
	return uc.payRepo.Create(payment)
}

func (uc *postUseCase) MarkNotInterested(userID, postID string) error {
	if _, err := uc.postRepo.GetByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return uc.postRepo.MarkNotInterested(userID, postID)
}

func (uc *postUseCase) UploadMedia(userID, filename string, file io.Reader, contentType string) (string, error) {
	key := fmt.Sprintf("posts/%s/%s_%s", userID, uuid.New().String(), filename)
	url, err := uc.s3Client.UploadFile(key, file, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload media: %w", err)
	}
	return url, nil
}
