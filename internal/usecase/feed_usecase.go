package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"fanbase/internal/entity"
	"fanbase/internal/repo/persistent"
	"fanbase/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const (
	feedCacheKey = "feed:recents:first"
	feedCacheTTL = 30 * time.Second
)

type FeedUseCase interface {
	GetFeed(ctx context.Context, viewerID string, filter entity.FeedFilter, page, limit int) (*entity.FeedPage, error)
	GetBookmarked(ctx context.Context, viewerID string, page, limit int) (*entity.FeedPage, error)
}

type feedUseCase struct {
	feedRepo  persistent.FeedRepository
	postRepo  persistent.PostRepository
	blockRepo persistent.BlockRepository
	subRepo   persistent.SubscriptionRepository
	prodRepo  persistent.ProductRepository
	redis     *redis.Client
	log       *logger.Logger
}

func NewFeedUseCase(
	feedRepo persistent.FeedRepository,
	postRepo persistent.PostRepository,
	blockRepo persistent.BlockRepository,
	subRepo persistent.SubscriptionRepository,
	prodRepo persistent.ProductRepository,
	redisClient *redis.Client,
	log *logger.Logger,
) FeedUseCase {
	return &feedUseCase{
		feedRepo:  feedRepo,
		postRepo:  postRepo,
		blockRepo: blockRepo,
		subRepo:   subRepo,
		prodRepo:  prodRepo,
		redis:     redisClient,
		log:       log,
	}
}

// exclusions holds the per-viewer visibility sets. Both are empty for
// anonymous viewers.
type exclusions struct {
	blockedIDs    []string
	notInterested []string
}

func (uc *feedUseCase) viewerExclusions(viewerID string) (exclusions, error) {
	if viewerID == "" {
		return exclusions{}, nil
	}

	blocked, err := uc.blockRepo.BlockedUserIDs(viewerID)
	if err != nil {
		return exclusions{}, err
	}
	notInterested, err := uc.postRepo.NotInterestedPostIDs(viewerID)
	if err != nil {
		return exclusions{}, err
	}
	return exclusions{blockedIDs: blocked, notInterested: notInterested}, nil
}

func (uc *feedUseCase) GetFeed(ctx context.Context, viewerID string, filter entity.FeedFilter, page, limit int) (*entity.FeedPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	switch filter {
	case entity.FeedRecents:
		return uc.recents(ctx, viewerID, nil, page, limit)
	case entity.FeedPopular:
		return uc.popular(ctx, viewerID, page, limit)
	case entity.FeedFollowing:
		return uc.following(ctx, viewerID, page, limit)
	default:
		return nil, ErrInvalidInput
	}
}

// recents composes active posts and products into one stream ordered
// by creation time. When onlyOwners is non-nil the stream is restricted
// to those owners (the Following mode).
func (uc *feedUseCase) recents(ctx context.Context, viewerID string, onlyOwners []string, page, limit int) (*entity.FeedPage, error) {
	cacheable := viewerID == "" && onlyOwners == nil && page == 1
	if cacheable && uc.redis != nil {
		if cached, err := uc.redis.Get(ctx, feedCacheKey).Result(); err == nil {
			var feedPage entity.FeedPage
			if json.Unmarshal([]byte(cached), &feedPage) == nil && feedPage.Limit == limit {
				return &feedPage, nil
			}
		}
	}

	excl, err := uc.viewerExclusions(viewerID)
	if err != nil {
		return nil, err
	}

	offset := (page - 1) * limit
	max := offset + limit

	posts, err := uc.feedRepo.RecentPosts(excl.blockedIDs, excl.notInterested, onlyOwners, max)
	if err != nil {
		return nil, err
	}
	products, err := uc.feedRepo.RecentProducts(excl.blockedIDs, onlyOwners, max)
	if err != nil {
		return nil, err
	}

	items := make([]entity.FeedItem, 0, len(posts)+len(products))
	for _, p := range posts {
		items = append(items, entity.FeedItem{Kind: entity.FeedItemPost, Post: p})
	}
	for _, p := range products {
		items = append(items, entity.FeedItem{Kind: entity.FeedItemProduct, Product: p})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return itemCreatedAt(items[i]).After(itemCreatedAt(items[j]))
	})

	if offset >= len(items) {
		items = nil
	} else if offset+limit < len(items) {
		items = items[offset : offset+limit]
	} else {
		items = items[offset:]
	}

	postCount, err := uc.feedRepo.CountActivePosts(excl.notInterested, onlyOwners)
	if err != nil {
		return nil, err
	}
	productCount, err := uc.feedRepo.CountProducts(onlyOwners)
	if err != nil {
		return nil, err
	}

	if err := uc.annotate(viewerID, items); err != nil {
		return nil, err
	}

	feedPage := &entity.FeedPage{
		Items: items,
		Total: postCount + productCount,
		Page:  page,
		Limit: limit,
	}

	if cacheable && uc.redis != nil {
		if data, err := json.Marshal(feedPage); err == nil {
			uc.redis.Set(ctx, feedCacheKey, data, feedCacheTTL)
		}
	}
	return feedPage, nil
}

func (uc *feedUseCase) popular(_ context.Context, viewerID string, page, limit int) (*entity.FeedPage, error) {
	excl, err := uc.viewerExclusions(viewerID)
	if err != nil {
		return nil, err
	}

	offset := (page - 1) * limit
	posts, err := uc.feedRepo.PopularPosts(excl.blockedIDs, excl.notInterested, limit, offset)
	if err != nil {
		return nil, err
	}

	items := make([]entity.FeedItem, len(posts))
	for i, p := range posts {
		items[i] = entity.FeedItem{Kind: entity.FeedItemPost, Post: p}
	}

	// The total intentionally ignores the not-interested set; only the
	// block list narrows it.
	total, err := uc.feedRepo.CountPopular(excl.blockedIDs)
	if err != nil {
		return nil, err
	}

	if err := uc.annotate(viewerID, items); err != nil {
		return nil, err
	}

	return &entity.FeedPage{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (uc *feedUseCase) following(ctx context.Context, viewerID string, page, limit int) (*entity.FeedPage, error) {
	if viewerID == "" {
		return &entity.FeedPage{Items: nil, Total: 0, Page: page, Limit: limit}, nil
	}

	creatorIDs, err := uc.subRepo.ActiveCreatorIDs(viewerID, time.Now())
	if err != nil {
		return nil, err
	}
	if len(creatorIDs) == 0 {
		return &entity.FeedPage{Items: nil, Total: 0, Page: page, Limit: limit}, nil
	}
	return uc.recents(ctx, viewerID, creatorIDs, page, limit)
}

func (uc *feedUseCase) GetBookmarked(_ context.Context, viewerID string, page, limit int) (*entity.FeedPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	postIDs, err := uc.feedRepo.BookmarkedIDs(viewerID, string(entity.FeedItemPost))
	if err != nil {
		return nil, err
	}
	productIDs, err := uc.feedRepo.BookmarkedIDs(viewerID, string(entity.FeedItemProduct))
	if err != nil {
		return nil, err
	}

	posts, err := uc.postRepo.GetByIDs(postIDs)
	if err != nil {
		return nil, err
	}
	products, err := uc.prodRepo.GetByIDs(productIDs)
	if err != nil {
		return nil, err
	}

	items := make([]entity.FeedItem, 0, len(posts)+len(products))
	for _, p := range posts {
		items = append(items, entity.FeedItem{Kind: entity.FeedItemPost, Post: p})
	}
	for _, p := range products {
		items = append(items, entity.FeedItem{Kind: entity.FeedItemProduct, Product: p})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return itemCreatedAt(items[i]).After(itemCreatedAt(items[j]))
	})

	total := int64(len(items))
	offset := (page - 1) * limit
	if offset >= len(items) {
		items = nil
	} else if offset+limit < len(items) {
		items = items[offset : offset+limit]
	} else {
		items = items[offset:]
	}

	if err := uc.annotate(viewerID, items); err != nil {
		return nil, err
	}
	return &entity.FeedPage{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// annotate fills the per-viewer engagement flags with batched
// membership lookups. Anonymous viewers keep every flag false.
func (uc *feedUseCase) annotate(viewerID string, items []entity.FeedItem) error {
	if viewerID == "" || len(items) == 0 {
		return nil
	}

	var postIDs, productIDs, ownerIDs []string
	for _, item := range items {
		switch item.Kind {
		case entity.FeedItemPost:
			postIDs = append(postIDs, item.Post.ID)
			ownerIDs = append(ownerIDs, item.Post.UserID)
		case entity.FeedItemProduct:
			productIDs = append(productIDs, item.Product.ID)
			ownerIDs = append(ownerIDs, item.Product.UserID)
		}
	}

	liked, err := uc.feedRepo.LikedPostIDs(viewerID, postIDs)
	if err != nil {
		return err
	}
	purchased, err := uc.feedRepo.PurchasedPostIDs(viewerID, postIDs)
	if err != nil {
		return err
	}
	bookmarkedPosts, err := uc.feedRepo.BookmarkedItemIDs(viewerID, postIDs, string(entity.FeedItemPost))
	if err != nil {
		return err
	}
	bookmarkedProducts, err := uc.feedRepo.BookmarkedItemIDs(viewerID, productIDs, string(entity.FeedItemProduct))
	if err != nil {
		return err
	}
	subscribed, err := uc.feedRepo.SubscribedOwnerIDs(viewerID, ownerIDs, time.Now())
	if err != nil {
		return err
	}

	for i := range items {
		switch items[i].Kind {
		case entity.FeedItemPost:
			id := items[i].Post.ID
			items[i].IsLiked = liked[id]
			items[i].IsPurchased = purchased[id]
			items[i].IsBookmarked = bookmarkedPosts[id]
			items[i].IsSubscribed = subscribed[items[i].Post.UserID]
		case entity.FeedItemProduct:
			items[i].IsBookmarked = bookmarkedProducts[items[i].Product.ID]
			items[i].IsSubscribed = subscribed[items[i].Product.UserID]
		}
	}
	return nil
}

func itemCreatedAt(item entity.FeedItem) time.Time {
	if item.Kind == entity.FeedItemPost {
		return item.Post.CreatedAt
	}
	return item.Product.CreatedAt
}
