package usecase

import (
	"context"
	"testing"
	"time"

	"fanbase/internal/entity"
	"fanbase/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type feedMocks struct {
	feedRepo  *MockFeedRepository
	postRepo  *MockPostRepository
	blockRepo *MockBlockRepository
	subRepo   *MockSubscriptionRepository
	prodRepo  *MockProductRepository
}

func newFeedUseCase() (FeedUseCase, feedMocks) {
	m := feedMocks{
		feedRepo:  new(MockFeedRepository),
		postRepo:  new(MockPostRepository),
		blockRepo: new(MockBlockRepository),
		subRepo:   new(MockSubscriptionRepository),
		prodRepo:  new(MockProductRepository),
	}
	uc := NewFeedUseCase(m.feedRepo, m.postRepo, m.blockRepo, m.subRepo, m.prodRepo, nil, logger.New())
	return uc, m
}

func TestGetFeed_InvalidFilter(t *testing.T) {
	uc, _ := newFeedUseCase()

	_, err := uc.GetFeed(context.Background(), "", entity.FeedFilter("Trending"), 1, 10)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetFeed_RecentsMergesPostsAndProducts(t *testing.T) {
	uc, m := newFeedUseCase()

	older := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	post := &entity.Post{ID: "post-1", UserID: "creator-1", Status: entity.PostStatusActive, CreatedAt: newer}
	product := &entity.Product{ID: "prod-1", UserID: "creator-2", CreatedAt: older}

	m.feedRepo.On("RecentPosts", []string(nil), []string(nil), []string(nil), 10).
		Return([]*entity.Post{post}, nil)
	m.feedRepo.On("RecentProducts", []string(nil), []string(nil), 10).
		Return([]*entity.Product{product}, nil)
	m.feedRepo.On("CountActivePosts", []string(nil), []string(nil)).Return(int64(1), nil)
	m.feedRepo.On("CountProducts", []string(nil)).Return(int64(1), nil)

	page, err := uc.GetFeed(context.Background(), "", entity.FeedRecents, 1, 10)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, entity.FeedItemPost, page.Items[0].Kind)
	assert.Equal(t, "post-1", page.Items[0].Post.ID)
	assert.Equal(t, entity.FeedItemProduct, page.Items[1].Kind)
	assert.False(t, page.Items[0].IsLiked)
	m.feedRepo.AssertExpectations(t)
}

func TestGetFeed_RecentsAppliesViewerExclusions(t *testing.T) {
	uc, m := newFeedUseCase()

	post := &entity.Post{ID: "post-1", UserID: "creator-1", Status: entity.PostStatusActive, CreatedAt: time.Now()}

	m.blockRepo.On("BlockedUserIDs", "viewer-1").Return([]string{"blocked-1"}, nil)
	m.postRepo.On("NotInterestedPostIDs", "viewer-1").Return([]string{"post-x"}, nil)

	m.feedRepo.On("RecentPosts", []string{"blocked-1"}, []string{"post-x"}, []string(nil), 10).
		Return([]*entity.Post{post}, nil)
	m.feedRepo.On("RecentProducts", []string{"blocked-1"}, []string(nil), 10).
		Return([]*entity.Product{}, nil)
	m.feedRepo.On("CountActivePosts", []string{"post-x"}, []string(nil)).Return(int64(1), nil)
	m.feedRepo.On("CountProducts", []string(nil)).Return(int64(0), nil)

	m.feedRepo.On("LikedPostIDs", "viewer-1", []string{"post-1"}).
		Return(map[string]bool{"post-1": true}, nil)
	m.feedRepo.On("PurchasedPostIDs", "viewer-1", []string{"post-1"}).
		Return(map[string]bool{}, nil)
	m.feedRepo.On("BookmarkedItemIDs", "viewer-1", []string{"post-1"}, "post").
		Return(map[string]bool{}, nil)
	m.feedRepo.On("BookmarkedItemIDs", "viewer-1", []string(nil), "product").
		Return(map[string]bool{}, nil)
	m.feedRepo.On("SubscribedOwnerIDs", "viewer-1", []string{"creator-1"}, mock.Anything).
		Return(map[string]bool{"creator-1": true}, nil)

	page, err := uc.GetFeed(context.Background(), "viewer-1", entity.FeedRecents, 1, 10)

	assert.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.True(t, page.Items[0].IsLiked)
	assert.True(t, page.Items[0].IsSubscribed)
	assert.False(t, page.Items[0].IsPurchased)
	m.feedRepo.AssertExpectations(t)
	m.blockRepo.AssertExpectations(t)
}

func TestGetFeed_RecentsPagination(t *testing.T) {
	uc, m := newFeedUseCase()

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	posts := make([]*entity.Post, 4)
	for i := range posts {
		posts[i] = &entity.Post{
			ID:        []string{"post-1", "post-2", "post-3", "post-4"}[i],
			UserID:    "creator-1",
			Status:    entity.PostStatusActive,
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
		}
	}

	m.feedRepo.On("RecentPosts", []string(nil), []string(nil), []string(nil), 4).
		Return(posts, nil)
	m.feedRepo.On("RecentProducts", []string(nil), []string(nil), 4).
		Return([]*entity.Product{}, nil)
	m.feedRepo.On("CountActivePosts", []string(nil), []string(nil)).Return(int64(5), nil)
	m.feedRepo.On("CountProducts", []string(nil)).Return(int64(0), nil)

	page, err := uc.GetFeed(context.Background(), "", entity.FeedRecents, 2, 2)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, "post-3", page.Items[0].Post.ID)
	assert.Equal(t, "post-4", page.Items[1].Post.ID)
}

func TestGetFeed_FollowingAnonymous(t *testing.T) {
	uc, m := newFeedUseCase()

	page, err := uc.GetFeed(context.Background(), "", entity.FeedFollowing, 1, 10)

	assert.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.Total)
	m.subRepo.AssertNotCalled(t, "ActiveCreatorIDs")
}

func TestGetFeed_FollowingNoActiveSubscriptions(t *testing.T) {
	uc, m := newFeedUseCase()

	m.subRepo.On("ActiveCreatorIDs", "viewer-1", mock.Anything).Return([]string{}, nil)

	page, err := uc.GetFeed(context.Background(), "viewer-1", entity.FeedFollowing, 1, 10)

	assert.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.Total)
	m.feedRepo.AssertNotCalled(t, "RecentPosts")
}

func TestGetFeed_FollowingRestrictsToSubscribedCreators(t *testing.T) {
	uc, m := newFeedUseCase()

	post := &entity.Post{ID: "post-1", UserID: "creator-1", Status: entity.PostStatusActive, CreatedAt: time.Now()}

	m.subRepo.On("ActiveCreatorIDs", "viewer-1", mock.Anything).Return([]string{"creator-1"}, nil)
	m.blockRepo.On("BlockedUserIDs", "viewer-1").Return([]string{}, nil)
	m.postRepo.On("NotInterestedPostIDs", "viewer-1").Return([]string{}, nil)

	m.feedRepo.On("RecentPosts", []string{}, []string{}, []string{"creator-1"}, 10).
		Return([]*entity.Post{post}, nil)
	m.feedRepo.On("RecentProducts", []string{}, []string{"creator-1"}, 10).
		Return([]*entity.Product{}, nil)
	m.feedRepo.On("CountActivePosts", []string{}, []string{"creator-1"}).Return(int64(1), nil)
	m.feedRepo.On("CountProducts", []string{"creator-1"}).Return(int64(0), nil)

	m.feedRepo.On("LikedPostIDs", "viewer-1", []string{"post-1"}).Return(map[string]bool{}, nil)
	m.feedRepo.On("PurchasedPostIDs", "viewer-1", []string{"post-1"}).Return(map[string]bool{}, nil)
	m.feedRepo.On("BookmarkedItemIDs", "viewer-1", []string{"post-1"}, "post").Return(map[string]bool{}, nil)
	m.feedRepo.On("BookmarkedItemIDs", "viewer-1", []string(nil), "product").Return(map[string]bool{}, nil)
	m.feedRepo.On("SubscribedOwnerIDs", "viewer-1", []string{"creator-1"}, mock.Anything).
		Return(map[string]bool{"creator-1": true}, nil)

	page, err := uc.GetFeed(context.Background(), "viewer-1", entity.FeedFollowing, 1, 10)

	assert.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.True(t, page.Items[0].IsSubscribed)
	m.feedRepo.AssertExpectations(t)
}

func TestGetFeed_PopularTotalIgnoresNotInterested(t *testing.T) {
	uc, m := newFeedUseCase()

	m.blockRepo.On("BlockedUserIDs", "viewer-1").Return([]string{"blocked-1"}, nil)
	m.postRepo.On("NotInterestedPostIDs", "viewer-1").Return([]string{"post-x"}, nil)

	m.feedRepo.On("PopularPosts", []string{"blocked-1"}, []string{"post-x"}, 10, 0).
		Return([]*entity.Post{}, nil)
	m.feedRepo.On("CountPopular", []string{"blocked-1"}).Return(int64(7), nil)

	page, err := uc.GetFeed(context.Background(), "viewer-1", entity.FeedPopular, 1, 10)

	assert.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(7), page.Total)
	m.feedRepo.AssertExpectations(t)
}

func TestGetBookmarked_MergesAndAnnotates(t *testing.T) {
	uc, m := newFeedUseCase()

	older := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	post := &entity.Post{ID: "post-1", UserID: "creator-1", CreatedAt: older}
	product := &entity.Product{ID: "prod-1", UserID: "creator-2", CreatedAt: newer}

	m.feedRepo.On("BookmarkedIDs", "viewer-1", "post").Return([]string{"post-1"}, nil)
	m.feedRepo.On("BookmarkedIDs", "viewer-1", "product").Return([]string{"prod-1"}, nil)
	m.postRepo.On("GetByIDs", []string{"post-1"}).Return([]*entity.Post{post}, nil)
	m.prodRepo.On("GetByIDs", []string{"prod-1"}).Return([]*entity.Product{product}, nil)

	m.feedRepo.On("LikedPostIDs", "viewer-1", []string{"post-1"}).Return(map[string]bool{}, nil)
	m.feedRepo.On("PurchasedPostIDs", "viewer-1", []string{"post-1"}).Return(map[string]bool{}, nil)
	m.feedRepo.On("BookmarkedItemIDs", "viewer-1", []string{"post-1"}, "post").
		Return(map[string]bool{"post-1": true}, nil)
	m.feedRepo.On("BookmarkedItemIDs", "viewer-1", []string{"prod-1"}, "product").
		Return(map[string]bool{"prod-1": true}, nil)
	m.feedRepo.On("SubscribedOwnerIDs", "viewer-1", []string{"creator-2", "creator-1"}, mock.Anything).
		Return(map[string]bool{}, nil)

	page, err := uc.GetBookmarked(context.Background(), "viewer-1", 1, 10)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, "prod-1", page.Items[0].Product.ID)
	assert.Equal(t, "post-1", page.Items[1].Post.ID)
	assert.True(t, page.Items[0].IsBookmarked)
	assert.True(t, page.Items[1].IsBookmarked)
	m.feedRepo.AssertExpectations(t)
}
