package persistent

import (
	"time"

	"fanbase/internal/entity"
	"fanbase/internal/model"

	"gorm.io/gorm"
)

// FeedRepository serves the raw material for feed composition: recent
// active posts and products with per-viewer exclusions applied, plus
// batched engagement-set lookups for annotation.
type FeedRepository interface {
	RecentPosts(excludedOwners, notInterested, onlyOwners []string, max int) ([]*entity.Post, error)
	RecentProducts(excludedOwners, onlyOwners []string, max int) ([]*entity.Product, error)
	PopularPosts(excludedOwners, notInterested []string, limit, offset int) ([]*entity.Post, error)

	CountActivePosts(notInterested, onlyOwners []string) (int64, error)
	CountProducts(onlyOwners []string) (int64, error)
	CountPopular(excludedOwners []string) (int64, error)

	LikedPostIDs(userID string, postIDs []string) (map[string]bool, error)
	BookmarkedItemIDs(userID string, itemIDs []string, kind string) (map[string]bool, error)
	PurchasedPostIDs(userID string, postIDs []string) (map[string]bool, error)
	SubscribedOwnerIDs(userID string, ownerIDs []string, now time.Time) (map[string]bool, error)

	BookmarkedIDs(userID, kind string) ([]string, error)
}

type feedRepository struct {
	db *gorm.DB
}

func NewFeedRepository(db *gorm.DB) FeedRepository {
	return &feedRepository{db: db}
}

func (r *feedRepository) RecentPosts(excludedOwners, notInterested, onlyOwners []string, max int) ([]*entity.Post, error) {
	q := r.db.Model(&model.PostModel{}).
		Where("status = ?", string(entity.PostStatusActive))
	if len(excludedOwners) > 0 {
		q = q.Where("user_id NOT IN ?", excludedOwners)
	}
	if len(notInterested) > 0 {
		q = q.Where("id NOT IN ?", notInterested)
	}
	if onlyOwners != nil {
		if len(onlyOwners) == 0 {
			return nil, nil
		}
		q = q.Where("user_id IN ?", onlyOwners)
	}

	var ms []model.PostModel
	if err := q.Order("created_at DESC").Limit(max).Find(&ms).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(ms))
	for i := range ms {
		posts[i] = ToPostEntity(&ms[i])
	}
	return posts, nil
}

func (r *feedRepository) RecentProducts(excludedOwners, onlyOwners []string, max int) ([]*entity.Product, error) {
	q := r.db.Model(&model.ProductModel{})
	if len(excludedOwners) > 0 {
		q = q.Where("user_id NOT IN ?", excludedOwners)
	}
	if onlyOwners != nil {
		if len(onlyOwners) == 0 {
			return nil, nil
		}
		q = q.Where("user_id IN ?", onlyOwners)
	}

	var ms []model.ProductModel
	if err := q.Order("created_at DESC").Limit(max).Find(&ms).Error; err != nil {
		return nil, err
	}

	products := make([]*entity.Product, len(ms))
	for i := range ms {
		products[i] = ToProductEntity(&ms[i])
	}
	return products, nil
}

// PopularPosts orders by like count with id as the deterministic
// tie-break.
func (r *feedRepository) PopularPosts(excludedOwners, notInterested []string, limit, offset int) ([]*entity.Post, error) {
	q := r.db.Model(&model.PostModel{}).
		Where("status = ?", string(entity.PostStatusActive))
	if len(excludedOwners) > 0 {
		q = q.Where("user_id NOT IN ?", excludedOwners)
	}
	if len(notInterested) > 0 {
		q = q.Where("id NOT IN ?", notInterested)
	}

	var ms []model.PostModel
	if err := q.Order("likes DESC, id ASC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(ms))
	for i := range ms {
		posts[i] = ToPostEntity(&ms[i])
	}
	return posts, nil
}

func (r *feedRepository) CountActivePosts(notInterested, onlyOwners []string) (int64, error) {
	q := r.db.Model(&model.PostModel{}).
		Where("status = ?", string(entity.PostStatusActive))
	if len(notInterested) > 0 {
		q = q.Where("id NOT IN ?", notInterested)
	}
	if onlyOwners != nil {
		if len(onlyOwners) == 0 {
			return 0, nil
		}
		q = q.Where("user_id IN ?", onlyOwners)
	}

	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (r *feedRepository) CountProducts(onlyOwners []string) (int64, error) {
	q := r.db.Model(&model.ProductModel{})
	if onlyOwners != nil {
		if len(onlyOwners) == 0 {
			return 0, nil
		}
		q = q.Where("user_id IN ?", onlyOwners)
	}

	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (r *feedRepository) CountPopular(excludedOwners []string) (int64, error) {
	q := r.db.Model(&model.PostModel{}).
		Where("status = ?", string(entity.PostStatusActive))
	if len(excludedOwners) > 0 {
		q = q.Where("user_id NOT IN ?", excludedOwners)
	}

	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (r *feedRepository) LikedPostIDs(userID string, postIDs []string) (map[string]bool, error) {
	if len(postIDs) == 0 {
		return map[string]bool{}, nil
	}

	var ids []string
	err := r.db.Model(&model.PostLikeModel{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return toSet(ids), nil
}

func (r *feedRepository) BookmarkedItemIDs(userID string, itemIDs []string, kind string) (map[string]bool, error) {
	if len(itemIDs) == 0 {
		return map[string]bool{}, nil
	}

	var ids []string
	err := r.db.Model(&model.BookmarkModel{}).
		Where("user_id = ? AND item_kind = ? AND item_id IN ?", userID, kind, itemIDs).
		Pluck("item_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return toSet(ids), nil
}

func (r *feedRepository) PurchasedPostIDs(userID string, postIDs []string) (map[string]bool, error) {
	if len(postIDs) == 0 {
		return map[string]bool{}, nil
	}

	var ids []string
	err := r.db.Model(&model.PurchaseModel{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return toSet(ids), nil
}

// SubscribedOwnerIDs returns the owners among ownerIDs the viewer holds
// an active, unexpired subscription to.
func (r *feedRepository) SubscribedOwnerIDs(userID string, ownerIDs []string, now time.Time) (map[string]bool, error) {
	if len(ownerIDs) == 0 {
		return map[string]bool{}, nil
	}

	var ids []string
	err := r.db.Model(&model.SubscriptionModel{}).
		Where("user_id = ? AND status = ? AND expiry_date > ? AND creator_id IN ?",
			userID, string(entity.SubscriptionActive), now, ownerIDs).
		Pluck("creator_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return toSet(ids), nil
}

func (r *feedRepository) BookmarkedIDs(userID, kind string) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.BookmarkModel{}).
		Where("user_id = ? AND item_kind = ?", userID, kind).
		Order("created_at DESC").
		Pluck("item_id", &ids).Error
	return ids, err
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
