package persistent

import (
	"time"

	"fanbase/internal/entity"
	"fanbase/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostListFilter narrows the creator-scoped post listing.
type PostListFilter struct {
	UserID string
	Type   string
	Search string
	From   *time.Time
	To     *time.Time
	Status string
}

type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	GetByIDs(ids []string) ([]*entity.Post, error)
	List(filter PostListFilter, limit, offset int) ([]*entity.Post, int64, error)
	Update(post *entity.Post) error
	UpdateStatus(id string, status entity.PostStatus) error
	Delete(id string) error
	CountByUser(userID string) (int64, error)

	ToggleLike(postID, userID string) (bool, error)
	ToggleBookmark(userID, itemID, itemKind string) (bool, error)
	AddPurchase(postID, userID string) (bool, error)
	HasPurchased(postID, userID string) (bool, error)
	MarkNotInterested(userID, postID string) error
	NotInterestedPostIDs(userID string) ([]string, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *entity.Post) error {
	m := ToPostModel(post)
	if err := r.db.Create(m).Error; err != nil {
		return err
	}
	post.ID = m.ID
	post.CreatedAt = m.CreatedAt
	return nil
}

func (r *postRepository) GetByID(id string) (*entity.Post, error) {
	var m model.PostModel
	if err := r.db.Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return ToPostEntity(&m), nil
}

func (r *postRepository) GetByIDs(ids []string) ([]*entity.Post, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var ms []model.PostModel
	if err := r.db.Where("id IN ?", ids).Find(&ms).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(ms))
	for i := range ms {
		posts[i] = ToPostEntity(&ms[i])
	}
	return posts, nil
}

func (r *postRepository) List(filter PostListFilter, limit, offset int) ([]*entity.Post, int64, error) {
	q := r.db.Model(&model.PostModel{})
	if filter.UserID != "" {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		q = q.Where("(title ILIKE ? OR description ILIKE ?)", "%"+filter.Search+"%", "%"+filter.Search+"%")
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

	var ms []model.PostModel
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	posts := make([]*entity.Post, len(ms))
	for i := range ms {
		posts[i] = ToPostEntity(&ms[i])
	}
	return posts, total, nil
}

func (r *postRepository) Update(post *entity.Post) error {
	return r.db.Save(ToPostModel(post)).Error
}

func (r *postRepository) UpdateStatus(id string, status entity.PostStatus) error {
	return r.db.Model(&model.PostModel{}).Where("id = ?", id).
		UpdateColumn("status", string(status)).Error
}

func (r *postRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.PostLikeModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.CommentModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.PostModel{}).Error
	})
}

func (r *postRepository) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.PostModel{}).
		Where("user_id = ? AND status = ?", userID, string(entity.PostStatusActive)).
		Count(&count).Error
	return count, err
}

// ToggleLike flips the viewer's like membership and adjusts the
// denormalized counter in the same transaction.
func (r *postRepository) ToggleLike(postID, userID string) (bool, error) {
	var liked bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("post_id = ? AND user_id = ?", postID, userID).
			Delete(&model.PostLikeModel{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			liked = false
			return tx.Model(&model.PostModel{}).Where("id = ?", postID).
				UpdateColumn("likes", gorm.Expr("GREATEST(likes - 1, 0)")).Error
		}

		like := &model.PostLikeModel{PostID: postID, UserID: userID}
		ins := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(like)
		if ins.Error != nil {
			return ins.Error
		}
		if ins.RowsAffected == 0 {
			// Lost a race against a concurrent like; membership already holds.
			liked = true
			return nil
		}

		liked = true
		return tx.Model(&model.PostModel{}).Where("id = ?", postID).
			UpdateColumn("likes", gorm.Expr("likes + 1")).Error
	})
	return liked, err
}

func (r *postRepository) ToggleBookmark(userID, itemID, itemKind string) (bool, error) {
	var bookmarked bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND item_id = ? AND item_kind = ?", userID, itemID, itemKind).
			Delete(&model.BookmarkModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			bookmarked = false
			return nil
		}

		bookmark := &model.BookmarkModel{UserID: userID, ItemID: itemID, ItemKind: itemKind}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(bookmark).Error; err != nil {
			return err
		}
		bookmarked = true
		return nil
	})
	return bookmarked, err
}

// AddPurchase records the purchase membership. Returns false when the
// viewer had already purchased the post.
func (r *postRepository) AddPurchase(postID, userID string) (bool, error) {
	purchase := &model.PurchaseModel{PostID: postID, UserID: userID}
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(purchase)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *postRepository) HasPurchased(postID, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.PurchaseModel{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *postRepository) MarkNotInterested(userID, postID string) error {
	row := &model.NotInterestedModel{UserID: userID, PostID: postID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(row).Error
}

func (r *postRepository) NotInterestedPostIDs(userID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.NotInterestedModel{}).
		Where("user_id = ?", userID).
		Pluck("post_id", &ids).Error
	return ids, err
}
