package persistent

import (
	"fanbase/internal/entity"
	"fanbase/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepository interface {
	// Create inserts the comment and bumps the post's comment counter
	// in one transaction.
	Create(comment *entity.Comment) error
	GetByID(id string) (*entity.Comment, error)
	ListByPost(postID string, limit, offset int) ([]*entity.Comment, int64, error)
	ListReplies(parentID string) ([]*entity.Comment, error)
	ToggleLike(commentID, userID string) (bool, error)
	LikedCommentIDs(userID string, commentIDs []string) (map[string]bool, error)
	Delete(id string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *entity.Comment) error {
	m := &model.CommentModel{
		PostID:   comment.PostID,
		UserID:   comment.UserID,
		ParentID: comment.ParentID,
		Text:     comment.Text,
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return tx.Model(&model.PostModel{}).Where("id = ?", comment.PostID).
			UpdateColumn("comments", gorm.Expr("comments + 1")).Error
	})
	if err != nil {
		return err
	}
	comment.ID = m.ID
	comment.CreatedAt = m.CreatedAt
	return nil
}

func (r *commentRepository) GetByID(id string) (*entity.Comment, error) {
	var m model.CommentModel
	if err := r.db.Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return ToCommentEntity(&m), nil
}

func (r *commentRepository) ListByPost(postID string, limit, offset int) ([]*entity.Comment, int64, error) {
	q := r.db.Model(&model.CommentModel{}).
		Where("post_id = ? AND (parent_id IS NULL OR parent_id = '')", postID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []model.CommentModel
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	comments := make([]*entity.Comment, len(ms))
	for i := range ms {
		comments[i] = ToCommentEntity(&ms[i])
	}
	return comments, total, nil
}

func (r *commentRepository) ListReplies(parentID string) ([]*entity.Comment, error) {
	var ms []model.CommentModel
	err := r.db.Where("parent_id = ?", parentID).Order("created_at ASC").Find(&ms).Error
	if err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(ms))
	for i := range ms {
		comments[i] = ToCommentEntity(&ms[i])
	}
	return comments, nil
}

func (r *commentRepository) ToggleLike(commentID, userID string) (bool, error) {
	var liked bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("comment_id = ? AND user_id = ?", commentID, userID).
			Delete(&model.CommentLikeModel{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			liked = false
			return tx.Model(&model.CommentModel{}).Where("id = ?", commentID).
				UpdateColumn("likes", gorm.Expr("GREATEST(likes - 1, 0)")).Error
		}

		like := &model.CommentLikeModel{CommentID: commentID, UserID: userID}
		ins := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(like)
		if ins.Error != nil {
			return ins.Error
		}
		if ins.RowsAffected == 0 {
			liked = true
			return nil
		}

		liked = true
		return tx.Model(&model.CommentModel{}).Where("id = ?", commentID).
			UpdateColumn("likes", gorm.Expr("likes + 1")).Error
	})
	return liked, err
}

func (r *commentRepository) LikedCommentIDs(userID string, commentIDs []string) (map[string]bool, error) {
	if len(commentIDs) == 0 {
		return map[string]bool{}, nil
	}

	var ids []string
	err := r.db.Model(&model.CommentLikeModel{}).
		Where("user_id = ? AND comment_id IN ?", userID, commentIDs).
		Pluck("comment_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return toSet(ids), nil
}

func (r *commentRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var m model.CommentModel
		if err := tx.Where("id = ?", id).First(&m).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", id).Delete(&model.CommentModel{}).Error; err != nil {
			return err
		}
		return tx.Model(&model.PostModel{}).Where("id = ?", m.PostID).
			UpdateColumn("comments", gorm.Expr("GREATEST(comments - 1, 0)")).Error
	})
}
