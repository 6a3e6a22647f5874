package usecase

import (
	"errors"

	"fanbase/internal/entity"
	"fanbase/internal/repo/persistent"
	"fanbase/pkg/logger"
	"fanbase/pkg/queue"

	"gorm.io/gorm"
)

type CommentUseCase interface {
	Add(comment *entity.Comment) (*entity.Comment, error)
	// ListByPost returns top-level comments with replies inlined and
	// like state annotated for the viewer.
	ListByPost(viewerID, postID string, page, limit int) ([]*entity.Comment, int64, error)
	ToggleLike(userID, commentID string) (bool, error)
	Delete(userID, commentID string) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	postRepo    persistent.PostRepository
	queue       *queue.Client
	log         *logger.Logger
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	postRepo persistent.PostRepository,
	queueClient *queue.Client,
	log *logger.Logger,
) CommentUseCase {
	return &commentUseCase{commentRepo: commentRepo, postRepo: postRepo, queue: queueClient, log: log}
}

func (uc *commentUseCase) Add(comment *entity.Comment) (*entity.Comment, error) {
	if comment.Text == "" {
		return nil, ErrInvalidInput
	}

	post, err := uc.postRepo.GetByID(comment.PostID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if comment.ParentID != "" {
		parent, err := uc.commentRepo.GetByID(comment.ParentID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, err
		}
		if parent.PostID != comment.PostID {
			return nil, ErrInvalidInput
		}
	}

	if err := uc.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	if uc.queue != nil && post.UserID != comment.UserID {
		task := map[string]interface{}{
			"type":         "new_comment",
			"post_id":      post.ID,
			"comment_id":   comment.ID,
			"recipient_id": post.UserID,
			"priority":     2,
		}
		if err := uc.queue.PublishNotificationTask(task); err != nil {
			uc.log.Warn("Failed to publish comment notification: %v", err)
		}
	}
	return comment, nil
}

func (uc *commentUseCase) ListByPost(viewerID, postID string, page, limit int) ([]*entity.Comment, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	if _, err := uc.postRepo.GetByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, err
	}

	comments, total, err := uc.commentRepo.ListByPost(postID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]string, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.ID)
	}
	for i := range comments {
		replies, err := uc.commentRepo.ListReplies(comments[i].ID)
		if err != nil {
			return nil, 0, err
		}
		for _, reply := range replies {
			ids = append(ids, reply.ID)
			comments[i].Replies = append(comments[i].Replies, *reply)
		}
	}

	if viewerID != "" && len(ids) > 0 {
		liked, err := uc.commentRepo.LikedCommentIDs(viewerID, ids)
		if err != nil {
			return nil, 0, err
		}
		for i := range comments {
			comments[i].IsLiked = liked[comments[i].ID]
			for j := range comments[i].Replies {
				comments[i].Replies[j].IsLiked = liked[comments[i].Replies[j].ID]
			}
		}
	}
	return comments, total, nil
}

func (uc *commentUseCase) ToggleLike(userID, commentID string) (bool, error) {
	if _, err := uc.commentRepo.GetByID(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}
	return uc.commentRepo.ToggleLike(commentID, userID)
}

// Delete allows the comment author or the post owner to remove it.
func (uc *commentUseCase) Delete(userID, commentID string) error {
	comment, err := uc.commentRepo.GetByID(commentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if comment.UserID != userID {
		post, err := uc.postRepo.GetByID(comment.PostID)
		if err != nil {
			return err
		}
		if post.UserID != userID {
			return ErrForbidden
		}
	}
	return uc.commentRepo.Delete(commentID)
}
