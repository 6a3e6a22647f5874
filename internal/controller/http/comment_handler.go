package http

import (
	"net/http"

	"fanbase/internal/entity"
	"fanbase/internal/usecase"
	"fanbase/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{commentUseCase: commentUseCase, logger: logger}
}

type AddCommentRequest struct {
	PostID   string `json:"post_id" binding:"required"`
	ParentID string `json:"parent_id"`
	Text     string `json:"text" binding:"required"`
}

// AddComment godoc
// @Summary      Comment on a post
// @Description  Set parent_id to reply to an existing comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body AddCommentRequest true "Comment data"
// @Success      201  {object}  entity.Comment
// @Failure      404  {object}  map[string]string
// @Router       /comments [post]
func (h *CommentHandler) AddComment(c *gin.Context) {
	userID := c.GetString("user_id")

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment := &entity.Comment{
		PostID:   req.PostID,
		UserID:   userID,
		ParentID: req.ParentID,
		Text:     req.Text,
	}

	created, err := h.commentUseCase.Add(comment)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListComments godoc
// @Summary      List comments on a post
// @Description  Top-level comments with replies inlined
// @Tags         comments
// @Produce      json
// @Param        post_id path string true "Post ID"
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /comments/post/{post_id} [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	viewerID := c.GetString("user_id")
	page, limit := pageParams(c)

	comments, total, err := h.commentUseCase.ListByPost(viewerID, c.Param("post_id"), page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments, "total": total, "page": page})
}

// LikeComment godoc
// @Summary      Like or unlike a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id}/like [post]
func (h *CommentHandler) LikeComment(c *gin.Context) {
	userID := c.GetString("user_id")

	liked, err := h.commentUseCase.ToggleLike(userID, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	message := "Comment liked"
	if !liked {
		message = "Comment unliked"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "liked": liked})
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Allowed for the comment author or the post owner
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.commentUseCase.Delete(userID, c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}
