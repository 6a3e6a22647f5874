package http

import (
	"net/http"

	"fanbase/internal/entity"
	"fanbase/internal/repo/persistent"
	"fanbase/internal/usecase"
	"fanbase/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{postUseCase: postUseCase, logger: logger}
}

type CreatePostRequest struct {
	Title            string   `json:"title" binding:"required"`
	Description      string   `json:"description"`
	Type             string   `json:"type" binding:"required,oneof=TEXT IMAGE AUDIO VIDEO"`
	AccessIdentifier string   `json:"access_identifier" binding:"omitempty,oneof=SUBSCRIPTION PAID FREE"`
	Price            float64  `json:"price"`
	Images           []string `json:"images"`
}

// CreatePost godoc
// @Summary      Create a post
// @Description  Media URLs come from the upload endpoint. PAID posts require a positive price.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePostRequest true "Post data"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post := &entity.Post{
		UserID:           userID,
		Title:            req.Title,
		Description:      req.Description,
		Type:             entity.PostType(req.Type),
		AccessIdentifier: entity.AccessIdentifier(req.AccessIdentifier),
		Price:            req.Price,
		Images:           req.Images,
	}

	created, err := h.postUseCase.Create(post)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetPost godoc
// @Summary      Get a post
// @Description  Includes the viewer's like, bookmark, purchase and subscription state
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.FeedItem
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	viewerID := c.GetString("user_id")

	item, err := h.postUseCase.GetByID(viewerID, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// ListUserPosts godoc
// @Summary      List a user's posts
// @Tags         posts
// @Produce      json
// @Param        user_id path string true "User ID"
// @Param        type query string false "Post type filter"
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  map[string]interface{}
// @Router       /posts/user/{user_id} [get]
func (h *PostHandler) ListUserPosts(c *gin.Context) {
	page, limit := pageParams(c)

	filter := persistent.PostListFilter{
		UserID: c.Param("user_id"),
		Type:   c.Query("type"),
		Status: string(entity.PostStatusActive),
	}

	posts, total, err := h.postUseCase.List(filter, page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts, "total": total, "page": page})
}

// UpdatePost godoc
// @Summary      Update a post
// @Description  Only the author can update their posts
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body object true "Fields to update" SchemaExample({"title":"Updated","price":5})
// @Success      200  {object}  entity.Post
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		Title            string   `json:"title"`
		Description      string   `json:"description"`
		AccessIdentifier string   `json:"access_identifier"`
		Price            float64  `json:"price"`
		Images           []string `json:"images"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post := &entity.Post{
		ID:               c.Param("id"),
		Title:            req.Title,
		Description:      req.Description,
		AccessIdentifier: entity.AccessIdentifier(req.AccessIdentifier),
		Price:            req.Price,
		Images:           req.Images,
	}

	updated, err := h.postUseCase.Update(userID, post)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdatePostStatus godoc
// @Summary      Activate or deactivate a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body object true "Status" SchemaExample({"status":"INACTIVE"})
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /posts/{id}/status [put]
func (h *PostHandler) UpdatePostStatus(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.postUseCase.UpdateStatus(userID, c.Param("id"), entity.PostStatus(req.Status)); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

// DeletePost godoc
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.postUseCase.Delete(userID, c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

// LikePost godoc
// @Summary      Like or unlike a post
// @Description  Toggles the like and adjusts the counter atomically
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/like [post]
func (h *PostHandler) LikePost(c *gin.Context) {
	userID := c.GetString("user_id")

	liked, err := h.postUseCase.ToggleLike(userID, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	message := "Post liked"
	if !liked {
		message = "Post unliked"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "liked": liked})
}

// BookmarkItem godoc
// @Summary      Bookmark or unbookmark a post or product
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Item ID"
// @Param        kind query string false "Item kind" Enums(post, product) default(post)
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/bookmark [post]
func (h *PostHandler) BookmarkItem(c *gin.Context) {
	userID := c.GetString("user_id")
	kind := entity.FeedItemKind(c.DefaultQuery("kind", string(entity.FeedItemPost)))

	bookmarked, err := h.postUseCase.ToggleBookmark(userID, c.Param("id"), kind)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	message := "Bookmarked"
	if !bookmarked {
		message = "Bookmark removed"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "bookmarked": bookmarked})
}

// PurchasePost godoc
// @Summary      Buy a paid post with wallet funds
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      402  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /posts/{id}/purchase [post]
func (h *PostHandler) PurchasePost(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.postUseCase.Purchase(userID, c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post unlocked"})
}

// TipPost godoc
// @Summary      Tip the author of a post from wallet funds
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body object true "Amount" SchemaExample({"amount":5})
// @Success      200  {object}  map[string]string
// @Failure      402  {object}  map[string]string
// @Router       /posts/{id}/tip [post]
func (h *PostHandler) TipPost(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		Amount float64 `json:"amount" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.postUseCase.Tip(userID, c.Param("id"), req.Amount); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tip sent"})
}

// NotInterested godoc
// @Summary      Hide a post from the feed
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/not-interested [post]
func (h *PostHandler) NotInterested(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.postUseCase.MarkNotInterested(userID, c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post hidden"})
}

// UploadMedia godoc
// @Summary      Upload post media
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        media formData file true "Media file"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /posts/media [post]
func (h *PostHandler) UploadMedia(c *gin.Context) {
	userID := c.GetString("user_id")

	fileHeader, err := c.FormFile("media")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Media file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read media"})
		return
	}
	defer file.Close()

	url, err := h.postUseCase.UploadMedia(userID, fileHeader.Filename, file, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
