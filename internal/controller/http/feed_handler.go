package http

import (
	"net/http"

	"fanbase/internal/entity"
	"fanbase/internal/usecase"
	"fanbase/pkg/logger"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedUseCase usecase.FeedUseCase
	logger      *logger.Logger
}

func NewFeedHandler(feedUseCase usecase.FeedUseCase, logger *logger.Logger) *FeedHandler {
	return &FeedHandler{feedUseCase: feedUseCase, logger: logger}
}

// GetFeed godoc
// @Summary      Get the home feed
// @Description  Recents interleaves posts and products by recency. Popular ranks posts by likes. Following shows subscribed creators only and requires auth.
// @Tags         feed
// @Produce      json
// @Param        filter query string false "Feed filter" Enums(Recents, Popular, Following) default(Recents)
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  entity.FeedPage
// @Failure      400  {object}  map[string]string
// @Router       /posts [get]
func (h *FeedHandler) GetFeed(c *gin.Context) {
	viewerID := c.GetString("user_id")
	page, limit := pageParams(c)

	filter := entity.FeedFilter(c.DefaultQuery("filter", string(entity.FeedRecents)))

	feed, err := h.feedUseCase.GetFeed(c.Request.Context(), viewerID, filter, page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

// GetBookmarked godoc
// @Summary      Get bookmarked items
// @Tags         feed
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  entity.FeedPage
// @Router       /posts/bookmarked [get]
func (h *FeedHandler) GetBookmarked(c *gin.Context) {
	viewerID := c.GetString("user_id")
	page, limit := pageParams(c)

	feed, err := h.feedUseCase.GetBookmarked(c.Request.Context(), viewerID, page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}
