package http

import (
	"net/http"

	"fanbase/internal/entity"
	"fanbase/internal/usecase"
	"fanbase/pkg/logger"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subUseCase usecase.SubscriptionUseCase
	logger     *logger.Logger
}

func NewSubscriptionHandler(subUseCase usecase.SubscriptionUseCase, logger *logger.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{subUseCase: subUseCase, logger: logger}
}

type SubscribeRequest struct {
	CreatorID string `json:"creator_id" binding:"required"`
	Tier      string `json:"tier" binding:"required,oneof=MONTHLY YEARLY"`
}

// Subscribe godoc
// @Summary      Subscribe to a creator
// @Description  Reactivates an expired subscription in place; an active one conflicts
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SubscribeRequest true "Subscription data"
// @Success      201  {object}  entity.Subscription
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /subscription [post]
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	userID := c.GetString("user_id")

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := h.subUseCase.Subscribe(userID, req.CreatorID, entity.SubscriptionTier(req.Tier))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

// Cancel godoc
// @Summary      Cancel a subscription
// @Description  Expires the subscription immediately
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        creator_id path string true "Creator ID"
// @Success      200  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /subscription/{creator_id} [delete]
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.subUseCase.Cancel(userID, c.Param("creator_id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subscription canceled"})
}

// List godoc
// @Summary      List own subscriptions
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "Status filter" Enums(ACTIVE, EXPIRED)
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  map[string]interface{}
// @Router       /subscription [get]
func (h *SubscriptionHandler) List(c *gin.Context) {
	userID := c.GetString("user_id")
	page, limit := pageParams(c)

	subs, total, err := h.subUseCase.List(userID, c.Query("status"), page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscriptions": subs, "total": total, "page": page})
}

// Status godoc
// @Summary      Get subscription state for one creator
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        creator_id path string true "Creator ID"
// @Success      200  {object}  entity.Subscription
// @Failure      404  {object}  map[string]string
// @Router       /subscription/{creator_id} [get]
func (h *SubscriptionHandler) Status(c *gin.Context) {
	userID := c.GetString("user_id")

	sub, err := h.subUseCase.Status(userID, c.Param("creator_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}
