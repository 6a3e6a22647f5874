package http

import (
	"io"
	"net/http"

	"fanbase/internal/entity"
	"fanbase/internal/repo/persistent"
	"fanbase/internal/usecase"
	"fanbase/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentUseCase usecase.PaymentUseCase
	webhookUseCase usecase.WebhookUseCase
	logger         *logger.Logger
}

func NewPaymentHandler(paymentUseCase usecase.PaymentUseCase, webhookUseCase usecase.WebhookUseCase, logger *logger.Logger) *PaymentHandler {
	return &PaymentHandler{paymentUseCase: paymentUseCase, webhookUseCase: webhookUseCase, logger: logger}
}

// Webhook godoc
// @Summary      Payment processor webhook
// @Description  Verifies the signature and applies checkout outcomes exactly once
// @Tags         payments
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<16))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return
	}

	if err := h.webhookUseCase.HandleEvent(payload, c.GetHeader("Stripe-Signature")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": "true"})
}

// CheckoutPost godoc
// @Summary      Start checkout for a paid post
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  payments.CheckoutSession
// @Failure      409  {object}  map[string]string
// @Router       /payments/checkout/post/{id} [post]
func (h *PaymentHandler) CheckoutPost(c *gin.Context) {
	userID := c.GetString("user_id")

	session, err := h.paymentUseCase.CreatePurchaseSession(userID, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

type CheckoutSubscriptionRequest struct {
	CreatorID string `json:"creator_id" binding:"required"`
	Tier      string `json:"tier" binding:"required,oneof=MONTHLY YEARLY"`
}

// CheckoutSubscription godoc
// @Summary      Start checkout for a subscription
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CheckoutSubscriptionRequest true "Subscription data"
// @Success      200  {object}  payments.CheckoutSession
// @Failure      409  {object}  map[string]string
// @Router       /payments/checkout/subscription [post]
func (h *PaymentHandler) CheckoutSubscription(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CheckoutSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.paymentUseCase.CreateSubscriptionSession(userID, req.CreatorID, entity.SubscriptionTier(req.Tier))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// CheckoutDeposit godoc
// @Summary      Start checkout for a wallet deposit
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body object true "Amount" SchemaExample({"amount":25})
// @Success      200  {object}  payments.CheckoutSession
// @Failure      400  {object}  map[string]string
// @Router       /payments/checkout/deposit [post]
func (h *PaymentHandler) CheckoutDeposit(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		Amount float64 `json:"amount" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.paymentUseCase.CreateDepositSession(userID, req.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ConnectAccount godoc
// @Summary      Connect a payout account
// @Description  Creates the account on first call and returns an onboarding link
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Router       /payments/connect [post]
func (h *PaymentHandler) ConnectAccount(c *gin.Context) {
	userID := c.GetString("user_id")

	link, err := h.paymentUseCase.ConnectAccount(userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"onboarding_url": link})
}

// Balance godoc
// @Summary      Get payout account balance
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  payments.AccountBalance
// @Failure      400  {object}  map[string]string
// @Router       /payments/balance [get]
func (h *PaymentHandler) Balance(c *gin.Context) {
	userID := c.GetString("user_id")

	balance, err := h.paymentUseCase.Balance(userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, balance)
}

// CreatePayout godoc
// @Summary      Request a payout
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body object true "Amount" SchemaExample({"amount":100})
// @Success      201  {object}  payments.Payout
// @Failure      400  {object}  map[string]string
// @Router       /payments/payouts [post]
func (h *PaymentHandler) CreatePayout(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		Amount float64 `json:"amount" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payout, err := h.paymentUseCase.CreatePayout(userID, req.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, payout)
}

// ListPayouts godoc
// @Summary      List payouts
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /payments/payouts [get]
func (h *PaymentHandler) ListPayouts(c *gin.Context) {
	userID := c.GetString("user_id")

	payouts, err := h.paymentUseCase.ListPayouts(userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payouts": payouts, "count": len(payouts)})
}

// CancelPayout godoc
// @Summary      Cancel a pending payout
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Payout ID"
// @Success      200  {object}  map[string]string
// @Router       /payments/payouts/{id} [delete]
func (h *PaymentHandler) CancelPayout(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.paymentUseCase.CancelPayout(userID, c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payout canceled"})
}

// History godoc
// @Summary      List own payments
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        purpose query string false "Purpose filter"
// @Param        status query string false "Status filter"
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  map[string]interface{}
// @Router       /payments [get]
func (h *PaymentHandler) History(c *gin.Context) {
	userID := c.GetString("user_id")
	page, limit := pageParams(c)

	filter := persistent.PaymentListFilter{
		Purpose: c.Query("purpose"),
		Status:  c.Query("status"),
	}

	history, total, err := h.paymentUseCase.History(userID, filter, page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": history, "total": total, "page": page})
}

// Earnings godoc
// @Summary      List creator earnings
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  map[string]interface{}
// @Router       /payments/earnings [get]
func (h *PaymentHandler) Earnings(c *gin.Context) {
	userID := c.GetString("user_id")
	page, limit := pageParams(c)

	earnings, sum, total, err := h.paymentUseCase.Earnings(userID, page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"earnings": earnings, "total_earned": sum, "total": total, "page": page})
}
