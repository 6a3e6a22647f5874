package http

import (
	"net/http"

	"fanbase/internal/repo/persistent"
	"fanbase/internal/usecase"
	"fanbase/pkg/logger"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	walletUseCase usecase.WalletUseCase
	logger        *logger.Logger
}

func NewWalletHandler(walletUseCase usecase.WalletUseCase, logger *logger.Logger) *WalletHandler {
	return &WalletHandler{walletUseCase: walletUseCase, logger: logger}
}

// GetWallet godoc
// @Summary      Get own wallet
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.Wallet
// @Router       /wallet [get]
func (h *WalletHandler) GetWallet(c *gin.Context) {
	userID := c.GetString("user_id")

	wallet, err := h.walletUseCase.Get(userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, wallet)
}

type TransferRequest struct {
	CreatorID string  `json:"creator_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

// Transfer godoc
// @Summary      Send wallet funds to a creator
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body TransferRequest true "Transfer data"
// @Success      200  {object}  map[string]interface{}
// @Failure      402  {object}  map[string]string
// @Router       /wallet/transfer [post]
func (h *WalletHandler) Transfer(c *gin.Context) {
	userID := c.GetString("user_id")

	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	balance, err := h.walletUseCase.Transfer(userID, req.CreatorID, req.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transfer sent", "balance": balance})
}

// Transactions godoc
// @Summary      List wallet transactions
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Param        type query string false "Type filter" Enums(DEPOSIT, PAYMENT)
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  map[string]interface{}
// @Router       /wallet/transactions [get]
func (h *WalletHandler) Transactions(c *gin.Context) {
	userID := c.GetString("user_id")
	page, limit := pageParams(c)

	filter := persistent.TransactionListFilter{Type: c.Query("type")}

	transactions, total, err := h.walletUseCase.Transactions(userID, filter, page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": transactions, "total": total, "page": page})
}
