package http

import (
	"net/http"

	"fanbase/internal/usecase"
	"fanbase/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
	logger       *logger.Logger
}

func NewAdminHandler(adminUseCase usecase.AdminUseCase, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{adminUseCase: adminUseCase, logger: logger}
}

// Dashboard godoc
// @Summary      Admin dashboard counts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usecase.DashboardStats
// @Router       /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.adminUseCase.Dashboard()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListUsers godoc
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  map[string]interface{}
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, limit := pageParams(c)

	users, total, err := h.adminUseCase.Users(page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "total": total, "page": page})
}

// SetUserBlocked godoc
// @Summary      Block or unblock a user platform-wide
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        request body object true "Blocked flag" SchemaExample({"blocked":true})
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/{id}/block [put]
func (h *AdminHandler) SetUserBlocked(c *gin.Context) {
	var req struct {
		Blocked *bool `json:"blocked" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.adminUseCase.SetUserBlocked(c.Param("id"), *req.Blocked); err != nil {
		respondError(c, h.logger, err)
		return
	}

	message := "User blocked"
	if !*req.Blocked {
		message = "User unblocked"
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// ListReports godoc
// @Summary      List filed reports
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  map[string]interface{}
// @Router       /admin/reports [get]
func (h *AdminHandler) ListReports(c *gin.Context) {
	page, limit := pageParams(c)

	reports, total, err := h.adminUseCase.Reports(page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports, "total": total, "page": page})
}
