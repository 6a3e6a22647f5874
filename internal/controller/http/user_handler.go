package http

import (
	"net/http"

	"fanbase/internal/entity"
	"fanbase/internal/usecase"
	"fanbase/pkg/logger"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *logger.Logger
}

func NewUserHandler(userUseCase usecase.UserUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{userUseCase: userUseCase, logger: logger}
}

// Me godoc
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.User
// @Router       /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := h.userUseCase.GetProfile(userID, userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUser godoc
// @Summary      Get a user profile
// @Description  Creator profiles include post count and, for signed-in viewers, subscription state
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200  {object}  entity.User
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	viewerID := c.GetString("user_id")

	user, err := h.userUseCase.GetProfile(viewerID, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Description  Only profile fields are writable; credentials and roles are not
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body object true "Fields to update" SchemaExample({"name":"New Name","bio":"Hello","monthly_price":12})
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Router       /users/me [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		Name         *string  `json:"name"`
		Bio          *string  `json:"bio"`
		MonthlyPrice *float64 `json:"monthly_price"`
		YearlyPrice  *float64 `json:"yearly_price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.MonthlyPrice != nil {
		updates["monthly_price"] = *req.MonthlyPrice
	}
	if req.YearlyPrice != nil {
		updates["yearly_price"] = *req.YearlyPrice
	}

	user, err := h.userUseCase.UpdateProfile(userID, updates)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// SwitchRole godoc
// @Summary      Switch active role
// @Description  Toggle between FAN and CREATOR. Switching to CREATOR enables the creator profile.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body object true "Role" SchemaExample({"role":"CREATOR"})
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Router       /users/me/role [put]
func (h *UserHandler) SwitchRole(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUseCase.SwitchRole(userID, entity.Role(req.Role))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdatePassword godoc
// @Summary      Change password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body object true "Old and new password" SchemaExample({"old_password":"current","new_password":"newpassword"})
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /users/me/password [put]
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		OldPassword string `json:"old_password" binding:"required"`
		NewPassword string `json:"new_password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userUseCase.UpdatePassword(userID, req.OldPassword, req.NewPassword); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// BlockUser godoc
// @Summary      Block a user
// @Description  Hides both users' content from each other
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /users/{id}/block [post]
func (h *UserHandler) BlockUser(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.userUseCase.Block(userID, c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User blocked"})
}

// UnblockUser godoc
// @Summary      Unblock a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id}/block [delete]
func (h *UserHandler) UnblockUser(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.userUseCase.Unblock(userID, c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User unblocked"})
}

// BlockedUsers godoc
// @Summary      List blocked users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /users/blocked [get]
func (h *UserHandler) BlockedUsers(c *gin.Context) {
	userID := c.GetString("user_id")

	users, err := h.userUseCase.BlockedUsers(userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

// ReportUser godoc
// @Summary      Report a user
// @Description  Files a report and blocks the reported user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        request body object true "Reason" SchemaExample({"reason":"spam"})
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id}/report [post]
func (h *UserHandler) ReportUser(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userUseCase.Report(userID, c.Param("id"), req.Reason); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Report filed"})
}

// SearchUsers godoc
// @Summary      Search users
// @Description  Blocked users are excluded in both directions
// @Tags         users
// @Produce      json
// @Param        q query string true "Search query"
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  map[string]interface{}
// @Router       /users/search [get]
func (h *UserHandler) SearchUsers(c *gin.Context) {
	viewerID := c.GetString("user_id")
	page, limit := pageParams(c)

	users, err := h.userUseCase.Search(viewerID, c.Query("q"), page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users), "page": page})
}

// UploadImage godoc
// @Summary      Upload avatar or cover image
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        field formData string true "Target field" Enums(avatar, cover_image)
// @Param        image formData file true "Image file"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /users/me/image [post]
func (h *UserHandler) UploadImage(c *gin.Context) {
	userID := c.GetString("user_id")
	field := c.PostForm("field")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image"})
		return
	}
	defer file.Close()

	url, err := h.userUseCase.UploadImage(userID, field, fileHeader.Filename, file, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
