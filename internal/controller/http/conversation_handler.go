package http

import (
	"net/http"

	"fanbase/internal/usecase"
	"fanbase/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ConversationHandler struct {
	convUseCase usecase.ConversationUseCase
	logger      *logger.Logger
}

func NewConversationHandler(convUseCase usecase.ConversationUseCase, logger *logger.Logger) *ConversationHandler {
	return &ConversationHandler{convUseCase: convUseCase, logger: logger}
}

// ListConversations godoc
// @Summary      List conversations
// @Description  Most recent first, with peer profile, last message and unseen count
// @Tags         conversations
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  map[string]interface{}
// @Router       /conversations [get]
func (h *ConversationHandler) ListConversations(c *gin.Context) {
	userID := c.GetString("user_id")
	page, limit := pageParams(c)

	conversations, err := h.convUseCase.List(userID, page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversations": conversations, "count": len(conversations)})
}

type SendMessageRequest struct {
	RecipientID string `json:"recipient_id" binding:"required"`
	Text        string `json:"text"`
	Attachment  string `json:"attachment"`
}

// SendMessage godoc
// @Summary      Send a direct message
// @Description  Creates the conversation on first contact. Live delivery is best effort.
// @Tags         conversations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SendMessageRequest true "Message data"
// @Success      201  {object}  entity.Message
// @Failure      403  {object}  map[string]string
// @Router       /conversations/messages [post]
func (h *ConversationHandler) SendMessage(c *gin.Context) {
	userID := c.GetString("user_id")

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.convUseCase.SendMessage(userID, req.RecipientID, req.Text, req.Attachment)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

// ListMessages godoc
// @Summary      List messages in a conversation
// @Tags         conversations
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Conversation ID"
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Router       /conversations/{id}/messages [get]
func (h *ConversationHandler) ListMessages(c *gin.Context) {
	userID := c.GetString("user_id")
	page, limit := pageParams(c)

	messages, total, err := h.convUseCase.Messages(userID, c.Param("id"), page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages, "total": total, "page": page})
}

// MarkSeen godoc
// @Summary      Mark a conversation as seen
// @Tags         conversations
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Conversation ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /conversations/{id}/seen [post]
func (h *ConversationHandler) MarkSeen(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.convUseCase.MarkSeen(userID, c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Marked as seen"})
}

// DeleteConversation godoc
// @Summary      Delete a conversation
// @Tags         conversations
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Conversation ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /conversations/{id} [delete]
func (h *ConversationHandler) DeleteConversation(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.convUseCase.Delete(userID, c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Conversation deleted"})
}

// SearchChatUsers godoc
// @Summary      Search users to message
// @Tags         conversations
// @Produce      json
// @Security     BearerAuth
// @Param        q query string true "Search query"
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  map[string]interface{}
// @Router       /conversations/search [get]
func (h *ConversationHandler) SearchChatUsers(c *gin.Context) {
	userID := c.GetString("user_id")
	page, limit := pageParams(c)

	users, err := h.convUseCase.SearchUsers(userID, c.Query("q"), page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}
