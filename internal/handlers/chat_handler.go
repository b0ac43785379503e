package handlers

import (
	"net/http"

	"event_admin/internal/services"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatService services.ChatService
}

func NewChatHandler(chatService services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type GetOrCreateConversationRequest struct {
	ClientID uint  `json:"client_id" binding:"required"`
	AdminID  uint  `json:"admin_id" binding:"required"`
	OrderID  *uint `json:"order_id"`
}

func (h *ChatHandler) GetOrCreateConversation(c *gin.Context) {
	var req GetOrCreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	conv, err := h.chatService.GetOrCreateConversation(req.ClientID, req.AdminID, req.OrderID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, conv)
}

func (h *ChatHandler) GetConversation(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	conv, err := h.chatService.GetConversation(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, conv)
}

func (h *ChatHandler) GetConversationsByUser(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}

	convs, err := h.chatService.GetConversationsByUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, convs)
}

type UpdateConversationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ChatHandler) UpdateConversationStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateConversationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.chatService.UpdateConversationStatus(id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"status": req.Status})
}

type SendMessageRequest struct {
	SenderID uint   `json:"sender_id" binding:"required"`
	Text     string `json:"text" binding:"required"`
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	msg, err := h.chatService.SendMessage(id, req.SenderID, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, msg)
}

func (h *ChatHandler) GetMessages(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	messages, err := h.chatService.GetMessages(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, messages)
}

type MarkDeliveredRequest struct {
	RecipientID uint `json:"recipient_id" binding:"required"`
}

func (h *ChatHandler) MarkDelivered(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req MarkDeliveredRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.chatService.MarkMessagesAsDelivered(id, req.RecipientID); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"status": "delivered"})
}

type MarkReadRequest struct {
	UserID uint `json:"user_id" binding:"required"`
	// CounterOnly resets the unread counter without stamping receipts.
	CounterOnly bool `json:"counter_only"`
}

func (h *ChatHandler) MarkRead(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	var err error
	if req.CounterOnly {
		err = h.chatService.MarkAsRead(id, req.UserID)
	} else {
		err = h.chatService.MarkMessagesAsRead(id, req.UserID)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"status": "read"})
}

func (h *ChatHandler) GetUnreadTotal(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}

	total, err := h.chatService.GetUnreadTotal(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"unread": total})
}
