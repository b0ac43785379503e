package handlers

import (
	"net/http"
	"time"

	"event_admin/internal/services"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationService services.NotificationService
}

func NewNotificationHandler(notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

type SendNotificationRequest struct {
	RecipientID   uint   `json:"recipient_id" binding:"required"`
	Title         string `json:"title" binding:"required"`
	Body          string `json:"body"`
	Type          string `json:"type"`
	ReferenceType string `json:"reference_type"`
	ReferenceID   uint   `json:"reference_id"`
}

func (h *NotificationHandler) Send(c *gin.Context) {
	var req SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	notification, err := h.notificationService.SendToUser(
		req.RecipientID, req.Title, req.Body, req.Type, req.ReferenceType, req.ReferenceID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, notification)
}

type ScheduleNotificationRequest struct {
	RecipientID uint      `json:"recipient_id" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Body        string    `json:"body"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

func (h *NotificationHandler) Schedule(c *gin.Context) {
	var req ScheduleNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	notification, err := h.notificationService.Schedule(req.RecipientID, req.Title, req.Body, req.ScheduledAt)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, notification)
}

func (h *NotificationHandler) CancelScheduled(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.notificationService.CancelScheduled(id); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"status": "cancelled"})
}

func (h *NotificationHandler) GetByRecipient(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}

	notifications, err := h.notificationService.GetByRecipient(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, notifications)
}

type RegisterDeviceRequest struct {
	UserID   uint   `json:"user_id" binding:"required"`
	Token    string `json:"token" binding:"required"`
	Platform string `json:"platform"`
}

func (h *NotificationHandler) RegisterDevice(c *gin.Context) {
	var req RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.notificationService.RegisterDevice(req.UserID, req.Token, req.Platform); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, gin.H{"registered": true})
}

type UnregisterDeviceRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Token  string `json:"token" binding:"required"`
}

func (h *NotificationHandler) UnregisterDevice(c *gin.Context) {
	var req UnregisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.notificationService.UnregisterDevice(req.UserID, req.Token); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"unregistered": true})
}
