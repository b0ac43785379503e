package models

import (
	"time"

	"gorm.io/gorm"
)

// Notification records one push attempt. Failed is terminal; there is no
// retry policy.
type Notification struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	RecipientID   uint           `json:"recipient_id" gorm:"not null;index"`
	Title         string         `json:"title" gorm:"not null"`
	Body          string         `json:"body" gorm:"type:text"`
	Type          string         `json:"type"` // message, order_status, system
	ReferenceType string         `json:"reference_type"`
	ReferenceID   uint           `json:"reference_id"`
	Status        string         `json:"status" gorm:"default:'pending'"` // pending, scheduled, sent, delivered, failed, cancelled
	ScheduledAt   *time.Time     `json:"scheduled_at"`
	SentAt        *time.Time     `json:"sent_at"`
	FailureReason string         `json:"failure_reason"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type NotificationStatus string

const (
	NotificationPending   NotificationStatus = "pending"
	NotificationScheduled NotificationStatus = "scheduled"
	NotificationSent      NotificationStatus = "sent"
	NotificationDelivered NotificationStatus = "delivered"
	NotificationFailed    NotificationStatus = "failed"
	NotificationCancelled NotificationStatus = "cancelled"
)

type NotificationType string

const (
	NotificationTypeMessage     NotificationType = "message"
	NotificationTypeOrderStatus NotificationType = "order_status"
	NotificationTypeSystem      NotificationType = "system"
)
