package models

import (
	"time"

	"gorm.io/gorm"
)

// Conversation is a persistent thread between one client and one admin,
// optionally tied to an order. Key is content-addressed from the participant
// pair and order linkage, so concurrent get-or-create calls converge on the
// same row.
type Conversation struct {
	ID                uint                      `json:"id" gorm:"primaryKey"`
	Key               string                    `json:"key" gorm:"uniqueIndex;not null"`
	ClientID          uint                      `json:"client_id" gorm:"not null;index"`
	AdminID           uint                      `json:"admin_id" gorm:"not null;index"`
	OrderID           *uint                     `json:"order_id" gorm:"index"`
	Status            string                    `json:"status" gorm:"default:'active'"` // active, archived, closed
	LastMessageText   string                    `json:"last_message_text"`
	LastMessageSender uint                      `json:"last_message_sender"`
	LastMessageAt     *time.Time                `json:"last_message_at"`
	Participants      []ConversationParticipant `json:"participants" gorm:"foreignKey:ConversationID"`
	CreatedAt         time.Time                 `json:"created_at"`
	UpdatedAt         time.Time                 `json:"updated_at"`
	DeletedAt         gorm.DeletedAt            `json:"deleted_at" gorm:"index"`
}

type ConversationStatus string

const (
	ConversationActive   ConversationStatus = "active"
	ConversationArchived ConversationStatus = "archived"
	ConversationClosed   ConversationStatus = "closed"
)

// ConversationParticipant carries the per-user unread counter.
type ConversationParticipant struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ConversationID uint      `json:"conversation_id" gorm:"not null;uniqueIndex:idx_conversation_user"`
	UserID         uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_conversation_user"`
	Role           string    `json:"role"` // admin, client
	UnreadCount    int64     `json:"unread_count" gorm:"default:0"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Message struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	ConversationID  uint           `json:"conversation_id" gorm:"not null;index"`
	SenderID        uint           `json:"sender_id" gorm:"not null;index"`
	SenderRole      string         `json:"sender_role"`
	Text            string         `json:"text" gorm:"type:text;not null"`
	Status          string         `json:"status" gorm:"default:'sent'"` // sent, delivered, read
	ReadAt          *time.Time     `json:"read_at"`
	IsSystemMessage bool           `json:"is_system_message" gorm:"default:false"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type MessageStatus string

const (
	MessageSent      MessageStatus = "sent"
	MessageDelivered MessageStatus = "delivered"
	MessageRead      MessageStatus = "read"
)
