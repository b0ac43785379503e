package repository

import (
	"time"

	"event_admin/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConversationRepository interface {
	GetOrCreate(conv *models.Conversation) (*models.Conversation, error)
	GetByID(id uint) (*models.Conversation, error)
	GetByUser(userID uint) ([]models.Conversation, error)
	UpdateStatus(conversationID uint, status string) error
	CreateMessage(msg *models.Message, recipientID uint) error
	GetMessages(conversationID uint) ([]models.Message, error)
	MarkDelivered(conversationID, recipientID uint) (int64, error)
	MarkRead(conversationID, senderID uint, readAt time.Time) (int64, error)
	MarkReadAndReset(conversationID, viewerID, senderID uint, readAt time.Time) (int64, error)
	ResetUnread(conversationID, userID uint) error
	GetUnread(conversationID, userID uint) (int64, error)
	TotalUnread(userID uint) (int64, error)
}

type conversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

// GetOrCreate upserts on the content-addressed conversation key. Concurrent
// callers race on the unique index instead of a query-then-create check, so
// at most one row ever exists per key.
func (r *conversationRepository) GetOrCreate(conv *models.Conversation) (*models.Conversation, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).Create(conv)
		if res.Error != nil {
			return res.Error
		}

		var existing models.Conversation
		if err := tx.Where("key = ?", conv.Key).First(&existing).Error; err != nil {
			return err
		}

		if res.RowsAffected > 0 {
			// Fresh conversation: seed both unread counters at zero.
			participants := []models.ConversationParticipant{
				{ConversationID: existing.ID, UserID: existing.ClientID, Role: string(models.RoleClient)},
				{ConversationID: existing.ID, UserID: existing.AdminID, Role: string(models.RoleAdmin)},
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&participants).Error; err != nil {
				return err
			}
		}

		*conv = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(conv.ID)
}

func (r *conversationRepository) GetByID(id uint) (*models.Conversation, error) {
	var conv models.Conversation
	err := r.db.Preload("Participants").First(&conv, id).Error
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *conversationRepository) GetByUser(userID uint) ([]models.Conversation, error) {
	var convs []models.Conversation
	err := r.db.Preload("Participants").
		Where("client_id = ? OR admin_id = ?", userID, userID).
		Order("last_message_at DESC NULLS LAST").
		Find(&convs).Error
	return convs, err
}

func (r *conversationRepository) UpdateStatus(conversationID uint, status string) error {
	res := r.db.Model(&models.Conversation{}).
		Where("id = ?", conversationID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CreateMessage writes the message, refreshes the lastMessage snapshot and
// bumps the recipient's unread counter as one atomic unit.
func (r *conversationRepository) CreateMessage(msg *models.Message, recipientID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var conv models.Conversation
		if err := tx.First(&conv, msg.ConversationID).Error; err != nil {
			return err
		}

		if err := tx.Create(msg).Error; err != nil {
			return err
		}

		now := time.Now()
		if err := tx.Model(&conv).Updates(map[string]interface{}{
			"last_message_text":   msg.Text,
			"last_message_sender": msg.SenderID,
			"last_message_at":     now,
		}).Error; err != nil {
			return err
		}

		return tx.Model(&models.ConversationParticipant{}).
			Where("conversation_id = ? AND user_id = ?", msg.ConversationID, recipientID).
			UpdateColumn("unread_count", gorm.Expr("unread_count + 1")).Error
	})
}

func (r *conversationRepository) GetMessages(conversationID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("conversation_id = ?", conversationID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	return messages, err
}

// MarkDelivered moves every sent message not authored by the recipient to
// delivered. Read messages are untouched: status never regresses.
func (r *conversationRepository) MarkDelivered(conversationID, recipientID uint) (int64, error) {
	res := r.db.Model(&models.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND status = ?",
			conversationID, recipientID, string(models.MessageSent)).
		Update("status", string(models.MessageDelivered))
	return res.RowsAffected, res.Error
}

// MarkRead moves sent and delivered messages from the given sender to read,
// stamping the read time.
func (r *conversationRepository) MarkRead(conversationID, senderID uint, readAt time.Time) (int64, error) {
	res := r.db.Model(&models.Message{}).
		Where("conversation_id = ? AND sender_id = ? AND status IN ?",
			conversationID, senderID,
			[]string{string(models.MessageSent), string(models.MessageDelivered)}).
		Updates(map[string]interface{}{
			"status":  string(models.MessageRead),
			"read_at": readAt,
		})
	return res.RowsAffected, res.Error
}

// MarkReadAndReset combines the read-receipt batch and the unread-counter
// reset in one transaction, so the two cannot diverge on partial failure.
func (r *conversationRepository) MarkReadAndReset(conversationID, viewerID, senderID uint, readAt time.Time) (int64, error) {
	var marked int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Message{}).
			Where("conversation_id = ? AND sender_id = ? AND status IN ?",
				conversationID, senderID,
				[]string{string(models.MessageSent), string(models.MessageDelivered)}).
			Updates(map[string]interface{}{
				"status":  string(models.MessageRead),
				"read_at": readAt,
			})
		if res.Error != nil {
			return res.Error
		}
		marked = res.RowsAffected

		return tx.Model(&models.ConversationParticipant{}).
			Where("conversation_id = ? AND user_id = ?", conversationID, viewerID).
			Update("unread_count", 0).Error
	})
	return marked, err
}

func (r *conversationRepository) ResetUnread(conversationID, userID uint) error {
	return r.db.Model(&models.ConversationParticipant{}).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Update("unread_count", 0).Error
}

func (r *conversationRepository) GetUnread(conversationID, userID uint) (int64, error) {
	var participant models.ConversationParticipant
	err := r.db.Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		First(&participant).Error
	if err != nil {
		return 0, err
	}
	return participant.UnreadCount, nil
}

func (r *conversationRepository) TotalUnread(userID uint) (int64, error) {
	var total int64
	err := r.db.Model(&models.ConversationParticipant{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(unread_count), 0)").
		Scan(&total).Error
	return total, err
}
