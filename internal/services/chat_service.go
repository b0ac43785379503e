package services

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"event_admin/internal/models"
	"event_admin/internal/redis"
	"event_admin/internal/repository"
)

type ChatService interface {
	GetOrCreateConversation(clientID, adminID uint, orderID *uint) (*models.Conversation, error)
	GetConversation(id uint) (*models.Conversation, error)
	GetConversationsByUser(userID uint) ([]models.Conversation, error)
	UpdateConversationStatus(conversationID uint, status string) error
	SendMessage(conversationID, senderID uint, text string) (*models.Message, error)
	SendSystemMessage(conversationID, actorID uint, text string) (*models.Message, error)
	GetMessages(conversationID uint) ([]models.Message, error)
	MarkMessagesAsDelivered(conversationID, recipientID uint) error
	MarkMessagesAsRead(conversationID, viewerID uint) error
	MarkAsRead(conversationID, userID uint) error
	GetUnreadTotal(userID uint) (int64, error)
}

type chatService struct {
	conversationRepo    repository.ConversationRepository
	notificationService NotificationService
	cache               *redis.Client
	unreadCacheTTL      time.Duration
}

func NewChatService(conversationRepo repository.ConversationRepository, notificationService NotificationService, cache *redis.Client, unreadCacheTTL time.Duration) ChatService {
	return &chatService{
		conversationRepo:    conversationRepo,
		notificationService: notificationService,
		cache:               cache,
		unreadCacheTTL:      unreadCacheTTL,
	}
}

// conversationKey derives a content-addressed key from the sorted
// participant pair and the optional order linkage. Two concurrent
// get-or-create calls for the same tuple land on the same key.
func conversationKey(clientID, adminID uint, orderID *uint) string {
	a, b := clientID, adminID
	if b < a {
		a, b = b, a
	}
	var order uint
	if orderID != nil {
		order = *orderID
	}
	sum := sha256.Sum256([]byte(fmt.Sprintf("conversation:%d:%d:%d", a, b, order)))
	return hex.EncodeToString(sum[:])
}

func (s *chatService) GetOrCreateConversation(clientID, adminID uint, orderID *uint) (*models.Conversation, error) {
	if clientID == 0 || adminID == 0 {
		return nil, validation("conversation requires a client and an admin")
	}
	if clientID == adminID {
		return nil, validation("conversation participants must differ")
	}

	conv := &models.Conversation{
		Key:      conversationKey(clientID, adminID, orderID),
		ClientID: clientID,
		AdminID:  adminID,
		OrderID:  orderID,
		Status:   string(models.ConversationActive),
	}
	return s.conversationRepo.GetOrCreate(conv)
}

func (s *chatService) GetConversation(id uint) (*models.Conversation, error) {
	conv, err := s.conversationRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "conversation")
	}
	return conv, nil
}

func (s *chatService) GetConversationsByUser(userID uint) ([]models.Conversation, error) {
	return s.conversationRepo.GetByUser(userID)
}

func (s *chatService) UpdateConversationStatus(conversationID uint, status string) error {
	switch status {
	case string(models.ConversationActive), string(models.ConversationArchived), string(models.ConversationClosed):
	default:
		return validation("unknown conversation status %q", status)
	}
	return notFound(s.conversationRepo.UpdateStatus(conversationID, status), "conversation")
}

// SendMessage writes the message, lastMessage snapshot and unread bump as
// one unit, then dispatches a push notification to the recipient.
// Notification failure never surfaces to the sender.
func (s *chatService) SendMessage(conversationID, senderID uint, text string) (*models.Message, error) {
	return s.send(conversationID, senderID, text, false)
}

// SendSystemMessage posts an automated entry (status change, quote, payment)
// into the conversation on behalf of the acting admin.
func (s *chatService) SendSystemMessage(conversationID, actorID uint, text string) (*models.Message, error) {
	return s.send(conversationID, actorID, text, true)
}

func (s *chatService) send(conversationID, senderID uint, text string, system bool) (*models.Message, error) {
	if text == "" {
		return nil, validation("message text is required")
	}

	conv, err := s.conversationRepo.GetByID(conversationID)
	if err != nil {
		return nil, notFound(err, "conversation")
	}

	var recipientID uint
	var senderRole string
	switch senderID {
	case conv.ClientID:
		recipientID, senderRole = conv.AdminID, string(models.RoleClient)
	case conv.AdminID:
		recipientID, senderRole = conv.ClientID, string(models.RoleAdmin)
	default:
		return nil, validation("user %d is not a participant of conversation %d", senderID, conversationID)
	}

	msg := &models.Message{
		ConversationID:  conversationID,
		SenderID:        senderID,
		SenderRole:      senderRole,
		Text:            text,
		Status:          string(models.MessageSent),
		IsSystemMessage: system,
	}
	if err := s.conversationRepo.CreateMessage(msg, recipientID); err != nil {
		return nil, err
	}

	s.refreshUnreadCache(recipientID)

	// Best-effort push, outside the atomic unit. System messages skip it:
	// the triggering order event dispatches its own notification.
	if !system {
		if _, err := s.notificationService.SendToUser(recipientID, "New message", text,
			string(models.NotificationTypeMessage), "conversation", conversationID); err != nil {
			log.Printf("warning: failed to dispatch message notification: %v", err)
		}
	}

	return msg, nil
}

func (s *chatService) GetMessages(conversationID uint) ([]models.Message, error) {
	if _, err := s.conversationRepo.GetByID(conversationID); err != nil {
		return nil, notFound(err, "conversation")
	}
	return s.conversationRepo.GetMessages(conversationID)
}

func (s *chatService) MarkMessagesAsDelivered(conversationID, recipientID uint) error {
	if _, err := s.conversationRepo.GetByID(conversationID); err != nil {
		return notFound(err, "conversation")
	}
	_, err := s.conversationRepo.MarkDelivered(conversationID, recipientID)
	return err
}

// MarkMessagesAsRead stamps read receipts on the other participant's
// messages and zeroes the viewer's unread counter in the same transaction.
func (s *chatService) MarkMessagesAsRead(conversationID, viewerID uint) error {
	conv, err := s.conversationRepo.GetByID(conversationID)
	if err != nil {
		return notFound(err, "conversation")
	}

	var senderID uint
	switch viewerID {
	case conv.ClientID:
		senderID = conv.AdminID
	case conv.AdminID:
		senderID = conv.ClientID
	default:
		return validation("user %d is not a participant of conversation %d", viewerID, conversationID)
	}

	if _, err := s.conversationRepo.MarkReadAndReset(conversationID, viewerID, senderID, time.Now()); err != nil {
		return err
	}

	s.refreshUnreadCache(viewerID)
	return nil
}

// MarkAsRead resets the unread counter only, without touching per-message
// receipts.
func (s *chatService) MarkAsRead(conversationID, userID uint) error {
	if _, err := s.conversationRepo.GetByID(conversationID); err != nil {
		return notFound(err, "conversation")
	}
	if err := s.conversationRepo.ResetUnread(conversationID, userID); err != nil {
		return err
	}

	s.refreshUnreadCache(userID)
	return nil
}

func (s *chatService) GetUnreadTotal(userID uint) (int64, error) {
	if s.cache != nil {
		if total, err := s.cache.GetUnreadTotal(userID); err == nil {
			return total, nil
		}
	}

	total, err := s.conversationRepo.TotalUnread(userID)
	if err != nil {
		return 0, err
	}
	if s.cache != nil {
		if err := s.cache.SetUnreadTotal(userID, total, s.unreadCacheTTL); err != nil {
			log.Printf("warning: failed to cache unread total: %v", err)
		}
	}
	return total, nil
}

func (s *chatService) refreshUnreadCache(userID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteUnreadTotal(userID); err != nil {
		log.Printf("warning: failed to invalidate unread cache: %v", err)
	}
}
