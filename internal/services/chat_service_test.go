package services

import (
	"testing"

	"event_admin/internal/models"
	"event_admin/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type chatTestEnv struct {
	db          *gorm.DB
	chatService ChatService
	convRepo    repository.ConversationRepository
	push        *stubPush
}

func newChatTestEnv(t *testing.T) *chatTestEnv {
	t.Helper()
	db := newTestDB(t)

	convRepo := repository.NewConversationRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	pushStub := &stubPush{}
	notificationService := NewNotificationService(notificationRepo, pushStub)
	chatService := NewChatService(convRepo, notificationService, nil, 0)

	return &chatTestEnv{
		db:          db,
		chatService: chatService,
		convRepo:    convRepo,
		push:        pushStub,
	}
}

const (
	testClientID = uint(10)
	testAdminID  = uint(1)
)

func TestGetOrCreateConversationDeduplicates(t *testing.T) {
	env := newChatTestEnv(t)

	first, err := env.chatService.GetOrCreateConversation(testClientID, testAdminID, nil)
	require.NoError(t, err)
	second, err := env.chatService.GetOrCreateConversation(testClientID, testAdminID, nil)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	// reversed participant order lands on the same thread
	third, err := env.chatService.GetOrCreateConversation(testAdminID, testClientID, nil)
	require.NoError(t, err)
	assert.Equal(t, first.ID, third.ID)

	// a different order linkage is a different thread
	orderID := uint(7)
	linked, err := env.chatService.GetOrCreateConversation(testClientID, testAdminID, &orderID)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, linked.ID)

	require.Len(t, first.Participants, 2)
}

func TestGetOrCreateConversationValidation(t *testing.T) {
	env := newChatTestEnv(t)

	_, err := env.chatService.GetOrCreateConversation(0, testAdminID, nil)
	require.ErrorIs(t, err, ErrValidation)

	_, err = env.chatService.GetOrCreateConversation(testClientID, testClientID, nil)
	require.ErrorIs(t, err, ErrValidation)
}

func TestSendMessageBumpsUnreadAndSnapshot(t *testing.T) {
	env := newChatTestEnv(t)

	conv, err := env.chatService.GetOrCreateConversation(testClientID, testAdminID, nil)
	require.NoError(t, err)

	msg, err := env.chatService.SendMessage(conv.ID, testClientID, "hello")
	require.NoError(t, err)
	assert.Equal(t, string(models.MessageSent), msg.Status)
	assert.Equal(t, string(models.RoleClient), msg.SenderRole)

	_, err = env.chatService.SendMessage(conv.ID, testClientID, "anyone there?")
	require.NoError(t, err)

	unread, err := env.convRepo.GetUnread(conv.ID, testAdminID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	// sender's own counter is untouched
	unread, err = env.convRepo.GetUnread(conv.ID, testClientID)
	require.NoError(t, err)
	assert.Zero(t, unread)

	fetched, err := env.chatService.GetConversation(conv.ID)
	require.NoError(t, err)
	assert.Equal(t, "anyone there?", fetched.LastMessageText)
	assert.Equal(t, testClientID, fetched.LastMessageSender)
	require.NotNil(t, fetched.LastMessageAt)
}

func TestSendMessageRejectsNonParticipant(t *testing.T) {
	env := newChatTestEnv(t)

	conv, err := env.chatService.GetOrCreateConversation(testClientID, testAdminID, nil)
	require.NoError(t, err)

	_, err = env.chatService.SendMessage(conv.ID, 99, "intruding")
	require.ErrorIs(t, err, ErrValidation)

	_, err = env.chatService.SendMessage(conv.ID, testClientID, "")
	require.ErrorIs(t, err, ErrValidation)
}

func TestMarkMessagesAsReadStampsReceiptsAndResets(t *testing.T) {
	env := newChatTestEnv(t)

	conv, err := env.chatService.GetOrCreateConversation(testClientID, testAdminID, nil)
	require.NoError(t, err)

	_, err = env.chatService.SendMessage(conv.ID, testClientID, "first")
	require.NoError(t, err)
	_, err = env.chatService.SendMessage(conv.ID, testClientID, "second")
	require.NoError(t, err)

	require.NoError(t, env.chatService.MarkMessagesAsRead(conv.ID, testAdminID))

	messages, err := env.chatService.GetMessages(conv.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	for _, msg := range messages {
		assert.Equal(t, string(models.MessageRead), msg.Status)
		assert.NotNil(t, msg.ReadAt)
	}

	unread, err := env.convRepo.GetUnread(conv.ID, testAdminID)
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestMessageStatusNeverRegresses(t *testing.T) {
	env := newChatTestEnv(t)

	conv, err := env.chatService.GetOrCreateConversation(testClientID, testAdminID, nil)
	require.NoError(t, err)

	_, err = env.chatService.SendMessage(conv.ID, testClientID, "read me")
	require.NoError(t, err)
	require.NoError(t, env.chatService.MarkMessagesAsRead(conv.ID, testAdminID))

	// a later delivered sweep must not downgrade read messages
	require.NoError(t, env.chatService.MarkMessagesAsDelivered(conv.ID, testAdminID))

	messages, err := env.chatService.GetMessages(conv.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, string(models.MessageRead), messages[0].Status)
}

func TestMarkDelivered(t *testing.T) {
	env := newChatTestEnv(t)

	conv, err := env.chatService.GetOrCreateConversation(testClientID, testAdminID, nil)
	require.NoError(t, err)

	_, err = env.chatService.SendMessage(conv.ID, testClientID, "ping")
	require.NoError(t, err)
	require.NoError(t, env.chatService.MarkMessagesAsDelivered(conv.ID, testAdminID))

	messages, err := env.chatService.GetMessages(conv.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, string(models.MessageDelivered), messages[0].Status)

	// delivered does not clear the unread counter
	unread, err := env.convRepo.GetUnread(conv.ID, testAdminID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}

func TestMarkAsReadCounterOnly(t *testing.T) {
	env := newChatTestEnv(t)

	conv, err := env.chatService.GetOrCreateConversation(testClientID, testAdminID, nil)
	require.NoError(t, err)

	_, err = env.chatService.SendMessage(conv.ID, testClientID, "note")
	require.NoError(t, err)
	require.NoError(t, env.chatService.MarkAsRead(conv.ID, testAdminID))

	unread, err := env.convRepo.GetUnread(conv.ID, testAdminID)
	require.NoError(t, err)
	assert.Zero(t, unread)

	// receipts were not stamped
	messages, err := env.chatService.GetMessages(conv.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.MessageSent), messages[0].Status)
}

func TestGetUnreadTotalSpansConversations(t *testing.T) {
	env := newChatTestEnv(t)

	orderID := uint(3)
	first, err := env.chatService.GetOrCreateConversation(testClientID, testAdminID, nil)
	require.NoError(t, err)
	second, err := env.chatService.GetOrCreateConversation(testClientID, testAdminID, &orderID)
	require.NoError(t, err)

	_, err = env.chatService.SendMessage(first.ID, testClientID, "one")
	require.NoError(t, err)
	_, err = env.chatService.SendMessage(second.ID, testClientID, "two")
	require.NoError(t, err)
	_, err = env.chatService.SendMessage(second.ID, testClientID, "three")
	require.NoError(t, err)

	total, err := env.chatService.GetUnreadTotal(testAdminID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	require.NoError(t, env.chatService.MarkMessagesAsRead(second.ID, testAdminID))
	total, err = env.chatService.GetUnreadTotal(testAdminID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestUpdateConversationStatus(t *testing.T) {
	env := newChatTestEnv(t)

	conv, err := env.chatService.GetOrCreateConversation(testClientID, testAdminID, nil)
	require.NoError(t, err)

	require.NoError(t, env.chatService.UpdateConversationStatus(conv.ID, string(models.ConversationArchived)))
	fetched, err := env.chatService.GetConversation(conv.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.ConversationArchived), fetched.Status)

	err = env.chatService.UpdateConversationStatus(conv.ID, "bogus")
	require.ErrorIs(t, err, ErrValidation)

	err = env.chatService.UpdateConversationStatus(999, string(models.ConversationClosed))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSystemMessagesSkipPush(t *testing.T) {
	env := newChatTestEnv(t)

	conv, err := env.chatService.GetOrCreateConversation(testClientID, testAdminID, nil)
	require.NoError(t, err)

	_, err = env.chatService.SendSystemMessage(conv.ID, testAdminID, "Order status changed to: confirmed")
	require.NoError(t, err)

	var count int64
	require.NoError(t, env.db.Model(&models.Notification{}).Count(&count).Error)
	assert.Zero(t, count)

	// the unread counter still moves for the client
	unread, err := env.convRepo.GetUnread(conv.ID, testClientID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}
