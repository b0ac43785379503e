package services

import (
	"fmt"
	"testing"

	"event_admin/internal/models"
	"event_admin/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type orderTestEnv struct {
	db           *gorm.DB
	orderService OrderService
	chatService  ChatService
	convRepo     repository.ConversationRepository
	push         *stubPush
}

func newOrderTestEnv(t *testing.T) *orderTestEnv {
	t.Helper()
	db := newTestDB(t)

	orderRepo := repository.NewOrderRepository(db)
	convRepo := repository.NewConversationRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	pushStub := &stubPush{}
	notificationService := NewNotificationService(notificationRepo, pushStub)
	chatService := NewChatService(convRepo, notificationService, nil, 0)
	orderService := NewOrderService(orderRepo, chatService, notificationService, nil, 0)

	return &orderTestEnv{
		db:           db,
		orderService: orderService,
		chatService:  chatService,
		convRepo:     convRepo,
		push:         pushStub,
	}
}

func eventOrder(clientID *uint) *models.Order {
	return &models.Order{
		OrderType:  string(models.OrderTypeEvent),
		ClientID:   clientID,
		ClientName: "Amaka Obi",
		Details: models.OrderDetails{
			Event: &models.EventOrderDetails{
				EventType:  "wedding",
				GuestCount: 150,
				Venue:      "Lagos",
			},
		},
		CreatedBy: 1,
	}
}

func TestCreateOrderAssignsNumberAndHistory(t *testing.T) {
	env := newOrderTestEnv(t)

	order := eventOrder(nil)
	require.NoError(t, env.orderService.CreateOrder(order))

	assert.Equal(t, "ORD-001", order.OrderNumber)
	assert.Equal(t, string(models.OrderPending), order.Status)
	require.Len(t, order.StatusHistory, 1)
	assert.Equal(t, string(models.OrderPending), order.StatusHistory[0].Status)
}

func TestCreateOrderNumbersAreSequential(t *testing.T) {
	env := newOrderTestEnv(t)

	for i := 1; i <= 3; i++ {
		order := eventOrder(nil)
		require.NoError(t, env.orderService.CreateOrder(order))
		assert.Equal(t, fmt.Sprintf("ORD-%03d", i), order.OrderNumber)
	}
}

func TestCreateOrderRejectsMismatchedDetails(t *testing.T) {
	env := newOrderTestEnv(t)

	order := eventOrder(nil)
	order.OrderType = string(models.OrderTypeService)
	err := env.orderService.CreateOrder(order)
	require.ErrorIs(t, err, ErrValidation)

	order = eventOrder(nil)
	order.Details.Service = &models.ServiceOrderDetails{ServiceName: "catering"}
	err = env.orderService.CreateOrder(order)
	require.ErrorIs(t, err, ErrValidation)

	order = eventOrder(nil)
	order.ClientName = ""
	err = env.orderService.CreateOrder(order)
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateStatusAppendsHistory(t *testing.T) {
	env := newOrderTestEnv(t)

	order := eventOrder(nil)
	require.NoError(t, env.orderService.CreateOrder(order))

	updated, err := env.orderService.UpdateStatus(order.ID, string(models.OrderConfirmed), "client approved", 1)
	require.NoError(t, err)
	assert.Equal(t, string(models.OrderConfirmed), updated.Status)
	require.Len(t, updated.StatusHistory, 2)
	assert.Equal(t, string(models.OrderConfirmed), updated.StatusHistory[1].Status)
	assert.Equal(t, "client approved", updated.StatusHistory[1].Notes)

	updated, err = env.orderService.UpdateStatus(order.ID, string(models.OrderCompleted), "", 1)
	require.NoError(t, err)
	assert.Equal(t, string(models.OrderCompleted), updated.Status)
	require.Len(t, updated.StatusHistory, 3)
}

func TestUpdateStatusRejectsIllegalTransitions(t *testing.T) {
	env := newOrderTestEnv(t)

	order := eventOrder(nil)
	require.NoError(t, env.orderService.CreateOrder(order))

	// pending cannot jump straight to completed
	_, err := env.orderService.UpdateStatus(order.ID, string(models.OrderCompleted), "", 1)
	require.ErrorIs(t, err, ErrValidation)

	_, err = env.orderService.UpdateStatus(order.ID, string(models.OrderConfirmed), "", 1)
	require.NoError(t, err)
	_, err = env.orderService.UpdateStatus(order.ID, string(models.OrderCompleted), "", 1)
	require.NoError(t, err)

	// completed is terminal
	_, err = env.orderService.UpdateStatus(order.ID, string(models.OrderCancelled), "", 1)
	require.ErrorIs(t, err, ErrValidation)

	fetched, err := env.orderService.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.OrderCompleted), fetched.Status)
	assert.Len(t, fetched.StatusHistory, 3)
}

func TestCreateQuoteComputesTotals(t *testing.T) {
	env := newOrderTestEnv(t)

	order := eventOrder(nil)
	require.NoError(t, env.orderService.CreateOrder(order))

	lines := []models.QuoteLine{
		{Item: "Venue decoration", Amount: 400000},
		{Item: "Catering", Amount: 80000},
	}
	updated, err := env.orderService.CreateQuote(order.ID, lines, 0, "", 1)
	require.NoError(t, err)

	assert.Equal(t, string(models.OrderQuoted), updated.Status)
	assert.Equal(t, int64(480000), updated.Quote.Total)
	assert.Equal(t, int64(480000), updated.Quote.FinalAmount)
	assert.Equal(t, "NGN", updated.Quote.Currency)
	assert.Equal(t, int64(480000), updated.Payment.AmountDue)
}

func TestCreateQuoteAppliesDiscount(t *testing.T) {
	env := newOrderTestEnv(t)

	order := eventOrder(nil)
	require.NoError(t, env.orderService.CreateOrder(order))

	lines := []models.QuoteLine{{Item: "Full package", Amount: 500000}}
	updated, err := env.orderService.CreateQuote(order.ID, lines, 50000, "USD", 1)
	require.NoError(t, err)

	assert.Equal(t, int64(500000), updated.Quote.Total)
	assert.Equal(t, int64(450000), updated.Quote.FinalAmount)
	assert.Equal(t, "USD", updated.Quote.Currency)
}

func TestCreateQuoteValidation(t *testing.T) {
	env := newOrderTestEnv(t)

	order := eventOrder(nil)
	require.NoError(t, env.orderService.CreateOrder(order))

	_, err := env.orderService.CreateQuote(order.ID, nil, 0, "", 1)
	require.ErrorIs(t, err, ErrValidation)

	_, err = env.orderService.CreateQuote(order.ID, []models.QuoteLine{{Item: "x", Amount: 100}}, -1, "", 1)
	require.ErrorIs(t, err, ErrValidation)

	_, err = env.orderService.CreateQuote(order.ID, []models.QuoteLine{{Item: "x", Amount: -100}}, 0, "", 1)
	require.ErrorIs(t, err, ErrValidation)
}

func TestRequoteAllowed(t *testing.T) {
	env := newOrderTestEnv(t)

	order := eventOrder(nil)
	require.NoError(t, env.orderService.CreateOrder(order))

	_, err := env.orderService.CreateQuote(order.ID, []models.QuoteLine{{Item: "a", Amount: 100000}}, 0, "", 1)
	require.NoError(t, err)

	updated, err := env.orderService.CreateQuote(order.ID, []models.QuoteLine{{Item: "b", Amount: 250000}}, 0, "", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(250000), updated.Quote.FinalAmount)
	assert.Equal(t, int64(250000), updated.Payment.AmountDue)
}

func TestAddPaymentLedger(t *testing.T) {
	env := newOrderTestEnv(t)

	order := eventOrder(nil)
	require.NoError(t, env.orderService.CreateOrder(order))
	_, err := env.orderService.CreateQuote(order.ID, []models.QuoteLine{{Item: "package", Amount: 480000}}, 0, "", 1)
	require.NoError(t, err)

	updated, err := env.orderService.AddPayment(order.ID, 200000, "transfer", "TX-1", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(200000), updated.Payment.AmountPaid)
	assert.Equal(t, int64(280000), updated.Payment.AmountDue)
	assert.Equal(t, models.PaymentPartial, updated.Payment.Status)
	require.Len(t, updated.Payment.Transactions, 1)

	updated, err = env.orderService.AddPayment(order.ID, 280000, "transfer", "TX-2", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(480000), updated.Payment.AmountPaid)
	assert.Equal(t, int64(0), updated.Payment.AmountDue)
	assert.Equal(t, models.PaymentCompleted, updated.Payment.Status)
	require.Len(t, updated.Payment.Transactions, 2)

	var sum int64
	for _, txn := range updated.Payment.Transactions {
		sum += txn.Amount
	}
	assert.Equal(t, updated.Payment.AmountPaid, sum)
}

func TestAddPaymentGeneratesReference(t *testing.T) {
	env := newOrderTestEnv(t)

	order := eventOrder(nil)
	require.NoError(t, env.orderService.CreateOrder(order))
	_, err := env.orderService.CreateQuote(order.ID, []models.QuoteLine{{Item: "package", Amount: 100000}}, 0, "", 1)
	require.NoError(t, err)

	updated, err := env.orderService.AddPayment(order.ID, 50000, "cash", "", 1)
	require.NoError(t, err)
	require.Len(t, updated.Payment.Transactions, 1)
	assert.NotEmpty(t, updated.Payment.Transactions[0].Reference)
}

func TestAddPaymentRequiresQuote(t *testing.T) {
	env := newOrderTestEnv(t)

	order := eventOrder(nil)
	require.NoError(t, env.orderService.CreateOrder(order))

	_, err := env.orderService.AddPayment(order.ID, 1000, "cash", "", 1)
	require.ErrorIs(t, err, ErrValidation)

	_, err = env.orderService.AddPayment(order.ID, 0, "cash", "", 1)
	require.ErrorIs(t, err, ErrValidation)
}

func TestCancelOrderRecordsReasonAndRefund(t *testing.T) {
	env := newOrderTestEnv(t)

	order := eventOrder(nil)
	require.NoError(t, env.orderService.CreateOrder(order))

	updated, err := env.orderService.CancelOrder(order.ID, "client postponed", 25000, 1)
	require.NoError(t, err)
	assert.Equal(t, string(models.OrderCancelled), updated.Status)
	assert.Equal(t, "client postponed", updated.CancellationReason)
	assert.Equal(t, int64(25000), updated.RefundAmount)
	require.Len(t, updated.StatusHistory, 2)
	assert.Equal(t, string(models.OrderCancelled), updated.StatusHistory[1].Status)

	// cancelled is terminal
	_, err = env.orderService.UpdateStatus(order.ID, string(models.OrderConfirmed), "", 1)
	require.ErrorIs(t, err, ErrValidation)
}

func TestOrderEventsReachClientConversation(t *testing.T) {
	env := newOrderTestEnv(t)

	clientID := uint(2)
	order := eventOrder(&clientID)
	require.NoError(t, env.orderService.CreateOrder(order))

	_, err := env.orderService.UpdateStatus(order.ID, string(models.OrderConfirmed), "", 1)
	require.NoError(t, err)

	conv, err := env.chatService.GetOrCreateConversation(clientID, 1, &order.ID)
	require.NoError(t, err)

	messages, err := env.chatService.GetMessages(conv.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].IsSystemMessage)
	assert.Contains(t, messages[0].Text, "confirmed")

	unread, err := env.convRepo.GetUnread(conv.ID, clientID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}

func TestGuestOrdersSkipSideEffects(t *testing.T) {
	env := newOrderTestEnv(t)

	order := eventOrder(nil)
	require.NoError(t, env.orderService.CreateOrder(order))
	_, err := env.orderService.UpdateStatus(order.ID, string(models.OrderConfirmed), "", 1)
	require.NoError(t, err)

	var convCount int64
	require.NoError(t, env.db.Model(&models.Conversation{}).Count(&convCount).Error)
	assert.Zero(t, convCount)
	assert.Empty(t, env.push.sent)
}

func TestHardDeleteRemovesOrderAndHistory(t *testing.T) {
	env := newOrderTestEnv(t)

	order := eventOrder(nil)
	require.NoError(t, env.orderService.CreateOrder(order))
	require.NoError(t, env.orderService.HardDeleteOrder(order.ID))

	_, err := env.orderService.GetOrder(order.ID)
	require.ErrorIs(t, err, ErrNotFound)

	var entries int64
	require.NoError(t, env.db.Model(&models.OrderStatusEntry{}).
		Where("order_id = ?", order.ID).Count(&entries).Error)
	assert.Zero(t, entries)
}

func TestGetOrderNotFound(t *testing.T) {
	env := newOrderTestEnv(t)

	_, err := env.orderService.GetOrder(999)
	require.ErrorIs(t, err, ErrNotFound)
}
