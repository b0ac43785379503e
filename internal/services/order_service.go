package services

import (
	"fmt"
	"log"
	"time"

	"event_admin/internal/models"
	"event_admin/internal/redis"
	"event_admin/internal/repository"

	"github.com/google/uuid"
)

const ordersListCache = "orders"

type OrderService interface {
	CreateOrder(order *models.Order) error
	GetOrder(id uint) (*models.Order, error)
	GetOrders() ([]models.Order, error)
	GetOrdersByStatus(status string) ([]models.Order, error)
	GetOrdersByClient(clientID uint) ([]models.Order, error)
	UpdateStatus(orderID uint, newStatus, notes string, actorID uint) (*models.Order, error)
	CreateQuote(orderID uint, lines []models.QuoteLine, discount int64, currency string, actorID uint) (*models.Order, error)
	AddPayment(orderID uint, amount int64, method, reference string, actorID uint) (*models.Order, error)
	CancelOrder(orderID uint, reason string, refundAmount int64, actorID uint) (*models.Order, error)
	UpdateOrderDetails(order *models.Order) error
	HardDeleteOrder(id uint) error
}

type orderService struct {
	orderRepo           repository.OrderRepository
	chatService         ChatService
	notificationService NotificationService
	cache               *redis.Client
	cacheTTL            time.Duration
}

func NewOrderService(orderRepo repository.OrderRepository, chatService ChatService, notificationService NotificationService, cache *redis.Client, cacheTTL time.Duration) OrderService {
	return &orderService{
		orderRepo:           orderRepo,
		chatService:         chatService,
		notificationService: notificationService,
		cache:               cache,
		cacheTTL:            cacheTTL,
	}
}

// allowedTransitions is the explicit edge set of the order lifecycle.
// Re-quoting an already quoted order is permitted; completed and cancelled
// are terminal.
var allowedTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderPending:   {models.OrderQuoted, models.OrderConfirmed, models.OrderCancelled},
	models.OrderQuoted:    {models.OrderQuoted, models.OrderConfirmed, models.OrderCancelled},
	models.OrderConfirmed: {models.OrderCompleted, models.OrderCancelled},
	models.OrderCompleted: {},
	models.OrderCancelled: {},
}

func validateTransition(from, to string) error {
	next, ok := allowedTransitions[models.OrderStatus(from)]
	if !ok {
		return validation("unknown order status %q", from)
	}
	for _, s := range next {
		if string(s) == to {
			return nil
		}
	}
	return validation("cannot transition order from %q to %q", from, to)
}

func (s *orderService) CreateOrder(order *models.Order) error {
	if order.ClientName == "" {
		return validation("client name is required")
	}
	if err := order.Details.ValidateFor(order.OrderType); err != nil {
		return validation("%s", err.Error())
	}

	if err := s.orderRepo.Create(order); err != nil {
		return err
	}

	s.invalidateListCache()
	return nil
}

func (s *orderService) GetOrder(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "order")
	}
	return order, nil
}

func (s *orderService) GetOrders() ([]models.Order, error) {
	if s.cache != nil {
		var cached []models.Order
		if err := s.cache.GetList(ordersListCache, &cached); err == nil {
			return cached, nil
		}
	}

	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetList(ordersListCache, orders, s.cacheTTL); err != nil {
			log.Printf("warning: failed to cache order list: %v", err)
		}
	}
	return orders, nil
}

func (s *orderService) GetOrdersByStatus(status string) ([]models.Order, error) {
	return s.orderRepo.GetByStatus(status)
}

func (s *orderService) GetOrdersByClient(clientID uint) ([]models.Order, error) {
	return s.orderRepo.GetByClientID(clientID)
}

// UpdateStatus appends the audit entry and flips the status atomically, then
// fans out the system chat message and push notification best-effort. A
// failed side effect never rolls back the transition.
func (s *orderService) UpdateStatus(orderID uint, newStatus, notes string, actorID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, notFound(err, "order")
	}
	if err := validateTransition(order.Status, newStatus); err != nil {
		return nil, err
	}

	entry := &models.OrderStatusEntry{
		Status:    newStatus,
		ChangedBy: actorID,
		Notes:     notes,
		ChangedAt: time.Now(),
	}
	if err := s.orderRepo.AppendStatus(orderID, entry); err != nil {
		return nil, err
	}

	s.invalidateListCache()
	s.emitOrderEvent(order, actorID, fmt.Sprintf("Order status changed to: %s", newStatus))

	return s.GetOrder(orderID)
}

// CreateQuote overwrites the order's quote and forces the quoted status in
// one transaction.
func (s *orderService) CreateQuote(orderID uint, lines []models.QuoteLine, discount int64, currency string, actorID uint) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, validation("quote requires at least one line")
	}
	if discount < 0 {
		return nil, validation("discount cannot be negative")
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, notFound(err, "order")
	}
	if err := validateTransition(order.Status, string(models.OrderQuoted)); err != nil {
		return nil, err
	}

	var total int64
	for _, line := range lines {
		if line.Amount < 0 {
			return nil, validation("quote line %q has a negative amount", line.Item)
		}
		total += line.Amount
	}
	if currency == "" {
		currency = "NGN"
	}

	quote := models.Quote{
		Lines:       lines,
		Discount:    discount,
		Total:       total,
		FinalAmount: total - discount,
		Currency:    currency,
	}
	entry := &models.OrderStatusEntry{
		Status:    string(models.OrderQuoted),
		ChangedBy: actorID,
		Notes:     "Quote created",
		ChangedAt: time.Now(),
	}
	if err := s.orderRepo.SaveQuote(orderID, quote, entry); err != nil {
		return nil, err
	}

	s.invalidateListCache()
	s.emitOrderEvent(order, actorID,
		fmt.Sprintf("Quote created with final amount %d %s", quote.FinalAmount, quote.Currency))

	return s.GetOrder(orderID)
}

// AddPayment appends a ledger transaction; the repository recomputes
// amountPaid, amountDue and the payment status atomically.
func (s *orderService) AddPayment(orderID uint, amount int64, method, reference string, actorID uint) (*models.Order, error) {
	if amount <= 0 {
		return nil, validation("payment amount must be positive")
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, notFound(err, "order")
	}
	if !order.Quote.IsSet() {
		return nil, validation("order %s has no quote to pay against", order.OrderNumber)
	}

	if reference == "" {
		reference = uuid.NewString()
	}
	txn := models.PaymentTransaction{
		Reference: reference,
		Amount:    amount,
		Method:    method,
		PaidAt:    time.Now(),
	}
	updated, err := s.orderRepo.AppendPayment(orderID, txn)
	if err != nil {
		return nil, err
	}

	s.invalidateListCache()
	s.emitOrderEvent(order, actorID,
		fmt.Sprintf("Payment of %d received, balance due %d", amount, updated.Payment.AmountDue))

	return s.GetOrder(orderID)
}

func (s *orderService) CancelOrder(orderID uint, reason string, refundAmount int64, actorID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, notFound(err, "order")
	}
	if err := validateTransition(order.Status, string(models.OrderCancelled)); err != nil {
		return nil, err
	}

	entry := &models.OrderStatusEntry{
		ChangedBy: actorID,
		Notes:     reason,
		ChangedAt: time.Now(),
	}
	if err := s.orderRepo.Cancel(orderID, entry, reason, refundAmount); err != nil {
		return nil, err
	}

	s.invalidateListCache()
	s.emitOrderEvent(order, actorID, "Order status changed to: cancelled")

	return s.GetOrder(orderID)
}

func (s *orderService) UpdateOrderDetails(order *models.Order) error {
	if err := order.Details.ValidateFor(order.OrderType); err != nil {
		return validation("%s", err.Error())
	}
	if err := s.orderRepo.UpdateDetails(order); err != nil {
		return err
	}
	s.invalidateListCache()
	return nil
}

func (s *orderService) HardDeleteOrder(id uint) error {
	if _, err := s.orderRepo.GetByID(id); err != nil {
		return notFound(err, "order")
	}
	if err := s.orderRepo.HardDelete(id); err != nil {
		return err
	}
	s.invalidateListCache()
	return nil
}

// emitOrderEvent posts the system chat message and push notification for an
// order event. Both are best-effort; failures are logged and swallowed.
func (s *orderService) emitOrderEvent(order *models.Order, actorID uint, text string) {
	if order.ClientID == nil {
		// Guest orders have no chat thread or push recipient.
		return
	}

	conv, err := s.chatService.GetOrCreateConversation(*order.ClientID, actorID, &order.ID)
	if err != nil {
		log.Printf("warning: failed to open conversation for order %s: %v", order.OrderNumber, err)
	} else if _, err := s.chatService.SendSystemMessage(conv.ID, actorID, text); err != nil {
		log.Printf("warning: failed to post system message for order %s: %v", order.OrderNumber, err)
	}

	if _, err := s.notificationService.SendToUser(*order.ClientID,
		fmt.Sprintf("Order %s", order.OrderNumber), text,
		string(models.NotificationTypeOrderStatus), "order", order.ID); err != nil {
		log.Printf("warning: failed to dispatch order notification: %v", err)
	}
}

func (s *orderService) invalidateListCache() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateList(ordersListCache); err != nil {
		log.Printf("warning: failed to invalidate order list cache: %v", err)
	}
}
