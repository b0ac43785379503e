package handlers

import (
	"net/http"
	"strconv"

	"event_admin/internal/models"
	"event_admin/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type CreateOrderRequest struct {
	OrderType   string              `json:"order_type" binding:"required"`
	ClientID    *uint               `json:"client_id"`
	ClientName  string              `json:"client_name" binding:"required"`
	ClientEmail string              `json:"client_email"`
	ClientPhone string              `json:"client_phone"`
	Details     models.OrderDetails `json:"details"`
	CreatedBy   uint                `json:"created_by"`
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order := &models.Order{
		OrderType:   req.OrderType,
		ClientID:    req.ClientID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		Details:     req.Details,
		CreatedBy:   req.CreatedBy,
	}
	if err := h.orderService.CreateOrder(order); err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, order)
}

func (h *OrderHandler) GetOrders(c *gin.Context) {
	if status := c.Query("status"); status != "" {
		orders, err := h.orderService.GetOrdersByStatus(status)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, orders)
		return
	}

	if clientID := c.Query("client_id"); clientID != "" {
		id, err := strconv.ParseUint(clientID, 10, 32)
		if err != nil {
			respondErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid client_id")
			return
		}
		orders, err := h.orderService.GetOrdersByClient(uint(id))
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, orders)
		return
	}

	orders, err := h.orderService.GetOrders()
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, order)
}

type UpdateStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Notes   string `json:"notes"`
	ActorID uint   `json:"actor_id"`
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := h.orderService.UpdateStatus(id, req.Status, req.Notes, req.ActorID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, order)
}

type CreateQuoteRequest struct {
	Lines    []models.QuoteLine `json:"lines" binding:"required"`
	Discount int64              `json:"discount"`
	Currency string             `json:"currency"`
	ActorID  uint               `json:"actor_id"`
}

func (h *OrderHandler) CreateQuote(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := h.orderService.CreateQuote(id, req.Lines, req.Discount, req.Currency, req.ActorID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, order)
}

type AddPaymentRequest struct {
	Amount    int64  `json:"amount" binding:"required"`
	Method    string `json:"method"`
	Reference string `json:"reference"`
	ActorID   uint   `json:"actor_id"`
}

func (h *OrderHandler) AddPayment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := h.orderService.AddPayment(id, req.Amount, req.Method, req.Reference, req.ActorID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, order)
}

type CancelOrderRequest struct {
	Reason       string `json:"reason" binding:"required"`
	RefundAmount int64  `json:"refund_amount"`
	ActorID      uint   `json:"actor_id"`
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := h.orderService.CancelOrder(id, req.Reason, req.RefundAmount, req.ActorID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, order)
}

type UpdateOrderRequest struct {
	ClientName  string              `json:"client_name"`
	ClientEmail string              `json:"client_email"`
	ClientPhone string              `json:"client_phone"`
	Details     models.OrderDetails `json:"details"`
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(id)
	if err != nil {
		respondError(c, err)
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if req.ClientName != "" {
		order.ClientName = req.ClientName
	}
	if req.ClientEmail != "" {
		order.ClientEmail = req.ClientEmail
	}
	if req.ClientPhone != "" {
		order.ClientPhone = req.ClientPhone
	}
	if req.Details != (models.OrderDetails{}) {
		order.Details = req.Details
	}

	if err := h.orderService.UpdateOrderDetails(order); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, order)
}

// DeleteOrder is the only physical-removal path; the dashboard's regular
// delete buttons go through CancelOrder instead.
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.orderService.HardDeleteOrder(id); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": id})
}
