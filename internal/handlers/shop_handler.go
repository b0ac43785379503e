package handlers

import (
	"net/http"
	"strconv"

	"event_admin/internal/models"
	"event_admin/internal/services"

	"github.com/gin-gonic/gin"
)

type ShopHandler struct {
	shopService services.ShopService
}

func NewShopHandler(shopService services.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

type ProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	ImageKey    string `json:"image_key"`
	InStock     *bool  `json:"in_stock"`
}

func (h *ShopHandler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product := &models.ShopProduct{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageKey:    req.ImageKey,
		InStock:     true,
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if err := h.shopService.CreateProduct(product); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, product)
}

func (h *ShopHandler) GetProducts(c *gin.Context) {
	products, err := h.shopService.GetProducts()
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, products)
}

func (h *ShopHandler) GetProduct(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	product, err := h.shopService.GetProduct(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, product)
}

func (h *ShopHandler) UpdateProduct(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	product, err := h.shopService.GetProduct(id)
	if err != nil {
		respondError(c, err)
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	if req.ImageKey != "" {
		product.ImageKey = req.ImageKey
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if err := h.shopService.UpdateProduct(product); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, product)
}

func (h *ShopHandler) DeleteProduct(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.shopService.DeleteProduct(id); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": id})
}

type ShopOrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

type CreateShopOrderRequest struct {
	ClientID    *uint                  `json:"client_id"`
	ClientName  string                 `json:"client_name" binding:"required"`
	ClientEmail string                 `json:"client_email"`
	ClientPhone string                 `json:"client_phone"`
	Items       []ShopOrderItemRequest `json:"items" binding:"required"`
}

func (h *ShopHandler) CreateOrder(c *gin.Context) {
	var req CreateShopOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order := &models.ShopOrder{
		ClientID:    req.ClientID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
	}
	items := make([]services.ShopOrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, services.ShopOrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	if err := h.shopService.CreateOrder(order, items); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, order)
}

func (h *ShopHandler) GetOrders(c *gin.Context) {
	if clientID := c.Query("client_id"); clientID != "" {
		id, err := strconv.ParseUint(clientID, 10, 32)
		if err != nil {
			respondErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid client_id")
			return
		}
		orders, err := h.shopService.GetOrdersByClient(uint(id))
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, orders)
		return
	}

	orders, err := h.shopService.GetOrders()
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, orders)
}

func (h *ShopHandler) GetOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	order, err := h.shopService.GetOrder(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, order)
}

type UpdateShopOrderStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	ActorID uint   `json:"actor_id"`
}

func (h *ShopHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateShopOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := h.shopService.UpdateOrderStatus(id, req.Status, req.ActorID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, order)
}

func (h *ShopHandler) CancelOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	actorID, _ := strconv.ParseUint(c.Query("actor_id"), 10, 32)
	order, err := h.shopService.CancelOrder(id, uint(actorID))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, order)
}
