package services

import (
	"fmt"
	"log"

	"event_admin/internal/models"
	"event_admin/internal/repository"
)

// ShopOrderItemInput is one requested line on a shop order.
type ShopOrderItemInput struct {
	ProductID uint
	Quantity  int
}

type ShopService interface {
	CreateProduct(product *models.ShopProduct) error
	GetProduct(id uint) (*models.ShopProduct, error)
	GetProducts() ([]models.ShopProduct, error)
	UpdateProduct(product *models.ShopProduct) error
	DeleteProduct(id uint) error

	CreateOrder(order *models.ShopOrder, items []ShopOrderItemInput) error
	GetOrder(id uint) (*models.ShopOrder, error)
	GetOrders() ([]models.ShopOrder, error)
	GetOrdersByClient(clientID uint) ([]models.ShopOrder, error)
	UpdateOrderStatus(orderID uint, status string, actorID uint) (*models.ShopOrder, error)
	CancelOrder(orderID uint, actorID uint) (*models.ShopOrder, error)
}

type shopService struct {
	shopRepo            repository.ShopRepository
	notificationService NotificationService
}

func NewShopService(shopRepo repository.ShopRepository, notificationService NotificationService) ShopService {
	return &shopService{
		shopRepo:            shopRepo,
		notificationService: notificationService,
	}
}

// shopTransitions is the simpler lifecycle of the e-commerce flow.
var shopTransitions = map[models.ShopOrderStatus][]models.ShopOrderStatus{
	models.ShopOrderPending:   {models.ShopOrderConfirmed, models.ShopOrderCancelled},
	models.ShopOrderConfirmed: {models.ShopOrderCompleted, models.ShopOrderCancelled},
	models.ShopOrderCompleted: {},
	models.ShopOrderCancelled: {},
}

func validateShopTransition(from, to string) error {
	next, ok := shopTransitions[models.ShopOrderStatus(from)]
	if !ok {
		return validation("unknown shop order status %q", from)
	}
	for _, s := range next {
		if string(s) == to {
			return nil
		}
	}
	return validation("cannot transition shop order from %q to %q", from, to)
}

func (s *shopService) CreateProduct(product *models.ShopProduct) error {
	if product.Name == "" {
		return validation("product name is required")
	}
	if product.Price < 0 {
		return validation("product price cannot be negative")
	}
	return s.shopRepo.CreateProduct(product)
}

func (s *shopService) GetProduct(id uint) (*models.ShopProduct, error) {
	product, err := s.shopRepo.GetProductByID(id)
	if err != nil {
		return nil, notFound(err, "product")
	}
	return product, nil
}

func (s *shopService) GetProducts() ([]models.ShopProduct, error) {
	return s.shopRepo.GetAllProducts()
}

func (s *shopService) UpdateProduct(product *models.ShopProduct) error {
	return s.shopRepo.UpdateProduct(product)
}

func (s *shopService) DeleteProduct(id uint) error {
	return s.shopRepo.DeleteProduct(id)
}

// CreateOrder snapshots product names and prices into line items, so later
// product edits never rewrite history.
func (s *shopService) CreateOrder(order *models.ShopOrder, items []ShopOrderItemInput) error {
	if order.ClientName == "" {
		return validation("client name is required")
	}
	if len(items) == 0 {
		return validation("shop order requires at least one item")
	}

	var total int64
	for _, item := range items {
		if item.Quantity <= 0 {
			return validation("item quantity must be positive")
		}
		product, err := s.shopRepo.GetProductByID(item.ProductID)
		if err != nil {
			return notFound(err, fmt.Sprintf("product %d", item.ProductID))
		}
		if !product.InStock {
			return validation("product %q is out of stock", product.Name)
		}

		lineTotal := product.Price * int64(item.Quantity)
		order.Items = append(order.Items, models.ShopOrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   product.Price,
			LineTotal:   lineTotal,
		})
		total += lineTotal
	}
	order.TotalAmount = total

	return s.shopRepo.CreateOrder(order)
}

func (s *shopService) GetOrder(id uint) (*models.ShopOrder, error) {
	order, err := s.shopRepo.GetOrderByID(id)
	if err != nil {
		return nil, notFound(err, "shop order")
	}
	return order, nil
}

func (s *shopService) GetOrders() ([]models.ShopOrder, error) {
	return s.shopRepo.GetAllOrders()
}

func (s *shopService) GetOrdersByClient(clientID uint) ([]models.ShopOrder, error) {
	return s.shopRepo.GetOrdersByClientID(clientID)
}

func (s *shopService) UpdateOrderStatus(orderID uint, status string, actorID uint) (*models.ShopOrder, error) {
	order, err := s.shopRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, notFound(err, "shop order")
	}
	if err := validateShopTransition(order.Status, status); err != nil {
		return nil, err
	}

	if err := s.shopRepo.UpdateOrderStatus(orderID, status); err != nil {
		return nil, err
	}

	if order.ClientID != nil {
		if _, err := s.notificationService.SendToUser(*order.ClientID,
			fmt.Sprintf("Order %s", order.OrderNumber),
			fmt.Sprintf("Order status changed to: %s", status),
			string(models.NotificationTypeOrderStatus), "shop_order", order.ID); err != nil {
			log.Printf("warning: failed to dispatch shop order notification: %v", err)
		}
	}

	return s.GetOrder(orderID)
}

// CancelOrder is the soft-delete path for shop orders.
func (s *shopService) CancelOrder(orderID uint, actorID uint) (*models.ShopOrder, error) {
	return s.UpdateOrderStatus(orderID, string(models.ShopOrderCancelled), actorID)
}
