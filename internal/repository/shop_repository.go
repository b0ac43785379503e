package repository

import (
	"fmt"

	"event_admin/internal/models"

	"gorm.io/gorm"
)

type ShopRepository interface {
	CreateProduct(product *models.ShopProduct) error
	GetProductByID(id uint) (*models.ShopProduct, error)
	GetAllProducts() ([]models.ShopProduct, error)
	UpdateProduct(product *models.ShopProduct) error
	DeleteProduct(id uint) error

	CreateOrder(order *models.ShopOrder) error
	GetOrderByID(id uint) (*models.ShopOrder, error)
	GetAllOrders() ([]models.ShopOrder, error)
	GetOrdersByClientID(clientID uint) ([]models.ShopOrder, error)
	UpdateOrderStatus(orderID uint, status string) error
}

type shopRepository struct {
	db *gorm.DB
}

func NewShopRepository(db *gorm.DB) ShopRepository {
	return &shopRepository{db: db}
}

func (r *shopRepository) CreateProduct(product *models.ShopProduct) error {
	return r.db.Create(product).Error
}

func (r *shopRepository) GetProductByID(id uint) (*models.ShopProduct, error) {
	var product models.ShopProduct
	err := r.db.First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *shopRepository) GetAllProducts() ([]models.ShopProduct, error) {
	var products []models.ShopProduct
	err := r.db.Order("created_at DESC").Find(&products).Error
	return products, err
}

func (r *shopRepository) UpdateProduct(product *models.ShopProduct) error {
	return r.db.Save(product).Error
}

func (r *shopRepository) DeleteProduct(id uint) error {
	return r.db.Delete(&models.ShopProduct{}, id).Error
}

// CreateOrder assigns a number from the shop counter and writes the order
// with its line items in one transaction.
func (r *shopRepository) CreateOrder(order *models.ShopOrder) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		seq, err := NextCounterValue(tx, models.CounterShopOrders)
		if err != nil {
			return err
		}
		order.OrderNumber = fmt.Sprintf("SHP-%03d", seq)
		order.Status = string(models.ShopOrderPending)

		return tx.Create(order).Error
	})
}

func (r *shopRepository) GetOrderByID(id uint) (*models.ShopOrder, error) {
	var order models.ShopOrder
	err := r.db.Preload("Items").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *shopRepository) GetAllOrders() ([]models.ShopOrder, error) {
	var orders []models.ShopOrder
	err := r.db.Preload("Items").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *shopRepository) GetOrdersByClientID(clientID uint) ([]models.ShopOrder, error) {
	var orders []models.ShopOrder
	err := r.db.Preload("Items").Where("client_id = ?", clientID).
		Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *shopRepository) UpdateOrderStatus(orderID uint, status string) error {
	res := r.db.Model(&models.ShopOrder{}).
		Where("id = ?", orderID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
