package repository

import (
	"fmt"
	"time"

	"event_admin/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByOrderNumber(orderNumber string) (*models.Order, error)
	GetAll() ([]models.Order, error)
	GetByStatus(status string) ([]models.Order, error)
	GetByClientID(clientID uint) ([]models.Order, error)
	AppendStatus(orderID uint, entry *models.OrderStatusEntry) error
	SaveQuote(orderID uint, quote models.Quote, entry *models.OrderStatusEntry) error
	AppendPayment(orderID uint, txn models.PaymentTransaction) (*models.Order, error)
	Cancel(orderID uint, entry *models.OrderStatusEntry, reason string, refundAmount int64) error
	UpdateDetails(order *models.Order) error
	HardDelete(id uint) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// NextCounterValue bumps the named counter with a single atomic UPDATE and
// returns the new value. Concurrent transactions serialize on the counter
// row, so values are unique and strictly increasing.
func NextCounterValue(tx *gorm.DB, name string) (int64, error) {
	res := tx.Model(&models.OrderCounter{}).
		Where("name = ?", name).
		UpdateColumn("value", gorm.Expr("value + 1"))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		// First order ever: seed the counter row.
		counter := models.OrderCounter{Name: name, Value: 1}
		if err := tx.Create(&counter).Error; err != nil {
			return 0, fmt.Errorf("failed to seed counter %s: %w", name, err)
		}
		return counter.Value, nil
	}

	var counter models.OrderCounter
	if err := tx.Where("name = ?", name).First(&counter).Error; err != nil {
		return 0, err
	}
	return counter.Value, nil
}

// Create assigns the next order number and writes the order together with
// its initial status-history entry in one transaction.
func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		seq, err := NextCounterValue(tx, models.CounterOrders)
		if err != nil {
			return err
		}
		order.OrderNumber = fmt.Sprintf("ORD-%03d", seq)
		order.Status = string(models.OrderPending)

		if err := tx.Create(order).Error; err != nil {
			return err
		}

		entry := models.OrderStatusEntry{
			OrderID:   order.ID,
			Status:    string(models.OrderPending),
			ChangedBy: order.CreatedBy,
			Notes:     "Order created",
			ChangedAt: time.Now(),
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		order.StatusHistory = append(order.StatusHistory, entry)
		return nil
	})
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_status_entries.id ASC")
	}).First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByOrderNumber(orderNumber string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_status_entries.id ASC")
	}).Where("order_number = ?", orderNumber).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByStatus(status string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("status = ?", status).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByClientID(clientID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("client_id = ?", clientID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// AppendStatus writes the audit entry and the new status in one
// transaction, so the last history entry always matches the order status.
func (r *orderRepository) AppendStatus(orderID uint, entry *models.OrderStatusEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return err
		}

		entry.OrderID = orderID
		if entry.ChangedAt.IsZero() {
			entry.ChangedAt = time.Now()
		}
		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		return tx.Model(&order).Update("status", entry.Status).Error
	})
}

func (r *orderRepository) SaveQuote(orderID uint, quote models.Quote, entry *models.OrderStatusEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return err
		}

		entry.OrderID = orderID
		if entry.ChangedAt.IsZero() {
			entry.ChangedAt = time.Now()
		}
		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		// A fresh quote resets the payment ledger balance against the new
		// final amount.
		payment := order.Payment
		payment.AmountDue = quote.FinalAmount - payment.AmountPaid

		return tx.Model(&order).Updates(map[string]interface{}{
			"quote":   quote,
			"payment": payment,
			"status":  entry.Status,
		}).Error
	})
}

// AppendPayment appends a transaction to the ledger and recomputes the
// derived totals inside one transaction.
func (r *orderRepository) AppendPayment(orderID uint, txn models.PaymentTransaction) (*models.Order, error) {
	var updated *models.Order
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return err
		}

		payment := order.Payment
		payment.Transactions = append(payment.Transactions, txn)
		payment.AmountPaid += txn.Amount
		payment.AmountDue = order.Quote.FinalAmount - payment.AmountPaid
		if payment.AmountPaid >= order.Quote.FinalAmount {
			payment.Status = models.PaymentCompleted
		} else {
			payment.Status = models.PaymentPartial
		}

		if err := tx.Model(&order).Update("payment", payment).Error; err != nil {
			return err
		}
		order.Payment = payment
		updated = &order
		return nil
	})
	return updated, err
}

func (r *orderRepository) Cancel(orderID uint, entry *models.OrderStatusEntry, reason string, refundAmount int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return err
		}

		entry.OrderID = orderID
		entry.Status = string(models.OrderCancelled)
		if entry.ChangedAt.IsZero() {
			entry.ChangedAt = time.Now()
		}
		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		return tx.Model(&order).Updates(map[string]interface{}{
			"status":              string(models.OrderCancelled),
			"cancellation_reason": reason,
			"refund_amount":       refundAmount,
		}).Error
	})
}

func (r *orderRepository) UpdateDetails(order *models.Order) error {
	return r.db.Model(order).Updates(map[string]interface{}{
		"client_name":  order.ClientName,
		"client_email": order.ClientEmail,
		"client_phone": order.ClientPhone,
		"details":      order.Details,
	}).Error
}

// HardDelete is the single physical-removal path; everything else is a
// status change.
func (r *orderRepository) HardDelete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("order_id = ?", id).Delete(&models.OrderStatusEntry{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.Order{}, id).Error
	})
}
