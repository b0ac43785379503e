package models

import (
	"time"

	"gorm.io/gorm"
)

type ShopProduct struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text"`
	Price       int64          `json:"price" gorm:"not null"`
	ImageKey    string         `json:"image_key"`
	ImageURL    string         `json:"image_url,omitempty" gorm:"-"`
	InStock     bool           `json:"in_stock" gorm:"default:true"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// ShopOrder is the simpler e-commerce flow: no status history, no
// quote/payment ledger.
type ShopOrder struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	OrderNumber string          `json:"order_number" gorm:"unique;not null"`
	ClientID    *uint           `json:"client_id" gorm:"index"`
	ClientName  string          `json:"client_name" gorm:"not null"`
	ClientEmail string          `json:"client_email"`
	ClientPhone string          `json:"client_phone"`
	Status      string          `json:"status" gorm:"default:'pending'"` // pending, confirmed, completed, cancelled
	TotalAmount int64           `json:"total_amount" gorm:"not null"`
	Items       []ShopOrderItem `json:"items" gorm:"foreignKey:ShopOrderID"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `json:"deleted_at" gorm:"index"`
}

type ShopOrderStatus string

const (
	ShopOrderPending   ShopOrderStatus = "pending"
	ShopOrderConfirmed ShopOrderStatus = "confirmed"
	ShopOrderCompleted ShopOrderStatus = "completed"
	ShopOrderCancelled ShopOrderStatus = "cancelled"
)

// ShopOrderItem snapshots the product name and price at order time.
type ShopOrderItem struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	ShopOrderID uint           `json:"shop_order_id" gorm:"not null;index"`
	ProductID   uint           `json:"product_id" gorm:"not null"`
	ProductName string         `json:"product_name" gorm:"not null"`
	Quantity    int            `json:"quantity" gorm:"not null"`
	UnitPrice   int64          `json:"unit_price" gorm:"not null"`
	LineTotal   int64          `json:"line_total" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
