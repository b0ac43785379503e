package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// All monetary values are stored in minor currency units.

type Order struct {
	ID                 uint               `json:"id" gorm:"primaryKey"`
	OrderNumber        string             `json:"order_number" gorm:"unique;not null"`
	OrderType          string             `json:"order_type" gorm:"not null"` // event, service, staff, offer
	ClientID           *uint              `json:"client_id" gorm:"index"`
	ClientName         string             `json:"client_name" gorm:"not null"`
	ClientEmail        string             `json:"client_email"`
	ClientPhone        string             `json:"client_phone"`
	Details            OrderDetails       `json:"details" gorm:"type:json"`
	Status             string             `json:"status" gorm:"default:'pending'"` // pending, quoted, confirmed, completed, cancelled
	StatusHistory      []OrderStatusEntry `json:"status_history" gorm:"foreignKey:OrderID"`
	Quote              Quote              `json:"quote" gorm:"type:json"`
	Payment            Payment            `json:"payment" gorm:"type:json"`
	CancellationReason string             `json:"cancellation_reason"`
	RefundAmount       int64              `json:"refund_amount"`
	CreatedBy          uint               `json:"created_by"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
	DeletedAt          gorm.DeletedAt     `json:"deleted_at" gorm:"index"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderQuoted    OrderStatus = "quoted"
	OrderConfirmed OrderStatus = "confirmed"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

type OrderType string

const (
	OrderTypeEvent   OrderType = "event"
	OrderTypeService OrderType = "service"
	OrderTypeStaff   OrderType = "staff"
	OrderTypeOffer   OrderType = "offer"
)

// OrderStatusEntry is one append-only audit row. The latest entry's status
// always matches the order's current status.
type OrderStatusEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OrderID   uint      `json:"order_id" gorm:"not null;index"`
	Status    string    `json:"status" gorm:"not null"`
	ChangedBy uint      `json:"changed_by"`
	Notes     string    `json:"notes"`
	ChangedAt time.Time `json:"changed_at"`
}

// EventOrderDetails describes an event fulfillment request.
type EventOrderDetails struct {
	EventType  string     `json:"event_type"`
	EventDate  *time.Time `json:"event_date,omitempty"`
	GuestCount int        `json:"guest_count"`
	Venue      string     `json:"venue"`
	BudgetMin  int64      `json:"budget_min"`
	BudgetMax  int64      `json:"budget_max"`
}

type ServiceOrderDetails struct {
	ServiceName   string     `json:"service_name"`
	ServiceDate   *time.Time `json:"service_date,omitempty"`
	Location      string     `json:"location"`
	DurationHours int        `json:"duration_hours"`
}

type StaffOrderDetails struct {
	StaffRole string     `json:"staff_role"`
	Headcount int        `json:"headcount"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Location  string     `json:"location"`
}

type OfferOrderDetails struct {
	OfferName   string `json:"offer_name"`
	PackageTier string `json:"package_tier"`
}

// OrderDetails is a tagged union over the per-type payloads. Exactly one
// branch must be set and it must match the order's OrderType.
type OrderDetails struct {
	Event   *EventOrderDetails   `json:"event,omitempty"`
	Service *ServiceOrderDetails `json:"service,omitempty"`
	Staff   *StaffOrderDetails   `json:"staff,omitempty"`
	Offer   *OfferOrderDetails   `json:"offer,omitempty"`
}

func (d OrderDetails) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *OrderDetails) Scan(value interface{}) error {
	if value == nil {
		*d = OrderDetails{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return errors.New("unsupported type for OrderDetails")
	}
}

// ValidateFor checks that exactly the branch matching orderType is set.
func (d OrderDetails) ValidateFor(orderType string) error {
	set := 0
	if d.Event != nil {
		set++
	}
	if d.Service != nil {
		set++
	}
	if d.Staff != nil {
		set++
	}
	if d.Offer != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("order details must set exactly one payload, got %d", set)
	}

	ok := false
	switch orderType {
	case string(OrderTypeEvent):
		ok = d.Event != nil
	case string(OrderTypeService):
		ok = d.Service != nil
	case string(OrderTypeStaff):
		ok = d.Staff != nil
	case string(OrderTypeOffer):
		ok = d.Offer != nil
	default:
		return fmt.Errorf("unknown order type %q", orderType)
	}
	if !ok {
		return fmt.Errorf("order details do not match order type %q", orderType)
	}
	return nil
}

type QuoteLine struct {
	Item   string `json:"item"`
	Amount int64  `json:"amount"`
}

type Quote struct {
	Lines       []QuoteLine `json:"lines,omitempty"`
	Discount    int64       `json:"discount"`
	Total       int64       `json:"total"`
	FinalAmount int64       `json:"final_amount"`
	Currency    string      `json:"currency,omitempty"`
}

func (q Quote) Value() (driver.Value, error) {
	return json.Marshal(q)
}

func (q *Quote) Scan(value interface{}) error {
	if value == nil {
		*q = Quote{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, q)
	case string:
		return json.Unmarshal([]byte(v), q)
	default:
		return errors.New("unsupported type for Quote")
	}
}

// IsSet reports whether a quote has been recorded on the order.
func (q Quote) IsSet() bool {
	return len(q.Lines) > 0 || q.FinalAmount != 0
}

type PaymentTransaction struct {
	Reference string    `json:"reference"`
	Amount    int64     `json:"amount"`
	Method    string    `json:"method"`
	PaidAt    time.Time `json:"paid_at"`
}

type Payment struct {
	AmountPaid   int64                `json:"amount_paid"`
	AmountDue    int64                `json:"amount_due"`
	Status       string               `json:"status,omitempty"` // partial, completed
	Transactions []PaymentTransaction `json:"transactions,omitempty"`
}

const (
	PaymentPartial   = "partial"
	PaymentCompleted = "completed"
)

func (p Payment) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *Payment) Scan(value interface{}) error {
	if value == nil {
		*p = Payment{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return errors.New("unsupported type for Payment")
	}
}

// OrderCounter is the single source of order numbers. The value is bumped
// with an atomic UPDATE inside the order-creation transaction.
type OrderCounter struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"unique;not null"` // orders, shop_orders
	Value     int64     `json:"value" gorm:"not null;default:0"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	CounterOrders     = "orders"
	CounterShopOrders = "shop_orders"
)
