package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "new"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCanceled  OrderStatus = "canceled"
)

// Label returns the name shown to shop staff.
func (s OrderStatus) Label() string {
	switch s {
	case OrderStatusNew:
		return "Новый"
	case OrderStatusConfirmed:
		return "Подтвержденный"
	case OrderStatusCanceled:
		return "Отмененный"
	}
	return string(s)
}

func (s OrderStatus) valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusConfirmed, OrderStatusCanceled:
		return true
	}
	return false
}

// Order is a request placed by an account. Any status may follow any
// other; the model does not police transitions.
type Order struct {
	ID              uint        `gorm:"primaryKey"`
	CreatedAt       time.Time   `gorm:"autoCreateTime;<-:create"`
	Status          OrderStatus `gorm:"size:254;not null;default:'new'"`
	AccountID       uint        `gorm:"not null;index" validate:"required"`
	Account         Account     `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" validate:"-"`
	RejectionReason string      `gorm:"type:text;not null;default:''"`
	Items           []LineItem  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" validate:"-"`
}

func (o *Order) TableName() string {
	return "orders"
}

func NewOrder(accountID uint, items ...LineItem) *Order {
	return &Order{
		Status:    OrderStatusNew,
		AccountID: accountID,
		Items:     items,
	}
}

// Products returns the products of the loaded line items, in item order.
// Items without a loaded product are skipped.
func (o *Order) Products() []Product {
	products := make([]Product, 0, len(o.Items))
	for _, item := range o.Items {
		if item.Product.ID == 0 {
			continue
		}
		products = append(products, item.Product)
	}
	return products
}

// String renders the creation time in ctime layout followed by the
// owner's full name. Account must be loaded.
func (o *Order) String() string {
	return o.CreatedAt.Format(time.ANSIC) + " | " + o.Account.FullName()
}

// Validate checks the order and its items before they are written.
func (o *Order) Validate() error {
	if err := validateFields(o); err != nil {
		return err
	}
	if o.Status != "" && !o.Status.valid() {
		return fmt.Errorf("%w: status %q", ErrInvalidChoice, o.Status)
	}
	for i := range o.Items {
		if err := o.Items[i].validate(false); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.Status == "" {
		o.Status = OrderStatusNew
	}
	return nil
}
