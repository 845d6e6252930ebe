package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LineItem binds a product to an order. Price is copied from the product
// when the order is placed and is not affected by later price changes.
// The same product may appear on several lines of one order.
type LineItem struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   uint            `gorm:"not null;index"`
	ProductID uint            `gorm:"not null;index" validate:"required"`
	Product   Product         `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" validate:"-"`
	Count     int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0.00" validate:"-"`
}

func (li *LineItem) TableName() string {
	return "line_items"
}

// NewLineItem snapshots the product's current price.
func NewLineItem(product *Product, count int) LineItem {
	return LineItem{
		ProductID: product.ID,
		Count:     count,
		Price:     product.Price,
	}
}

func (li *LineItem) Validate() error {
	return li.validate(true)
}

// validate checks the item; withOrder is false while the owning order is
// being created and has no ID yet.
func (li *LineItem) validate(withOrder bool) error {
	if withOrder && li.OrderID == 0 {
		return fmt.Errorf("%w: OrderID", ErrRequiredField)
	}
	if err := validateFields(li); err != nil {
		return err
	}
	return validateMoney("Price", li.Price)
}
