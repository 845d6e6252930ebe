package models

import "strconv"

// Cart is one pending product selection of an account. Nothing prevents
// several rows for the same account and product.
type Cart struct {
	ID        uint    `gorm:"primaryKey"`
	AccountID uint    `gorm:"not null;index" validate:"required"`
	Account   Account `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" validate:"-"`
	ProductID uint    `gorm:"not null;index" validate:"required"`
	Product   Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" validate:"-"`
	Count     int     `gorm:"not null"`
}

func (c *Cart) TableName() string {
	return "carts"
}

func NewCart(accountID, productID uint) *Cart {
	return &Cart{
		AccountID: accountID,
		ProductID: productID,
		Count:     1,
	}
}

// String renders "<product name> - <count>". Product must be loaded.
func (c *Cart) String() string {
	return c.Product.Name + " - " + strconv.Itoa(c.Count)
}

func (c *Cart) Validate() error {
	return validateFields(c)
}
