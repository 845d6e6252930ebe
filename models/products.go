package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a product in the catalog.
// It belongs to one category and is deleted together with it.
type Product struct {
	ID         uint            `gorm:"primaryKey"`
	Name       string          `gorm:"size:254;not null" validate:"required,max=254"`
	CreatedAt  time.Time       `gorm:"autoCreateTime;<-:create"`
	Year       *int            `gorm:"not null" validate:"required"`
	Country    string          `gorm:"size:254;not null;default:''" validate:"max=254"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0.00" validate:"-"`
	Count      int             `gorm:"not null"`
	Photo      *string         `gorm:"size:254" validate:"omitempty,max=254"`
	CategoryID uint            `gorm:"not null;index" validate:"required"`
	Category   Category        `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" validate:"-"`
}

func (p *Product) TableName() string {
	return "products"
}

// NewProduct returns a product carrying the column defaults: a zero
// price and a stock count of one.
func NewProduct(name string, year int, categoryID uint) *Product {
	return &Product{
		Name:       name,
		Year:       &year,
		Price:      decimal.Zero,
		Count:      1,
		CategoryID: categoryID,
	}
}

func (p *Product) String() string {
	return p.Name
}

// AttachPhoto validates the uploaded filename and stores the generated
// storage key on the product. The file itself is stored elsewhere.
func (p *Product) AttachPhoto(filename string, gen KeyGenerator) error {
	if err := ValidatePhotoExtension(filename); err != nil {
		return err
	}
	key, err := PhotoKey(gen, filename)
	if err != nil {
		return err
	}
	p.Photo = &key
	return nil
}

// Validate checks the product before it is written.
func (p *Product) Validate() error {
	if err := validateFields(p); err != nil {
		return err
	}
	if err := validateMoney("Price", p.Price); err != nil {
		return err
	}
	if p.Photo != nil {
		if err := ValidatePhotoExtension(*p.Photo); err != nil {
			return fmt.Errorf("photo: %w", err)
		}
	}
	return nil
}
