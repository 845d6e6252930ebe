package models

// Category represents a product category.
// Deleting a category deletes every product in it.
type Category struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:254;not null" validate:"required,max=254"`
}

func (c *Category) TableName() string {
	return "categories"
}

func (c *Category) String() string {
	return c.Name
}

func (c *Category) Validate() error {
	return validateFields(c)
}
