package models

import (
	"context"

	"gorm.io/gorm"
)

type CategoriesRepository struct {
	db *gorm.DB
}

func NewCategoriesRepository(db *gorm.DB) *CategoriesRepository {
	return &CategoriesRepository{db: db}
}

func (r *CategoriesRepository) GetAllCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoriesRepository) GetByID(ctx context.Context, id uint) (*Category, error) {
	var category Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &category, nil
}

func (r *CategoriesRepository) CreateCategory(ctx context.Context, category *Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	return translateError(r.db.WithContext(ctx).Create(category).Error)
}

func (r *CategoriesRepository) Update(ctx context.Context, category *Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	return updateAll(ctx, r.db, category)
}

// Delete removes the category and every product filed under it.
func (r *CategoriesRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[Category](ctx, r.db, id)
}
