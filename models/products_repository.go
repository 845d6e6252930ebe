package models

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductsRepository struct {
	db *gorm.DB
}

type ProductFilters struct {
	CategoryID    uint
	PriceLessThan *decimal.Decimal
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

func (r *ProductsRepository) GetAllProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Order("products.id").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductsRepository) GetFilteredProducts(ctx context.Context, offset, limit int, filters ProductFilters) ([]Product, int64, error) {
	var products []Product
	var total int64

	query := r.db.WithContext(ctx).Model(&Product{})

	// Filter
	if filters.CategoryID != 0 {
		query = query.Where("products.category_id = ?", filters.CategoryID)
	}
	if filters.PriceLessThan != nil {
		query = query.Where("products.price < ?", *filters.PriceLessThan)
	}
	query = query.Session(&gorm.Session{})

	// Count total after filtering
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Apply pagination
	if err := query.Preload("Category").
		Order("products.id").
		Offset(offset).
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *ProductsRepository) GetByID(ctx context.Context, id uint) (*Product, error) {
	var product Product
	if err := r.db.WithContext(ctx).
		Preload("Category").
		First(&product, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &product, nil
}

func (r *ProductsRepository) Create(ctx context.Context, product *Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error)
}

// Update writes every column except the creation timestamp.
func (r *ProductsRepository) Update(ctx context.Context, product *Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	return updateAll(ctx, r.db, product)
}

func (r *ProductsRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[Product](ctx, r.db, id)
}

// deleteByID removes one row and reports ErrNotFound when nothing matched.
// Dependent rows go with it through the ON DELETE CASCADE constraints.
func deleteByID[T any](ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// updateAll writes every column of model, zero values included, and
// reports ErrNotFound when its primary key matches no row.
func updateAll(ctx context.Context, db *gorm.DB, model any) error {
	res := db.WithContext(ctx).Model(model).Select("*").Omit(clause.Associations).Updates(model)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
