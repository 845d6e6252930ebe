package models

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartsRepository stores cart rows. Add always inserts a new row, even
// when the account already has the product in its cart.
type CartsRepository struct {
	db *gorm.DB
}

func NewCartsRepository(db *gorm.DB) *CartsRepository {
	return &CartsRepository{db: db}
}

func (r *CartsRepository) Add(ctx context.Context, cart *Cart) error {
	if err := cart.Validate(); err != nil {
		return err
	}
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(cart).Error)
}

func (r *CartsRepository) UpdateCount(ctx context.Context, id uint, count int) error {
	res := r.db.WithContext(ctx).Model(&Cart{}).
		Where("id = ?", id).
		Update("count", count)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CartsRepository) ListByAccount(ctx context.Context, accountID uint) ([]Cart, error) {
	var carts []Cart
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("account_id = ?", accountID).
		Order("id").
		Find(&carts).Error; err != nil {
		return nil, err
	}
	return carts, nil
}

func (r *CartsRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[Cart](ctx, r.db, id)
}

// ClearForAccount deletes every cart row of the account and returns how
// many were removed.
func (r *CartsRepository) ClearForAccount(ctx context.Context, accountID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Delete(&Cart{})
	if res.Error != nil {
		return 0, translateError(res.Error)
	}
	return res.RowsAffected, nil
}
