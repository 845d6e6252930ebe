package models

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrdersRepository struct {
	db *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{db: db}
}

// Create inserts the order and its line items in one transaction.
func (r *OrdersRepository) Create(ctx context.Context, order *Order) error {
	if err := order.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			return err
		}
		if len(order.Items) == 0 {
			return nil
		}
		for i := range order.Items {
			order.Items[i].OrderID = order.ID
		}
		return tx.Omit(clause.Associations).Create(&order.Items).Error
	})
	return translateError(err)
}

func (r *OrdersRepository) GetByID(ctx context.Context, id uint) (*Order, error) {
	var order Order
	if err := r.preloaded(ctx).First(&order, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &order, nil
}

// ListByAccount returns the account's orders, newest first.
func (r *OrdersRepository) ListByAccount(ctx context.Context, accountID uint) ([]Order, error) {
	var orders []Order
	if err := r.preloaded(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC, id DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus sets the status and rejection reason. Any transition is
// accepted.
func (r *OrdersRepository) UpdateStatus(ctx context.Context, id uint, status OrderStatus, reason string) error {
	if !status.valid() {
		return fmt.Errorf("%w: status %q", ErrInvalidChoice, status)
	}
	res := r.db.WithContext(ctx).Model(&Order{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "rejection_reason": reason})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AddItem appends a line item to an existing order. The same product may
// be added more than once.
func (r *OrdersRepository) AddItem(ctx context.Context, item *LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error)
}

// Delete removes the order and its line items.
func (r *OrdersRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[Order](ctx, r.db, id)
}

func (r *OrdersRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Account").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("line_items.id") }).
		Preload("Items.Product")
}
