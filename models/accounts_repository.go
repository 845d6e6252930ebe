package models

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// AccountsRepository stores accounts. Login and email collisions surface
// as ErrLoginTaken and ErrEmailTaken.
type AccountsRepository struct {
	db *gorm.DB
}

func NewAccountsRepository(db *gorm.DB) *AccountsRepository {
	return &AccountsRepository{db: db}
}

func (r *AccountsRepository) Create(ctx context.Context, account *Account) error {
	if err := account.Validate(); err != nil {
		return err
	}
	return translateError(r.db.WithContext(ctx).Create(account).Error)
}

// Update writes every column of the account. The role must be set, since
// the create-time default does not apply here.
func (r *AccountsRepository) Update(ctx context.Context, account *Account) error {
	if err := account.Validate(); err != nil {
		return err
	}
	if account.Role == "" {
		return fmt.Errorf("%w: role is empty", ErrInvalidChoice)
	}
	return updateAll(ctx, r.db, account)
}

func (r *AccountsRepository) GetByID(ctx context.Context, id uint) (*Account, error) {
	var account Account
	if err := r.db.WithContext(ctx).First(&account, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &account, nil
}

func (r *AccountsRepository) GetByLogin(ctx context.Context, login string) (*Account, error) {
	var account Account
	if err := r.db.WithContext(ctx).
		Where("login = ?", login).
		First(&account).Error; err != nil {
		return nil, translateError(err)
	}
	return &account, nil
}

// Delete removes the account together with its carts and orders.
func (r *AccountsRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[Account](ctx, r.db, id)
}
