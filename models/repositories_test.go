package models

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Every case is rejected before the repository touches the database, so
// the repositories are built without one.

func TestAccountsRepositoryUpdateRejects(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(a *Account)
		wantErr error
	}{
		{
			name:    "Empty role",
			mutate:  func(a *Account) { a.Role = "" },
			wantErr: ErrInvalidChoice,
		},
		{
			name:    "Unknown role",
			mutate:  func(a *Account) { a.Role = "root" },
			wantErr: ErrInvalidChoice,
		},
		{
			name:    "Missing login",
			mutate:  func(a *Account) { a.Login = "" },
			wantErr: ErrRequiredField,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			repo := NewAccountsRepository(nil)
			a := newTestAccount()
			a.ID = 7
			tc.mutate(a)

			// Act
			err := repo.Update(context.Background(), a)

			// Assert
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestOrdersRepositoryAddItemRejects(t *testing.T) {
	testCases := []struct {
		name    string
		item    LineItem
		wantErr error
	}{
		{
			name:    "Missing order",
			item:    LineItem{ProductID: 1, Count: 1},
			wantErr: ErrRequiredField,
		},
		{
			name:    "Missing product",
			item:    LineItem{OrderID: 1, Count: 1},
			wantErr: ErrRequiredField,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := NewOrdersRepository(nil)
			item := tc.item

			err := repo.AddItem(context.Background(), &item)

			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
