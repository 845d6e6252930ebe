package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartString(t *testing.T) {
	testCases := []struct {
		name     string
		cart     Cart
		expected string
	}{
		{"Cyrillic product", Cart{Product: Product{Name: "Стол"}, Count: 3}, "Стол - 3"},
		{"Zero count", Cart{Product: Product{Name: "Chair"}, Count: 0}, "Chair - 0"},
		{"Negative count", Cart{Product: Product{Name: "Chair"}, Count: -2}, "Chair - -2"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.cart.String())
		})
	}
}

func TestNewCart(t *testing.T) {
	c := NewCart(1, 2)

	assert.Equal(t, uint(1), c.AccountID)
	assert.Equal(t, uint(2), c.ProductID)
	assert.Equal(t, 1, c.Count)
	assert.NoError(t, c.Validate())
}

func TestCartValidate(t *testing.T) {
	assert.ErrorIs(t, NewCart(0, 2).Validate(), ErrRequiredField)
	assert.ErrorIs(t, NewCart(1, 0).Validate(), ErrRequiredField)
}
