package domain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/cart-pricing/internal/domain"
	"github.com/nikolayk812/cart-pricing/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCartItem(t *testing.T) {
	tests := []struct {
		name      string
		product   domain.Product
		quantity  int
		wantError string
	}{
		{
			name:     "quantity one: ok",
			product:  randomProduct(t),
			quantity: 1,
		},
		{
			name:      "zero quantity: error",
			product:   randomProduct(t),
			quantity:  0,
			wantError: "cart item: validation failed: quantity must be at least 1",
		},
		{
			name:      "negative quantity: error",
			product:   randomProduct(t),
			quantity:  -3,
			wantError: "cart item: validation failed: quantity must be at least 1",
		},
		{
			name:      "zero product: error",
			product:   domain.Product{},
			quantity:  1,
			wantError: "cart item: validation failed: name must not be blank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := domain.NewCartItem(tt.product, tt.quantity)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				assert.ErrorIs(t, err, validation.ErrInvalid)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.quantity, item.Quantity)
			assert.Empty(t, cmp.Diff(tt.product, item.Product, decimalComparer))
		})
	}
}

func TestCartWith(t *testing.T) {
	first := randomCartItem(t)
	second := randomCartItem(t)

	empty := domain.NewCart()
	one := empty.With(first)
	two := one.With(second)

	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 1, one.Len())
	assert.Equal(t, 2, two.Len())

	diff := cmp.Diff([]domain.CartItem{first, second}, two.Items(), decimalComparer)
	assert.Empty(t, diff)

	diff = cmp.Diff([]domain.CartItem{first}, one.Items(), decimalComparer)
	assert.Empty(t, diff)
}

func TestCartItemsIsCopy(t *testing.T) {
	cart := domain.NewCart(randomCartItem(t))
	before := cart.Items()

	items := cart.Items()
	items[0].Quantity = 1000

	assert.Empty(t, cmp.Diff(before, cart.Items(), decimalComparer))
}

func TestNilAndZeroCartAreEmpty(t *testing.T) {
	var nilCart *domain.Cart
	var zeroCart domain.Cart

	assert.True(t, nilCart.IsEmpty())
	assert.Nil(t, nilCart.Items())
	assert.True(t, zeroCart.IsEmpty())

	item := randomCartItem(t)
	assert.Equal(t, 1, nilCart.With(item).Len())
}
