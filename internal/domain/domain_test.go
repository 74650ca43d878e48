package domain_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/cart-pricing/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var decimalComparer = cmp.Comparer(func(x, y decimal.Decimal) bool {
	return x.Equal(y)
})

func randomProduct(t *testing.T) domain.Product {
	t.Helper()

	p, err := domain.NewProduct(gofakeit.ProductName(), decimal.NewFromFloat(gofakeit.Price(0, 100)))
	require.NoError(t, err)

	return p
}

func randomCartItem(t *testing.T) domain.CartItem {
	t.Helper()

	item, err := domain.NewCartItem(randomProduct(t), gofakeit.IntRange(1, 10))
	require.NoError(t, err)

	return item
}
