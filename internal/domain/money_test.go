package domain_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/cart-pricing/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/currency"
)

func TestRoundUpToCents(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "0", want: "0"},
		{in: "10.00", want: "10"},
		{in: "10.004", want: "10.01"},
		{in: "10.001", want: "10.01"},
		{in: "15.021", want: "15.03"},
		{in: "15.02", want: "15.02"},
		{in: "1.8775", want: "1.88"},
		{in: "1.25125", want: "1.26"},
		{in: "0.0000001", want: "0.01"},
		{in: "-1.005", want: "-1"},
		{in: "-1.019", want: "-1.01"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := domain.RoundUpToCents(decimal.RequireFromString(tt.in))
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestRoundUpToCentsIsSmallestCentAbove(t *testing.T) {
	hundred := decimal.NewFromInt(100)

	for range 500 {
		x := decimal.NewFromFloat(gofakeit.Float64Range(-1000, 1000)).Round(6)

		cents := domain.RoundUpToCents(x).Mul(hundred)
		scaled := x.Mul(hundred)

		assert.True(t, cents.IsInteger(), "x=%s", x)
		assert.True(t, cents.GreaterThanOrEqual(scaled), "x=%s", x)
		assert.True(t, cents.Sub(decimal.NewFromInt(1)).LessThan(scaled), "x=%s", x)
	}
}

func TestMoneyString(t *testing.T) {
	m := domain.Money{Amount: decimal.RequireFromString("16.9"), Currency: currency.USD}

	assert.Equal(t, "USD 16.90", m.String())
}
