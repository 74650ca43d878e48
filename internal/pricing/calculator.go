// Package pricing computes cart totals. Every rounded figure is rounded up to
// the next cent so that the merchant never undercharges.
package pricing

import (
	"context"

	"github.com/nikolayk812/cart-pricing/internal/domain"
	"github.com/nikolayk812/cart-pricing/internal/logger"
	"github.com/nikolayk812/cart-pricing/internal/validation"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Calculator struct {
	taxRate  decimal.Decimal
	currency currency.Unit
	log      *logger.Logger
}

type Option func(*Calculator)

func WithLogger(log *logger.Logger) Option {
	return func(c *Calculator) {
		if log != nil {
			c.log = log
		}
	}
}

func WithCurrency(unit currency.Unit) Option {
	return func(c *Calculator) {
		c.currency = unit
	}
}

type calculatorParams struct {
	TaxRate decimal.Decimal `json:"taxRate" validate:"gte=0,lte=1"`
}

func NewCalculator(taxRate decimal.Decimal, opts ...Option) (*Calculator, error) {
	if err := validation.Struct(calculatorParams{TaxRate: taxRate}); err != nil {
		return nil, err
	}
	// float comparison above can hide values a hair outside the range
	if taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, validation.Failf("taxRate must be between 0 and 1")
	}

	c := &Calculator{
		taxRate:  taxRate,
		currency: currency.USD,
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	ctx := c.log.WithFields(context.Background(), map[string]any{
		"tax_rate": taxRate.String(),
		"currency": c.currency.String(),
	})
	c.log.Info(ctx, "calculator initialized")

	return c, nil
}

func (c *Calculator) TaxRate() decimal.Decimal {
	return c.taxRate
}

// AddItem returns a new cart holding the items of cart followed by item.
// The input cart is never modified.
func (c *Calculator) AddItem(cart *domain.Cart, item *domain.CartItem) (*domain.Cart, error) {
	ctx := context.Background()

	if cart == nil {
		err := validation.Failf("cart is nil")
		c.log.Error(ctx, "attempted to add item to nil cart", err)
		return nil, err
	}
	if item == nil {
		err := validation.Failf("cart item is nil")
		c.log.Error(ctx, "attempted to add nil item to cart", err)
		return nil, err
	}
	if err := item.Validate(); err != nil {
		c.log.Error(ctx, "attempted to add invalid item to cart", err)
		return nil, err
	}

	next := cart.With(*item)

	ctx = c.log.WithFields(ctx, map[string]any{
		"product":  item.Product.Name,
		"quantity": item.Quantity,
	})
	c.log.Debug(ctx, "added item to cart")

	return next, nil
}

// LineTotal is price times quantity, not rounded.
func (c *Calculator) LineTotal(item domain.CartItem) decimal.Decimal {
	return item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// Subtotal sums line totals without rounding. A nil cart has a zero subtotal.
func (c *Calculator) Subtotal(cart *domain.Cart) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range cart.Items() {
		subtotal = subtotal.Add(c.LineTotal(item))
	}

	ctx := c.log.WithFields(context.Background(), map[string]any{
		"subtotal": subtotal.String(),
		"items":    cart.Len(),
	})
	c.log.Debug(ctx, "calculated subtotal")

	return subtotal
}

// CalculateTotals rounds the subtotal first; tax is charged on the rounded subtotal.
func (c *Calculator) CalculateTotals(cart *domain.Cart) domain.CartTotals {
	subtotal := domain.RoundUpToCents(c.Subtotal(cart))
	tax := domain.RoundUpToCents(subtotal.Mul(c.taxRate))
	total := domain.RoundUpToCents(subtotal.Add(tax))

	totals := domain.CartTotals{
		Subtotal: c.money(subtotal),
		Tax:      c.money(tax),
		Total:    c.money(total),
	}

	ctx := c.log.WithFields(context.Background(), map[string]any{
		"subtotal": totals.Subtotal.String(),
		"tax":      totals.Tax.String(),
		"total":    totals.Total.String(),
	})
	c.log.Info(ctx, "calculated cart totals")

	return totals
}

func (c *Calculator) CalculateTax(subtotal decimal.Decimal) (decimal.Decimal, error) {
	if subtotal.IsNegative() {
		return decimal.Zero, validation.Failf("subtotal cannot be negative: %s", subtotal)
	}

	return domain.RoundUpToCents(subtotal.Mul(c.taxRate)), nil
}

func (c *Calculator) money(amount decimal.Decimal) domain.Money {
	return domain.Money{Amount: amount, Currency: c.currency}
}
