package domain

import (
	"fmt"

	"github.com/nikolayk812/cart-pricing/internal/validation"
	"github.com/shopspring/decimal"
)

type Product struct {
	Name  string          `json:"name" validate:"notblank"`
	Price decimal.Decimal `json:"price" validate:"gte=0"`
}

func NewProduct(name string, price decimal.Decimal) (Product, error) {
	p := Product{Name: name, Price: price}

	if err := p.Validate(); err != nil {
		return Product{}, err
	}

	return p, nil
}

func (p Product) Validate() error {
	if err := validation.Struct(p); err != nil {
		return fmt.Errorf("product: %w", err)
	}

	// InexactFloat64 may flush a tiny negative to -0
	if p.Price.IsNegative() {
		return fmt.Errorf("product: %w", validation.Failf("price must be at least 0"))
	}

	return nil
}
