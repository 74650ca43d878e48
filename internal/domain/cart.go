package domain

import (
	"fmt"

	"github.com/nikolayk812/cart-pricing/internal/validation"
)

// Cart is an ordered, immutable sequence of items. The zero value is an empty cart.
type Cart struct {
	items []CartItem
}

type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity" validate:"min=1"`
}

func NewCart(items ...CartItem) *Cart {
	return &Cart{items: append([]CartItem(nil), items...)}
}

func NewCartItem(product Product, quantity int) (CartItem, error) {
	item := CartItem{Product: product, Quantity: quantity}

	if err := item.Validate(); err != nil {
		return CartItem{}, err
	}

	return item, nil
}

func (i CartItem) Validate() error {
	if err := validation.Struct(i); err != nil {
		return fmt.Errorf("cart item: %w", err)
	}

	if err := i.Product.Validate(); err != nil {
		return fmt.Errorf("cart item: %w", err)
	}

	return nil
}

// With returns a new cart with item appended. The receiver is left untouched.
func (c *Cart) With(item CartItem) *Cart {
	items := make([]CartItem, 0, c.Len()+1)
	items = append(items, c.Items()...)
	items = append(items, item)

	return &Cart{items: items}
}

// Items returns a copy of the cart's items in insertion order.
func (c *Cart) Items() []CartItem {
	if c == nil || len(c.items) == 0 {
		return nil
	}
	return append([]CartItem(nil), c.items...)
}

func (c *Cart) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return c.Len() == 0
}
