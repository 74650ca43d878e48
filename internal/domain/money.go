package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const centPlaces = 2

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Currency, m.Amount.StringFixed(centPlaces))
}

// RoundUpToCents rounds x to two decimal places toward positive infinity.
// Any remainder beyond the cent digit bumps the cent, so 10.004 becomes 10.01.
func RoundUpToCents(x decimal.Decimal) decimal.Decimal {
	return x.RoundCeil(centPlaces)
}

// CartTotals are already rounded to cents.
type CartTotals struct {
	Subtotal Money
	Tax      Money
	Total    Money
}
