package kernel

import (
	"fmt"

	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object holding the monetary breakdown of an order:
// the subtotal of its line items, the discount applied, the tax charged,
// and the resulting total.
//
// Amounts use decimal arithmetic to avoid floating-point rounding.
// All components must be non-negative. The total is trusted as provided by
// the caller; this core does not recompute it from the line items.
//
// The zero value is a valid "no charge" breakdown with all components zero,
// used for drafts that have not been priced yet.
type Money struct {
	subtotal decimal.Decimal
	discount decimal.Decimal
	tax      decimal.Decimal
	total    decimal.Decimal
}

// NewMoney creates a monetary breakdown from its components.
// Returns a validation error if any component is negative.
func NewMoney(subtotal, discount, tax, total decimal.Decimal) (Money, error) {
	for _, c := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"subtotal", subtotal},
		{"discount", discount},
		{"tax", tax},
		{"total", total},
	} {
		if c.value.IsNegative() {
			return Money{}, errs.NewValueIsInvalidErrorWithCause(
				c.name,
				fmt.Errorf("%s is negative", c.value.String()),
			)
		}
	}

	return Money{
		subtotal: subtotal,
		discount: discount,
		tax:      tax,
		total:    total,
	}, nil
}

// ZeroMoney returns an all-zero breakdown.
func ZeroMoney() Money {
	return Money{}
}

// Subtotal returns the sum of line item amounts before discount and tax.
func (m Money) Subtotal() decimal.Decimal {
	return m.subtotal
}

// Discount returns the discount applied to the order.
func (m Money) Discount() decimal.Decimal {
	return m.discount
}

// Tax returns the tax charged on the order.
func (m Money) Tax() decimal.Decimal {
	return m.tax
}

// Total returns the amount payable as computed by the caller.
func (m Money) Total() decimal.Decimal {
	return m.total
}

// IsEqual compares two breakdowns component by component.
func (m Money) IsEqual(other Money) bool {
	return m.subtotal.Equal(other.subtotal) &&
		m.discount.Equal(other.discount) &&
		m.tax.Equal(other.tax) &&
		m.total.Equal(other.total)
}
