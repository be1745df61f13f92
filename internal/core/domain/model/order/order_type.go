package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Type is the fulfillment mode of an order. It decides which optional
// references the aggregate may carry: dine-in orders reference a table,
// takeaway orders may carry a daily queue token, and delivery orders must
// reference a customer.
type Type int

const (
	// TypeUnknown represents an invalid or undefined order type.
	TypeUnknown Type = iota

	// TypeDineIn is an order tied to a physical table.
	TypeDineIn

	// TypeTakeaway is a counter order picked up by the customer, identified
	// by a per-day sequential queue token.
	TypeTakeaway

	// TypeDelivery is an order delivered to a customer address.
	TypeDelivery
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:  "Unknown",
		TypeDineIn:   "DineIn",
		TypeTakeaway: "Takeaway",
		TypeDelivery: "Delivery",
	}
}

func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	return map[Type]string{
		TypeDineIn:   "DineIn",
		TypeTakeaway: "Takeaway",
		TypeDelivery: "Delivery",
	}
}

// TypeFromString parses an order type name as received from the presentation layer.
func TypeFromString(s string) (Type, error) {
	for t, name := range getValidTypeStrings() {
		if name == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"order type",
		fmt.Errorf("%q is not a valid order type", s),
	)
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"order type",
			fmt.Errorf("%d is not a valid order type", t),
		)
	}
	return nil
}

// String returns the human-readable name of the order type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
