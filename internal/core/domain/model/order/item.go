package order

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ItemStatus represents the preparation state of a single line item.
// The item timeline is independent of the order timeline: a paid order can
// still have items on the stove.
//
// Transitions are forward-only:
//
//	Pending ──> Preparing ──> Completed
//
// Cancelled is reachable from any state. Once Cancelled or Completed no
// forward transition exists, and an item never moves backwards.
type ItemStatus int

const (
	// ItemStatusUnknown represents an invalid or undefined item status.
	ItemStatusUnknown ItemStatus = iota

	// ItemStatusPending means the item has not been started by the kitchen.
	ItemStatusPending

	// ItemStatusPreparing means the kitchen is working on the item.
	ItemStatusPreparing

	// ItemStatusCompleted means the item has been prepared.
	ItemStatusCompleted

	// ItemStatusCancelled means the item was struck from the order.
	ItemStatusCancelled
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemStatusUnknown:   "Unknown",
		ItemStatusPending:   "Pending",
		ItemStatusPreparing: "Preparing",
		ItemStatusCompleted: "Completed",
		ItemStatusCancelled: "Cancelled",
	}
}

func getValidItemStatusStrings() map[ItemStatus]string {
	//nolint:exhaustive // ItemStatusUnknown is intentionally excluded as it's invalid
	return map[ItemStatus]string{
		ItemStatusPending:   "Pending",
		ItemStatusPreparing: "Preparing",
		ItemStatusCompleted: "Completed",
		ItemStatusCancelled: "Cancelled",
	}
}

// ItemStatusFromString parses an item status name as received from the
// presentation layer.
func ItemStatusFromString(s string) (ItemStatus, error) {
	for status, name := range getValidItemStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return ItemStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"item status",
		fmt.Errorf("%q is not a valid item status", s),
	)
}

// Validate checks if the ItemStatus value is valid.
func (s ItemStatus) Validate() error {
	if _, ok := getValidItemStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"item status",
			fmt.Errorf("%d is not a valid item status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the item status.
func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// rank orders the forward progression of item statuses.
// Cancelled sits outside the progression and is handled separately.
func (s ItemStatus) rank() int {
	switch s {
	case ItemStatusPending:
		return 1
	case ItemStatusPreparing:
		return 2
	case ItemStatusCompleted:
		return 3
	default:
		return 0
	}
}

// TransitionTo validates the transition from the receiver to next and returns
// next on success. Items only move forward: Pending -> Preparing -> Completed,
// skipping ahead is allowed, moving back is not. Cancelled is reachable from
// any state but permits no further transition.
func (s ItemStatus) TransitionTo(next ItemStatus) (ItemStatus, error) {
	if err := next.Validate(); err != nil {
		return ItemStatusUnknown, err
	}

	if next == s {
		return next, nil
	}

	if s == ItemStatusCancelled {
		return ItemStatusUnknown, errs.NewInvalidStateTransitionError("item status", s.String(), next.String())
	}

	if next == ItemStatusCancelled {
		return next, nil
	}

	if next.rank() <= s.rank() {
		return ItemStatusUnknown, errs.NewInvalidStateTransitionError("item status", s.String(), next.String())
	}

	return next, nil
}

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem or RestoreItem factory functions.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

	// ErrItemNameIsRequired is returned when a line item has no dish name.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("item name")
)

// Item is a single line on an order: a dish, a quantity, a unit price, free-form
// preparation notes, and the item's own preparation status. Items are entities
// owned by the Order aggregate and are only mutated through it.
type Item struct {
	id        kernel.UUID
	name      string
	quantity  int
	unitPrice decimal.Decimal
	notes     string
	status    ItemStatus

	isConstructed bool
}

// NewItem creates a line item with validation. Quantity must be positive,
// the unit price non-negative, and the status a valid item status.
func NewItem(id kernel.UUID, name string, quantity int, unitPrice decimal.Decimal, notes string, status ItemStatus) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrItemNameIsRequired
	}
	if quantity <= 0 || quantity > maxItemQuantity {
		return nil, errs.NewValueIsOutOfRangeError("item quantity", quantity, 1, maxItemQuantity)
	}
	if unitPrice.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"item unit price",
			fmt.Errorf("%s is negative", unitPrice.String()),
		)
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Item{
		id:            id,
		name:          name,
		quantity:      quantity,
		unitPrice:     unitPrice,
		notes:         notes,
		status:        status,
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs a line item from persistence. The same validation
// rules apply as in NewItem.
func RestoreItem(id kernel.UUID, name string, quantity int, unitPrice decimal.Decimal, notes string, status ItemStatus) (*Item, error) {
	return NewItem(id, name, quantity, unitPrice, notes, status)
}

// maxItemQuantity bounds a single line item. Larger orders are entered as
// multiple lines; the bound catches fat-fingered quantities at the terminal.
const maxItemQuantity = 999

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the dish name.
func (i *Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of one unit.
func (i *Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Notes returns the free-form preparation notes.
func (i *Item) Notes() string {
	return i.notes
}

// Status returns the item's preparation status.
func (i *Item) Status() ItemStatus {
	return i.status
}

// markPreparing moves a Pending item to Preparing. Used by the aggregate when
// an order is fired to the kitchen; items in any other state are untouched.
func (i *Item) markPreparing() {
	if i.status == ItemStatusPending {
		i.status = ItemStatusPreparing
	}
}

// forceCancel moves the item to Cancelled regardless of its current state.
// Used by the aggregate when the whole order is cancelled.
func (i *Item) forceCancel() {
	i.status = ItemStatusCancelled
}
