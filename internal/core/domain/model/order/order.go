package order

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderItemsAreRequired is returned when an order is created without
	// any line items.
	ErrOrderItemsAreRequired = errs.NewValueIsRequiredError("order items")

	// ErrCustomerIsRequired is returned when a delivery order is created
	// without a customer reference.
	ErrCustomerIsRequired = errs.NewValueIsRequiredError("customer for delivery order")
)

// Order represents a guest order in the restaurant platform. It is the
// aggregate root that manages the order lifecycle from submission through
// kitchen preparation to settlement or cancellation.
//
// Order follows these invariants:
//   - Must have valid unique and tenant identifiers
//   - Must carry at least one line item
//   - Only dine-in orders may reference a table; only takeaway orders may
//     carry a queue token; delivery orders must reference a customer
//   - Status transitions follow the Status state machine; once Paid or
//     Cancelled no item may be reopened
//   - Entering KitchenTicketed, or originating from the QuickService channel,
//     forces every Pending item to Preparing
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	id       kernel.UUID
	tenantID kernel.UUID

	channel   Channel
	orderType Type

	// tableID is set for dine-in orders only (nil otherwise)
	tableID *kernel.UUID

	// token is the daily queue number, minted for takeaway orders only
	token *int

	// customerID is optional except for delivery orders
	customerID *kernel.UUID

	items  []*Item
	status Status
	money  kernel.Money

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a new Order with validation. The order is created directly
// in the draft's target status: transition rules govern updates of existing
// orders, not creation (a quick-service counter order may be born Paid).
// Creation in Cancelled status is rejected.
//
// If the target status is KitchenTicketed, or the channel is QuickService,
// every Pending item is forced to Preparing.
//
// Parameters:
//   - id, tenantID: identifiers (must be valid UUIDs)
//   - channel: originating workflow; WebWidget submissions must be delivery orders
//   - orderType: fulfillment mode
//   - tableID: table reference, dine-in only (nil otherwise)
//   - customerID: customer reference, mandatory for delivery orders
//   - items: at least one line item
//   - status: the target status (any valid status except Cancelled)
//   - money: caller-computed monetary breakdown, trusted as provided
func NewOrder(
	id kernel.UUID,
	tenantID kernel.UUID,
	channel Channel,
	orderType Type,
	tableID *kernel.UUID,
	customerID *kernel.UUID,
	items []*Item,
	status Status,
	money kernel.Money,
) (*Order, error) {
	now := time.Now().UTC()
	o, err := RestoreOrder(id, tenantID, channel, orderType, tableID, nil, customerID, items, status, money, now, now)
	if err != nil {
		return nil, err
	}

	if status == StatusCancelled {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"order status",
			errors.New("an order cannot be created in Cancelled status"),
		)
	}

	if o.status == StatusKitchenTicketed || o.channel == ChannelQuickService {
		o.firePendingItems()
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. All structural
// invariants are validated, but no side effects (item forcing, timestamps)
// are applied: the stored state is taken as-is.
func RestoreOrder(
	id kernel.UUID,
	tenantID kernel.UUID,
	channel Channel,
	orderType Type,
	tableID *kernel.UUID,
	token *int,
	customerID *kernel.UUID,
	items []*Item,
	status Status,
	money kernel.Money,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		money:         money,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setIDs(id, tenantID),
		o.setChannelAndType(channel, orderType),
		o.setTableID(tableID),
		o.setToken(token),
		o.setCustomerID(customerID, orderType),
		o.setItems(items),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through one of
// the factory functions. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TenantID returns the owning tenant's identifier.
func (o *Order) TenantID() kernel.UUID {
	return o.tenantID
}

// Channel returns the originating front-of-house channel.
func (o *Order) Channel() Channel {
	return o.channel
}

// Type returns the fulfillment mode.
func (o *Order) Type() Type {
	return o.orderType
}

// TableID returns the referenced table for dine-in orders, nil otherwise.
func (o *Order) TableID() *kernel.UUID {
	return o.tableID
}

// Token returns the daily queue token for takeaway orders, nil if none was minted.
func (o *Order) Token() *int {
	return o.token
}

// CustomerID returns the customer reference, nil if anonymous.
func (o *Order) CustomerID() *kernel.UUID {
	return o.customerID
}

// Items returns the order's line items. The returned slice is a copy; items
// themselves are aggregate-owned and must not be mutated by callers.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Money returns the monetary breakdown.
func (o *Order) Money() kernel.Money {
	return o.money
}

// CreatedAt returns the submission time (UTC).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation time (UTC).
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// HasPreparingItem reports whether any line item is currently in preparation.
func (o *Order) HasPreparingItem() bool {
	for _, item := range o.items {
		if item.status == ItemStatusPreparing {
			return true
		}
	}
	return false
}

// IsKitchenVisible reports whether the order belongs on the kitchen worklist:
// it has been ticketed, or it is paid while at least one item is still being
// prepared (payment and kitchen fulfillment are independent timelines).
func (o *Order) IsKitchenVisible() bool {
	if o.status == StatusKitchenTicketed {
		return true
	}
	return o.status == StatusPaid && o.HasPreparingItem()
}

// ChangeStatus transitions the order to next following the Status machine.
// Entering KitchenTicketed forces every Pending item to Preparing.
// Transitioning to Cancelled delegates to Cancel. Any transition from a
// terminal status fails with InvalidStateTransition.
func (o *Order) ChangeStatus(next Status) error {
	if next == StatusCancelled {
		return o.Cancel()
	}

	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	if newStatus == StatusKitchenTicketed {
		o.firePendingItems()
	}
	o.touch()
	return nil
}

// Cancel moves the order to Cancelled and forces every line item to Cancelled
// regardless of its current state. Cancelling an already cancelled order is an
// idempotent no-op; cancelling a paid order fails with InvalidStateTransition.
// Cancellation is irreversible.
func (o *Order) Cancel() error {
	if o.status == StatusCancelled {
		return nil
	}
	if o.status == StatusPaid {
		return errs.NewInvalidStateTransitionError("order status", o.status.String(), StatusCancelled.String())
	}

	o.status = StatusCancelled
	for _, item := range o.items {
		item.forceCancel()
	}
	o.touch()
	return nil
}

// ReplaceItems substitutes the order's line items with the given ones.
// An incoming item that carries the ID of an existing item is a mutation of
// that item, and its status change must be a legal forward transition; items
// with new IDs are additions, and omitted IDs are removals. Terminal orders
// cannot be changed.
func (o *Order) ReplaceItems(items []*Item) error {
	if o.status.IsTerminal() {
		return errs.NewInvalidStateTransitionError("order status", o.status.String(), o.status.String())
	}
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	existing := make(map[kernel.UUID]*Item, len(o.items))
	for _, item := range o.items {
		existing[item.id] = item
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if prev, ok := existing[item.id]; ok {
			if _, err := prev.status.TransitionTo(item.status); err != nil {
				return err
			}
		}
	}

	o.items = items
	o.touch()
	return nil
}

// UpdateMoney replaces the monetary breakdown. Terminal orders cannot be changed.
func (o *Order) UpdateMoney(money kernel.Money) error {
	if o.status.IsTerminal() {
		return errs.NewInvalidStateTransitionError("order status", o.status.String(), o.status.String())
	}
	o.money = money
	o.touch()
	return nil
}

// AssignCustomer attaches or replaces the customer reference.
// Terminal orders cannot be changed.
func (o *Order) AssignCustomer(customerID kernel.UUID) error {
	if o.status.IsTerminal() {
		return errs.NewInvalidStateTransitionError("order status", o.status.String(), o.status.String())
	}
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = &customerID
	o.touch()
	return nil
}

// AssignToken attaches the daily queue token minted by the sequencer.
// Only takeaway orders carry tokens, and a token is assigned exactly once.
func (o *Order) AssignToken(token int) error {
	if o.orderType != TypeTakeaway {
		return errs.NewValueIsInvalidErrorWithCause(
			"token",
			fmt.Errorf("%s orders do not carry queue tokens", o.orderType),
		)
	}
	if token <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("token", fmt.Errorf("%d is not a positive token", token))
	}
	if o.token != nil {
		return errs.NewValueIsInvalidErrorWithCause("token", errors.New("token already assigned"))
	}

	o.token = &token
	return nil
}

// firePendingItems moves every Pending item to Preparing; items in other
// states are untouched.
func (o *Order) firePendingItems() {
	for _, item := range o.items {
		item.markPreparing()
	}
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setIDs(id, tenantID kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := tenantID.Validate(); err != nil {
		return err
	}
	o.id = id
	o.tenantID = tenantID
	return nil
}

func (o *Order) setChannelAndType(channel Channel, orderType Type) error {
	if err := channel.Validate(); err != nil {
		return err
	}
	if err := orderType.Validate(); err != nil {
		return err
	}
	if channel == ChannelWebWidget && orderType != TypeDelivery {
		return errs.NewValueIsInvalidErrorWithCause(
			"order type",
			fmt.Errorf("the public widget only submits delivery orders, got %s", orderType),
		)
	}
	o.channel = channel
	o.orderType = orderType
	return nil
}

func (o *Order) setTableID(tableID *kernel.UUID) error {
	if tableID == nil {
		return nil
	}
	if o.orderType != TypeDineIn {
		return errs.NewValueIsInvalidErrorWithCause(
			"table",
			fmt.Errorf("%s orders do not reference tables", o.orderType),
		)
	}
	if err := tableID.Validate(); err != nil {
		return err
	}
	o.tableID = tableID
	return nil
}

func (o *Order) setToken(token *int) error {
	if token == nil {
		return nil
	}
	if o.orderType != TypeTakeaway {
		return errs.NewValueIsInvalidErrorWithCause(
			"token",
			fmt.Errorf("%s orders do not carry queue tokens", o.orderType),
		)
	}
	if *token <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("token", fmt.Errorf("%d is not a positive token", *token))
	}
	o.token = token
	return nil
}

func (o *Order) setCustomerID(customerID *kernel.UUID, orderType Type) error {
	if customerID == nil {
		if orderType == TypeDelivery {
			return ErrCustomerIsRequired
		}
		return nil
	}
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
