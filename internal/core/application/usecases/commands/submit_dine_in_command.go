package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var (
	ErrSubmitDineInCommandIsNotConstructed = errors.New(
		"SubmitDineInCommand must be created via NewSubmitDineInCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one item is required")
)

// SubmitDineInCommand represents a request to open a dine-in order on a table.
// The order enters directly in the requested draft status; two terminals
// submitting for the same table are reconciled against the table's active
// order, so the order that ends up persisted may differ from OrderID.
//
// Example:
//
//	cmd, err := NewSubmitDineInCommand(kernel.NewUUID(), tenantID, tableID,
//	    order.ChannelFloorManager, order.StatusKitchenTicketed, items, totals)
//	if err != nil {
//	    return fmt.Errorf("invalid submission: %w", err)
//	}
//
//	handler := NewSubmitDineInCommandHandler(uowFactory, notifier)
//	orderID, err := handler.Handle(ctx, cmd)
type SubmitDineInCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	tenantID kernel.UUID
	tableID  kernel.UUID
	channel  order.Channel
	status   order.Status
	items    []*order.Item
	money    kernel.Money

	guard guard.ConstructorGuard
}

// NewSubmitDineInCommand creates a dine-in submission. Item params become
// fresh pending lines; quick-service forcing happens inside the aggregate.
func NewSubmitDineInCommand(orderID, tenantID, tableID kernel.UUID,
	channel order.Channel, status order.Status,
	items []ItemParam, money MoneyParam) (SubmitDineInCommand, error) {
	cmd := SubmitDineInCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(orderID, tenantID, tableID),
		cmd.setChannelAndStatus(channel, status),
		cmd.setItems(items),
		cmd.setMoney(money),
	); err != nil {
		return SubmitDineInCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitDineInCommand) Validate() error {
	return c.guard.Validate(ErrSubmitDineInCommandIsNotConstructed)
}

func (c SubmitDineInCommand) OrderID() kernel.UUID  { return c.orderID }
func (c SubmitDineInCommand) TenantID() kernel.UUID { return c.tenantID }
func (c SubmitDineInCommand) TableID() kernel.UUID  { return c.tableID }
func (c SubmitDineInCommand) Channel() order.Channel {
	return c.channel
}
func (c SubmitDineInCommand) Status() order.Status { return c.status }
func (c SubmitDineInCommand) Items() []*order.Item { return c.items }
func (c SubmitDineInCommand) Money() kernel.Money  { return c.money }

func (c *SubmitDineInCommand) setIDs(orderID, tenantID, tableID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if err := tenantID.Validate(); err != nil {
		return err
	}
	if err := tableID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	c.tenantID = tenantID
	c.tableID = tableID
	return nil
}

func (c *SubmitDineInCommand) setChannelAndStatus(channel order.Channel, status order.Status) error {
	if err := channel.Validate(); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}
	c.channel = channel
	c.status = status
	return nil
}

func (c *SubmitDineInCommand) setItems(params []ItemParam) error {
	if len(params) == 0 {
		return ErrItemsAreRequired
	}
	items, err := newPendingItems(params)
	if err != nil {
		return err
	}
	c.items = items
	return nil
}

func (c *SubmitDineInCommand) setMoney(param MoneyParam) error {
	money, err := param.toMoney()
	if err != nil {
		return err
	}
	c.money = money
	return nil
}
