package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrSubmitTakeawayCommandIsNotConstructed = errors.New(
	"SubmitTakeawayCommand must be created via NewSubmitTakeawayCommand constructor",
)

// SubmitTakeawayCommand represents a request to open a takeaway order.
// The handler draws the next pickup token for the tenant's business day and
// stamps it on the order before persisting.
type SubmitTakeawayCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	tenantID kernel.UUID
	channel  order.Channel
	status   order.Status
	items    []*order.Item
	money    kernel.Money

	guard guard.ConstructorGuard
}

func NewSubmitTakeawayCommand(orderID, tenantID kernel.UUID,
	channel order.Channel, status order.Status,
	items []ItemParam, money MoneyParam) (SubmitTakeawayCommand, error) {
	cmd := SubmitTakeawayCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(orderID, tenantID),
		cmd.setChannelAndStatus(channel, status),
		cmd.setItems(items),
		cmd.setMoney(money),
	); err != nil {
		return SubmitTakeawayCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitTakeawayCommand) Validate() error {
	return c.guard.Validate(ErrSubmitTakeawayCommandIsNotConstructed)
}

func (c SubmitTakeawayCommand) OrderID() kernel.UUID   { return c.orderID }
func (c SubmitTakeawayCommand) TenantID() kernel.UUID  { return c.tenantID }
func (c SubmitTakeawayCommand) Channel() order.Channel { return c.channel }
func (c SubmitTakeawayCommand) Status() order.Status   { return c.status }
func (c SubmitTakeawayCommand) Items() []*order.Item   { return c.items }
func (c SubmitTakeawayCommand) Money() kernel.Money    { return c.money }

func (c *SubmitTakeawayCommand) setIDs(orderID, tenantID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if err := tenantID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	c.tenantID = tenantID
	return nil
}

func (c *SubmitTakeawayCommand) setChannelAndStatus(channel order.Channel, status order.Status) error {
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

func (c *SubmitTakeawayCommand) setItems(params []ItemParam) error {
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

func (c *SubmitTakeawayCommand) setMoney(param MoneyParam) error {
	money, err := param.toMoney()
	if err != nil {
		return err
	}
	c.money = money
	return nil
}
