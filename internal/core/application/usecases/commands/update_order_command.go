package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
	ErrNothingToUpdate = errors.New("update carries no item, status or money change")
)

// UpdateOrderCommand represents a partial update of an open order: a new
// item list, a status transition, new totals, or any combination. Fields
// left unset keep their stored values.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	tenantID kernel.UUID
	status   *order.Status
	items    []ItemParam
	money    *MoneyParam

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates an order update. statusName may be empty for
// no status change; items may be nil to keep the current lines; money may be
// nil to keep the current totals. An update with none of the three is
// rejected.
func NewUpdateOrderCommand(orderID, tenantID kernel.UUID,
	statusName string, items []ItemParam, money *MoneyParam) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(orderID, tenantID),
		cmd.setStatus(statusName),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	cmd.items = items
	cmd.money = money

	if cmd.status == nil && cmd.items == nil && cmd.money == nil {
		return UpdateOrderCommand{}, ErrNothingToUpdate
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.UUID  { return c.orderID }
func (c UpdateOrderCommand) TenantID() kernel.UUID { return c.tenantID }
func (c UpdateOrderCommand) Status() *order.Status { return c.status }
func (c UpdateOrderCommand) Items() []ItemParam    { return c.items }
func (c UpdateOrderCommand) Money() *MoneyParam    { return c.money }

func (c *UpdateOrderCommand) setIDs(orderID, tenantID kernel.UUID) error {
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

func (c *UpdateOrderCommand) setStatus(statusName string) error {
	if statusName == "" {
		return nil
	}
	status, err := order.StatusFromString(statusName)
	if err != nil {
		return err
	}
	c.status = &status
	return nil
}
