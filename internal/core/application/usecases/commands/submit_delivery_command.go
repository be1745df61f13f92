package commands

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var (
	ErrSubmitDeliveryCommandIsNotConstructed = errors.New(
		"SubmitDeliveryCommand must be created via NewSubmitDeliveryCommand constructor",
	)
	ErrCustomerContactIsRequired = errors.New("customer phone or email is required")
)

// CustomerParam carries the contact details attached to a delivery
// submission. At least one of Phone or Email must be present; they drive
// customer deduplication, phone first.
type CustomerParam struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// SubmitDeliveryCommand represents a request to open a delivery order.
// The handler resolves the customer by contact, creating one when no match
// exists, and links the order to it.
type SubmitDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	tenantID kernel.UUID
	channel  order.Channel
	status   order.Status
	items    []*order.Item
	money    kernel.Money
	customer CustomerParam

	guard guard.ConstructorGuard
}

func NewSubmitDeliveryCommand(orderID, tenantID kernel.UUID,
	channel order.Channel, status order.Status,
	items []ItemParam, money MoneyParam, customer CustomerParam) (SubmitDeliveryCommand, error) {
	cmd := SubmitDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(orderID, tenantID),
		cmd.setChannelAndStatus(channel, status),
		cmd.setItems(items),
		cmd.setMoney(money),
		cmd.setCustomer(customer),
	); err != nil {
		return SubmitDeliveryCommand{}, err
	}

	return cmd, nil
}

// NewSubmitWebOrderCommand creates a delivery submission arriving through the
// public web widget. Web orders are always deliveries on the web channel;
// everything else behaves like NewSubmitDeliveryCommand.
func NewSubmitWebOrderCommand(orderID, tenantID kernel.UUID, status order.Status,
	items []ItemParam, money MoneyParam, customer CustomerParam) (SubmitDeliveryCommand, error) {
	return NewSubmitDeliveryCommand(orderID, tenantID, order.ChannelWebWidget, status, items, money, customer)
}

// Validate ensures the command was created through the constructor.
func (c SubmitDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrSubmitDeliveryCommandIsNotConstructed)
}

func (c SubmitDeliveryCommand) OrderID() kernel.UUID    { return c.orderID }
func (c SubmitDeliveryCommand) TenantID() kernel.UUID   { return c.tenantID }
func (c SubmitDeliveryCommand) Channel() order.Channel  { return c.channel }
func (c SubmitDeliveryCommand) Status() order.Status    { return c.status }
func (c SubmitDeliveryCommand) Items() []*order.Item    { return c.items }
func (c SubmitDeliveryCommand) Money() kernel.Money     { return c.money }
func (c SubmitDeliveryCommand) Customer() CustomerParam { return c.customer }

func (c *SubmitDeliveryCommand) setIDs(orderID, tenantID kernel.UUID) error {
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

func (c *SubmitDeliveryCommand) setChannelAndStatus(channel order.Channel, status order.Status) error {
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

func (c *SubmitDeliveryCommand) setItems(params []ItemParam) error {
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

func (c *SubmitDeliveryCommand) setMoney(param MoneyParam) error {
	money, err := param.toMoney()
	if err != nil {
		return err
	}
	c.money = money
	return nil
}

func (c *SubmitDeliveryCommand) setCustomer(param CustomerParam) error {
	if strings.TrimSpace(param.Phone) == "" && strings.TrimSpace(param.Email) == "" {
		return ErrCustomerContactIsRequired
	}
	c.customer = param
	return nil
}
