package commands

import (
	"context"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// SubmitDeliveryCommandHandler opens delivery orders, including web-widget
// submissions. The customer is looked up by phone, then email; an unknown
// contact becomes a new customer record in the same transaction as the order.
type SubmitDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   ports.KitchenNotifier
}

// NewSubmitDeliveryCommandHandler creates a handler for delivery submissions.
func NewSubmitDeliveryCommandHandler(uowFactory DeliveryUoWFactory, notifier ports.KitchenNotifier) SubmitDeliveryCommandHandler {
	return SubmitDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes a delivery submission and returns the linked customer ID.
func (h *SubmitDeliveryCommandHandler) Handle(ctx context.Context, cmd SubmitDeliveryCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	linked, err := h.resolveCustomer(ctx, uow, cmd)
	if err != nil {
		return kernel.UUID{}, err
	}

	customerID := linked.ID()
	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.TenantID(), cmd.Channel(), order.TypeDelivery,
		nil, &customerID, cmd.Items(), cmd.Status(), cmd.Money(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	if h.notifier != nil && newOrder.IsKitchenVisible() {
		h.notifier.Publish(KitchenEventFromOrder(newOrder))
	}
	return customerID, nil
}

func (h *SubmitDeliveryCommandHandler) resolveCustomer(ctx context.Context,
	uow DeliveryUoW, cmd SubmitDeliveryCommand) (*customer.Customer, error) {
	repo := uow.CustomerRepository()
	param := cmd.Customer()

	existing, err := repo.FindByContact(ctx, cmd.TenantID(), param.Phone, param.Email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		// A fresh address on a repeat order supersedes the stored one.
		if param.Address != "" && param.Address != existing.Address() {
			if err = existing.UpdateAddress(param.Address); err != nil {
				return nil, err
			}
			if err = repo.Update(ctx, existing); err != nil {
				return nil, err
			}
		}
		return existing, nil
	}

	created, err := customer.NewCustomer(kernel.NewUUID(), cmd.TenantID(),
		param.Name, param.Phone, param.Email, param.Address)
	if err != nil {
		return nil, err
	}
	if err = repo.Add(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}
