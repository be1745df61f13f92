package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// businessDayFormat is the key format of the per-day token counters.
const businessDayFormat = "2006-01-02"

// SubmitTakeawayCommandHandler opens takeaway orders. The pickup token and
// the order are written in one transaction, so a failed submission never
// burns a token that a customer could be waiting on.
type SubmitTakeawayCommandHandler struct {
	uowFactory TakeawayUoWFactory
	notifier   ports.KitchenNotifier
	now        func() time.Time
}

// NewSubmitTakeawayCommandHandler creates a handler for takeaway submissions.
// now is the clock used to resolve the business day; pass nil for wall time.
func NewSubmitTakeawayCommandHandler(uowFactory TakeawayUoWFactory,
	notifier ports.KitchenNotifier, now func() time.Time) SubmitTakeawayCommandHandler {
	if now == nil {
		now = time.Now
	}
	return SubmitTakeawayCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		now:        now,
	}
}

// Handle processes a takeaway submission and returns the assigned token.
func (h *SubmitTakeawayCommandHandler) Handle(ctx context.Context, cmd SubmitTakeawayCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.TenantID(), cmd.Channel(), order.TypeTakeaway,
		nil, nil, cmd.Items(), cmd.Status(), cmd.Money(),
	)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	businessDay := h.now().UTC().Format(businessDayFormat)
	token, err := uow.TokenRepository().NextValue(ctx, cmd.TenantID(), cmd.Channel().String(), businessDay)
	if err != nil {
		return 0, err
	}

	if err = newOrder.AssignToken(token); err != nil {
		return 0, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	if h.notifier != nil && newOrder.IsKitchenVisible() {
		h.notifier.Publish(KitchenEventFromOrder(newOrder))
	}
	return token, nil
}
