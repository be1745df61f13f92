package commands

import (
	"context"
	"time"
)

// SweepTokenCountersCommandHandler deletes token counters older than the
// retention window. Scheduled nightly; safe to run at any time since the
// current business day is always inside the window.
type SweepTokenCountersCommandHandler struct {
	uowFactory TokenUoWFactory
	now        func() time.Time
}

// NewSweepTokenCountersCommandHandler creates a handler for counter sweeps.
// now is the clock used to compute the cutoff; pass nil for wall time.
func NewSweepTokenCountersCommandHandler(uowFactory TokenUoWFactory, now func() time.Time) SweepTokenCountersCommandHandler {
	if now == nil {
		now = time.Now
	}
	return SweepTokenCountersCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle runs the sweep and returns how many counters were removed.
func (h *SweepTokenCountersCommandHandler) Handle(ctx context.Context, cmd SweepTokenCountersCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := h.now().UTC().AddDate(0, 0, -cmd.RetentionDays())
	removed, err := uow.TokenRepository().DeleteBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return removed, nil
}
