package ports

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
)

// TokenRepository hands out takeaway pickup tokens. Each tenant, channel and
// business day owns an independent counter starting at 1.
type TokenRepository interface {
	// NextValue atomically increments and returns the counter for the given
	// tenant, channel and business day. The first call of a day returns 1;
	// concurrent callers are guaranteed distinct, strictly increasing values.
	NextValue(ctx context.Context, tenantID kernel.UUID, channel, businessDay string) (int, error)

	// DeleteBefore removes counters for business days older than the cutoff.
	// Used by the nightly sweep; token sequences reset simply because the
	// next day's counter does not exist yet.
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
