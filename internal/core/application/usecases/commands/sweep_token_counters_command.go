package commands

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var (
	ErrSweepTokenCountersCommandIsNotConstructed = errors.New(
		"SweepTokenCountersCommand must be created via NewSweepTokenCountersCommand constructor",
	)
	ErrRetentionDaysIsInvalid = errors.New("retention days must be greater than 0")
)

// SweepTokenCountersCommand represents the nightly cleanup of stale pickup
// token counters. Counters reset per business day by construction; the sweep
// only reclaims rows no terminal will read again.
type SweepTokenCountersCommand struct { //nolint:recvcheck //using for validation
	retentionDays int

	guard guard.ConstructorGuard
}

func NewSweepTokenCountersCommand(retentionDays int) (SweepTokenCountersCommand, error) {
	if retentionDays <= 0 {
		return SweepTokenCountersCommand{}, ErrRetentionDaysIsInvalid
	}
	return SweepTokenCountersCommand{
		retentionDays: retentionDays,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SweepTokenCountersCommand) Validate() error {
	return c.guard.Validate(ErrSweepTokenCountersCommandIsNotConstructed)
}

func (c SweepTokenCountersCommand) RetentionDays() int { return c.retentionDays }
