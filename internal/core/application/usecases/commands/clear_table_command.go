package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrClearTableCommandIsNotConstructed = errors.New(
	"ClearTableCommand must be created via NewClearTableCommand constructor",
)

// ClearTableCommand represents staff releasing a table after the bill was
// settled and the guests left.
type ClearTableCommand struct { //nolint:recvcheck //using for validation
	tableID  kernel.UUID
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

func NewClearTableCommand(tableID, tenantID kernel.UUID) (ClearTableCommand, error) {
	cmd := ClearTableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := tableID.Validate(); err != nil {
		return ClearTableCommand{}, err
	}
	if err := tenantID.Validate(); err != nil {
		return ClearTableCommand{}, err
	}

	cmd.tableID = tableID
	cmd.tenantID = tenantID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearTableCommand) Validate() error {
	return c.guard.Validate(ErrClearTableCommandIsNotConstructed)
}

func (c ClearTableCommand) TableID() kernel.UUID  { return c.tableID }
func (c ClearTableCommand) TenantID() kernel.UUID { return c.tenantID }
