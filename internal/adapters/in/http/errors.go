package http

import (
	"errors"
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps domain errors onto HTTP statuses. Anything unrecognized
// is a 500 with a generic message so internals never leak to clients.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return jsonError(ctx, http.StatusNotFound, err)
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrItemsAreRequired),
		errors.Is(err, commands.ErrCustomerContactIsRequired),
		errors.Is(err, commands.ErrNothingToUpdate):
		return jsonError(ctx, http.StatusBadRequest, err)
	case errors.Is(err, errs.ErrInvalidStateTransition),
		errors.Is(err, errs.ErrConcurrencyConflict),
		errors.Is(err, table.ErrTableIsOccupied):
		return jsonError(ctx, http.StatusConflict, err)
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

func jsonError(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
