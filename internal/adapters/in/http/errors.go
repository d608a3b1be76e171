package http

import (
	"errors"
	"net/http"

	"quickbasket/internal/core/application/usecases/commands"
	"quickbasket/internal/core/domain/model/order"
	"quickbasket/internal/core/domain/model/request"
	"quickbasket/internal/core/domain/services"
	"quickbasket/internal/core/ports"
	"quickbasket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// fail writes the error body for an HTTP status.
func fail(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, Error{Code: status, Message: message})
}

// failFrom maps a use-case error to an HTTP status. The order matters only in
// that the sentinel checks are disjoint; unknown errors become a 500 without
// leaking internals to the client.
func failFrom(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrNotAuthorized):
		return fail(ctx, http.StatusForbidden, "not allowed to perform this operation")

	case errors.Is(err, errs.ErrObjectNotFound):
		return fail(ctx, http.StatusNotFound, "not found")

	case errors.Is(err, errs.ErrStaleState):
		return fail(ctx, http.StatusConflict, "state changed concurrently, retry with fresh state")

	case errors.Is(err, request.ErrAlreadyResponded):
		return fail(ctx, http.StatusConflict, "request already responded to")

	case errors.Is(err, ports.ErrActiveRequestExists):
		return fail(ctx, http.StatusConflict, "order already has an active delivery request")

	case errors.Is(err, ports.ErrOrderAlreadyExists):
		return fail(ctx, http.StatusConflict, "order already exists")

	case errors.Is(err, order.ErrCancellationWindowClosed):
		return fail(ctx, http.StatusConflict, "cancellation window closed")

	case errors.Is(err, commands.ErrOrderNotTerminal):
		return fail(ctx, http.StatusConflict, "only terminal orders can be removed")

	case errors.Is(err, services.ErrNoAvailablePartner):
		return fail(ctx, http.StatusConflict, "no delivery partner available")

	case errors.Is(err, services.ErrVendorLocationUnset):
		return fail(ctx, http.StatusConflict, "vendor location is not set")

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return fail(ctx, http.StatusBadRequest, err.Error())

	default:
		return fail(ctx, http.StatusInternalServerError, "internal error")
	}
}
