package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"rental-ledger/internal/rentalerrors"
	"rental-ledger/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// ParseItemID parses the item_id path parameter; a false return means the
// error response has already been written.
func ParseItemID(c *gin.Context, handlerName string) (uint64, bool) {
	raw := c.Param("item_id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		wrappedErr := fmt.Errorf("invalid item id %q: %w", raw, err)
		utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid item id")
		utils.Warn(handlerName+": invalid item id", map[string]any{"item_id": raw})
		return 0, false
	}
	return id, true
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, rentalerrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, rentalerrors.ErrInvalidPrice):
		return http.StatusBadRequest, "invalid daily price"
	case errors.Is(err, rentalerrors.ErrInvalidDeposit):
		return http.StatusBadRequest, "invalid deposit"
	case errors.Is(err, rentalerrors.ErrMissingCaller):
		return http.StatusUnauthorized, "missing caller identity"
	case errors.Is(err, rentalerrors.ErrInsufficientPayment):
		return http.StatusPaymentRequired, "payment below required minimum"
	case errors.Is(err, rentalerrors.ErrNotAvailable):
		return http.StatusConflict, "item is not available"
	case errors.Is(err, rentalerrors.ErrOwnerCannotRent):
		return http.StatusConflict, "owner cannot rent own item"
	case errors.Is(err, rentalerrors.ErrNotCurrentlyRented):
		return http.StatusConflict, "item is not currently rented"
	case errors.Is(err, rentalerrors.ErrNotRenter):
		return http.StatusConflict, "caller is not the current renter"
	case errors.Is(err, rentalerrors.ErrRentalPeriodNotExpired):
		return http.StatusConflict, "rental period has not expired"
	case errors.Is(err, rentalerrors.ErrReentrantCall):
		return http.StatusConflict, "ledger is busy"
	case errors.Is(err, rentalerrors.ErrTransferFailed):
		return http.StatusBadGateway, "value transfer failed"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
