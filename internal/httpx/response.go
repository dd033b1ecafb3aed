package httpx

import (
	"errors"
	"net/http"

	"loafer-be/internal/cart"
	"loafer-be/internal/catalog"
	"loafer-be/internal/checkout"
	"loafer-be/internal/user"

	"github.com/gin-gonic/gin"
)

// writeError maps domain sentinels to HTTP statuses and emits the JSON
// error shape used across the API.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, cart.ErrCartItemNotFound),
		errors.Is(err, checkout.ErrSessionNotFound),
		errors.Is(err, user.ErrUserNotFound):
		status = http.StatusNotFound

	case errors.Is(err, cart.ErrUserNotAuthenticated),
		errors.Is(err, checkout.ErrUserNotAuthenticated),
		errors.Is(err, user.ErrInvalidCredentials):
		status = http.StatusUnauthorized

	case errors.Is(err, checkout.ErrForbidden):
		status = http.StatusForbidden

	case errors.Is(err, user.ErrEmailExists),
		errors.Is(err, checkout.ErrSessionNotPending):
		status = http.StatusConflict

	case errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrSizeNotOffered),
		errors.Is(err, cart.ErrCartEmpty),
		errors.Is(err, checkout.ErrCartEmpty),
		errors.Is(err, checkout.ErrUnknownShippingMethod),
		errors.Is(err, checkout.ErrUnknownPaymentMethod),
		errors.Is(err, checkout.ErrContactIncomplete):
		status = http.StatusBadRequest

	case errors.Is(err, checkout.ErrSessionExpired):
		status = http.StatusGone
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
