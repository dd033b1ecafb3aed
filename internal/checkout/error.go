package checkout

import "errors"

var (
	// -- Authentication/Authorization --
	ErrUserNotAuthenticated = errors.New("user not authenticated")
	ErrForbidden            = errors.New("forbidden")

	// -- Validation & Input --
	ErrCartEmpty             = errors.New("cart is empty")
	ErrUnknownShippingMethod = errors.New("unknown shipping method")
	ErrUnknownPaymentMethod  = errors.New("unknown payment method")
	ErrContactIncomplete     = errors.New("contact information incomplete")

	// -- Session State --
	ErrSessionNotFound   = errors.New("checkout session not found")
	ErrSessionExpired    = errors.New("checkout session expired")
	ErrSessionNotPending = errors.New("checkout session already confirmed")
)
