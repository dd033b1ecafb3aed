package catalog

import "errors"

var (
	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")

	// -- Configuration --
	ErrNoPriceRanges = errors.New("no price ranges configured")
)
