package cube

import "errors"

// Sentinel errors for the cube package.
var (
	// ErrInvalidLabel is returned when a face or color cannot be parsed.
	ErrInvalidLabel = errors.New("cubegen: invalid face or color label")
)
