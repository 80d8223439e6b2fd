package tables

import "errors"

// Sentinel errors for the tables package.
var (
	ErrUnknownEnumeration = errors.New("cubegen: unknown enumeration")
	ErrUnknownTable       = errors.New("cubegen: unknown table")

	// ErrInconsistent is wrapped by Validate when an enumeration breaks one of
	// its invariants.
	ErrInconsistent = errors.New("cubegen: inconsistent enumeration")
)
