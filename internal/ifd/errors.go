package ifd

import "errors"

var (
	// ErrMalformedStructure is returned when the IFD budget is exceeded.
	ErrMalformedStructure = errors.New("ifd: malformed structure")
)

// budget bounds the total number of IFDs walk() will parse for one call,
// guarding against offset cycles a well-formed NEF should never produce.
const budget = 64
