package domain

import "github.com/pkg/errors"

// ErrInvalidInput marks malformed input rejected at the boundary (negative
// counts, out-of-range fractions). Insufficient data is never an error: it is
// the normal evaluated state of a GateStatus with its booleans set to false.
var ErrInvalidInput = errors.New("invalid input")
