package function

import (
	"errors"
	"fmt"
)

// ErrDomain is the root of all errors raised while building a tabulated
// function from well-shaped input.
var ErrDomain = errors.New("invalid function table")

var (
	ErrLengthMismatch = fmt.Errorf("%w: lengths do not match", ErrDomain)
	ErrEmpty          = fmt.Errorf("%w: must not be empty", ErrDomain)
	ErrNotIncreasing  = fmt.Errorf("%w: times must be strictly increasing", ErrDomain)
	ErrNonFinite      = fmt.Errorf("%w: times must be finite", ErrDomain)
)

// ErrUnsupportedOperation is returned by every attempt to duplicate or
// persist a Function.
var ErrUnsupportedOperation = fmt.Errorf("unsupported operation: %w", errors.ErrUnsupported)

var ErrCallerNil = errors.New("caller is nil")
