package starlark

import "errors"

var (
	ErrContentNil       = errors.New("starlark content is nil")
	ErrCompileFailed    = errors.New("failed to compile starlark script")
	ErrFunctionNotFound = errors.New("starlark function not found")
	ErrNotCallable      = errors.New("starlark value is not callable")
	ErrNonNumericResult = errors.New("starlark function returned a non-numeric value")
)
