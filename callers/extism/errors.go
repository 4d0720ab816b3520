package extism

import "errors"

var (
	ErrContentNil       = errors.New("wasm content is nil")
	ErrCompileFailed    = errors.New("failed to compile extism plugin")
	ErrFunctionNotFound = errors.New("extism function not found")
	ErrNonZeroExit      = errors.New("extism function returned non-zero exit code")
	ErrNonNumericResult = errors.New("extism function returned a non-numeric value")
	ErrClosed           = errors.New("extism caller is closed")
)
