package wasm

import "errors"

var (
	ErrContentNil        = errors.New("wasm content is nil")
	ErrCompileFailed     = errors.New("failed to compile wasm module")
	ErrFunctionNotFound  = errors.New("wasm export not found")
	ErrSignatureMismatch = errors.New("wasm export must have signature (f64) -> f64")
	ErrClosed            = errors.New("wasm caller is closed")
)
