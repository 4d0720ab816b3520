// Package function provides the scalar function variants: constant values,
// tabulated profiles with linear interpolation, and adapters around
// host-supplied callables.
package function

import "fmt"

// Function is a single-input, single-output real function.
type Function interface {
	fmt.Stringer

	// Eval returns the value of the function at t. Only callable-backed
	// functions can fail, and they return the callable's own error.
	Eval(t float64) (float64, error)
}

// Caller is a foreign callable taking one numeric argument.
type Caller interface {
	Call(t float64) (float64, error)
}

// CallerFunc adapts an ordinary Go function to the Caller interface.
type CallerFunc func(t float64) (float64, error)

// Call invokes f(t).
func (f CallerFunc) Call(t float64) (float64, error) {
	return f(t)
}

// PlainFunc adapts a function that cannot fail.
type PlainFunc func(t float64) float64

// Call invokes f(t).
func (f PlainFunc) Call(t float64) (float64, error) {
	return f(t), nil
}

var (
	_ Function = (*Constant)(nil)
	_ Function = (*Callable)(nil)
	_ Function = (*Tabulated)(nil)

	_ Caller = CallerFunc(nil)
	_ Caller = PlainFunc(nil)
)
