// Package scalarfunc builds single-input, single-output real functions used
// as time- or position-dependent simulation inputs: constants, tabulated
// profiles, and functions defined in Go, Starlark, Risor or WebAssembly.
//
// All functions share one contract, function.Function:
//
//	f, err := scalarfunc.New([]float64{0, 1, 2}, []float64{2, 1, 0})
//	v, err := f.Eval(0.5) // 1.5
//
// Functions cannot be duplicated or serialized; see function.Clone.
package scalarfunc

import (
	"context"

	"github.com/robbyt/go-scalarfunc/callers/extism"
	"github.com/robbyt/go-scalarfunc/callers/risor"
	"github.com/robbyt/go-scalarfunc/callers/starlark"
	"github.com/robbyt/go-scalarfunc/callers/wasm"
	"github.com/robbyt/go-scalarfunc/construct"
	"github.com/robbyt/go-scalarfunc/function"
	"github.com/robbyt/go-scalarfunc/loader"
	"github.com/robbyt/go-scalarfunc/profile"
)

// New builds a function from one or two arguments:
//
//	New(5.0)                 // constant
//	New([]int{5})            // constant, from a single-element sequence
//	New(math.Sin)            // callable: func(float64) float64
//	New(caller)              // callable: any function.Caller
//	New(times, values)       // tabulated
//
// Malformed arguments fail with construct.ErrStructural errors; bad tables
// fail with function.ErrDomain errors.
func New(args ...any) (function.Function, error) {
	return construct.New(args...)
}

// Constant returns a function that is v everywhere.
func Constant(v float64) *function.Constant {
	return function.NewConstant(v)
}

// Tabulated interpolates linearly between the given knots.
func Tabulated(times, values []float64) (*function.Tabulated, error) {
	return function.NewTabulated(times, values)
}

// FromFunc wraps a Go function.
func FromFunc(fn func(float64) (float64, error)) (*function.Callable, error) {
	if fn == nil {
		return nil, function.ErrCallerNil
	}
	return function.NewCallable(function.CallerFunc(fn))
}

// FromStarlarkString executes src and wraps its global function entry.
func FromStarlarkString(src, entry string, opts ...starlark.Option) (*function.Callable, error) {
	c, err := starlark.FromString(src, entry, opts...)
	if err != nil {
		return nil, err
	}
	return function.NewCallable(c)
}

// FromStarlarkLoader is like FromStarlarkString for any source.
func FromStarlarkLoader(ldr loader.Loader, entry string, opts ...starlark.Option) (*function.Callable, error) {
	c, err := starlark.FromLoader(ldr, entry, opts...)
	if err != nil {
		return nil, err
	}
	return function.NewCallable(c)
}

// FromRisorString compiles a Risor script that reads its argument from the
// global t and evaluates to a number.
func FromRisorString(src string, opts ...risor.Option) (*function.Callable, error) {
	c, err := risor.FromString(src, opts...)
	if err != nil {
		return nil, err
	}
	return function.NewCallable(c)
}

// FromRisorLoader is like FromRisorString for any source.
func FromRisorLoader(ldr loader.Loader, opts ...risor.Option) (*function.Callable, error) {
	c, err := risor.FromLoader(ldr, opts...)
	if err != nil {
		return nil, err
	}
	return function.NewCallable(c)
}

// FromWasmBytes wraps a WebAssembly export of type (f64) -> f64. The returned
// caller owns the runtime; close it after the function is no longer used.
func FromWasmBytes(
	ctx context.Context,
	wasmBytes []byte,
	export string,
	opts ...wasm.Option,
) (*function.Callable, *wasm.Caller, error) {
	c, err := wasm.FromBytes(ctx, wasmBytes, export, opts...)
	if err != nil {
		return nil, nil, err
	}
	f, err := function.NewCallable(c)
	if err != nil {
		return nil, nil, err
	}
	return f, c, nil
}

// FromExtismBytes wraps an Extism plugin export. The returned caller owns the
// plugin; close it after the function is no longer used.
func FromExtismBytes(
	ctx context.Context,
	wasmBytes []byte,
	entry string,
	opts ...extism.Option,
) (*function.Callable, *extism.Caller, error) {
	c, err := extism.FromBytes(ctx, wasmBytes, entry, opts...)
	if err != nil {
		return nil, nil, err
	}
	f, err := function.NewCallable(c)
	if err != nil {
		return nil, nil, err
	}
	return f, c, nil
}

// FromProfileLoader builds a tabulated function from a YAML or JSON profile.
func FromProfileLoader(ldr loader.Loader) (*function.Tabulated, error) {
	p, err := profile.Load(ldr)
	if err != nil {
		return nil, err
	}
	return p.NewFunction()
}
