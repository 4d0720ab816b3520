// Package starlark builds function callers from Starlark functions.
package starlark

import (
	"fmt"
	"log/slog"

	starlarkLib "go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/robbyt/go-scalarfunc/function"
	"github.com/robbyt/go-scalarfunc/loader"
)

// Caller calls a Starlark function with one float argument. Errors raised by
// the script, including fail() and runtime errors, are returned unchanged as
// *starlark.EvalError.
type Caller struct {
	fn         starlarkLib.Callable
	threadName string
	logger     *slog.Logger
}

var _ function.Caller = (*Caller)(nil)

// New wraps a Starlark callable obtained elsewhere by the host.
func New(fn starlarkLib.Callable, opts ...Option) (*Caller, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: callable is nil", ErrNotCallable)
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return &Caller{fn: fn, threadName: cfg.threadName, logger: cfg.logger}, nil
}

// FromString executes src once and returns a caller for its global
// function named entry.
func FromString(src, entry string, opts ...Option) (*Caller, error) {
	l, err := loader.NewFromString(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContentNil, err)
	}
	return FromLoader(l, entry, opts...)
}

// FromLoader is like FromString for any source.
func FromLoader(ldr loader.Loader, entry string, opts ...Option) (*Caller, error) {
	if ldr == nil {
		return nil, ErrContentNil
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	logger := cfg.logger.With("entry", entry)

	content, err := loader.ReadAll(ldr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContentNil, err)
	}
	if len(content) == 0 {
		return nil, ErrContentNil
	}

	filename := "script.star"
	if u := ldr.GetSourceURL(); u != nil {
		filename = u.String()
	}

	globals, err := execFile(cfg, logger, filename, content)
	if err != nil {
		return nil, err
	}

	v, ok := globals[entry]
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s", ErrFunctionNotFound, entry, filename)
	}
	fn, ok := v.(starlarkLib.Callable)
	if !ok {
		return nil, fmt.Errorf("%w: %q is a %s", ErrNotCallable, entry, v.Type())
	}
	logger.Debug("starlark function loaded", "source", filename)

	return &Caller{fn: fn, threadName: cfg.threadName, logger: cfg.logger}, nil
}

// execFile runs the top level of the script and returns its frozen globals.
func execFile(cfg *config, logger *slog.Logger, filename string, content []byte) (starlarkLib.StringDict, error) {
	predeclared := standardModules()
	for k, v := range cfg.globals {
		predeclared[k] = v
	}

	thread := &starlarkLib.Thread{
		Name: "init",
		Print: func(_ *starlarkLib.Thread, msg string) {
			logger.Info(msg, "starlark-thread", "init")
		},
	}

	globals, err := starlarkLib.ExecFileOptions(&syntax.FileOptions{}, thread, filename, content, predeclared)
	if err != nil {
		logger.Error("starlark script failed to load", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}
	globals.Freeze()
	return globals, nil
}

func (c *Caller) String() string {
	return "starlark.Caller{" + c.fn.Name() + "}"
}

// Call runs the function on a fresh thread.
func (c *Caller) Call(t float64) (float64, error) {
	thread := &starlarkLib.Thread{
		Name: c.threadName,
		Print: func(thread *starlarkLib.Thread, msg string) {
			c.logger.Info(msg, "starlark-thread", thread.Name)
		},
	}

	v, err := starlarkLib.Call(thread, c.fn, starlarkLib.Tuple{starlarkLib.Float(t)}, nil)
	if err != nil {
		return 0, err
	}
	return toFloat(v)
}
