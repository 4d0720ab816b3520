// Package risor builds function callers from Risor scripts. The script is
// compiled once; each call runs it with the argument bound to a global
// (named "t" unless WithInputName says otherwise) and takes the value of its
// last expression:
//
//	func inflow(x) {
//	  if x < 1 {
//	    return 0
//	  }
//	  return x * 1.5
//	}
//	inflow(t)
package risor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	risorLib "github.com/risor-io/risor"
	risorCompiler "github.com/risor-io/risor/compiler"
	risorErrors "github.com/risor-io/risor/errz"
	risorObject "github.com/risor-io/risor/object"
	risorParser "github.com/risor-io/risor/parser"

	"github.com/robbyt/go-scalarfunc/function"
	"github.com/robbyt/go-scalarfunc/internal/helpers"
	"github.com/robbyt/go-scalarfunc/loader"
)

// Caller runs a compiled Risor script. Runtime errors, including errors the
// script returns as values, are returned unchanged.
type Caller struct {
	code      *risorCompiler.Code
	name      string
	inputName string
	globals   map[string]any
	logger    *slog.Logger
}

var _ function.Caller = (*Caller)(nil)

// FromString compiles src.
func FromString(src string, opts ...Option) (*Caller, error) {
	l, err := loader.NewFromString(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContentNil, err)
	}
	return FromLoader(l, opts...)
}

// FromLoader is like FromString for any source.
func FromLoader(ldr loader.Loader, opts ...Option) (*Caller, error) {
	if ldr == nil {
		return nil, ErrContentNil
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	content, err := loader.ReadAll(ldr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContentNil, err)
	}
	if len(content) == 0 {
		return nil, ErrContentNil
	}

	name := "script-" + helpers.ShortHash(content)
	if u := ldr.GetSourceURL(); u != nil {
		name = u.String()
	}
	logger := cfg.logger.With("source", name)

	code, err := compile(string(content), cfg)
	if err != nil {
		logger.Error("risor script failed to compile", "error", err)
		return nil, err
	}
	logger.Debug("risor script compiled")

	return &Caller{
		code:      code,
		name:      name,
		inputName: cfg.inputName,
		globals:   cfg.globals,
		logger:    cfg.logger,
	}, nil
}

// compile parses src and compiles it with the input and extra globals
// declared, so that references to them resolve at compile time.
func compile(src string, cfg *config) (*risorCompiler.Code, error) {
	ast, err := risorParser.Parse(context.Background(), src)
	if err != nil {
		errMsg := err.Error()
		var friendlyErr risorErrors.FriendlyError
		if errors.As(err, &friendlyErr) {
			errMsg = friendlyErr.FriendlyErrorMessage()
		}
		return nil, fmt.Errorf("%w: %s", ErrCompileFailed, errMsg)
	}

	globalNames := risorLib.NewConfig().GlobalNames()
	globalNames = append(globalNames, cfg.inputName)
	globalNames = append(globalNames, slices.Sorted(maps.Keys(cfg.globals))...)

	code, err := risorCompiler.Compile(ast, risorCompiler.WithGlobalNames(globalNames))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}
	return code, nil
}

func (c *Caller) String() string {
	return "risor.Caller{" + c.name + "}"
}

// Call runs the script with the input global set to t.
func (c *Caller) Call(t float64) (float64, error) {
	opts := make([]risorLib.Option, 0, len(c.globals)+1)
	for k, v := range c.globals {
		opts = append(opts, risorLib.WithGlobal(k, v))
	}
	opts = append(opts, risorLib.WithGlobal(c.inputName, t))

	result, err := risorLib.EvalCode(context.Background(), c.code, opts...)
	if err != nil {
		return 0, err
	}
	return toFloat(result)
}

// toFloat accepts int and float results. An error object is returned as the
// error it wraps.
func toFloat(obj risorObject.Object) (float64, error) {
	switch v := obj.(type) {
	case *risorObject.Float:
		return v.Value(), nil
	case *risorObject.Int:
		return float64(v.Value()), nil
	case *risorObject.Error:
		return 0, v.Value()
	case nil:
		return 0, fmt.Errorf("%w: got nothing", ErrNonNumericResult)
	default:
		return 0, fmt.Errorf("%w: got %s", ErrNonNumericResult, obj.Type())
	}
}
