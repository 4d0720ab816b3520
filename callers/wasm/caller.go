// Package wasm builds function callers from WebAssembly exports with the
// signature (f64) -> f64, run on the wazero runtime.
package wasm

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/robbyt/go-scalarfunc/function"
	"github.com/robbyt/go-scalarfunc/loader"
)

// Caller owns a wazero runtime and one module instance. The owner must call
// Close once every function using it has been released.
type Caller struct {
	mu      sync.Mutex
	runtime wazero.Runtime
	fn      api.Function
	export  string
	closed  bool
	logger  *slog.Logger
}

var _ function.Caller = (*Caller)(nil)

// FromBytes instantiates wasmBytes and binds its export named export.
func FromBytes(ctx context.Context, wasmBytes []byte, export string, opts ...Option) (*Caller, error) {
	if len(wasmBytes) == 0 {
		return nil, ErrContentNil
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	logger := cfg.logger.With("export", export)

	r := wazero.NewRuntimeWithConfig(ctx, cfg.runtimeConfig)
	mod, err := r.Instantiate(ctx, wasmBytes)
	if err != nil {
		closeRuntime(ctx, logger, r)
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}

	fn := mod.ExportedFunction(export)
	if fn == nil {
		closeRuntime(ctx, logger, r)
		return nil, fmt.Errorf("%w: %q", ErrFunctionNotFound, export)
	}

	def := fn.Definition()
	f64 := []api.ValueType{api.ValueTypeF64}
	if !slices.Equal(def.ParamTypes(), f64) || !slices.Equal(def.ResultTypes(), f64) {
		closeRuntime(ctx, logger, r)
		return nil, fmt.Errorf("%w: %q has params %v, results %v",
			ErrSignatureMismatch, export, typeNames(def.ParamTypes()), typeNames(def.ResultTypes()))
	}
	logger.Debug("wasm export bound", "module", mod.Name())

	return &Caller{runtime: r, fn: fn, export: export, logger: cfg.logger}, nil
}

// FromLoader reads the module from ldr.
func FromLoader(ctx context.Context, ldr loader.Loader, export string, opts ...Option) (*Caller, error) {
	if ldr == nil {
		return nil, ErrContentNil
	}
	content, err := loader.ReadAll(ldr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContentNil, err)
	}
	return FromBytes(ctx, content, export, opts...)
}

func closeRuntime(ctx context.Context, logger *slog.Logger, r wazero.Runtime) {
	if err := r.Close(ctx); err != nil {
		logger.Warn("failed to close wazero runtime", "error", err)
	}
}

func typeNames(types []api.ValueType) []string {
	names := make([]string, len(types))
	for i, vt := range types {
		names[i] = api.ValueTypeName(vt)
	}
	return names
}

func (c *Caller) String() string {
	return "wasm.Caller{" + c.export + "}"
}

// Call invokes the export. A trap is returned as the runtime reported it.
func (c *Caller) Call(t float64) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return 0, ErrClosed
	}

	res, err := c.fn.Call(context.Background(), api.EncodeF64(t))
	if err != nil {
		return 0, err
	}
	return api.DecodeF64(res[0]), nil
}

// Close releases the runtime. Calls after Close fail with ErrClosed.
func (c *Caller) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.logger.Debug("closing wasm caller", "export", c.export)
	return c.runtime.Close(ctx)
}
