// Package extism builds function callers from Extism plugin exports.
//
// The export receives the JSON object {"t": <number>} and must produce either
// a bare JSON number or an object {"value": <number>}. JSON has no literal for
// non-finite numbers, so NaN and the infinities travel as the strings "NaN",
// "Infinity" and "-Infinity" in both directions.
package extism

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"sync"

	extismSDK "github.com/extism/go-sdk"
	"go.uber.org/multierr"

	"github.com/robbyt/go-scalarfunc/function"
	"github.com/robbyt/go-scalarfunc/loader"
)

// Caller owns a compiled plugin and one instance of it. The owner must call
// Close once every function using it has been released.
type Caller struct {
	mu       sync.Mutex
	compiled CompiledPlugin
	instance PluginInstance
	entry    string
	closed   bool
	logger   *slog.Logger
}

var _ function.Caller = (*Caller)(nil)

type input struct {
	T number `json:"t"`
}

type output struct {
	Value *number `json:"value"`
}

// number is a float64 whose JSON form can also hold NaN and the infinities.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Infinity"`), nil
	}
	return json.Marshal(f)
}

func (n *number) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		switch s {
		case "NaN":
			*n = number(math.NaN())
		case "Infinity":
			*n = number(math.Inf(1))
		case "-Infinity":
			*n = number(math.Inf(-1))
		default:
			return fmt.Errorf("not a number: %q", s)
		}
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*n = number(f)
	return nil
}

// FromBytes compiles wasmBytes as an Extism plugin and binds entry.
func FromBytes(ctx context.Context, wasmBytes []byte, entry string, opts ...Option) (*Caller, error) {
	if len(wasmBytes) == 0 {
		return nil, ErrContentNil
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	manifest := extismSDK.Manifest{
		Wasm: []extismSDK.Wasm{extismSDK.WasmData{Data: wasmBytes}},
	}
	pluginCfg := extismSDK.PluginConfig{
		EnableWasi:    cfg.enableWASI,
		RuntimeConfig: cfg.runtimeConfig,
	}
	plugin, err := extismSDK.NewCompiledPlugin(ctx, manifest, pluginCfg, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}

	return newCaller(ctx, NewCompiledPluginAdapter(plugin), entry, cfg.logger)
}

// FromLoader reads the plugin from ldr.
func FromLoader(ctx context.Context, ldr loader.Loader, entry string, opts ...Option) (*Caller, error) {
	if ldr == nil {
		return nil, ErrContentNil
	}
	content, err := loader.ReadAll(ldr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContentNil, err)
	}
	return FromBytes(ctx, content, entry, opts...)
}

// newCaller takes ownership of compiled, closing it on failure.
func newCaller(ctx context.Context, compiled CompiledPlugin, entry string, logger *slog.Logger) (*Caller, error) {
	logger = logger.With("entry", entry)

	instance, err := compiled.Instance(ctx, newPluginInstanceConfig())
	if err != nil {
		if cerr := compiled.Close(ctx); cerr != nil {
			logger.Warn("failed to close compiled plugin", "error", cerr)
		}
		return nil, fmt.Errorf("failed to create plugin instance: %w", err)
	}

	if !instance.FunctionExists(entry) {
		if cerr := multierr.Append(instance.Close(ctx), compiled.Close(ctx)); cerr != nil {
			logger.Warn("failed to close plugin", "error", cerr)
		}
		return nil, fmt.Errorf("%w: %q", ErrFunctionNotFound, entry)
	}
	logger.Debug("extism function bound")

	return &Caller{
		compiled: compiled,
		instance: instance,
		entry:    entry,
		logger:   logger,
	}, nil
}

func (c *Caller) String() string {
	return "extism.Caller{" + c.entry + "}"
}

// Call sends t to the plugin. An error reported by the plugin is returned as
// the SDK reported it.
func (c *Caller) Call(t float64) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return 0, ErrClosed
	}

	in, err := json.Marshal(input{T: number(t)})
	if err != nil {
		return 0, err
	}

	exit, out, err := c.instance.CallWithContext(context.Background(), c.entry, in)
	if err != nil {
		return 0, err
	}
	if exit != 0 {
		return 0, fmt.Errorf("%w: %d", ErrNonZeroExit, exit)
	}
	return decodeResult(out)
}

func decodeResult(out []byte) (float64, error) {
	trimmed := bytes.TrimSpace(out)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var o output
		if err := json.Unmarshal(trimmed, &o); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrNonNumericResult, err)
		}
		if o.Value == nil {
			return 0, fmt.Errorf("%w: object has no \"value\" field", ErrNonNumericResult)
		}
		return float64(*o.Value), nil
	}

	var v number
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNonNumericResult, out)
	}
	return float64(v), nil
}

// Close releases the instance and the compiled plugin.
func (c *Caller) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.logger.Debug("closing extism caller")
	return multierr.Append(c.instance.Close(ctx), c.compiled.Close(ctx))
}
