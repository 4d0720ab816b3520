package extism

import (
	"fmt"
	"log/slog"

	"github.com/tetratelabs/wazero"

	"github.com/robbyt/go-scalarfunc/internal/helpers"
)

// Option configures a Caller.
type Option func(*config) error

type config struct {
	logHandler    slog.Handler
	logger        *slog.Logger
	enableWASI    bool
	runtimeConfig wazero.RuntimeConfig
}

// WithWASI toggles WASI support for the plugin. It is on by default.
func WithWASI(enabled bool) Option {
	return func(c *config) error {
		c.enableWASI = enabled
		return nil
	}
}

// WithRuntimeConfig replaces the default wazero runtime configuration.
func WithRuntimeConfig(rc wazero.RuntimeConfig) Option {
	return func(c *config) error {
		if rc == nil {
			return fmt.Errorf("runtime config cannot be nil")
		}
		c.runtimeConfig = rc
		return nil
	}
}

// WithLogHandler sets the handler used to build the caller's logger.
func WithLogHandler(handler slog.Handler) Option {
	return func(c *config) error {
		if handler == nil {
			return fmt.Errorf("log handler cannot be nil")
		}
		c.logHandler = handler
		c.logger = nil
		return nil
	}
}

// WithLogger sets the logger directly.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		c.logger = logger
		c.logHandler = nil
		return nil
	}
}

func newConfig(opts []Option) (*config, error) {
	c := &config{enableWASI: true}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}

	if c.runtimeConfig == nil {
		c.runtimeConfig = wazero.NewRuntimeConfig()
	}
	if c.logger != nil {
		c.logHandler = c.logger.Handler()
	} else {
		c.logHandler, c.logger = helpers.SetupLogger(c.logHandler, "extism", "Caller")
	}
	return c, nil
}
