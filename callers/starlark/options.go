package starlark

import (
	"fmt"
	"log/slog"

	starlarkLib "go.starlark.net/starlark"

	"github.com/robbyt/go-scalarfunc/internal/helpers"
)

// Option configures a Caller.
type Option func(*config) error

type config struct {
	logHandler slog.Handler
	logger     *slog.Logger
	globals    starlarkLib.StringDict
	threadName string
}

// WithGlobals predeclares extra values for the script, on top of the
// standard modules. They may override the standard names.
func WithGlobals(globals starlarkLib.StringDict) Option {
	return func(c *config) error {
		c.globals = globals
		return nil
	}
}

// WithThreadName sets the name of the Starlark thread used for each call,
// which appears in backtraces.
func WithThreadName(name string) Option {
	return func(c *config) error {
		if name == "" {
			return fmt.Errorf("thread name cannot be empty")
		}
		c.threadName = name
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
	c := &config{threadName: "scalarfunc"}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}

	if c.logger != nil {
		c.logHandler = c.logger.Handler()
	} else {
		c.logHandler, c.logger = helpers.SetupLogger(c.logHandler, "starlark", "Caller")
	}
	return c, nil
}
