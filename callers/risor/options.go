package risor

import (
	"fmt"
	"log/slog"

	"github.com/robbyt/go-scalarfunc/internal/helpers"
)

// Option configures a Caller.
type Option func(*config) error

type config struct {
	logHandler slog.Handler
	logger     *slog.Logger
	inputName  string
	globals    map[string]any
}

// WithInputName sets the global through which the script reads its
// argument. The default is "t".
func WithInputName(name string) Option {
	return func(c *config) error {
		if name == "" {
			return fmt.Errorf("input name cannot be empty")
		}
		c.inputName = name
		return nil
	}
}

// WithGlobals makes extra read-only values visible to the script, such as
// coefficients shared by several profiles.
func WithGlobals(globals map[string]any) Option {
	return func(c *config) error {
		c.globals = globals
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
	c := &config{inputName: "t"}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}
	if _, ok := c.globals[c.inputName]; ok {
		return nil, fmt.Errorf("global %q shadows the input", c.inputName)
	}

	if c.logger != nil {
		c.logHandler = c.logger.Handler()
	} else {
		c.logHandler, c.logger = helpers.SetupLogger(c.logHandler, "risor", "Caller")
	}
	return c, nil
}
