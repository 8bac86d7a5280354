package registry

import (
	"log/slog"

	"github.com/xraph/worlds/ext"
)

type config struct {
	logger     *slog.Logger
	extensions []ext.Extension
}

func defaultConfig() config {
	return config{logger: slog.Default()}
}

// Option configures a Registry.
type Option func(*config)

// WithLogger sets the registry logger, also passed to the extension
// fan-out.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithExtensions registers lifecycle extensions with the registry.
func WithExtensions(exts ...ext.Extension) Option {
	return func(c *config) {
		c.extensions = append(c.extensions, exts...)
	}
}
