package traverse

import (
	"github.com/0xalexb/hjarta-traverse/config"
	"github.com/0xalexb/hjarta-traverse/logging"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithTree adds a named tree module to the application.
// The name is used as both the Fx module name and the DI named tag of the *bag.Bag.
// Call multiple times with different names to load several trees.
func WithTree(name string, opts ...config.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, config.NewModule(name, opts...))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the log output format: "json" (default) or "text".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogger applies a logger configuration, typically read with logging.ConfigFrom.
func WithLogger(cfg logging.LoggerConfig) Option {
	return func(opts *Options) {
		opts.LogLevel = cfg.Level
		opts.LogFormat = cfg.Format
	}
}
