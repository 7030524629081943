package transform

import (
	"log/slog"

	"github.com/born-ml/matkit/internal/check"
	"github.com/born-ml/matkit/internal/parallel"
)

// Config configures a pipeline. Every Value produced by a chain carries the
// Config of the Value it came from.
type Config struct {
	// Strict turns element type mismatches into a sticky error (see Value.Err)
	// instead of a warning.
	Strict bool

	// Parallel controls fan-out of the element-wise loop.
	Parallel parallel.Config

	// Logger receives mismatch diagnostics. Nil means check.Logger().
	Logger *slog.Logger
}

// DefaultConfig returns a non-strict, sequential configuration.
func DefaultConfig() Config {
	return Config{
		Strict:   false,
		Parallel: parallel.Sequential(),
		Logger:   nil,
	}
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return check.Logger()
}

// Option modifies a Config.
type Option func(*Config)

// WithStrict enables or disables strict type checking.
func WithStrict(strict bool) Option {
	return func(c *Config) {
		c.Strict = strict
	}
}

// WithParallel sets the fan-out configuration of the element-wise loop.
func WithParallel(p parallel.Config) Option {
	return func(c *Config) {
		c.Parallel = p
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}
