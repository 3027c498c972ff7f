package gf

import (
	"io"
	"log/slog"
)

type config struct {
	searchLimit uint64
	searchStart []uint64
	logger      *slog.Logger
}

// Option configures NewExtensionField.
type Option func(*config) error

// WithSearchLimit caps the number of multiplications the primitive search may
// perform. Zero means no cap beyond the exhaustive p^m - 1 candidates.
func WithSearchLimit(steps uint64) Option {
	return func(c *config) error {
		c.searchLimit = steps
		return nil
	}
}

// WithSearchStart seeds the primitive search with the given digits instead of
// the identity. The vector must be nonzero and have exactly m digits.
func WithSearchStart(digits []uint64) Option {
	return func(c *config) error {
		c.searchStart = append([]uint64(nil), digits...)
		return nil
	}
}

// WithLogger sets the logger used for search diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

func newConfig(opts ...Option) (*config, error) {
	c := &config{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c, nil
}
