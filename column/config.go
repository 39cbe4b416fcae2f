package column

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/kode4food/pluck/filter"
	"github.com/kode4food/pluck/record"
)

type (
	// Config conveys the properties of an Extractor that one can configure
	// using Options
	Config struct {
		Logger *slog.Logger
		Filter filter.Predicate
		Index  record.Key
		// Indexed is set when Index should be used to key the result
		Indexed bool
	}

	// Option applies an option to an Extractor configuration instance
	Option func(*Config) error
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// Defaults applies the default configuration: diagnostics are written to
// slog.Default() and the result is not indexed
func Defaults(c *Config) error {
	return Logger(slog.Default())(c)
}

// Quiet discards diagnostics
func Quiet(c *Config) error {
	return Logger(discard)(c)
}

// Logger sets the slog.Logger that receives diagnostics for invalid input
func Logger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			l = discard
		}
		c.Logger = l
		return nil
	}
}

// Index keys the result by the values found under the provided index key.
// A nil key leaves the result unindexed
func Index(k any) Option {
	return func(c *Config) error {
		if k == nil {
			c.Indexed = false
			return nil
		}
		key, err := record.ParseKey(k)
		if err != nil {
			return fmt.Errorf("%w, %s given",
				ErrInvalidIndexKey, record.TypeName(k),
			)
		}
		c.Index = key
		c.Indexed = true
		return nil
	}
}

// Filter restricts extraction to the records accepted by the Predicate
func Filter(p filter.Predicate) Option {
	return func(c *Config) error {
		c.Filter = p
		return nil
	}
}

// Where compiles a filter expression and restricts extraction to the records
// for which it evaluates to true
func Where(src string) Option {
	return func(c *Config) error {
		p, err := filter.Compile(src)
		if err != nil {
			return err
		}
		c.Filter = p
		return nil
	}
}

// Apply builds a Config, starting from Defaults and applying each Option in
// order
func Apply(o ...Option) (*Config, error) {
	cfg := &Config{}
	for _, opt := range append([]Option{Defaults}, o...) {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
