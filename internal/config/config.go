// Package config loads and validates the ranking service configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"fastrank-go/internal/order"
	"fastrank-go/internal/rank"
)

// ErrInvalidConfiguration wraps every validation failure returned by
// Validate.
var ErrInvalidConfiguration = errors.New("invalid configuration")

var validate = validator.New()

// Config is the service configuration. Zero values are replaced by Default
// before a file is decoded on top.
type Config struct {
	// Listen is the HTTP listen address, host:port.
	Listen string `yaml:"listen" validate:"required,hostname_port"`

	// Ties is the tie policy used when a request does not name one.
	Ties string `yaml:"ties" validate:"required,oneof=average first random max min"`

	// Strategy is the sort strategy used when a request does not name one.
	Strategy string `yaml:"strategy" validate:"required"`

	// Seed, when non-zero, seeds the random tie policy for requests that do
	// not carry their own seed. Zero draws a fresh seed per request.
	Seed uint64 `yaml:"seed"`

	// MaxValues caps the number of values accepted per request.
	MaxValues int `yaml:"max_values" validate:"min=1,max=100000000"`

	RateLimit RateLimit `yaml:"rate_limit"`
	HTTP      HTTP      `yaml:"http"`

	// AccessLog enables combined-format access logging to stdout.
	AccessLog bool `yaml:"access_log"`
}

// RateLimit throttles /rank. RPS of zero disables limiting.
type RateLimit struct {
	RPS   float64 `yaml:"rps" validate:"gte=0"`
	Burst int     `yaml:"burst" validate:"gte=0"`
}

// HTTP holds server timeouts.
type HTTP struct {
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" validate:"gte=0"`
	ReadTimeout       time.Duration `yaml:"read_timeout" validate:"gte=0"`
	WriteTimeout      time.Duration `yaml:"write_timeout" validate:"gte=0"`
	IdleTimeout       time.Duration `yaml:"idle_timeout" validate:"gte=0"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes" validate:"gt=0"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Listen:    ":8080",
		Ties:      string(rank.Average),
		Strategy:  order.Auto.String(),
		MaxValues: 1_000_000,
		HTTP: HTTP{
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       2 * time.Minute,
			ShutdownTimeout:   10 * time.Second,
			MaxBodyBytes:      64 << 20,
		},
	}
}

// Load reads a YAML file on top of Default. An empty path returns Default.
// The result is not validated; call Validate after applying flags.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Bind registers command-line overrides for cfg on fs. Flags are applied
// when fs is parsed.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.Listen, "listen", c.Listen, "HTTP listen address")
	fs.StringVar(&c.Ties, "ties", c.Ties, "default tie policy: average, first, random, max, min")
	fs.StringVar(&c.Strategy, "strategy", c.Strategy, "default sort strategy")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "seed for the random tie policy, 0 for a fresh seed per request")
	fs.IntVar(&c.MaxValues, "max-values", c.MaxValues, "maximum number of values per request")
	fs.Float64Var(&c.RateLimit.RPS, "rate-limit", c.RateLimit.RPS, "requests per second for /rank, 0 disables")
	fs.IntVar(&c.RateLimit.Burst, "rate-burst", c.RateLimit.Burst, "rate limiter burst")
	fs.BoolVar(&c.AccessLog, "access-log", c.AccessLog, "write access log to stdout")
}

// Validate checks struct constraints and that the default policy and
// strategy are usable together. All failures are reported at once.
func (c Config) Validate() error {
	var err error
	if verr := validate.Struct(c); verr != nil {
		err = multierr.Append(err, verr)
	}
	policy, perr := rank.ParsePolicy(c.Ties)
	err = multierr.Append(err, perr)
	strategy, serr := order.ParseStrategy(c.Strategy)
	err = multierr.Append(err, serr)
	if perr == nil && serr == nil && policy == rank.First && strategy != order.Auto && !strategy.IsStable() {
		err = multierr.Append(err, fmt.Errorf("%w: %s", rank.ErrUnstableFirst, strategy))
	}
	if c.RateLimit.RPS > 0 && c.RateLimit.Burst == 0 {
		err = multierr.Append(err, errors.New("rate_limit.burst must be positive when rate_limit.rps is set"))
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	return nil
}

// Policy returns the parsed default tie policy. Validate must have passed.
func (c Config) Policy() rank.TiePolicy { return rank.TiePolicy(c.Ties) }

// SortStrategy returns the parsed default strategy. Validate must have
// passed.
func (c Config) SortStrategy() order.Strategy {
	s, _ := order.ParseStrategy(c.Strategy)
	return s
}
