package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/randalmurphal/pencilkit/pencil"
)

// EnvPrefix prefixes every environment variable read by LoadFromEnv.
const EnvPrefix = "PENCIL_"

// Config holds the parameters for building a pencil.
type Config struct {
	// Durability is the point durability, restored on every sharpening.
	Durability int `json:"durability" yaml:"durability" toml:"durability" mapstructure:"durability" env:"DURABILITY" jsonschema:"minimum=0" jsonschema_description:"Point durability spent by writing letters"`

	// Length is how many times the pencil can be sharpened.
	Length int `json:"length" yaml:"length" toml:"length" mapstructure:"length" env:"LENGTH" jsonschema:"minimum=0" jsonschema_description:"Number of sharpenings available"`

	// EraserDurability is how many characters the eraser can blank.
	// Nil means the eraser never wears out.
	EraserDurability *int `json:"eraser_durability,omitempty" yaml:"eraser_durability,omitempty" toml:"eraser_durability,omitempty" mapstructure:"eraser_durability" env:"ERASER_DURABILITY" jsonschema:"minimum=0" jsonschema_description:"Characters the eraser can blank; omit for an eraser that never wears out"`
}

// DefaultConfig returns a Config describing a full-size pencil.
func DefaultConfig() Config {
	return Config{
		Durability: 40000,
		Length:     20,
	}
}

// LoadFromEnv overrides fields from PENCIL_ environment variables.
// Unset variables leave fields untouched.
func (c *Config) LoadFromEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return &Error{Op: "load env", Err: err}
	}
	return nil
}

// FromEnv creates a Config from environment variables with defaults.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := cfg.LoadFromEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that no budget is negative.
func (c *Config) Validate() error {
	if c.Durability < 0 {
		return fmt.Errorf("%w: durability must be >= 0, got %d", ErrInvalidConfig, c.Durability)
	}
	if c.Length < 0 {
		return fmt.Errorf("%w: length must be >= 0, got %d", ErrInvalidConfig, c.Length)
	}
	if c.EraserDurability != nil && *c.EraserDurability < 0 {
		return fmt.Errorf("%w: eraser_durability must be >= 0, got %d", ErrInvalidConfig, *c.EraserDurability)
	}
	return nil
}

// WithDurability returns a copy of the config with the specified durability.
func (c Config) WithDurability(durability int) Config {
	c.Durability = durability
	return c
}

// WithLength returns a copy of the config with the specified length.
func (c Config) WithLength(length int) Config {
	c.Length = length
	return c
}

// WithEraserDurability returns a copy of the config with a limited eraser.
func (c Config) WithEraserDurability(durability int) Config {
	c.EraserDurability = &durability
	return c
}

// WithUnlimitedEraser returns a copy of the config whose eraser never wears out.
func (c Config) WithUnlimitedEraser() Config {
	c.EraserDurability = nil
	return c
}

// NewPencil builds a pencil from the config.
func (c Config) NewPencil() *pencil.Pencil {
	opts := []pencil.Option{pencil.WithLength(c.Length)}
	if c.EraserDurability != nil {
		opts = append(opts, pencil.WithEraserDurability(*c.EraserDurability))
	}
	return pencil.New(c.Durability, opts...)
}
