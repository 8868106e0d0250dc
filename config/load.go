package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format names a file encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Decode unmarshals data in the given format into v.
func Decode(data []byte, format Format, v any) error {
	switch format {
	case FormatYAML:
		return yaml.Unmarshal(data, v)
	case FormatTOML:
		_, err := toml.Decode(string(data), v)
		return err
	case FormatJSON:
		return json.Unmarshal(data, v)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Parse decodes data over DefaultConfig, applies environment overrides and
// validates the result.
func Parse(data []byte, format Format) (Config, error) {
	cfg := DefaultConfig()
	if err := Decode(data, format, &cfg); err != nil {
		return Config{}, &Error{Op: "parse", Err: err}
	}
	if err := cfg.LoadFromEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads a config file, picking the decoder from its extension.
func Load(path string) (Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Config{}, &Error{Op: "load", Path: path, Err: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &Error{Op: "load", Path: path, Err: err}
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return Config{}, &Error{Op: "load", Path: path, Err: err}
	}
	return cfg, nil
}
