// Package config loads the parameters a pencil is built from.
//
// A Config can come from defaults, a YAML, TOML or JSON file, and PENCIL_
// environment variables, applied in that order:
//
//	cfg, err := config.Load("pencil.yaml")
//	if err != nil {
//	    return err
//	}
//	p := cfg.NewPencil()
//
// Supported variables:
//   - PENCIL_DURABILITY: point durability
//   - PENCIL_LENGTH: number of sharpenings
//   - PENCIL_ERASER_DURABILITY: eraser durability (unset means unlimited)
//
// Watch reloads a config file whenever it changes, and Schema describes the
// file format as JSON Schema.
package config
