package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema for config files.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{DoNotReference: true}
	s := r.Reflect(&Config{})
	s.Title = "Pencil configuration"

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, &Error{Op: "schema", Err: err}
	}
	return data, nil
}
