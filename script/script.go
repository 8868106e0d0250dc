package script

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/randalmurphal/pencilkit/config"
)

// Script is a pencil configuration plus the steps to run against it.
type Script struct {
	// Pencil overrides config.DefaultConfig when set.
	Pencil *config.Config `json:"pencil,omitempty" yaml:"pencil,omitempty" toml:"pencil,omitempty"`

	Steps []Step `json:"steps" yaml:"steps" toml:"steps"`
}

// Validate checks the pencil section and every step.
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return ErrEmptyScript
	}
	if s.Pencil != nil {
		if err := s.Pencil.Validate(); err != nil {
			return err
		}
	}
	for i, step := range s.Steps {
		if !step.Op.Valid() {
			return &StepError{Index: i, Step: step, Err: ErrUnknownOp}
		}
	}
	return nil
}

// Config returns the configuration the script's pencil is built from.
func (s *Script) Config() config.Config {
	if s.Pencil != nil {
		return *s.Pencil
	}
	return config.DefaultConfig()
}

// Parse decodes a YAML, TOML or JSON script and validates it.
func Parse(data []byte, format config.Format) (*Script, error) {
	var s Script
	if err := config.Decode(data, format, &s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ParseLines builds a script from console commands, one per line.
// Blank lines and lines starting with # are skipped.
func ParseLines(text string) (*Script, error) {
	var s Script
	scanner := bufio.NewScanner(strings.NewReader(text))
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()
		if trimmed := strings.TrimSpace(line); trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		step, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		s.Steps = append(s.Steps, step)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a script file. Files ending in .yaml, .yml, .toml or .json are
// decoded by format; anything else is read as console commands.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	format, err := config.FormatFromPath(path)
	if err != nil {
		return ParseLines(string(data))
	}
	return Parse(data, format)
}

// Demo returns the classic walkthrough: write a greeting, erase part of it,
// sharpen, and edit into the blank.
func Demo() *Script {
	cfg := config.Config{Durability: 10, Length: 3}.WithEraserDurability(5)
	return &Script{
		Pencil: &cfg,
		Steps: []Step{
			{Op: OpWrite, Text: "Hello World"},
			{Op: OpErase, Text: "World"},
			{Op: OpSharpen},
			{Op: OpEdit, Text: "Mars"},
		},
	}
}
