package script

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/pencilkit/config"
)

const demoYAML = `
pencil:
  durability: 10
  length: 3
  eraser_durability: 5
steps:
  - op: write
    text: Hello World
  - op: erase
    text: World
  - op: sharpen
  - op: edit
    text: Mars
`

const demoTOML = `
[pencil]
durability = 10
length = 3
eraser_durability = 5

[[steps]]
op = "write"
text = "Hello World"

[[steps]]
op = "erase"
text = "World"

[[steps]]
op = "sharpen"

[[steps]]
op = "edit"
text = "Mars"
`

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		format config.Format
		data   string
	}{
		{name: "yaml", format: config.FormatYAML, data: demoYAML},
		{name: "toml", format: config.FormatTOML, data: demoTOML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse([]byte(tt.data), tt.format)
			require.NoError(t, err)

			assert.Equal(t, Demo().Steps, s.Steps)
			require.NotNil(t, s.Pencil)
			assert.Equal(t, 10, s.Pencil.Durability)
			assert.Equal(t, 3, s.Pencil.Length)
			require.NotNil(t, s.Pencil.EraserDurability)
			assert.Equal(t, 5, *s.Pencil.EraserDurability)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{name: "no steps", data: "pencil:\n  durability: 1\n", wantErr: ErrEmptyScript},
		{name: "unknown op", data: "steps:\n  - op: write\n  - op: doodle\n", wantErr: ErrUnknownOp},
		{name: "invalid pencil", data: "pencil:\n  length: -1\nsteps:\n  - op: sharpen\n", wantErr: config.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), config.FormatYAML)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParse_UnknownOpReportsIndex(t *testing.T) {
	_, err := Parse([]byte("steps:\n  - op: write\n  - op: doodle\n"), config.FormatYAML)

	var stepErr *StepError
	require.True(t, errors.As(err, &stepErr))
	assert.Equal(t, 1, stepErr.Index)
	assert.Equal(t, Op("doodle"), stepErr.Step.Op)
	assert.Equal(t, "step 1 (doodle): unknown operation", stepErr.Error())
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("steps: [\n"), config.FormatYAML)
	assert.Error(t, err)
}

func TestParseLines(t *testing.T) {
	s, err := ParseLines("# the classic demo\nwrite Hello World\n\nerase World\nsharpen\nedit Mars\n")
	require.NoError(t, err)

	assert.Nil(t, s.Pencil)
	assert.Equal(t, Demo().Steps, s.Steps)
}

func TestParseLines_Errors(t *testing.T) {
	_, err := ParseLines("write ok\nscribble\n")
	assert.ErrorIs(t, err, ErrUnknownOp)
	assert.Contains(t, err.Error(), "line 2")

	_, err = ParseLines("# nothing here\n\n")
	assert.ErrorIs(t, err, ErrEmptyScript)
}

func TestScript_Config(t *testing.T) {
	s := &Script{Steps: []Step{{Op: OpSharpen}}}
	assert.Equal(t, config.DefaultConfig(), s.Config())

	cfg := config.Config{Durability: 3}
	s.Pencil = &cfg
	assert.Equal(t, cfg, s.Config())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"demo.yaml": demoYAML,
		"demo.toml": demoTOML,
		"demo.txt":  "write Hello World\nerase World\nsharpen\nedit Mars\n",
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			s, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, Demo().Steps, s.Steps)
		})
	}

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDemo(t *testing.T) {
	s := Demo()
	require.NoError(t, s.Validate())

	cfg := s.Config()
	assert.Equal(t, 10, cfg.Durability)
	assert.Equal(t, 3, cfg.Length)
	require.NotNil(t, cfg.EraserDurability)
	assert.Equal(t, 5, *cfg.EraserDurability)
}
