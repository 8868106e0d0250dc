package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runArgs(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Demo(t *testing.T) {
	code, out, _ := runArgs(t)

	assert.Equal(t, 0, code)
	assert.Equal(t, "Hello WorMa\n", out)
}

func TestRun_JSON(t *testing.T) {
	code, out, _ := runArgs(t, "-format", "json")
	require.Equal(t, 0, code)

	var res struct {
		RunID string `json:"run_id"`
		State struct {
			Text       string `json:"text"`
			Durability int    `json:"durability"`
			Length     int    `json:"length"`
		} `json:"state"`
		Steps []json.RawMessage `json:"steps"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))

	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, "Hello WorMa", res.State.Text)
	assert.Equal(t, 10, res.State.Durability)
	assert.Equal(t, 2, res.State.Length)
	assert.Len(t, res.Steps, 4)
}

func TestRun_YAML(t *testing.T) {
	code, out, _ := runArgs(t, "-format", "yaml")
	require.Equal(t, 0, code)

	var res map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))

	state, ok := res["state"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Hello WorMa", state["text"])
}

func TestRun_ScriptAndConfig(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "steps.txt")
	configPath := filepath.Join(dir, "pencil.toml")
	require.NoError(t, os.WriteFile(scriptPath, []byte("write hello world hello\nerase hello\n"), 0o644))
	require.NoError(t, os.WriteFile(configPath, []byte("durability = 20\nlength = 5\n"), 0o644))

	code, out, _ := runArgs(t, "-script", scriptPath, "-config", configPath)

	assert.Equal(t, 0, code)
	assert.Equal(t, "hello world      \n", out)
}

func TestRun_Verbose(t *testing.T) {
	code, _, errOut := runArgs(t, "-v")

	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "step applied")
}

func TestRun_Schema(t *testing.T) {
	code, out, _ := runArgs(t, "-schema")
	require.Equal(t, 0, code)

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	assert.Contains(t, schema, "properties")
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	badScript := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badScript, []byte("steps:\n  - op: doodle\n"), 0o644))

	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{name: "unknown flag", args: []string{"-nope"}, wantCode: 2},
		{name: "unknown format", args: []string{"-format", "xml"}, wantCode: 2},
		{name: "watch without config", args: []string{"-watch"}, wantCode: 2},
		{name: "missing script", args: []string{"-script", filepath.Join(dir, "missing.yaml")}, wantCode: 1},
		{name: "bad script", args: []string{"-script", badScript}, wantCode: 1},
		{name: "missing config", args: []string{"-config", filepath.Join(dir, "missing.yaml")}, wantCode: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, _ := runArgs(t, tt.args...)
			assert.Equal(t, tt.wantCode, code)
			assert.Empty(t, out)
		})
	}
}

func TestRun_WatchStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "pencil.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("durability: 10\nlength: 3\neraser_durability: 5\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	code := run(ctx, []string{"-config", configPath, "-watch"}, &stdout, &stderr)

	// The initial run is refused because the context is already done.
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "run failed")
}
