package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pencil.yaml")
	require.NoError(t, os.WriteFile(path, []byte("durability: 1\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan Config, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(cfg Config) {
			changes <- cfg
		})
	}()

	// Keep rewriting until the watcher, which starts asynchronously, reports.
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	deadline := time.After(5 * time.Second)

	// os.WriteFile truncates first, so early reloads may see an empty file.
	var got Config
wait:
	for {
		select {
		case got = <-changes:
			if got.Durability == 77 {
				break wait
			}
		case <-ticker.C:
			require.NoError(t, os.WriteFile(path, []byte("durability: 77\nlength: 2\n"), 0o644))
		case <-deadline:
			t.Fatal("timed out waiting for config reload")
		}
	}

	assert.Equal(t, 77, got.Durability)
	assert.Equal(t, 2, got.Length)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatch_ReportsReloadErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pencil.toml")
	require.NoError(t, os.WriteFile(path, []byte("durability = 1\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errs := make(chan error, 16)
	go func() {
		_ = Watch(ctx, path, func(Config) {}, OnError(func(err error) {
			errs <- err
		}))
	}()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	deadline := time.After(5 * time.Second)

	for i := 0; ; i++ {
		select {
		case err := <-errs:
			assert.Error(t, err)
			return
		case <-ticker.C:
			require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf("durability = -%d\n", i+1)), 0o644))
		case <-deadline:
			t.Fatal("timed out waiting for reload error")
		}
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "pencil.yaml"), func(Config) {})
	require.Error(t, err)

	var cfgErr *Error
	assert.ErrorAs(t, err, &cfgErr)
}

func TestOnError_NilKeepsDefault(t *testing.T) {
	o := watchOptions{onError: func(error) {}}
	OnError(nil)(&o)

	require.NotNil(t, o.onError)
	assert.NotPanics(t, func() { o.onError(ErrInvalidConfig) })
}
