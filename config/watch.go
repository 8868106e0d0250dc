package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchOption configures Watch.
type WatchOption func(*watchOptions)

type watchOptions struct {
	onError func(error)
}

// OnError sets a callback for reload and watcher errors.
// By default they are dropped and watching continues. A nil fn is ignored.
func OnError(fn func(error)) WatchOption {
	return func(o *watchOptions) {
		if fn != nil {
			o.onError = fn
		}
	}
}

// Watch reloads the config file at path whenever it is written or replaced
// and passes every config that loads cleanly to onChange. It blocks until
// ctx is cancelled.
func Watch(ctx context.Context, path string, onChange func(Config), opts ...WatchOption) error {
	o := watchOptions{onError: func(error) {}}
	for _, opt := range opts {
		opt(&o)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return &Error{Op: "watch", Path: path, Err: err}
	}
	defer watcher.Close()

	// Watch the directory; editors often replace the file rather than write it.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return &Error{Op: "watch", Path: path, Err: err}
	}

	baseName := filepath.Base(path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := Load(path)
			if err != nil {
				o.onError(err)
				continue
			}
			onChange(cfg)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			o.onError(err)
		}
	}
}
