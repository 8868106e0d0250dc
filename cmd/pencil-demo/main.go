// Command pencil-demo walks a pencil through writing, erasing, sharpening and
// editing, and prints what ends up on the page.
//
// Usage:
//
//	go run ./cmd/pencil-demo
//	go run ./cmd/pencil-demo -script demo.yaml -format yaml
//	go run ./cmd/pencil-demo -config pencil.toml -script steps.txt -watch
//	go run ./cmd/pencil-demo -config pencil.yaml -interactive
//	go run ./cmd/pencil-demo -schema
//
// Without -script the classic demo runs: a pencil of durability 10, length 3
// and eraser durability 5 writes "Hello World", erases "World", is sharpened
// and edits "Mars" into the first blank.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/pencilkit/cmd/pencil-demo/interactive"
	"github.com/randalmurphal/pencilkit/config"
	"github.com/randalmurphal/pencilkit/script"
)

var errUsage = errors.New("usage error")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	configPath  string
	scriptPath  string
	format      string
	schema      bool
	watch       bool
	interactive bool
	verbose     bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("pencil-demo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "pencil config file (.yaml, .yml, .toml or .json)")
	fs.StringVar(&o.scriptPath, "script", "", "script file to run instead of the demo")
	fs.StringVar(&o.format, "format", "text", "output format: text, yaml or json")
	fs.BoolVar(&o.schema, "schema", false, "print the config JSON schema and exit")
	fs.BoolVar(&o.watch, "watch", false, "re-run whenever the -config file changes")
	fs.BoolVar(&o.interactive, "interactive", false, "start a console instead of running a script")
	fs.BoolVar(&o.verbose, "v", false, "log every step")
	if err := fs.Parse(args); err != nil {
		return o, fmt.Errorf("%w: %v", errUsage, err)
	}

	switch o.format {
	case "text", "yaml", "json":
	default:
		return o, fmt.Errorf("%w: unknown format %q", errUsage, o.format)
	}
	if o.watch && o.configPath == "" {
		return o, fmt.Errorf("%w: -watch requires -config", errUsage)
	}
	return o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if o.schema {
		data, err := config.Schema()
		if err != nil {
			logger.Error("failed to build schema", "error", err)
			return 1
		}
		fmt.Fprintln(stdout, string(data))
		return 0
	}

	s := script.Demo()
	if o.scriptPath != "" {
		if s, err = script.Load(o.scriptPath); err != nil {
			logger.Error("failed to load script", "path", o.scriptPath, "error", err)
			return 1
		}
	}
	if o.configPath != "" {
		cfg, err := config.Load(o.configPath)
		if err != nil {
			logger.Error("failed to load config", "path", o.configPath, "error", err)
			return 1
		}
		s.Pencil = &cfg
	}

	if o.interactive {
		return runInteractive(ctx, s.Config(), level, logger)
	}

	runner := script.NewRunner(script.WithLogger(logger))
	if err := runOnce(ctx, runner, s, o.format, stdout); err != nil {
		logger.Error("run failed", "error", err)
		return 1
	}
	if !o.watch {
		return 0
	}

	logger.Info("watching config", "path", o.configPath)
	err = config.Watch(ctx, o.configPath, func(cfg config.Config) {
		logger.Info("config reloaded",
			"durability", cfg.Durability,
			"length", cfg.Length,
		)
		s.Pencil = &cfg
		if err := runOnce(ctx, runner, s, o.format, stdout); err != nil {
			logger.Error("run failed", "error", err)
		}
	}, config.OnError(func(err error) {
		logger.Warn("config reload failed", "error", err)
	}))
	if err != nil {
		logger.Error("watch failed", "error", err)
		return 1
	}
	return 0
}

func runOnce(ctx context.Context, runner *script.Runner, s *script.Script, format string, out io.Writer) error {
	res, err := runner.Run(ctx, s)
	if err != nil {
		return err
	}

	switch format {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	default:
		_, err = fmt.Fprintln(out, res.State.Text)
		return err
	}
}

func runInteractive(ctx context.Context, cfg config.Config, level slog.Level, logger *slog.Logger) int {
	console, err := interactive.New(cfg, level)
	if err != nil {
		logger.Error("failed to start console", "error", err)
		return 1
	}
	console.Run(ctx)
	return 0
}
