// Package interactive provides the readline console for pencil-demo.
package interactive

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"

	"github.com/randalmurphal/pencilkit/config"
	"github.com/randalmurphal/pencilkit/pencil"
	"github.com/randalmurphal/pencilkit/script"
)

// Console runs pencil commands typed at a prompt.
type Console struct {
	cfg    config.Config
	pencil *pencil.Pencil
	runner *script.Runner
	out    io.Writer
	rl     *readline.Instance

	// retired is the usage of pencils discarded by reset.
	retired pencil.Usage
}

// New creates a console around a fresh pencil built from cfg. Step logs at
// or above level are written through readline so they don't garble the prompt.
func New(cfg config.Config, level slog.Leveler) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "pencil> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(rl.Stderr(), &slog.HandlerOptions{Level: level}))
	c := newConsole(cfg, script.NewRunner(script.WithLogger(logger)), rl.Stdout())
	c.rl = rl
	return c, nil
}

func newConsole(cfg config.Config, runner *script.Runner, out io.Writer) *Console {
	return &Console{
		cfg:    cfg,
		pencil: cfg.NewPencil(),
		runner: runner,
		out:    out,
	}
}

// Run reads commands until exit, EOF or ctx is cancelled.
func (c *Console) Run(ctx context.Context) {
	defer c.rl.Close()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.out, "Exiting...")
			return
		}

		if !c.Exec(ctx, line) {
			return
		}
	}
}

// Exec runs one console line and reports whether the console should continue.
func (c *Console) Exec(ctx context.Context, line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	cmd := strings.ToLower(strings.Fields(input)[0])
	switch cmd {
	case "help", "?":
		c.printHelp()

	case "show", "s":
		c.cmdShow()

	case "usage", "u":
		c.cmdUsage()

	case "reset":
		c.retired.Add(c.pencil.Usage())
		c.pencil = c.cfg.NewPencil()
		fmt.Fprintln(c.out, "New pencil.")

	case "exit", "quit", "q":
		fmt.Fprintln(c.out, "Exiting...")
		return false

	default:
		step, err := script.ParseLine(line)
		if err != nil {
			fmt.Fprintf(c.out, "Error: %v\n", err)
			return true
		}
		if step.Op == script.OpWrite {
			if cost := pencil.TextCost(step.Text); cost > c.pencil.Durability() {
				fmt.Fprintf(c.out, "Warning: needs %d durability, %d left\n", cost, c.pencil.Durability())
			}
		}
		if _, err := c.runner.RunOn(ctx, c.pencil, []script.Step{step}); err != nil {
			fmt.Fprintf(c.out, "Error: %v\n", err)
			return true
		}
		fmt.Fprintf(c.out, "%q\n", c.pencil.Text())
	}
	return true
}

func (c *Console) cmdShow() {
	st := c.pencil.State()
	eraser := fmt.Sprint(st.EraserDurability)
	if st.EraserDurability == pencil.Unlimited {
		eraser = "unlimited"
	}
	point := "sharp"
	if c.pencil.Dull() {
		point = "dull"
	}
	fmt.Fprintf(c.out, "Text:       %q\n", st.Text)
	fmt.Fprintf(c.out, "Durability: %d/%d\n", st.Durability, st.InitialDurability)
	fmt.Fprintf(c.out, "Point:      %s\n", point)
	fmt.Fprintf(c.out, "Length:     %d\n", st.Length)
	fmt.Fprintf(c.out, "Eraser:     %s\n", eraser)
}

func (c *Console) cmdUsage() {
	u := c.pencil.Usage()
	fmt.Fprintf(c.out, "Graphite spent: %d\n", u.GraphiteSpent)
	fmt.Fprintf(c.out, "Blotted:        %d\n", u.Blotted)
	fmt.Fprintf(c.out, "Sharpenings:    %d\n", u.Sharpenings)
	fmt.Fprintf(c.out, "Erased:         %d\n", u.Erased)
	fmt.Fprintf(c.out, "Collisions:     %d\n", u.Collisions)

	session := c.retired
	session.Add(u)
	fmt.Fprintf(c.out, "Session total:  %d\n", session.Total())
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.out, `Commands:
  write <text>     Write text (quote it for escapes: write "a\nb")
  erase <word>     Erase the last occurrence of word
  sharpen          Restore durability, shortening the pencil
  edit <text>      Write into the most recent blank
  show, s          Show text and budgets
  usage, u         Show what the pencil and the session have spent
  reset            Start over with a new pencil
  help, ?          Show this help
  exit, q          Quit`)
}
