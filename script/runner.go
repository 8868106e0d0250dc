package script

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/randalmurphal/pencilkit/pencil"
)

// StepResult records the pencil's state after a step.
type StepResult struct {
	Step  Step         `json:"step" yaml:"step"`
	State pencil.State `json:"state" yaml:"state"`
}

// Result is the outcome of a run.
type Result struct {
	RunID string       `json:"run_id" yaml:"run_id"`
	State pencil.State `json:"state" yaml:"state"`
	Usage pencil.Usage `json:"usage" yaml:"usage"`
	Steps []StepResult `json:"steps" yaml:"steps"`
}

// Runner executes scripts.
type Runner struct {
	logger *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger that receives a debug record per step.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRunner creates a runner. Without WithLogger nothing is logged.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run validates s, builds its pencil and applies every step.
func (r *Runner) Run(ctx context.Context, s *Script) (*Result, error) {
	if s == nil {
		return nil, ErrEmptyScript
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return r.RunOn(ctx, s.Config().NewPencil(), s.Steps)
}

// RunOn applies steps to an existing pencil. The context is checked before
// each step; on cancellation the pencil keeps the steps already applied.
func (r *Runner) RunOn(ctx context.Context, p *pencil.Pencil, steps []Step) (*Result, error) {
	runID := uuid.NewString()
	logger := r.logger.With("run_id", runID)

	res := &Result{
		RunID: runID,
		Steps: make([]StepResult, 0, len(steps)),
	}
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, &StepError{Index: i, Step: step, Err: err}
		}
		if err := Apply(p, step); err != nil {
			return nil, &StepError{Index: i, Step: step, Err: err}
		}

		state := p.State()
		logger.Debug("step applied",
			"index", i,
			"op", step.Op,
			"text", step.Text,
			"durability", state.Durability,
			"length", state.Length,
			"eraser_durability", state.EraserDurability,
		)
		res.Steps = append(res.Steps, StepResult{Step: step, State: state})
	}

	res.State = p.State()
	res.Usage = p.Usage()
	logger.Debug("run complete",
		"steps", len(steps),
		"graphite_spent", res.Usage.GraphiteSpent,
		"blotted", res.Usage.Blotted,
	)
	return res, nil
}
