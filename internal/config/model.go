package config

import (
	"errors"
	"fmt"
	"time"
)

// ArgsFunc produces the extra trainer arguments for one episode. It hides
// the format-specific expression binding from consumers: the HCL loader
// returns a closure that evaluates the plan's `extra_args` expression with
// the episode in scope.
type ArgsFunc func(episode int) ([]string, error)

// Model is the unified, format-agnostic representation of a training plan.
type Model struct {
	Run        *Run
	Checkpoint *Checkpoint
	Trainer    *Trainer
}

// Run describes the episode range and the failure policy of the loop.
type Run struct {
	// Start, Stop and Step define a closed arithmetic progression of
	// episode indices; Stop is inclusive.
	Start int
	Stop  int
	Step  int

	// OnFailure decides what happens when the trainer fails for an episode.
	OnFailure FailurePolicy

	// Retries is the number of attempts beyond the first, used only when
	// OnFailure is FailureRetry.
	Retries int
}

// Episodes returns how many episodes the run covers.
func (r *Run) Episodes() int {
	if r.Step <= 0 || r.Stop < r.Start {
		return 0
	}
	return (r.Stop-r.Start)/r.Step + 1
}

// Checkpoint describes the pointer file the driver rewrites before every
// trainer invocation.
type Checkpoint struct {
	// Path is the pointer file location on disk.
	Path string

	// Prefix names checkpoints as "<Prefix>_<episode>".
	Prefix string
}

// Trainer describes the external training process.
type Trainer struct {
	Executable string
	EnvName    string

	// Timeout bounds a single trainer invocation. Zero means unbounded.
	Timeout time.Duration

	// ExtraArgs, when non-nil, yields arguments placed before the fixed
	// "--env <env> --save <episode>" pair.
	ExtraArgs ArgsFunc
}

// Validate checks the model for structural errors that would make a run
// meaningless. Loaders call it after translation so every source format
// shares one set of rules.
func (m *Model) Validate() error {
	if m.Run == nil {
		return errors.New("plan is missing the required 'run' block")
	}
	if m.Checkpoint == nil {
		return errors.New("plan is missing the required 'checkpoint' block")
	}
	if m.Trainer == nil {
		return errors.New("plan is missing the required 'trainer' block")
	}

	if m.Run.Step <= 0 {
		return fmt.Errorf("run.step must be a positive integer, got %d", m.Run.Step)
	}
	if m.Run.Stop < m.Run.Start {
		return fmt.Errorf("run.stop (%d) must not be less than run.start (%d)", m.Run.Stop, m.Run.Start)
	}
	if m.Run.Retries < 0 {
		return fmt.Errorf("run.retries must not be negative, got %d", m.Run.Retries)
	}

	if m.Checkpoint.Path == "" {
		return errors.New("checkpoint.path must not be empty")
	}
	if m.Checkpoint.Prefix == "" {
		return errors.New("checkpoint.prefix must not be empty")
	}

	if m.Trainer.Executable == "" {
		return errors.New("trainer.executable must not be empty")
	}
	if m.Trainer.EnvName == "" {
		return errors.New("trainer.env_name must not be empty")
	}
	if m.Trainer.Timeout < 0 {
		return fmt.Errorf("trainer.timeout must not be negative, got %s", m.Trainer.Timeout)
	}

	return nil
}
