// Package driver implements the sequential training loop: for each episode
// in the schedule it rewrites the checkpoint pointer file, invokes the
// trainer synchronously, and reports progress. Episodes never overlap;
// the next one starts only after the current child has exited.
package driver

import (
	"context"
	"fmt"
	"io"

	"github.com/vk/trainloop/internal/config"
	"github.com/vk/trainloop/internal/ctxlog"
	"github.com/vk/trainloop/internal/pointer"
	"github.com/vk/trainloop/internal/trainer"
)

// Driver holds everything one run needs. Callers populate all fields;
// there is no partial default.
type Driver struct {
	Schedule Schedule

	// PointerPath is the checkpoint pointer file rewritten before every
	// trainer invocation.
	PointerPath string

	// Prefix names checkpoints as "<Prefix>_<episode>".
	Prefix string

	Invoker trainer.Invoker

	// ExtraArgs, when non-nil, yields per-episode arguments for the
	// trainer command.
	ExtraArgs config.ArgsFunc

	// Policy and Retries control the reaction to a failed invocation.
	Policy  config.FailurePolicy
	Retries int

	// Progress receives one decimal episode index per completed episode,
	// newline terminated.
	Progress io.Writer
}

// Run executes the loop to completion. Pointer-file write failures are
// fatal. Trainer failures go through the configured policy. Cancellation
// is honored only between episodes: an in-flight child always runs to
// completion (or to its own timeout) before the driver returns.
func (d *Driver) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	for episode := d.Schedule.Start; episode <= d.Schedule.Stop; episode += d.Schedule.Step {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("run interrupted before episode %d: %w", episode, err)
		}

		name := pointer.Name(d.Prefix, episode)
		if err := pointer.Write(d.PointerPath, pointer.New(name)); err != nil {
			return fmt.Errorf("episode %d: %w", episode, err)
		}
		logger.Debug("Checkpoint pointer rewritten.", "episode", episode, "checkpoint", name)

		var extra []string
		if d.ExtraArgs != nil {
			resolved, err := d.ExtraArgs(episode)
			if err != nil {
				return fmt.Errorf("episode %d: %w", episode, err)
			}
			extra = resolved
		}

		if err := d.invoke(ctx, episode, extra); err != nil {
			return err
		}

		fmt.Fprintln(d.Progress, episode)
		logger.Info("Episode complete.", "episode", episode, "checkpoint", name)
	}

	return nil
}

// invoke runs the trainer for one episode, applying the failure policy.
// The child runs under a cancel-isolated context so an interrupt never
// kills it mid-flight; only its own timeout can.
func (d *Driver) invoke(ctx context.Context, episode int, extra []string) error {
	logger := ctxlog.FromContext(ctx)
	childCtx := context.WithoutCancel(ctx)

	attempts := 1
	if d.Policy == config.FailureRetry {
		attempts += d.Retries
	}

	var (
		lastExit int
		lastErr  error
	)
	for attempt := 1; attempt <= attempts; attempt++ {
		res, err := d.Invoker.Invoke(childCtx, episode, extra)
		lastExit, lastErr = res.ExitCode, err

		if err == nil && res.ExitCode == 0 {
			if attempt > 1 {
				logger.Info("Trainer succeeded after retry.", "episode", episode, "attempt", attempt)
			}
			return nil
		}

		logger.Warn("Trainer invocation failed.",
			"episode", episode,
			"attempt", attempt,
			"exit_code", res.ExitCode,
			"error", err,
		)
	}

	if d.Policy == config.FailureIgnore {
		logger.Warn("Continuing past trainer failure.", "episode", episode, "policy", d.Policy.String())
		return nil
	}

	if lastErr != nil {
		return fmt.Errorf("trainer failed for episode %d after %d attempt(s): %w", episode, attempts, lastErr)
	}
	return fmt.Errorf("trainer exited with code %d for episode %d after %d attempt(s)", lastExit, episode, attempts)
}
