package app

import (
	"context"
	"fmt"

	"github.com/vk/trainloop/internal/ctxlog"
	"github.com/vk/trainloop/internal/driver"
	"github.com/vk/trainloop/internal/trainer"
)

// Run executes the training loop described by the loaded plan.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	m := a.model
	cmd := &trainer.Command{
		Executable: m.Trainer.Executable,
		EnvName:    m.Trainer.EnvName,
		Timeout:    m.Trainer.Timeout,
	}

	d := &driver.Driver{
		Schedule: driver.Schedule{
			Start: m.Run.Start,
			Stop:  m.Run.Stop,
			Step:  m.Run.Step,
		},
		PointerPath: m.Checkpoint.Path,
		Prefix:      m.Checkpoint.Prefix,
		Invoker:     cmd,
		ExtraArgs:   m.Trainer.ExtraArgs,
		Policy:      m.Run.OnFailure,
		Retries:     m.Run.Retries,
		Progress:    a.outW,
	}

	a.logger.Info("🚀 Starting training run.",
		"episodes", d.Schedule.Count(),
		"start", m.Run.Start,
		"stop", m.Run.Stop,
		"step", m.Run.Step,
		"env", m.Trainer.EnvName,
		"on_failure", m.Run.OnFailure.String(),
	)

	if err := d.Run(ctx); err != nil {
		return fmt.Errorf("training run failed: %w", err)
	}

	a.logger.Info("🏁 Training run finished.", "episodes", d.Schedule.Count())
	a.logger.Debug("App.Run method finished.")
	return nil
}
