// Package trainer invokes the external training process, one synchronous
// child per episode.
package trainer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"time"
)

// Result reports the outcome of one trainer invocation.
type Result struct {
	// ExitCode is the child's exit status. It is recorded even when the
	// caller's policy chooses to ignore it.
	ExitCode int

	// Duration is the wall-clock time the child ran for.
	Duration time.Duration
}

// Invoker runs the trainer for one episode and blocks until it exits.
type Invoker interface {
	Invoke(ctx context.Context, episode int, extra []string) (Result, error)
}

// Command is the exec-based Invoker. It spawns
//
//	<Executable> [extra...] --env <EnvName> --save <episode>
//
// and waits for it to finish before returning.
type Command struct {
	Executable string
	EnvName    string

	// Timeout bounds one invocation; the child is killed when it expires.
	// Zero means no bound.
	Timeout time.Duration

	// Dir is the child's working directory. Empty means inherit.
	Dir string

	// Stdout and Stderr default to the parent's streams when nil; the
	// driver never captures the trainer's output.
	Stdout io.Writer
	Stderr io.Writer
}

// Args builds the full argument vector for an episode. The episode is
// rendered as a plain decimal with no sign and no padding.
func (c *Command) Args(episode int, extra []string) []string {
	args := make([]string, 0, len(extra)+4)
	args = append(args, extra...)
	return append(args, "--env", c.EnvName, "--save", strconv.Itoa(episode))
}

// Invoke runs the trainer synchronously. A non-zero exit is not an error:
// it is reported through Result.ExitCode and left to the caller's failure
// policy. Only spawn failures and timeouts return a non-nil error.
func (c *Command) Invoke(ctx context.Context, episode int, extra []string) (Result, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.Executable, c.Args(episode, extra)...)
	cmd.Dir = c.Dir
	cmd.Stdout = c.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = c.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	start := time.Now()
	err := cmd.Run()
	res := Result{Duration: time.Since(start)}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return res, nil
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, fmt.Errorf("trainer for episode %d exceeded its deadline: %w", episode, ctxErr)
		}
		return res, nil
	default:
		return res, fmt.Errorf("spawning trainer %q for episode %d: %w", c.Executable, episode, err)
	}
}
