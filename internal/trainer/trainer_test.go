package trainer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// writeScript drops an executable shell script into dir and returns its path.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755)
	require.NoError(t, err, "failed to write stub trainer script")
	return path
}

func TestCommand_Args(t *testing.T) {
	t.Parallel()

	cmd := &Command{Executable: "python", EnvName: "BreakoutNoFrameskip-v4"}

	require.Equal(t,
		[]string{"--env", "BreakoutNoFrameskip-v4", "--save", "1000"},
		cmd.Args(1000, nil),
		"argument vector must be exactly --env <env> --save <decimal episode>")

	require.Equal(t,
		[]string{"main.py", "--env", "BreakoutNoFrameskip-v4", "--save", "47000"},
		cmd.Args(47000, []string{"main.py"}),
		"extra args must precede the fixed pair")
}

func TestCommand_Invoke_Success(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	argsLog := filepath.Join(tempDir, "args.log")
	script := writeScript(t, tempDir, "trainer.sh", `echo "$@" >> "`+argsLog+`"`)

	cmd := &Command{Executable: script, EnvName: "Walker2d-v1"}
	res, err := cmd.Invoke(context.Background(), 2000, nil)

	require.NoError(t, err)
	require.Equal(t, 0, res.ExitCode)

	logged, err := os.ReadFile(argsLog)
	require.NoError(t, err)
	require.Equal(t, "--env Walker2d-v1 --save 2000\n", string(logged))
}

func TestCommand_Invoke_NonZeroExitIsNotAnError(t *testing.T) {
	t.Parallel()

	script := writeScript(t, t.TempDir(), "trainer.sh", "exit 7")

	cmd := &Command{Executable: script, EnvName: "Walker2d-v1"}
	res, err := cmd.Invoke(context.Background(), 1000, nil)

	require.NoError(t, err, "a failing child is reported via ExitCode, not an invocation error")
	require.Equal(t, 7, res.ExitCode)
}

func TestCommand_Invoke_SpawnFailure(t *testing.T) {
	t.Parallel()

	cmd := &Command{
		Executable: filepath.Join(t.TempDir(), "does-not-exist"),
		EnvName:    "Walker2d-v1",
	}
	_, err := cmd.Invoke(context.Background(), 1000, nil)

	require.Error(t, err)
	require.Contains(t, err.Error(), "spawning trainer")
}

func TestCommand_Invoke_Timeout(t *testing.T) {
	t.Parallel()

	script := writeScript(t, t.TempDir(), "trainer.sh", "sleep 5")

	cmd := &Command{
		Executable: script,
		EnvName:    "Walker2d-v1",
		Timeout:    100 * time.Millisecond,
	}

	start := time.Now()
	_, err := cmd.Invoke(context.Background(), 1000, nil)

	require.Error(t, err)
	require.True(t, errors.Is(err, context.DeadlineExceeded), "expected the deadline error in the chain, got: %v", err)
	require.Less(t, time.Since(start), 3*time.Second, "the child must be killed at the deadline, not waited out")
}
