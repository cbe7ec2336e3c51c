package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_PositionalPlanPath(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	config, shouldExit, err := Parse([]string{"plans/breakout.hcl"}, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, "plans/breakout.hcl", config.PlanPath)
	require.Equal(t, "text", config.LogFormat)
	require.Equal(t, "info", config.LogLevel)
}

func TestParse_PlanFlagAndShorthand(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	config, _, err := Parse([]string{"--plan", "a.hcl"}, out)
	require.NoError(t, err)
	require.Equal(t, "a.hcl", config.PlanPath)

	config, _, err = Parse([]string{"-p", "b.hcl"}, out)
	require.NoError(t, err)
	require.Equal(t, "b.hcl", config.PlanPath)
}

func TestParse_NoArgsPrintsUsage(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	config, shouldExit, err := Parse(nil, out)

	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, config)
	require.Contains(t, out.String(), "Usage:")
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	_, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	require.True(t, shouldExit)
}

func TestParse_InvalidLogFormat(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	_, _, err := Parse([]string{"--log-format", "xml", "a.hcl"}, out)

	require.Error(t, err)
	exitErr, ok := err.(*ExitError)
	require.True(t, ok, "expected an *ExitError")
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, exitErr.Message, "invalid log-format")
}

func TestParse_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	_, _, err := Parse([]string{"--log-level", "loud", "a.hcl"}, out)

	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid log-level")
}

func TestParse_UnknownFlag(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	_, _, err := Parse([]string{"--this-is-not-a-valid-flag"}, out)

	require.Error(t, err)
	exitErr, ok := err.(*ExitError)
	require.True(t, ok, "expected an *ExitError")
	require.Equal(t, 2, exitErr.Code)
}
