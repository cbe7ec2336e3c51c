package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectFiles(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	nested := filepath.Join(tempDir, "nested")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	planA := filepath.Join(tempDir, "a.hcl")
	planB := filepath.Join(nested, "b.hcl")
	other := filepath.Join(tempDir, "notes.txt")
	for _, p := range []string{planA, planB, other} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o600))
	}

	files, err := CollectFiles(".hcl", tempDir)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{planA, planB}, files)

	// A direct file path is returned as-is, and repeats are de-duplicated.
	files, err = CollectFiles(".hcl", planA, tempDir)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{planA, planB}, files)
}

func TestCollectFiles_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := CollectFiles(".hcl", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}
