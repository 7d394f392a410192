package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execRoot runs rootCmd with the given args against a fresh output
// buffer, mirroring the rest of the pack's cobra.Command{SetArgs/
// Execute} smoke-test shape rather than invoking main() directly.
func execRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	cmd := rootCmd
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCmd_PushSucceeds(t *testing.T) {
	_, err := execRoot(t, "push", "--count", "5")
	require.NoError(t, err)
	require.NotNil(t, recorder)
}

func TestRootCmd_PushRejectsNegativeCount(t *testing.T) {
	_, err := execRoot(t, "push", "--count", "-1")
	assert.Error(t, err)
}

func TestRootCmd_SparseFillSucceeds(t *testing.T) {
	_, err := execRoot(t, "sparse-fill", "--count", "8", "--max-index", "1000000")
	require.NoError(t, err)
}

func TestRootCmd_SparseFillRejectsZeroMaxIndex(t *testing.T) {
	_, err := execRoot(t, "sparse-fill", "--max-index", "0")
	assert.Error(t, err)
}

func TestRootCmd_SortRejectsNonPositiveCount(t *testing.T) {
	_, err := execRoot(t, "sort", "--count", "0")
	assert.Error(t, err)
}

func TestRootCmd_BenchRunsWithoutServing(t *testing.T) {
	_, err := execRoot(t, "bench", "--count", "64")
	require.NoError(t, err)
}

func TestRootCmd_UnknownCommandFails(t *testing.T) {
	_, err := execRoot(t, "not-a-real-command")
	assert.Error(t, err)
}
