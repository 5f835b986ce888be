package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestDemo_DefaultRun(t *testing.T) {
	out, err := runCommand(t, "demo")
	require.NoError(t, err)

	assert.Contains(t, out, "final: 3")
	assert.Contains(t, out, "hello world")
}

func TestDemo_FlagsControlProgram(t *testing.T) {
	out, err := runCommand(t, "demo", "--target", "2", "--input", "gopher")
	require.NoError(t, err)

	assert.Contains(t, out, "final: 2")
	assert.Contains(t, out, "hello gopher")
}

func TestDemo_Trace(t *testing.T) {
	out, err := runCommand(t, "demo", "--target", "1", "--trace")
	require.NoError(t, err)

	// Two passes: the stepping pass and the stable one.
	assert.Contains(t, out, "pass 0")
	assert.Contains(t, out, "pass 1")
	assert.NotContains(t, out, "pass 2")
}
