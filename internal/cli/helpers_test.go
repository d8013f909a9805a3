package cli

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	defer func() { os.Stderr = old }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestPrintErrorWritesToStderr(t *testing.T) {
	SetGlobalFlags(false, true, false)
	t.Cleanup(func() { SetGlobalFlags(false, false, false) })

	out := captureStderr(t, func() { PrintError("failed to save %s", "my-page") })
	assert.Equal(t, "ERROR: failed to save my-page\n", out)
}

func TestPrintWarningWritesToStderr(t *testing.T) {
	SetGlobalFlags(false, true, false)
	t.Cleanup(func() { SetGlobalFlags(false, false, false) })

	out := captureStderr(t, func() { PrintWarning("page %s is malformed", "old") })
	assert.Equal(t, "WARNING: page old is malformed\n", out)
}
