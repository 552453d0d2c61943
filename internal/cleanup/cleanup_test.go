package cleanup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRemovesRegisteredPaths(t *testing.T) {
	tmp := t.TempDir()
	staging := filepath.Join(tmp, "staging")
	require.NoError(t, os.MkdirAll(filepath.Join(staging, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(staging, "sub", "f"), []byte("x"), 0o644))

	Register(staging)
	Run()

	assert.NoDirExists(t, staging)
}

func TestRunIsIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "once")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	Register(dir)
	Run()
	Run() // nothing left, must not blow up

	assert.NoDirExists(t, dir)
}

func TestRunToleratesMissingPaths(t *testing.T) {
	Register(filepath.Join(t.TempDir(), "never-created"))
	Run()
}

func TestDeferRunsNewestFirst(t *testing.T) {
	var order []string
	Defer(func() { order = append(order, "first") })
	Defer(func() { order = append(order, "second") })

	Run()

	assert.Equal(t, []string{"second", "first"}, order)
}
