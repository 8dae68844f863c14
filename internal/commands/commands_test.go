package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/model"
)

type result struct {
	stdout, stderr string
	err            error
}

func run(t *testing.T, dir string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := New("test", &out, &errOut)
	full := append([]string{
		"tada",
		"--config", filepath.Join(dir, "config.yaml"),
		"--data-dir", dir,
		"--no-color",
	}, args...)
	err := cmd.Run(context.Background(), full)
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

func TestAddAndList(t *testing.T) {
	dir := t.TempDir()

	r := run(t, dir, "ls")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "no items")

	r = run(t, dir, "add", "Buy", "milk")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, `✔ added "Buy milk"`)

	require.NoError(t, run(t, dir, "add", "Walk dog").err)

	r = run(t, dir, "ls")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, " 1. ☐ Buy milk")
	assert.Contains(t, r.stdout, " 2. ☐ Walk dog")
	assert.Contains(t, r.stdout, "Total 2")

	_, err := os.Stat(filepath.Join(dir, "todos.json"))
	assert.NoError(t, err)
}

func TestDoneAndFilteredList(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run(t, dir, "add", "Buy milk").err)
	require.NoError(t, run(t, dir, "add", "Walk dog").err)

	r := run(t, dir, "done", "2")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "marked done: Walk dog")

	r = run(t, dir, "ls", "--filter", "completed")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, " 2. ☑ Walk dog", "numbers stay those of the full list")
	assert.NotContains(t, r.stdout, "☐ Buy milk")
	assert.Contains(t, r.stdout, "[completed]")

	r = run(t, dir, "ls", "--group")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "Pending")
	assert.Contains(t, r.stdout, "Done")

	r = run(t, dir, "toggle", "2")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "marked pending: Walk dog")
}

func TestEditAndRemove(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run(t, dir, "add", "Buy milk").err)

	r := run(t, dir, "edit", "1", "Buy", "oat", "milk")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, `renamed to "Buy oat milk"`)

	require.NoError(t, run(t, dir, "rm", "1").err)

	r = run(t, dir, "ls")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "no items")
}

func TestReportedErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run(t, dir, "add", "Buy milk").err)

	r := run(t, dir, "add", "Buy milk")
	require.Error(t, r.err)
	assert.True(t, Reported(r.err))
	assert.Equal(t, 1, ExitCode(r.err))
	assert.Contains(t, r.stderr, "this todo already exists")

	r = run(t, dir, "rm", "9")
	require.Error(t, r.err)
	assert.True(t, Reported(r.err))
	assert.Contains(t, r.stderr, "todo not found")

	for _, args := range [][]string{{"add", "   "}, {"add"}, {"edit", "1", "   "}, {"edit", "1"}} {
		r = run(t, dir, args...)
		require.Error(t, r.err, args)
		assert.True(t, Reported(r.err), args)
		assert.Equal(t, 1, ExitCode(r.err), args)
		assert.Contains(t, r.stderr, "todo title can not be empty", args)
	}

	r = run(t, dir, "ls")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, " 1. ☐ Buy milk", "blank renames leave the title alone")
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "done without ref", args: []string{"done"}},
		{name: "edit without ref", args: []string{"edit"}},
		{name: "unknown command", args: []string{"bogus"}},
		{name: "bad filter", args: []string{"ls", "--filter", "later"}},
		{name: "bad format", args: []string{"export", "odt"}},
		{name: "bad storage", args: []string{"--storage", "redis", "ls"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := run(t, t.TempDir(), tt.args...)
			require.Error(t, r.err)
			assert.False(t, Reported(r.err))
			assert.Equal(t, 2, ExitCode(r.err))
		})
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	require.NoError(t, run(t, dir, "add", "Buy milk").err)
	require.NoError(t, run(t, dir, "add", "Walk dog").err)

	for _, format := range []string{"pdf", "excel", "docx"} {
		r := run(t, dir, "export", "--filter", "incomplete", "--out", out, format)
		require.NoError(t, r.err, format)
		assert.Contains(t, r.stdout, "exported")
	}

	for _, name := range []string{"todos.pdf", "todos.xlsx", "todos.docx"} {
		_, err := os.Stat(filepath.Join(out, name))
		assert.NoError(t, err, name)
	}
}

func TestSQLiteStorage(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, run(t, dir, "--storage", "sqlite", "add", "Buy milk").err)

	r := run(t, dir, "--storage", "sqlite", "ls")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "Buy milk")

	_, err := os.Stat(filepath.Join(dir, "tada.db"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "todos.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := "storage:\n  key: groceries\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(cfg), 0o644))

	require.NoError(t, run(t, dir, "add", "Buy milk").err)
	_, err := os.Stat(filepath.Join(dir, "groceries.json"))
	assert.NoError(t, err)

	r := run(t, dir, "config", "validate")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "configuration is valid")
}

func TestConfigValidate_BadExportDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	cfg := "export:\n  dir: " + file + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(cfg), 0o644))

	r := run(t, dir, "config", "validate")
	require.Error(t, r.err)
	assert.True(t, Reported(r.err))
	assert.Contains(t, r.stderr, "export.dir")
}

func TestResolveRef(t *testing.T) {
	all := []model.Item{{ID: "a"}, {ID: "b"}, {ID: "3"}}

	assert.Equal(t, "a", resolveRef(all, "a"))
	assert.Equal(t, "b", resolveRef(all, "2"))
	assert.Equal(t, "3", resolveRef(all, "3"), "ids win over positions")
	assert.Equal(t, "4", resolveRef(all, "4"))
	assert.Equal(t, "0", resolveRef(all, "0"))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 2, ExitCode(usage("x")))
	assert.Equal(t, 1, ExitCode(os.ErrNotExist))
}
