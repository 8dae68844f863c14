package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	dataDir := t.TempDir()

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), dataDir)
	require.NoError(t, err)

	assert.Equal(t, BackendJSON, cfg.Storage.Backend)
	assert.Equal(t, "todos", cfg.Storage.Key)
	assert.Equal(t, "classic", cfg.TUI.Theme)
	assert.Empty(t, cfg.Export.Dir)
	assert.Equal(t, dataDir, cfg.DataDir)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("", "/tmp/tada")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Storage, cfg.Storage)
}

func TestLoad_FileOverrides(t *testing.T) {
	p := writeConfig(t, `
storage:
  backend: sqlite
  key: work
export:
  dir: /tmp/exports
tui:
  theme: neon
`)

	cfg, err := Load(p, "/data")
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "work", cfg.Storage.Key)
	assert.Equal(t, "/tmp/exports", cfg.Export.Dir)
	assert.Equal(t, "neon", cfg.TUI.Theme)
	assert.Equal(t, "/data", cfg.DataDir)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	p := writeConfig(t, "tui:\n  theme: mono\n")

	cfg, err := Load(p, "/data")
	require.NoError(t, err)
	assert.Equal(t, BackendJSON, cfg.Storage.Backend)
	assert.Equal(t, "mono", cfg.TUI.Theme)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"unknown backend", "storage:\n  backend: redis\n", "Backend"},
		{"unknown theme", "tui:\n  theme: pink\n", "Theme"},
		{"key with slash", "storage:\n  key: a/b\n", "Key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content), "/data")
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.field, verrs[0].Field())
		})
	}
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(writeConfig(t, "storage: [unclosed"), "/data")
	assert.ErrorContains(t, err, "parse config file")
}

func TestValidate_RequiresDataDir(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, cfg.Validate())

	cfg.DataDir = "/data"
	assert.NoError(t, cfg.Validate())
}

func TestValidateDeep(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DataDir = t.TempDir()
		assert.NoError(t, cfg.ValidateDeep(""))
	})

	t.Run("data dir is a file", func(t *testing.T) {
		cfg := DefaultConfig()
		f := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(f, nil, 0o644))
		cfg.DataDir = f
		cfg.Export.Dir = f

		err := cfg.ValidateDeep("")

		var fieldErrs criterio.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Len(t, fieldErrs, 2)
		assert.Equal(t, "data_dir", fieldErrs[0].Field)
		assert.Equal(t, "export.dir", fieldErrs[1].Field)
	})

	t.Run("config path is a directory", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DataDir = t.TempDir()

		err := cfg.ValidateDeep(t.TempDir())

		var fieldErrs criterio.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Equal(t, "config_file", fieldErrs[0].Field)
	})
}
