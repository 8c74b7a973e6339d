package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 1, cfg.Query.Precision)
	assert.Equal(t, 1.2, cfg.View.ZoomStep)
	assert.Equal(t, 28, cfg.View.SidebarWidth)
	assert.Equal(t, "area", cfg.View.Sort)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\nquery:\n  precision: 3\nview:\n  sort: vertices\n"), 0o644))
	t.Setenv("POLYSCOPE_LOG_FORMAT", "json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 3, cfg.Query.Precision)
	assert.Equal(t, "vertices", cfg.View.Sort)
}

func TestLoadSearchPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "polyscope.yaml"), []byte("view:\n  zoom_step: 1.5\n"), 0o644))
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 1.5, cfg.View.ZoomStep)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Config{
		Log:   LogConfig{Level: "loud", Format: "xml"},
		Query: QueryConfig{Precision: 0},
		View:  ViewConfig{ZoomStep: 1, SidebarWidth: 2, Sort: "colour"},
	}
	err := cfg.Validate()
	require.Error(t, err)
	for _, key := range []string{"log.level", "log.format", "query.precision", "view.zoom_step", "view.sidebar_width", "view.sort"} {
		assert.Contains(t, err.Error(), key)
	}

	cfg = Config{
		Log:   LogConfig{Level: "WARN", Format: "json"},
		Query: QueryConfig{Precision: 2},
		View:  ViewConfig{ZoomStep: 2, SidebarWidth: 30, Sort: "MaxY"},
	}
	assert.NoError(t, cfg.Validate())
}
