package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conspire.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Should return defaults without file or environment", func(t *testing.T) {
		cfg, err := Load(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("Should layer the file over defaults", func(t *testing.T) {
		path := writeConfig(t, "backend: VegaLite\noutput:\n  display: true\nviewer:\n  command: firefox --new-tab\n")
		cfg, err := Load(context.Background(), path)
		require.NoError(t, err)

		assert.Equal(t, Name("vegalite"), cfg.Backend)
		assert.True(t, cfg.Output.Display)
		assert.Equal(t, "render.html", cfg.Output.Path)
		assert.Equal(t, "firefox --new-tab", cfg.Viewer.Command)
		assert.Equal(t, Name("info"), cfg.Log.Level)
	})

	t.Run("Should keep defaults for empty keys", func(t *testing.T) {
		path := writeConfig(t, "output:\n  path:\n")
		cfg, err := Load(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, "render.html", cfg.Output.Path)
	})

	t.Run("Should layer the environment over the file", func(t *testing.T) {
		path := writeConfig(t, "output:\n  path: from-file.html\n")
		t.Setenv("CONSPIRE_OUTPUT_PATH", "from-env.html")
		t.Setenv("CONSPIRE_OUTPUT_DISPLAY", "true")
		t.Setenv("CONSPIRE_LOG_LEVEL", "DEBUG")

		cfg, err := Load(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, "from-env.html", cfg.Output.Path)
		assert.True(t, cfg.Output.Display)
		assert.Equal(t, Name("debug"), cfg.Log.Level)
	})

	t.Run("Should reject invalid values", func(t *testing.T) {
		path := writeConfig(t, "backend: gnuplot\n")
		_, err := Load(context.Background(), path)
		assert.ErrorContains(t, err, "configuration validation failed")
	})

	t.Run("Should fail on a missing file", func(t *testing.T) {
		_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestTransformEnv(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"CONSPIRE_BACKEND", "backend"},
		{"CONSPIRE_OUTPUT_PATH", "output.path"},
		{"CONSPIRE_VIEWER_COMMAND", "viewer.command"},
		{"CONSPIRE_LOG__JSON", "log.json"},
		{"CONSPIRE_", ""},
	}

	for _, tt := range tests {
		if got, _ := transformEnv(tt.input, "v"); got != tt.expected {
			t.Errorf("transformEnv(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
