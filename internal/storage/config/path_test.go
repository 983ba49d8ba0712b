package config

import (
	"os"
	"path/filepath"
	"testing"

	"qlaunch/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("width: 800\n"), 0644))
	return path
}

func TestParseConfigPath(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		setup  func(t *testing.T) string // returns path to use
		errMsg string
	}{
		{
			name:  "valid absolute path to existing file",
			setup: func(t *testing.T) string { return writeConfig(t, "config.yaml") },
		},
		{
			name:  "valid path with .yml extension",
			setup: func(t *testing.T) string { return writeConfig(t, "qlaunch.YML") },
		},
		{
			name:   "empty path",
			errMsg: "config path cannot be empty",
		},
		{
			name:   "relative path",
			path:   "config.yaml",
			errMsg: "config path must be absolute",
		},
		{
			name:   "path with parent directory traversal",
			path:   "/etc/../etc/config.yaml",
			errMsg: "config path contains invalid traversal",
		},
		{
			name:   "path to non-existent file",
			setup:  func(t *testing.T) string { return filepath.Join(t.TempDir(), "nonexistent.yaml") },
			errMsg: "config file does not exist",
		},
		{
			name: "path to directory instead of file",
			setup: func(t *testing.T) string {
				dir := filepath.Join(t.TempDir(), "conf.yaml")
				require.NoError(t, os.Mkdir(dir, 0755))
				return dir
			},
			errMsg: "config path is a directory, not a file",
		},
		{
			name:   "path with unsupported extension",
			setup:  func(t *testing.T) string { return writeConfig(t, "config.txt") },
			errMsg: "config file must have .yaml or .yml extension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.path
			if tt.setup != nil {
				path = tt.setup(t)
			}

			got, err := ParseConfigPath(path)

			if tt.errMsg != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidConfig)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, path, got)
		})
	}
}

func TestParseConfigPath_HomeExpansion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "qlaunch.yaml"), []byte("width: 800\n"), 0644))

	got, err := ParseConfigPath("~/qlaunch.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "qlaunch.yaml"), got)
}
