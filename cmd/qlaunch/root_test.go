package main

import (
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"qlaunch/internal/reader/readertest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the global flags at temporary directories.
func isolate(t *testing.T) {
	t.Helper()
	configDir = t.TempDir()
	dataDir = t.TempDir()
	configFile = ""
	gamePath = ""
	jsonOutput = false
	verbose = false
}

// quakeInstall writes a minimal Quake install and returns its path.
func quakeInstall(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	readertest.WriteFile(t, filepath.Join(root, "id1", "pak0.pak"), readertest.PAK(
		readertest.File{Name: "maps/start.bsp", Data: readertest.BSP("Introduction")},
	))
	readertest.WriteFile(t, filepath.Join(root, "ad", "progs.dat"), []byte("progs"))
	readertest.WriteFile(t, filepath.Join(root, "ad", "maps", "ad_start.bsp"), readertest.BSP("Arcane Dimensions"))
	return root
}

func execute(t *testing.T, sub *cobra.Command, args ...string) error {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.AddCommand(sub)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestInitService_CreatesDirectories(t *testing.T) {
	isolate(t)
	configDir = filepath.Join(t.TempDir(), "config")
	dataDir = filepath.Join(t.TempDir(), "data")

	svc, err := initService()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, svc.Close())
	})

	assert.DirExists(t, configDir)
	assert.FileExists(t, filepath.Join(dataDir, "qlaunch.db"))
}

func TestGetServiceConfig_ConfigFile(t *testing.T) {
	isolate(t)

	configFile = "relative.yaml"
	_, err := getServiceConfig()
	assert.ErrorContains(t, err, "must be absolute")

	path := filepath.Join(t.TempDir(), "qlaunch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 640\nheight: 480\n"), 0644))
	configFile = path

	cfg, err := getServiceConfig()
	require.NoError(t, err)
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestRequireGame_NoGame(t *testing.T) {
	isolate(t)

	_, _, err := requireGame()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "use --path")
}

func TestRequireGame_FromPath(t *testing.T) {
	isolate(t)
	gamePath = quakeInstall(t)

	svc, h, err := requireGame()
	require.NoError(t, err)
	defer svc.Close()
	assert.Equal(t, "Quake", h.Title())
}

func TestColorDisabled(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.False(t, colorEnabled())
	assert.Equal(t, "ok", colorGreen("ok"))
	assert.Equal(t, "ok", colorRed("ok"))
	assert.Equal(t, "ok", colorYellow("ok"))
}

func TestRootCmd_Flags(t *testing.T) {
	for _, name := range []string{"config", "config-file", "data", "path", "verbose", "json", "no-color"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "p", rootCmd.PersistentFlags().Lookup("path").Shorthand)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"the Slipgate Complex", 10, "the Sli..."},
		{"abcdef", 3, "abc"},
		{"Straße der Verdammten", 8, "Straß..."},
		{"ÄÖÜäöü", 4, "Ä..."},
		{"地図の名前です", 7, "地図..."},
	}
	for _, tt := range tests {
		got := truncate(tt.in, tt.max)
		assert.Equal(t, tt.want, got)
		assert.True(t, utf8.ValidString(got), got)
	}
}
