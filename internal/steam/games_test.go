package steam

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKnownGames_EmbeddedDefault(t *testing.T) {
	games, err := LoadKnownGames(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "Quake", games["2310"].Name)
	assert.Equal(t, []string{"rerelease", ""}, games["2310"].dirs())
	assert.Equal(t, "Quake II", games["2320"].Name)
	assert.Equal(t, "Hexen II", games["9060"].Name)
	assert.Equal(t, []string{""}, games["9060"].dirs())
}

func TestLoadKnownGames_OverrideFile(t *testing.T) {
	dir := t.TempDir()
	overrideYAML := `
"999999":
  name: Quake Mission Pack
"9060":
  name: Hexen II (GOG layout)
  content_dirs: [game]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "steam-games.yaml"), []byte(overrideYAML), 0644))

	games, err := LoadKnownGames(dir)
	require.NoError(t, err)

	assert.Equal(t, "Quake Mission Pack", games["999999"].Name)
	assert.Equal(t, []string{""}, games["999999"].dirs())
	assert.Equal(t, []string{"game"}, games["9060"].dirs())
	assert.Equal(t, "Quake", games["2310"].Name, "embedded entries are kept")
}

func TestLoadKnownGames_BadOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "steam-games.yaml"), []byte("- not a map"), 0644))

	_, err := LoadKnownGames(dir)
	assert.Error(t, err)
}
