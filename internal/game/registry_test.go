package game_test

import (
	"path/filepath"
	"testing"

	"qlaunch/internal/domain"
	"qlaunch/internal/game"
	"qlaunch/internal/reader/readertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_SupportedGames(t *testing.T) {
	r := game.Default()
	assert.Equal(t, []string{"Quake", "Quake II", "Hexen II"}, r.Titles())
	assert.Equal(t, "Quake / Quake II / Hexen II", r.SupportedGames())
}

func TestRegistry_Select(t *testing.T) {
	tests := []struct {
		name        string
		fingerprint string
		want        string
	}{
		{"quake", "id1/pak0.pak", "Quake"},
		{"quake upper case", "ID1/PAK0.PAK", "Quake"},
		{"quake ii", "baseq2/pak0.pak", "Quake II"},
		{"hexen ii", "data1/pak0.pak", "Hexen II"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			readertest.WriteFile(t, filepath.Join(root, filepath.FromSlash(tt.fingerprint)), readertest.PAK())

			h, err := game.Default().Select(root)
			require.NoError(t, err)
			assert.Equal(t, tt.want, h.Title())
			assert.Equal(t, root, h.GamePath())
		})
	}
}

func TestRegistry_SelectFirstMatchWins(t *testing.T) {
	root := t.TempDir()
	readertest.WriteFile(t, filepath.Join(root, "data1", "pak0.pak"), readertest.PAK())
	readertest.WriteFile(t, filepath.Join(root, "id1", "pak0.pak"), readertest.PAK())

	h, err := game.Default().Select(root)
	require.NoError(t, err)
	assert.Equal(t, "Quake", h.Title())
}

func TestRegistry_SelectUnsupported(t *testing.T) {
	h, err := game.Default().Select(t.TempDir())
	assert.Nil(t, h)
	assert.ErrorIs(t, err, domain.ErrUnsupportedGame)
	assert.Contains(t, err.Error(), "Quake / Quake II / Hexen II")
}

func TestRegistry_DirectoryNamedLikeFingerprintIsNotAGame(t *testing.T) {
	root := t.TempDir()
	readertest.WriteFile(t, filepath.Join(root, "id1", "pak0.pak", "x"), nil)

	_, err := game.Default().Select(root)
	assert.ErrorIs(t, err, domain.ErrUnsupportedGame)
}

func TestRegistry_RegisterKeepsOrder(t *testing.T) {
	r := game.NewRegistry()
	r.Register(func() game.Profile { return &game.Hexen2{} })
	r.Register(func() game.Profile { return &game.Quake{} })
	assert.Equal(t, "Hexen II / Quake", r.SupportedGames())
}
