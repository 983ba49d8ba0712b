package game_test

import (
	"path/filepath"
	"sync"
	"testing"

	"qlaunch/internal/domain"
	"qlaunch/internal/game"
	"qlaunch/internal/reader"
	"qlaunch/internal/reader/readertest"

	"github.com/stretchr/testify/require"
)

// quakeInstall creates a Quake installation whose id1/pak0.pak holds e1m1,
// e1m2 and start.
func quakeInstall(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	readertest.WriteFile(t, filepath.Join(root, "id1", "pak0.pak"), readertest.PAK(
		readertest.File{Name: "progs.dat", Data: []byte("progs")},
		readertest.File{Name: "maps/start.bsp", Data: readertest.BSP("Introduction")},
		readertest.File{Name: "maps/e1m1.bsp", Data: readertest.BSP("the Slipgate Complex")},
		readertest.File{Name: "maps/e1m2.bsp", Data: readertest.BSP("Castle of the Damned")},
	))
	return root
}

func selectGame(t *testing.T, root string, opts ...game.HandlerOption) *game.Handler {
	t.Helper()
	h, err := game.Default().Select(root, opts...)
	require.NoError(t, err)
	return h
}

func mapNames(items []domain.MapItem) []string {
	out := make([]string, 0, len(items))
	for _, m := range items {
		out = append(out, m.Name)
	}
	return out
}

func modNames(items []domain.ModItem) []string {
	out := make([]string, 0, len(items))
	for _, m := range items {
		out = append(out, m.Name)
	}
	return out
}

// countingBackend records the folders a backend was asked about.
type countingBackend struct {
	reader.Backend

	mu           sync.Mutex
	containsMaps []string
}

func (b *countingBackend) ContainsMaps(dir string, c reader.Classifier) bool {
	b.mu.Lock()
	b.containsMaps = append(b.containsMaps, dir)
	b.mu.Unlock()
	return b.Backend.ContainsMaps(dir, c)
}

func (b *countingBackend) asked() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.containsMaps...)
}

func countingBackends() []*countingBackend {
	var out []*countingBackend
	for _, b := range reader.Backends(nil) {
		out = append(out, &countingBackend{Backend: b})
	}
	return out
}
