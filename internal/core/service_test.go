package core_test

import (
	"os"
	"path/filepath"
	"testing"

	"qlaunch/internal/core"
	"qlaunch/internal/domain"
	"qlaunch/internal/reader/readertest"
	"qlaunch/internal/storage/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *core.Service {
	t.Helper()
	svc, err := core.NewService(core.ServiceConfig{
		ConfigDir: t.TempDir(),
		DataDir:   t.TempDir(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })
	return svc
}

// quakeRoot creates a Quake install with base maps, the rogue mission pack,
// a third-party mod with its own maps and one demo, and two engines.
func quakeRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	readertest.WriteFile(t, filepath.Join(root, "id1", "pak0.pak"), readertest.PAK(
		readertest.File{Name: "maps/start.bsp", Data: readertest.BSP("Introduction")},
		readertest.File{Name: "maps/e1m1.bsp", Data: readertest.BSP("the Slipgate Complex")},
	))
	readertest.WriteFile(t, filepath.Join(root, "rogue", "pak0.pak"), readertest.PAK(
		readertest.File{Name: "progs.dat", Data: []byte("progs")},
		readertest.File{Name: "maps/r1m1.bsp", Data: readertest.BSP("Deviant's Domain")},
	))
	readertest.WriteFile(t, filepath.Join(root, "ad", "progs.dat"), []byte("progs"))
	readertest.WriteFile(t, filepath.Join(root, "ad", "maps", "ad_start.bsp"), readertest.BSP("Arcane Dimensions"))
	readertest.WriteFile(t, filepath.Join(root, "ad", "rogue.dem"), readertest.QuakeDemo("Deviant's Domain", "maps/r1m1.bsp"))
	readertest.WriteFile(t, filepath.Join(root, "quakespasm.exe"), []byte("MZ"))
	readertest.WriteFile(t, filepath.Join(root, "unins000.exe"), []byte("MZ"))
	return root
}

func TestService_NoActiveGame(t *testing.T) {
	svc := newService(t)

	_, err := svc.Game()
	assert.ErrorIs(t, err, domain.ErrNoActiveGame)
	_, err = svc.Mods()
	assert.ErrorIs(t, err, domain.ErrNoActiveGame)
	_, err = svc.Maps("")
	assert.ErrorIs(t, err, domain.ErrNoActiveGame)
	_, err = svc.CommandLine(nil)
	assert.ErrorIs(t, err, domain.ErrNoActiveGame)

	_, err = svc.SelectGame("")
	assert.ErrorIs(t, err, domain.ErrNoActiveGame)
}

func TestService_SelectGame(t *testing.T) {
	svc := newService(t)

	_, err := svc.SelectGame(t.TempDir())
	assert.ErrorIs(t, err, domain.ErrUnsupportedGame)

	root := quakeRoot(t)
	h, err := svc.SelectGame(root)
	require.NoError(t, err)
	assert.Equal(t, "Quake", h.Title())

	installs, err := svc.Installs()
	require.NoError(t, err)
	require.Len(t, installs, 1)
	assert.Equal(t, root, installs[0].Path)
	assert.Equal(t, db.SourceManual, installs[0].Source)

	require.NoError(t, svc.ForgetInstall(root))
	installs, err = svc.Installs()
	require.NoError(t, err)
	assert.Empty(t, installs)
}

func TestService_SelectConfiguredGame(t *testing.T) {
	root := quakeRoot(t)
	configDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("game_path: "+root+"\n"), 0644))

	svc, err := core.NewService(core.ServiceConfig{ConfigDir: configDir, DataDir: t.TempDir()})
	require.NoError(t, err)
	defer svc.Close()

	h, err := svc.SelectGame("")
	require.NoError(t, err)
	assert.Equal(t, root, h.GamePath())
}

func TestService_Listings(t *testing.T) {
	svc := newService(t)
	_, err := svc.SelectGame(quakeRoot(t))
	require.NoError(t, err)

	mods, err := svc.Mods()
	require.NoError(t, err)
	assert.Len(t, mods, 3)

	maps, err := svc.Maps("")
	require.NoError(t, err)
	require.Len(t, maps, 2)
	assert.Equal(t, "e1m1", maps[0].Name)

	maps, err = svc.Maps("AD")
	require.NoError(t, err)
	require.Len(t, maps, 1)
	assert.Equal(t, "Arcane Dimensions", maps[0].Title)

	_, err = svc.Maps("nope")
	assert.ErrorIs(t, err, domain.ErrModNotFound)

	engines, err := svc.Engines()
	require.NoError(t, err)
	require.Len(t, engines, 1)
	assert.Equal(t, "quakespasm.exe", engines[0].Name)
}

func TestService_DemosUseSelectedVariantMaps(t *testing.T) {
	svc := newService(t)
	_, err := svc.SelectGame(quakeRoot(t))
	require.NoError(t, err)

	demos, err := svc.Demos("ad")
	require.NoError(t, err)
	require.Len(t, demos, 1)
	assert.Equal(t, domain.ProblemMissingMap, demos[0].Problem)

	require.NoError(t, svc.Select(domain.ItemGame, "Rogue"))
	demos, err = svc.Demos("ad")
	require.NoError(t, err)
	require.Len(t, demos, 1)
	assert.False(t, demos[0].IsInvalid())
	assert.Equal(t, "Deviant's Domain", demos[0].Title())
}

func TestService_SelectValidation(t *testing.T) {
	svc := newService(t)
	_, err := svc.SelectGame(quakeRoot(t))
	require.NoError(t, err)

	require.NoError(t, svc.Select(domain.ItemEngine, "QuakeSpasm"))
	require.NoError(t, svc.Select(domain.ItemMod, "AD"))
	require.NoError(t, svc.Select(domain.ItemSkill, "hard"))
	require.NoError(t, svc.Select(domain.ItemMap, "ad_start"))

	assert.Error(t, svc.Select(domain.ItemEngine, "unins000"))
	assert.ErrorIs(t, svc.Select(domain.ItemMod, "missing"), domain.ErrModNotFound)
	assert.ErrorIs(t, svc.Select(domain.ItemGame, "ad"), domain.ErrModNotFound)
	assert.Error(t, svc.Select(domain.ItemSkill, "impossible"))
	assert.Error(t, svc.Select(domain.ItemClass, "Paladin"), "quake has no classes")
	assert.ErrorIs(t, svc.Select(domain.ItemResolution, "640x480"), domain.ErrUnknownItemType)

	sel, err := svc.Selections()
	require.NoError(t, err)
	assert.Equal(t, map[domain.ItemType]string{
		domain.ItemEngine: "quakespasm.exe",
		domain.ItemMod:    "ad",
		domain.ItemSkill:  "2",
		domain.ItemMap:    "ad_start",
	}, sel)

	require.NoError(t, svc.Select(domain.ItemMap, ""))
	sel, err = svc.Selections()
	require.NoError(t, err)
	assert.NotContains(t, sel, domain.ItemMap)

	require.NoError(t, svc.ClearSelections())
	sel, err = svc.Selections()
	require.NoError(t, err)
	assert.Empty(t, sel)
}

func TestService_CommandLine(t *testing.T) {
	svc := newService(t)
	root := quakeRoot(t)
	_, err := svc.SelectGame(root)
	require.NoError(t, err)

	require.NoError(t, svc.Select(domain.ItemEngine, "quakespasm.exe"))
	require.NoError(t, svc.Select(domain.ItemMod, "ad"))
	require.NoError(t, svc.Select(domain.ItemSkill, "Nightmare!"))

	line, err := svc.CommandLine(nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "quakespasm.exe")+" -width 1280 -height 720 -game ad +skill 3", line)

	line, err = svc.CommandLine(map[domain.ItemType]string{domain.ItemMap: core.RandomValue, domain.ItemEngine: ""})
	require.NoError(t, err)
	assert.Regexp(t, `^-width 1280 -height 720 -game ad \+map (ad_start|e1m1|start) \+skill 3$`, line)

	require.NoError(t, svc.Select(domain.ItemSkill, "random"))
	line, err = svc.CommandLine(map[domain.ItemType]string{domain.ItemEngine: ""})
	require.NoError(t, err)
	assert.Regexp(t, `^-width 1280 -height 720 -game ad \+skill [0-3]$`, line)
}

func TestService_Random(t *testing.T) {
	svc := newService(t)
	_, err := svc.SelectGame(quakeRoot(t))
	require.NoError(t, err)

	m, err := svc.Random(domain.ItemMap, "rogue")
	require.NoError(t, err)
	assert.Contains(t, []string{"r1m1", "start", "e1m1"}, m)

	class, err := svc.Random(domain.ItemClass, "")
	require.NoError(t, err)
	assert.Equal(t, "0", class)

	_, err = svc.Random(domain.ItemDemo, "")
	assert.ErrorIs(t, err, domain.ErrUnknownItemType)
}

func TestService_SaveConfigToExplicitFile(t *testing.T) {
	configDir := t.TempDir()
	file := filepath.Join(t.TempDir(), "lan.yaml")
	require.NoError(t, os.WriteFile(file, []byte("width: 640\nheight: 480\n"), 0644))

	svc, err := core.NewService(core.ServiceConfig{ConfigDir: configDir, ConfigFile: file, DataDir: t.TempDir()})
	require.NoError(t, err)
	defer svc.Close()
	assert.Equal(t, 640, svc.Config().Width)

	svc.Config().GamePath = "/games/quake"
	require.NoError(t, svc.SaveConfig())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "game_path: /games/quake")
	assert.NoFileExists(t, filepath.Join(configDir, "config.yaml"))
}
