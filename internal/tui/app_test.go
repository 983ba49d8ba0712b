package tui_test

import (
	"path/filepath"
	"testing"

	"qlaunch/internal/core"
	"qlaunch/internal/domain"
	"qlaunch/internal/reader/readertest"
	"qlaunch/internal/tui"
	"qlaunch/internal/tui/views"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quakeService returns a service with a small Quake install selected: base
// maps, one mod with a map and a demo, and an engine.
func quakeService(t *testing.T) *core.Service {
	t.Helper()
	root := t.TempDir()
	readertest.WriteFile(t, filepath.Join(root, "id1", "pak0.pak"), readertest.PAK(
		readertest.File{Name: "maps/start.bsp", Data: readertest.BSP("Introduction")},
		readertest.File{Name: "maps/e1m1.bsp", Data: readertest.BSP("the Slipgate Complex")},
	))
	readertest.WriteFile(t, filepath.Join(root, "ad", "progs.dat"), []byte("progs"))
	readertest.WriteFile(t, filepath.Join(root, "ad", "maps", "ad_start.bsp"), readertest.BSP("Arcane Dimensions"))
	readertest.WriteFile(t, filepath.Join(root, "ad", "intro.dem"), readertest.QuakeDemo("Arcane Dimensions", "maps/ad_start.bsp"))
	readertest.WriteFile(t, filepath.Join(root, "quakespasm.exe"), []byte("MZ"))

	svc, err := core.NewService(core.ServiceConfig{ConfigDir: t.TempDir(), DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })
	_, err = svc.SelectGame(root)
	require.NoError(t, err)
	return svc
}

func update(t *testing.T, app tui.App, msg tea.Msg) (tui.App, tea.Cmd) {
	t.Helper()
	m, cmd := app.Update(msg)
	updated, ok := m.(tui.App)
	require.True(t, ok)
	return updated, cmd
}

func TestNewApp_InitialState(t *testing.T) {
	app := tui.NewApp(nil)

	assert.Equal(t, tui.ViewMods, app.CurrentView())
	assert.NotEmpty(t, app.View())
}

func TestApp_NavigateToView(t *testing.T) {
	app := tui.NewApp(nil)

	app, _ = update(t, app, tui.NavigateMsg{View: tui.ViewDemos})
	assert.Equal(t, tui.ViewDemos, app.CurrentView())

	app, _ = update(t, app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'4'}})
	assert.Equal(t, tui.ViewLaunch, app.CurrentView())
}

func TestApp_QuitOnQ(t *testing.T) {
	app := tui.NewApp(nil)

	_, cmd := update(t, app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)
}

func TestApp_NoGameSelected(t *testing.T) {
	app := tui.NewApp(nil)

	view := app.View()
	assert.Contains(t, view, "No game selected")
	assert.Contains(t, view, "qlaunch browse --path")
}

func TestApp_HelpToggle(t *testing.T) {
	app := tui.NewApp(nil)

	app, _ = update(t, app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.Contains(t, app.View(), "Filter maps and demos")

	app, _ = update(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, app.View(), "Filter maps and demos")
}

func TestApp_LoadsActiveGame(t *testing.T) {
	app := tui.NewApp(quakeService(t))

	view := app.View()
	assert.Contains(t, view, "qlaunch - Quake")
	assert.Contains(t, view, "ad")
	assert.Equal(t, "id1", app.Mod())
}

func TestApp_ChooseModThenMap(t *testing.T) {
	svc := quakeService(t)
	app := tui.NewApp(svc)

	app, _ = update(t, app, views.ModSelectedMsg{Mod: domain.ModItem{Name: "ad"}})
	assert.Equal(t, tui.ViewMaps, app.CurrentView())
	assert.Equal(t, "ad", app.Mod())
	assert.Contains(t, app.View(), "ad_start")

	app, _ = update(t, app, views.ResourceChosenMsg{Kind: domain.ItemMap, Value: "ad_start"})
	assert.Equal(t, tui.ViewLaunch, app.CurrentView())
	assert.Contains(t, app.View(), "+map ad_start")

	sel, err := svc.Selections()
	require.NoError(t, err)
	assert.Equal(t, "ad", sel[domain.ItemMod])
	assert.Equal(t, "ad_start", sel[domain.ItemMap])
}

func TestApp_DemoReplacesMap(t *testing.T) {
	svc := quakeService(t)
	app := tui.NewApp(svc)

	app, _ = update(t, app, views.ModSelectedMsg{Mod: domain.ModItem{Name: "ad"}})
	app, _ = update(t, app, views.ResourceChosenMsg{Kind: domain.ItemMap, Value: "ad_start"})
	_, _ = update(t, app, views.ResourceChosenMsg{Kind: domain.ItemDemo, Value: "intro.dem"})

	sel, err := svc.Selections()
	require.NoError(t, err)
	assert.Equal(t, "intro.dem", sel[domain.ItemDemo])
	assert.NotContains(t, sel, domain.ItemMap)
}

func TestApp_SelectionChangedUpdatesCommandLine(t *testing.T) {
	svc := quakeService(t)
	app := tui.NewApp(svc)

	app, _ = update(t, app, views.SelectionChangedMsg{Kind: domain.ItemSkill, Value: "2"})
	app, _ = update(t, app, tui.NavigateMsg{View: tui.ViewLaunch})

	assert.Contains(t, app.View(), "+skill 2")
}

func TestApp_LaunchQuitsWithCommandLine(t *testing.T) {
	app := tui.NewApp(nil)

	app, cmd := update(t, app, views.LaunchMsg{Line: "quakespasm.exe +map e1m1"})
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)
	assert.Equal(t, "quakespasm.exe +map e1m1", app.CommandLine())
}

func TestApp_RandomMapPicksFromMod(t *testing.T) {
	svc := quakeService(t)
	app := tui.NewApp(svc)

	app, _ = update(t, app, views.ModSelectedMsg{Mod: domain.ModItem{Name: "ad"}})
	app, _ = update(t, app, views.RandomRequestMsg{Kind: domain.ItemMap})

	assert.Equal(t, tui.ViewLaunch, app.CurrentView())
	sel, err := svc.Selections()
	require.NoError(t, err)
	assert.Contains(t, []string{"ad_start", "start", "e1m1"}, sel[domain.ItemMap])
}

func TestApp_RejectedSelectionShowsError(t *testing.T) {
	app := tui.NewApp(quakeService(t))

	app, cmd := update(t, app, views.SelectionChangedMsg{Kind: domain.ItemSkill, Value: "impossible"})
	require.NotNil(t, cmd)
	msg, ok := cmd().(tui.ErrorMsg)
	require.True(t, ok)
	assert.ErrorContains(t, msg.Err, "expected one of")

	app, _ = update(t, app, msg)
	assert.Contains(t, app.View(), "Error:")

	app, _ = update(t, app, tui.NavigateMsg{View: tui.ViewMods})
	assert.NotContains(t, app.View(), "Error:")
}
