package tui

import (
	"fmt"

	"qlaunch/internal/domain"
	"qlaunch/internal/game"
	"qlaunch/internal/tui/views"

	tea "github.com/charmbracelet/bubbletea"
)

// load fills every view from the active game and its remembered selections.
func (a *App) load() error {
	h, err := a.service.Game()
	if err != nil {
		return err
	}
	a.gameTitle = h.Title()

	sel, err := a.service.Selections()
	if err != nil {
		return err
	}
	mod, err := a.service.ResolveMod(sel[domain.ItemMod])
	if err != nil {
		// A remembered mod may have been removed since.
		mod, err = a.service.ResolveMod("")
		if err != nil {
			return err
		}
	}
	a.mod = mod.Name

	mods, err := a.service.Mods()
	if err != nil {
		return err
	}
	titles := make(map[string]string)
	for _, m := range mods {
		if g, ok := h.BaseGame(m.Name); ok {
			titles[m.Name] = g.Title
		}
	}
	a.mods = views.NewModSelect(mods, titles, a.keys).WithCurrent(a.mod)

	if err := a.loadResources(); err != nil {
		return err
	}
	a.launch = views.NewLaunch(a.launchSettings(h, sel), a.keys)
	return a.refreshLaunch()
}

// loadResources lists the maps and demos of the current mod.
func (a *App) loadResources() error {
	maps, err := a.service.Maps(a.mod)
	if err != nil {
		return fmt.Errorf("listing maps: %w", err)
	}
	demos, err := a.service.Demos(a.mod)
	if err != nil {
		return fmt.Errorf("listing demos: %w", err)
	}
	sel, err := a.service.Selections()
	if err != nil {
		return err
	}

	mapEntries := make([]views.Entry, 0, len(maps))
	for _, m := range maps {
		mapEntries = append(mapEntries, views.Entry{
			Value:  m.Name,
			Label:  m.Name,
			Detail: fmt.Sprintf("%s (%s)", m.Title, m.Kind),
		})
	}
	demoEntries := make([]views.Entry, 0, len(demos))
	for _, d := range demos {
		demoEntries = append(demoEntries, views.Entry{
			Value:  d.Path,
			Label:  d.Path,
			Detail: d.Title(),
			Warn:   d.IsInvalid(),
		})
	}

	m, _ := a.maps.Update(views.EntriesMsg{Kind: domain.ItemMap, Mod: a.mod, Entries: mapEntries})
	a.maps = m.(views.ResourceList).WithCurrent(sel[domain.ItemMap])
	m, _ = a.demos.Update(views.EntriesMsg{Kind: domain.ItemDemo, Mod: a.mod, Entries: demoEntries})
	a.demos = m.(views.ResourceList).WithCurrent(sel[domain.ItemDemo])
	return nil
}

// launchSettings builds the pickers of the launch view, each starting at
// the remembered value.
func (a *App) launchSettings(h *game.Handler, sel map[domain.ItemType]string) []views.Setting {
	engines := []domain.Option{domain.DefaultOption}
	for _, e := range h.GetEngines() {
		engines = append(engines, domain.Option{Label: e.Name, Value: e.Name})
	}
	variants := []domain.Option{domain.DefaultOption}
	for _, g := range h.BaseGames() {
		variants = append(variants, domain.Option{Label: g.Title, Value: g.Folder})
	}

	settings := []views.Setting{
		{Kind: domain.ItemEngine, Name: "Engine", Options: engines},
		{Kind: domain.ItemGame, Name: "Game", Options: variants},
		{Kind: domain.ItemSkill, Name: "Skill", Options: h.Skills()},
		{Kind: domain.ItemClass, Name: "Class", Options: h.Classes()},
	}
	for i := range settings {
		settings[i].Current = views.OptionIndex(settings[i].Options, sel[settings[i].Kind])
	}
	return settings
}

// refreshLaunch rebuilds the summary and the command line of the launch view.
func (a *App) refreshLaunch() error {
	if a.service == nil {
		return nil
	}
	sel, err := a.service.Selections()
	if err != nil {
		return err
	}
	summary := []string{"Mod: " + a.mod}
	switch {
	case sel[domain.ItemDemo] != "":
		summary = append(summary, "Demo: "+sel[domain.ItemDemo])
	case sel[domain.ItemMap] != "":
		summary = append(summary, "Map: "+sel[domain.ItemMap])
	}
	a.launch = a.launch.WithSummary(summary...)

	line, err := a.service.CommandLine(nil)
	if err != nil {
		return fmt.Errorf("building command line: %w", err)
	}
	m, _ := a.launch.Update(views.CommandLineMsg{Line: line})
	a.launch = m.(views.Launch)
	return nil
}

// chooseMod remembers mod and lists its content. Map and demo choices
// belong to the previous mod and are forgotten.
func (a App) chooseMod(mod domain.ModItem) (tea.Model, tea.Cmd) {
	if a.service == nil {
		return a, nil
	}
	for _, step := range []struct {
		kind  domain.ItemType
		value string
	}{
		{domain.ItemMod, mod.Name},
		{domain.ItemMap, ""},
		{domain.ItemDemo, ""},
	} {
		if err := a.service.Select(step.kind, step.value); err != nil {
			return a, reportError(err)
		}
	}

	a.mod = mod.Name
	a.mods = a.mods.WithCurrent(mod.Name)
	if err := a.loadResources(); err != nil {
		return a, reportError(err)
	}
	a.currentView = ViewMaps
	if err := a.refreshLaunch(); err != nil {
		return a, reportError(err)
	}
	return a, nil
}

// chooseResource remembers a map or a demo. A demo replaces the map and
// the other way around.
func (a App) chooseResource(kind domain.ItemType, value string) (tea.Model, tea.Cmd) {
	if a.service == nil {
		return a, nil
	}
	other := domain.ItemDemo
	if kind == domain.ItemDemo {
		other = domain.ItemMap
	}
	if err := a.service.Select(kind, value); err != nil {
		return a, reportError(err)
	}
	if err := a.service.Select(other, ""); err != nil {
		return a, reportError(err)
	}

	if kind == domain.ItemMap {
		a.maps = a.maps.WithCurrent(value)
		a.demos = a.demos.WithCurrent("")
	} else {
		a.demos = a.demos.WithCurrent(value)
		a.maps = a.maps.WithCurrent("")
	}
	a.currentView = ViewLaunch
	if err := a.refreshLaunch(); err != nil {
		return a, reportError(err)
	}
	return a, nil
}

func (a App) chooseRandom(kind domain.ItemType) (tea.Model, tea.Cmd) {
	if a.service == nil {
		return a, nil
	}
	value, err := a.service.Random(kind, a.mod)
	if err != nil {
		return a, reportError(err)
	}
	if value == "" {
		return a, reportError(fmt.Errorf("no %ss to pick from in %s", kind, a.mod))
	}
	return a.chooseResource(kind, value)
}
