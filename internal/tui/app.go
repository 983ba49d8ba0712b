package tui

import (
	"fmt"

	"qlaunch/internal/core"
	"qlaunch/internal/domain"
	"qlaunch/internal/tui/views"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ViewType represents different screens in the TUI
type ViewType int

const (
	ViewMods ViewType = iota
	ViewMaps
	ViewDemos
	ViewLaunch
)

// NavigateMsg is sent to change views
type NavigateMsg struct {
	View ViewType
}

// ErrorMsg is sent when an error occurs
type ErrorMsg struct {
	Err error
}

// reportError shows err in the status line on the next update.
func reportError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

// App is the main TUI application model
type App struct {
	service     *core.Service
	keys        *KeyMap
	currentView ViewType
	width       int
	height      int
	err         error
	showHelp    bool

	gameTitle string
	mod       string // Mod whose maps and demos are listed
	launched  string // Command line accepted by the user

	// Sub-models for each view
	mods   views.ModSelect
	maps   views.ResourceList
	demos  views.ResourceList
	launch views.Launch
}

// NewApp creates a new TUI application. The service must have a game
// selected for the views to fill in.
func NewApp(service *core.Service) App {
	mode := ""
	if service != nil {
		mode = service.Config().Keybindings
	}
	keys := NewKeyMap(mode)

	a := App{
		service:     service,
		keys:        keys,
		currentView: ViewMods,
		width:       80,
		height:      24,
		mods:        views.NewModSelect(nil, nil, keys),
		maps:        views.NewResourceList(domain.ItemMap, "Maps", keys),
		demos:       views.NewResourceList(domain.ItemDemo, "Demos", keys),
		launch:      views.NewLaunch(nil, keys),
	}
	if service != nil {
		a.err = a.load()
	}
	return a
}

// CurrentView returns the current view type
func (a App) CurrentView() ViewType {
	return a.currentView
}

// Mod returns the mod whose maps and demos are listed
func (a App) Mod() string {
	return a.mod
}

// CommandLine returns the command line the user launched with, if any
func (a App) CommandLine() string {
	return a.launched
}

// Init implements tea.Model
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.broadcast(msg)
		return a, nil

	case NavigateMsg:
		a.currentView = msg.View
		a.err = nil
		return a, nil

	case ErrorMsg:
		a.err = msg.Err
		return a, nil

	case views.ModSelectedMsg:
		return a.chooseMod(msg.Mod)

	case views.ResourceChosenMsg:
		return a.chooseResource(msg.Kind, msg.Value)

	case views.RandomRequestMsg:
		return a.chooseRandom(msg.Kind)

	case views.SelectionChangedMsg:
		if a.service == nil {
			return a, nil
		}
		if err := a.service.Select(msg.Kind, msg.Value); err != nil {
			return a, reportError(err)
		}
		if err := a.refreshLaunch(); err != nil {
			return a, reportError(err)
		}
		return a, nil

	case views.LaunchMsg:
		a.launched = msg.Line
		return a, tea.Quit
	}

	// Delegate to current view's model
	return a.updateCurrentView(msg)
}

func (a App) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Typed text belongs to the filter.
	if a.filtering() {
		return a.updateCurrentView(msg)
	}

	switch {
	case a.keys.IsQuit(msg):
		return a, tea.Quit

	case a.keys.IsHelp(msg):
		a.showHelp = !a.showHelp
		return a, nil

	case a.showHelp && a.keys.IsCancel(msg):
		a.showHelp = false
		return a, nil
	}

	if v, ok := a.keys.Tab(msg, a.currentView); ok {
		return a.switchTo(v)
	}

	return a.updateCurrentView(msg)
}

func (a App) switchTo(v ViewType) (tea.Model, tea.Cmd) {
	a.currentView = v
	a.err = nil
	a.showHelp = false
	return a, nil
}

func (a App) filtering() bool {
	switch a.currentView {
	case ViewMaps:
		return a.maps.IsFilterFocused()
	case ViewDemos:
		return a.demos.IsFilterFocused()
	}
	return false
}

func (a App) updateCurrentView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		m   tea.Model
		cmd tea.Cmd
	)

	switch a.currentView {
	case ViewMods:
		m, cmd = a.mods.Update(msg)
		a.mods = m.(views.ModSelect)
	case ViewMaps:
		m, cmd = a.maps.Update(msg)
		a.maps = m.(views.ResourceList)
	case ViewDemos:
		m, cmd = a.demos.Update(msg)
		a.demos = m.(views.ResourceList)
	case ViewLaunch:
		m, cmd = a.launch.Update(msg)
		a.launch = m.(views.Launch)
	}

	return a, cmd
}

// broadcast sends msg to every view.
func (a *App) broadcast(msg tea.Msg) {
	m, _ := a.mods.Update(msg)
	a.mods = m.(views.ModSelect)
	m, _ = a.maps.Update(msg)
	a.maps = m.(views.ResourceList)
	m, _ = a.demos.Update(msg)
	a.demos = m.(views.ResourceList)
	m, _ = a.launch.Update(msg)
	a.launch = m.(views.Launch)
}

// View implements tea.Model
func (a App) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		MarginBottom(1)

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	activeTabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	title := "qlaunch"
	if a.gameTitle != "" {
		title += " - " + a.gameTitle
	}
	header := titleStyle.Render(title)

	tabs := []string{"[1]Mods", "[2]Maps", "[3]Demos", "[4]Launch"}
	tabBar := ""
	for i, tab := range tabs {
		if ViewType(i) == a.currentView {
			tabBar += activeTabStyle.Render(tab) + "  "
		} else {
			tabBar += tabStyle.Render(tab) + "  "
		}
	}

	content := a.renderCurrentView()
	if a.showHelp {
		content = a.keys.FullHelp()
	}

	if a.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		content = errStyle.Render(fmt.Sprintf("Error: %v", a.err))
	}

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		MarginTop(1)
	footer := footerStyle.Render("q: quit  ?: help")

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", header, tabBar, content, footer)
}

func (a App) renderCurrentView() string {
	if a.gameTitle == "" {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Render(`No game selected.

Browse an installation with:
  qlaunch browse --path /path/to/quake

or find Steam installations with:
  qlaunch detect`)
	}

	switch a.currentView {
	case ViewMods:
		return a.mods.View()
	case ViewMaps:
		return a.maps.View()
	case ViewDemos:
		return a.demos.View()
	case ViewLaunch:
		return a.launch.View()
	default:
		return "Unknown view"
	}
}

// Run starts the TUI and returns the command line the user launched with,
// or "" when the user quit.
func Run(service *core.Service) (string, error) {
	app := NewApp(service)
	p := tea.NewProgram(app, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	if app, ok := final.(App); ok {
		return app.CommandLine(), nil
	}
	return "", nil
}
