package views

import (
	"fmt"
	"strings"

	"qlaunch/internal/core"
	"qlaunch/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Setting is one launch parameter with the values it can take.
type Setting struct {
	Kind    domain.ItemType
	Name    string
	Options []domain.Option
	Current int
}

// SelectionChangedMsg is sent when a launch parameter is changed. An empty
// Value means the game's default.
type SelectionChangedMsg struct {
	Kind  domain.ItemType
	Value string
}

// CommandLineMsg carries the command line built from the current selections
type CommandLineMsg struct {
	Line string
}

// LaunchMsg is sent when the user accepts the command line
type LaunchMsg struct {
	Line string
}

// Launch shows the launch parameters and the resulting command line.
type Launch struct {
	settings    []Setting
	summary     []string // Read-only lines, e.g. the chosen mod and map
	commandLine string
	selected    int
	keys        Keys
	width       int
	height      int
}

// NewLaunch creates the launch view. Settings without options are dropped.
func NewLaunch(settings []Setting, keys Keys) Launch {
	kept := make([]Setting, 0, len(settings))
	for _, s := range settings {
		if len(s.Options) > 0 {
			kept = append(kept, s)
		}
	}
	return Launch{
		settings: kept,
		keys:     keys,
		width:    80,
		height:   24,
	}
}

// WithSummary sets the read-only lines shown above the settings.
func (l Launch) WithSummary(lines ...string) Launch {
	l.summary = lines
	return l
}

// Selected returns the currently selected setting index
func (l Launch) Selected() int {
	return l.selected
}

// Settings returns the launch parameters with their current values
func (l Launch) Settings() []Setting {
	return l.settings
}

// CommandLine returns the last command line received
func (l Launch) CommandLine() string {
	return l.commandLine
}

// Init implements tea.Model
func (l Launch) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (l Launch) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return l.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		l.width = msg.Width
		l.height = msg.Height
		return l, nil

	case CommandLineMsg:
		l.commandLine = msg.Line
		return l, nil
	}

	return l, nil
}

func (l Launch) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if l.keys.IsConfirm(msg) {
		if l.commandLine == "" {
			return l, nil
		}
		line := l.commandLine
		return l, func() tea.Msg {
			return LaunchMsg{Line: line}
		}
	}

	if len(l.settings) == 0 {
		return l, nil
	}
	if sel, ok := cursor(l.keys, msg, l.selected, len(l.settings)); ok {
		l.selected = sel
		return l, nil
	}

	switch {
	case l.keys.IsRight(msg):
		return l.cycle(1)
	case l.keys.IsLeft(msg):
		return l.cycle(-1)
	}

	return l, nil
}

func (l Launch) cycle(step int) (tea.Model, tea.Cmd) {
	// Copy so earlier models keep their values.
	l.settings = append([]Setting(nil), l.settings...)
	s := &l.settings[l.selected]
	n := len(s.Options)
	s.Current = ((s.Current+step)%n + n) % n

	changed := SelectionChangedMsg{Kind: s.Kind, Value: OptionValue(s.Options[s.Current])}
	return l, func() tea.Msg {
		return changed
	}
}

// OptionValue returns the value to remember for an option: empty for the
// default, core.RandomValue for the random entry.
func OptionValue(o domain.Option) string {
	switch {
	case o.Random:
		return core.RandomValue
	case o.IsSynthetic():
		return ""
	}
	return o.Value
}

// OptionIndex returns the index of the option remembered as value, or 0.
func OptionIndex(opts []domain.Option, value string) int {
	for i, o := range opts {
		if value != "" && strings.EqualFold(OptionValue(o), value) {
			return i
		}
	}
	return 0
}

// View implements tea.Model
func (l Launch) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("69")).
		MarginBottom(1)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	itemStyle := lipgloss.NewStyle().
		PaddingLeft(2)

	selectedStyle := lipgloss.NewStyle().
		PaddingLeft(2).
		Foreground(lipgloss.Color("205")).
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("82"))

	optionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	selectedOptionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	cmdStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("69")).
		Padding(0, 1)

	output := titleStyle.Render("Launch") + "\n\n"

	for _, line := range l.summary {
		output += summaryStyle.Render(line) + "\n"
	}
	if len(l.summary) > 0 {
		output += "\n"
	}

	for i, s := range l.settings {
		pointer := "  "
		style := itemStyle
		if i == l.selected {
			pointer = "▸ "
			style = selectedStyle
		}

		line := fmt.Sprintf("%s%s: %s", pointer, s.Name, valueStyle.Render(s.Options[s.Current].Label))
		output += style.Render(line) + "\n"

		if i == l.selected {
			optionsLine := "    Options: "
			for j, opt := range s.Options {
				if j == s.Current {
					optionsLine += selectedOptionStyle.Render("[" + opt.Label + "]")
				} else {
					optionsLine += optionStyle.Render(" " + opt.Label + " ")
				}
			}
			output += optionsLine + "\n"
		}
	}

	if l.commandLine != "" {
		width := max(l.width-4, 20)
		output += "\n" + cmdStyle.Width(width).Render(l.commandLine) + "\n"
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		MarginTop(1)
	output += helpStyle.Render(l.keys.NavigationHelp() + "  enter: launch")

	return output
}
