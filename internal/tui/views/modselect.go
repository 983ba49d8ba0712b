package views

import (
	"fmt"
	"strings"

	"qlaunch/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ModSelectedMsg is sent when a mod is chosen
type ModSelectedMsg struct {
	Mod domain.ModItem
}

// ModSelect is the mod selection view
type ModSelect struct {
	mods     []domain.ModItem
	titles   map[string]string // Official variant titles by mod name
	current  string
	selected int
	keys     Keys
	width    int
	height   int
}

// NewModSelect creates a mod selection view. titles names the official
// variants among mods.
func NewModSelect(mods []domain.ModItem, titles map[string]string, keys Keys) ModSelect {
	return ModSelect{
		mods:   mods,
		titles: titles,
		keys:   keys,
		width:  80,
		height: 24,
	}
}

// WithCurrent marks the mod in use and moves the cursor to it.
func (m ModSelect) WithCurrent(name string) ModSelect {
	m.current = name
	for i, mod := range m.mods {
		if strings.EqualFold(mod.Name, name) {
			m.selected = i
			break
		}
	}
	return m
}

// Selected returns the currently selected index
func (m ModSelect) Selected() int {
	return m.selected
}

// SelectedMod returns the mod under the cursor
func (m ModSelect) SelectedMod() *domain.ModItem {
	if len(m.mods) == 0 || m.selected >= len(m.mods) {
		return nil
	}
	return &m.mods[m.selected]
}

// Init implements tea.Model
func (m ModSelect) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m ModSelect) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m ModSelect) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if sel, ok := cursor(m.keys, msg, m.selected, len(m.mods)); ok {
		m.selected = sel
		return m, nil
	}

	if m.keys.IsConfirm(msg) {
		if mod := m.SelectedMod(); mod != nil {
			chosen := *mod
			m.current = chosen.Name
			return m, func() tea.Msg {
				return ModSelectedMsg{Mod: chosen}
			}
		}
	}

	return m, nil
}

// View implements tea.Model
func (m ModSelect) View() string {
	if len(m.mods) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Render("No mods found.")
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("69")).
		MarginBottom(1)

	itemStyle := lipgloss.NewStyle().
		PaddingLeft(2)

	selectedStyle := lipgloss.NewStyle().
		PaddingLeft(2).
		Foreground(lipgloss.Color("205")).
		Bold(true)

	detailStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		PaddingLeft(4)

	officialStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("82"))

	output := titleStyle.Render("Select a Mod") + "\n\n"

	for i, mod := range m.mods {
		pointer := "  "
		style := itemStyle
		if i == m.selected {
			pointer = "▸ "
			style = selectedStyle
		}

		line := pointer + mod.Name
		if strings.EqualFold(mod.Name, m.current) {
			line += " ✓"
		}
		if title, ok := m.titles[mod.Name]; ok {
			line += "  " + officialStyle.Render(title)
		}
		output += style.Render(line) + "\n"

		if i == m.selected {
			output += detailStyle.Render(fmt.Sprintf("Path: %s", mod.Path)) + "\n\n"
		}
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		MarginTop(1)
	output += helpStyle.Render(m.keys.NavigationHelp() + "  enter: select")

	return output
}
