package views

import (
	"fmt"
	"strings"

	"qlaunch/internal/domain"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Entry is one row of a ResourceList.
type Entry struct {
	Value  string // Launch value, e.g. a map name or demo path
	Label  string
	Detail string // Title, or a warning when Warn is set
	Warn   bool   // Listed but cannot be launched
}

// EntriesMsg replaces the entries of the list of the same kind
type EntriesMsg struct {
	Kind    domain.ItemType
	Mod     string
	Entries []Entry
}

// ResourceChosenMsg is sent when an entry is chosen for launching
type ResourceChosenMsg struct {
	Kind  domain.ItemType
	Value string
}

// RandomRequestMsg asks for a random entry of the given kind
type RandomRequestMsg struct {
	Kind domain.ItemType
}

// ResourceList is a filterable list of maps or demos.
type ResourceList struct {
	kind          domain.ItemType
	title         string
	mod           string
	entries       []Entry
	visible       []int // Indexes of entries matching the filter
	current       string
	selected      int
	filterInput   textinput.Model
	filterFocused bool
	keys          Keys
	width         int
	height        int
}

// NewResourceList creates an empty list of the given kind.
func NewResourceList(kind domain.ItemType, title string, keys Keys) ResourceList {
	ti := textinput.New()
	ti.Placeholder = "Filter..."
	ti.CharLimit = 64
	ti.Width = 40

	return ResourceList{
		kind:        kind,
		title:       title,
		filterInput: ti,
		keys:        keys,
		width:       80,
		height:      24,
	}
}

// Kind returns the launch parameter the list chooses
func (r ResourceList) Kind() domain.ItemType {
	return r.kind
}

// WithCurrent marks the entry in use.
func (r ResourceList) WithCurrent(value string) ResourceList {
	r.current = value
	return r
}

// Filter returns the current filter text
func (r ResourceList) Filter() string {
	return r.filterInput.Value()
}

// IsFilterFocused returns whether the filter input has the keyboard
func (r ResourceList) IsFilterFocused() bool {
	return r.filterFocused
}

// Count returns the number of entries matching the filter
func (r ResourceList) Count() int {
	return len(r.visible)
}

// Selected returns the cursor position among the visible entries
func (r ResourceList) Selected() int {
	return r.selected
}

// SelectedEntry returns the entry under the cursor
func (r ResourceList) SelectedEntry() *Entry {
	if len(r.visible) == 0 || r.selected >= len(r.visible) {
		return nil
	}
	return &r.entries[r.visible[r.selected]]
}

// Init implements tea.Model
func (r ResourceList) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (r ResourceList) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return r.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		return r, nil

	case EntriesMsg:
		if msg.Kind != r.kind {
			return r, nil
		}
		r.mod = msg.Mod
		r.entries = msg.Entries
		r.selected = 0
		r.applyFilter()
		return r, nil
	}

	if r.filterFocused {
		var cmd tea.Cmd
		r.filterInput, cmd = r.filterInput.Update(msg)
		return r, cmd
	}
	return r, nil
}

func (r ResourceList) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if r.filterFocused {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			r.filterFocused = false
			r.filterInput.Blur()
			return r, nil
		}
		var cmd tea.Cmd
		r.filterInput, cmd = r.filterInput.Update(msg)
		r.applyFilter()
		return r, cmd
	}

	if sel, ok := cursor(r.keys, msg, r.selected, len(r.visible)); ok {
		r.selected = sel
		return r, nil
	}

	switch {
	case r.keys.IsSearch(msg):
		r.filterFocused = true
		return r, r.filterInput.Focus()

	case r.keys.IsCancel(msg):
		if r.filterInput.Value() != "" {
			r.filterInput.SetValue("")
			r.applyFilter()
		}
		return r, nil

	case r.keys.IsRandom(msg):
		if r.kind != domain.ItemMap {
			return r, nil
		}
		kind := r.kind
		return r, func() tea.Msg {
			return RandomRequestMsg{Kind: kind}
		}

	case r.keys.IsConfirm(msg):
		e := r.SelectedEntry()
		if e == nil || e.Warn {
			return r, nil
		}
		chosen := ResourceChosenMsg{Kind: r.kind, Value: e.Value}
		r.current = e.Value
		return r, func() tea.Msg {
			return chosen
		}
	}

	return r, nil
}

// applyFilter recomputes the visible entries, matching the filter against
// labels and details regardless of case.
func (r *ResourceList) applyFilter() {
	query := domain.Key(strings.TrimSpace(r.filterInput.Value()))
	r.visible = make([]int, 0, len(r.entries))
	for i, e := range r.entries {
		if query == "" || strings.Contains(domain.Key(e.Label), query) || strings.Contains(domain.Key(e.Detail), query) {
			r.visible = append(r.visible, i)
		}
	}
	if r.selected >= len(r.visible) {
		r.selected = max(len(r.visible)-1, 0)
	}
}

// View implements tea.Model
func (r ResourceList) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("69")).
		MarginBottom(1)

	modStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	itemStyle := lipgloss.NewStyle().
		PaddingLeft(2)

	selectedStyle := lipgloss.NewStyle().
		PaddingLeft(2).
		Foreground(lipgloss.Color("205")).
		Bold(true)

	detailStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	warnStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214"))

	output := titleStyle.Render(r.title) + "\n"
	if r.mod != "" {
		output += modStyle.Render(fmt.Sprintf("Mod: %s", r.mod)) + "\n"
	}
	output += "\n"

	filterLabel := "Filter: "
	if r.filterFocused {
		filterLabel = "Filter (enter/esc to close): "
	}
	output += filterLabel + r.filterInput.View() + "\n\n"

	if len(r.visible) == 0 {
		if r.Filter() != "" {
			output += itemStyle.Render("Nothing matches.") + "\n"
		} else {
			output += itemStyle.Render(fmt.Sprintf("No %ss found.", r.kind)) + "\n"
		}
	}

	// Keep the cursor on screen: header, filter and footer take about ten lines.
	rows := max(r.height-10, 5)
	start := 0
	if r.selected >= rows {
		start = r.selected - rows + 1
	}
	end := min(start+rows, len(r.visible))

	for i := start; i < end; i++ {
		e := r.entries[r.visible[i]]
		pointer := "  "
		style := itemStyle
		if i == r.selected {
			pointer = "▸ "
			style = selectedStyle
		}

		line := pointer + e.Label
		if e.Value == r.current {
			line += " ✓"
		}
		detail := detailStyle.Render(e.Detail)
		if e.Warn {
			detail = warnStyle.Render("⚠ " + e.Detail)
		}
		output += style.Render(line) + "  " + detail + "\n"
	}
	if len(r.visible) > rows {
		output += modStyle.Render(fmt.Sprintf("  %d of %d", r.selected+1, len(r.visible))) + "\n"
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		MarginTop(1)
	help := "/: filter  " + r.keys.NavigationHelp() + "  enter: select"
	if r.kind == domain.ItemMap {
		help += "  r: random"
	}
	output += helpStyle.Render(help)

	return output
}
