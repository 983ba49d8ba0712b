package views

import tea "github.com/charmbracelet/bubbletea"

// Keys is the keymap the views navigate with.
type Keys interface {
	IsUp(tea.KeyMsg) bool
	IsDown(tea.KeyMsg) bool
	IsLeft(tea.KeyMsg) bool
	IsRight(tea.KeyMsg) bool
	IsHome(tea.KeyMsg) bool
	IsEnd(tea.KeyMsg) bool
	IsConfirm(tea.KeyMsg) bool
	IsCancel(tea.KeyMsg) bool
	IsSearch(tea.KeyMsg) bool
	IsRandom(tea.KeyMsg) bool
	NavigationHelp() string
}

// cursor moves an index over n entries, wrapping at both ends.
func cursor(keys Keys, msg tea.KeyMsg, selected, n int) (int, bool) {
	if n == 0 {
		return 0, false
	}
	switch {
	case keys.IsUp(msg):
		selected--
		if selected < 0 {
			selected = n - 1
		}
	case keys.IsDown(msg):
		selected++
		if selected >= n {
			selected = 0
		}
	case keys.IsHome(msg):
		selected = 0
	case keys.IsEnd(msg):
		selected = n - 1
	default:
		return selected, false
	}
	return selected, true
}
