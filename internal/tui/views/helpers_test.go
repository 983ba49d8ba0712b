package views_test

import (
	"qlaunch/internal/tui"
	"qlaunch/internal/tui/views"

	tea "github.com/charmbracelet/bubbletea"
)

func vimKeys() views.Keys {
	return tui.NewKeyMap("vim")
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
