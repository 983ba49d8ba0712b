package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Keybinding modes accepted in the config.
const (
	ModeVim      = "vim"
	ModeStandard = "standard"
)

// tabKeys maps the digit keys to the browser tabs.
var tabKeys = map[string]ViewType{
	"1": ViewMods,
	"2": ViewMaps,
	"3": ViewDemos,
	"4": ViewLaunch,
}

// KeyMap decides which keys drive the browser. Arrow keys always work;
// vim mode adds the letter keys on top.
type KeyMap struct {
	mode string
}

// NewKeyMap creates a keymap for the given mode. An empty mode means vim.
func NewKeyMap(mode string) *KeyMap {
	if mode == "" {
		mode = ModeVim
	}
	return &KeyMap{mode: mode}
}

// Mode returns the current keybinding mode
func (k *KeyMap) Mode() string {
	return k.mode
}

func (k *KeyMap) vim() bool { return k.mode == ModeVim }

// either matches a fixed key, or its letter alternative in vim mode.
func (k *KeyMap) either(msg tea.KeyMsg, fixed tea.KeyType, letter string) bool {
	return msg.Type == fixed || (k.vim() && msg.String() == letter)
}

func (k *KeyMap) IsUp(msg tea.KeyMsg) bool    { return k.either(msg, tea.KeyUp, "k") }
func (k *KeyMap) IsDown(msg tea.KeyMsg) bool  { return k.either(msg, tea.KeyDown, "j") }
func (k *KeyMap) IsLeft(msg tea.KeyMsg) bool  { return k.either(msg, tea.KeyLeft, "h") }
func (k *KeyMap) IsRight(msg tea.KeyMsg) bool { return k.either(msg, tea.KeyRight, "l") }
func (k *KeyMap) IsHome(msg tea.KeyMsg) bool  { return k.either(msg, tea.KeyHome, "g") }
func (k *KeyMap) IsEnd(msg tea.KeyMsg) bool   { return k.either(msg, tea.KeyEnd, "G") }

// IsConfirm matches Enter and space: choose a mod, map or demo, or launch.
func (k *KeyMap) IsConfirm(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyEnter || msg.String() == " "
}

// IsCancel matches Esc, which closes help or clears the filter.
func (k *KeyMap) IsCancel(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyEsc
}

func (k *KeyMap) IsQuit(msg tea.KeyMsg) bool {
	return msg.String() == "q" || msg.Type == tea.KeyCtrlC
}

// IsSearch focuses the map or demo filter.
func (k *KeyMap) IsSearch(msg tea.KeyMsg) bool {
	return msg.String() == "/"
}

func (k *KeyMap) IsHelp(msg tea.KeyMsg) bool {
	return msg.String() == "?"
}

// IsRandom picks a random map of the current mod.
func (k *KeyMap) IsRandom(msg tea.KeyMsg) bool {
	return msg.String() == "r"
}

// Tab returns the tab a key jumps to. Digits pick a tab directly; Tab and
// Shift+Tab cycle from current.
func (k *KeyMap) Tab(msg tea.KeyMsg, current ViewType) (ViewType, bool) {
	if v, ok := tabKeys[msg.String()]; ok {
		return v, true
	}
	n := ViewType(len(tabKeys))
	switch msg.Type {
	case tea.KeyTab:
		return (current + 1) % n, true
	case tea.KeyShiftTab:
		return (current + n - 1) % n, true
	}
	return current, false
}

// NavigationHelp returns the one-line hint shown under lists
func (k *KeyMap) NavigationHelp() string {
	if k.vim() {
		return "j/k: navigate  h/l: change"
	}
	return "↑/↓: navigate  ←/→: change"
}

// FullHelp returns the help overlay text
func (k *KeyMap) FullHelp() string {
	nav := `  ↑/↓     Move up/down
  ←/→     Change value (in launch)
  Home    Go to first item
  End     Go to last item`
	if k.vim() {
		nav = `  j/k     Move down/up
  h/l     Change value (in launch)
  g/G     Go to first/last item`
	}

	return "Navigation:\n" + nav + `
  1-4     Switch tab
  tab     Next tab (shift+tab: previous)

Actions:
  enter   Select/Confirm
  /       Filter maps and demos
  r       Random map
  ?       Help
  q       Quit`
}
