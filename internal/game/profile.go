package game

import (
	"strings"

	"qlaunch/internal/domain"
	"qlaunch/internal/reader"
)

// Profile describes one supported game. A Profile only knows static facts
// about its game; the Handler built from it does the scanning.
type Profile interface {
	// Title is the game's display name.
	Title() string
	// CanHandle reports whether gamePath holds an installation of this game.
	CanHandle(gamePath string) bool
	// Definition returns the game's layout and launch conventions.
	Definition() Definition
	// CheckMapTitle normalizes a title read from a map or demo.
	CheckMapTitle(title string) string
}

// Definition is the static metadata of a game.
type Definition struct {
	DefaultModPath   string   // Base content folder, e.g. "id1"
	IgnoredMapPrefix string   // Maps whose name starts with this are not playable, e.g. "b_"
	MapExtension     string   // e.g. ".bsp"
	ModMarker        string   // File whose presence makes a folder a mod, e.g. "progs.dat"
	DemoExtensions   []string // e.g. ".dem"
	DemosFolder      string   // Folder demos are read from, relative to the mod folder

	BaseGames []domain.GameItem
	Skills    []domain.Option
	Classes   []domain.Option

	FullscreenArgs map[bool]string            // Fragment substituted into the resolution template
	LaunchParams   map[domain.ItemType]string // Templates with positional {N} placeholders

	MapInfo  reader.MapInfoFunc
	DemoInfo reader.DemoInfoFunc
}

// titleTrimmer provides the default title hook.
type titleTrimmer struct{}

func (titleTrimmer) CheckMapTitle(title string) string {
	return strings.TrimSpace(title)
}
