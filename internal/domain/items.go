package domain

import (
	"path/filepath"
	"sort"
	"strings"
)

// MapItem is a playable map found in a mod folder or one of its archives.
type MapItem struct {
	Name  string       // Map name as passed to +map, e.g. "e1m1"
	Title string       // Worldspawn message, or Name when unresolved
	Kind  ResourceType // Backend that provided the map
	Path  string       // File or archive the map was read from
}

// MapList collects maps keyed by case-folded map name.
type MapList map[string]MapItem

// Has reports whether a map with the given name is already collected.
func (l MapList) Has(name string) bool {
	_, ok := l[Key(name)]
	return ok
}

// Add stores the map unless one with the same name exists. It reports whether the map was added.
func (l MapList) Add(m MapItem) bool {
	k := Key(m.Name)
	if _, ok := l[k]; ok {
		return false
	}
	l[k] = m
	return true
}

// Names returns the set of map names.
func (l MapList) Names() NameSet {
	s := make(NameSet, len(l))
	for k, m := range l {
		s[k] = m.Name
	}
	return s
}

// Items returns the collected maps in unspecified order.
func (l MapList) Items() []MapItem {
	out := make([]MapItem, 0, len(l))
	for _, m := range l {
		out = append(out, m)
	}
	return out
}

// NameSet is a case-insensitive set of names. Each entry keeps the
// spelling it was first added with.
type NameSet map[string]string

// Add inserts a name unless it is already present.
func (s NameSet) Add(name string) {
	k := Key(name)
	if _, ok := s[k]; !ok {
		s[k] = name
	}
}

// Contains reports whether name is present, ignoring case.
func (s NameSet) Contains(name string) bool {
	_, ok := s[Key(name)]
	return ok
}

// Union adds every name of other to s.
func (s NameSet) Union(other NameSet) {
	for k, name := range other {
		if _, ok := s[k]; !ok {
			s[k] = name
		}
	}
}

// Values returns the names with their original spelling, sorted.
func (s NameSet) Values() []string {
	out := make([]string, 0, len(s))
	for _, name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Problem marks a demo that could not be fully validated. Such demos are
// still listed so the user can see them.
type Problem int

const (
	ProblemNone Problem = iota
	ProblemUnknownFormat
	ProblemMissingMap
	ProblemWrongLocation
)

// DemoInfo is what a demo reader extracts from a demo file.
type DemoInfo struct {
	Title       string // Level title recorded in the demo
	MapFilePath string // e.g. "maps/e1m1.bsp"
	ModName     string // Game directory recorded in the demo, empty when unknown
}

// MapName returns the map name referenced by the demo.
func (i DemoInfo) MapName() string {
	base := filepath.Base(filepath.FromSlash(i.MapFilePath))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// DemoItem is a demo found in a mod folder or one of its archives.
type DemoItem struct {
	Path    string       // Demo path relative to the demos folder, as passed to the play command
	Kind    ResourceType // Backend that provided the demo
	Info    *DemoInfo    // Parsed header, nil when the format is unknown
	Problem Problem
}

// IsInvalid reports whether the demo carries a warning instead of a title.
func (d DemoItem) IsInvalid() bool {
	return d.Problem != ProblemNone
}

// Title returns the display title, or the warning text for problem demos.
func (d DemoItem) Title() string {
	switch d.Problem {
	case ProblemUnknownFormat:
		return "Unknown demo format"
	case ProblemMissingMap:
		return "Missing map file: '" + d.Info.MapFilePath + "'"
	case ProblemWrongLocation:
		return "Incorrect location: expected to be in '" + d.Info.ModName + "' folder"
	}
	if d.Info == nil {
		return "Unknown demo format"
	}
	return d.Info.Title
}

// DedupKey identifies a demo across backends.
func (d DemoItem) DedupKey() string {
	return filepath.Base(d.Path) + d.Title()
}

// ModItem is a folder that can be passed to the engine as a game directory.
type ModItem struct {
	Name     string // Path relative to the game path, e.g. "rogue" or "mods/ad"
	Path     string // Absolute folder path
	Official bool   // True for the base game and official mission packs
}

// EngineItem is a runnable engine executable at the game root.
type EngineItem struct {
	Name string // File name
	Path string // Absolute path
}
