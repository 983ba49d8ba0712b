package game

import (
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"qlaunch/internal/domain"
	"qlaunch/internal/reader"
)

const mapsFolder = "maps"

// EntryIsMap reports whether path ("maps/e1m1.bsp") is a playable map that
// is not already in maps.
func (h *Handler) EntryIsMap(p string, maps domain.MapList) bool {
	p = filepath.ToSlash(p)
	if !strings.EqualFold(path.Base(path.Dir(p)), mapsFolder) {
		return false
	}
	ext := path.Ext(p)
	if !strings.EqualFold(ext, h.def.MapExtension) {
		return false
	}
	name := strings.TrimSuffix(path.Base(p), ext)
	if prefix := h.def.IgnoredMapPrefix; prefix != "" && strings.HasPrefix(strings.ToLower(name), strings.ToLower(prefix)) {
		return false
	}
	return !maps.Has(name)
}

// IsDemoFile reports whether p has one of the game's demo extensions.
func (h *Handler) IsDemoFile(p string) bool {
	return h.demoExts[strings.ToLower(filepath.Ext(p))]
}

// CheckMapTitle normalizes a raw map or demo title using the game's hook.
func (h *Handler) CheckMapTitle(title string) string {
	return h.profile.CheckMapTitle(title)
}

// IsEngine reports whether filename is a game engine rather than the
// launcher itself or an uninstaller.
func IsEngine(filename string) bool {
	ext := filepath.Ext(filename)
	if !strings.EqualFold(ext, ".exe") {
		return false
	}
	if strings.EqualFold(strings.TrimSuffix(filename, ext), LauncherName) {
		return false
	}
	lower := strings.ToLower(filename)
	return !strings.HasPrefix(lower, "unins") && !strings.HasPrefix(lower, "unwise")
}

// GetEngines lists the engine executables at the game root.
func (h *Handler) GetEngines() []domain.EngineItem {
	entries, err := os.ReadDir(h.gamePath)
	if err != nil {
		h.log.Debug("listing engines", "path", h.gamePath, "error", err)
		return nil
	}
	var out []domain.EngineItem
	for _, e := range entries {
		if e.IsDir() || !IsEngine(e.Name()) {
			continue
		}
		out = append(out, domain.EngineItem{Name: e.Name(), Path: filepath.Join(h.gamePath, e.Name())})
	}
	return out
}

// scanner is the reader.Classifier for one scan. known and modName are only
// used to validate demos.
type scanner struct {
	*Handler
	known   domain.NameSet
	modName string
}

func (h *Handler) scanner(known domain.NameSet, modName string) *scanner {
	return &scanner{Handler: h, known: known, modName: modName}
}

var _ reader.Classifier = (*scanner)(nil)

// ResolveDemo reads a demo header and checks it against the known maps and
// the current mod. Problem demos are returned with a warning.
func (s *scanner) ResolveDemo(relPath string, r io.ReadSeeker, kind domain.ResourceType) domain.DemoItem {
	relPath = filepath.FromSlash(relPath)
	item := domain.DemoItem{Path: relPath, Kind: kind}
	if r == nil || s.def.DemoInfo == nil {
		item.Problem = domain.ProblemUnknownFormat
		return item
	}
	info, err := s.def.DemoInfo(relPath, r)
	if err != nil || info == nil {
		s.log.Debug("unreadable demo", "demo", relPath, "kind", kind, "error", err)
		item.Problem = domain.ProblemUnknownFormat
		return item
	}
	info.Title = s.CheckMapTitle(info.Title)
	if info.Title == "" {
		info.Title = info.MapName()
	}
	item.Info = info

	switch {
	case !s.known.Contains(info.MapName()):
		item.Problem = domain.ProblemMissingMap
	case info.ModName != "" && !strings.EqualFold(info.ModName, s.modName):
		item.Problem = domain.ProblemWrongLocation
	}
	return item
}
