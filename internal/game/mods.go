package game

import (
	"os"
	"path/filepath"

	"qlaunch/internal/domain"
)

// maxModDepth bounds how deep GetMods looks for mods inside container folders.
const maxModDepth = 8

// GetMods lists the mod folders of the installation. Official variants and
// folders holding the mod marker are listed without looking inside them;
// folders without maps are searched for nested mods.
func (h *Handler) GetMods() []domain.ModItem {
	var result []domain.ModItem
	h.walkMods(h.gamePath, 0, make(map[string]bool), &result)
	return result
}

func (h *Handler) walkMods(dir string, depth int, visited map[string]bool, result *[]domain.ModItem) {
	if real, err := filepath.EvalSymlinks(dir); err == nil {
		if visited[real] {
			h.log.Debug("skipping already visited folder", "path", dir, "target", real)
			return
		}
		visited[real] = true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		h.log.Debug("listing mods", "path", dir, "error", err)
		return
	}
	for _, e := range entries {
		folder := filepath.Join(dir, e.Name())
		if !isDir(folder) {
			continue
		}
		name := h.ModName(folder)

		if _, ok := h.BaseGame(name); ok {
			*result = append(*result, domain.ModItem{Name: name, Path: folder, Official: true})
			continue
		}

		if h.hasModMarker(folder) {
			*result = append(*result, domain.ModItem{Name: name, Path: folder})
			continue
		}

		if !h.containsMaps(folder) {
			if depth+1 < maxModDepth {
				h.walkMods(folder, depth+1, visited, result)
			}
			continue
		}

		*result = append(*result, domain.ModItem{Name: name, Path: folder})
	}
}

func (h *Handler) hasModMarker(folder string) bool {
	if h.def.ModMarker == "" {
		return false
	}
	for _, b := range h.backends {
		if b.ContainsFile(folder, h.def.ModMarker) {
			return true
		}
	}
	return false
}

func (h *Handler) containsMaps(folder string) bool {
	scan := h.scanner(nil, "")
	for _, b := range h.backends {
		if b.ContainsMaps(folder, scan) {
			return true
		}
	}
	return false
}

// FindMod returns the mod with the given name, ignoring case.
func (h *Handler) FindMod(name string) (domain.ModItem, error) {
	key := domain.Key(filepath.ToSlash(name))
	for _, m := range h.GetMods() {
		if domain.Key(m.Name) == key {
			return m, nil
		}
	}
	return domain.ModItem{}, domain.ErrModNotFound
}
