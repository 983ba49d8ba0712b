// Package reader enumerates maps and demos stored in a mod folder, in PAK
// archives and in PK3 (zip) archives, and decodes the map and demo headers
// needed to title them.
package reader

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"qlaunch/internal/domain"

	"github.com/charmbracelet/log"
)

// MapInfoFunc reads the display title of a map resource.
type MapInfoFunc func(name string, r io.ReadSeeker) (string, error)

// DemoInfoFunc reads the header of a demo resource.
type DemoInfoFunc func(name string, r io.ReadSeeker) (*domain.DemoInfo, error)

// Classifier holds the per-game rules the backends consult while scanning.
type Classifier interface {
	// EntryIsMap reports whether path ("maps/e1m1.bsp") is a map not yet in maps.
	EntryIsMap(path string, maps domain.MapList) bool
	// IsDemoFile reports whether path has a supported demo extension.
	IsDemoFile(path string) bool
	// ResolveDemo reads and validates a demo. It never fails: problems are
	// reported on the returned item.
	ResolveDemo(relPath string, r io.ReadSeeker, kind domain.ResourceType) domain.DemoItem
}

// Backend enumerates resources of one storage kind.
type Backend interface {
	Kind() domain.ResourceType
	// GetMaps adds maps found under dir to maps. info may be nil to skip title resolution.
	GetMaps(dir string, maps domain.MapList, c Classifier, info MapInfoFunc)
	ContainsMaps(dir string, c Classifier) bool
	ContainsFile(dir, filename string) bool
	GetDemos(dir, demosFolder string, c Classifier) []domain.DemoItem
}

var discard = log.New(io.Discard)

// Backends returns the folder, PAK and PK3 backends in lookup order.
// Read failures are logged to logger at debug level; nil discards them.
func Backends(logger *log.Logger) []Backend {
	return []Backend{Folder{Log: logger}, PAK{Log: logger}, PK3{Log: logger}}
}

func orDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return discard
	}
	return l
}

// archivesIn returns the files in dir with the given extension, in natural order
// so pak0 is read before pak1 and pak10.
func archivesIn(dir, ext string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ext) {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	sort.Slice(out, func(i, j int) bool {
		return domain.CompareNatural(filepath.Base(out[i]), filepath.Base(out[j])) < 0
	})
	return out
}

// mapName returns "e1m1" for "maps/e1m1.bsp".
func mapName(entry string) string {
	base := filepath.Base(filepath.FromSlash(entry))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// demoRelPath returns entry relative to demosFolder, or false when entry lies outside it.
func demoRelPath(entry, demosFolder string) (string, bool) {
	entry = filepath.ToSlash(entry)
	if demosFolder == "" {
		return entry, true
	}
	prefix := strings.TrimSuffix(filepath.ToSlash(demosFolder), "/") + "/"
	if len(entry) <= len(prefix) || !strings.EqualFold(entry[:len(prefix)], prefix) {
		return "", false
	}
	return entry[len(prefix):], true
}

// newMapItem builds a map entry, resolving its title when info is set.
func newMapItem(l *log.Logger, entry, path string, kind domain.ResourceType, r io.ReadSeeker, info MapInfoFunc) domain.MapItem {
	name := mapName(entry)
	m := domain.MapItem{Name: name, Title: name, Kind: kind, Path: path}
	if info == nil || r == nil {
		return m
	}
	title, err := info(name, r)
	if err != nil {
		orDiscard(l).Debug("reading map title", "map", entry, "path", path, "error", err)
		return m
	}
	if title != "" {
		m.Title = title
	}
	return m
}
