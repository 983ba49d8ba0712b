package reader

import (
	"os"
	"path/filepath"
	"strings"

	"qlaunch/internal/domain"

	"github.com/charmbracelet/log"
)

// Folder reads loose files under a mod folder.
type Folder struct {
	Log *log.Logger
}

func (Folder) Kind() domain.ResourceType { return domain.ResourceFolder }

// mapsDir returns the mod's maps folder, matching its name case-insensitively.
func mapsDir(dir string) (string, string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", "", false
	}
	for _, e := range entries {
		if e.IsDir() && strings.EqualFold(e.Name(), "maps") {
			return filepath.Join(dir, e.Name()), e.Name(), true
		}
	}
	return "", "", false
}

func (f Folder) GetMaps(dir string, maps domain.MapList, c Classifier, info MapInfoFunc) {
	path, name, ok := mapsDir(dir)
	if !ok {
		return
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		orDiscard(f.Log).Debug("reading maps folder", "path", path, "error", err)
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		entry := name + "/" + e.Name()
		if !c.EntryIsMap(entry, maps) {
			continue
		}
		full := filepath.Join(path, e.Name())
		if info == nil {
			maps.Add(newMapItem(f.Log, entry, full, domain.ResourceFolder, nil, nil))
			continue
		}
		file, err := os.Open(full)
		if err != nil {
			orDiscard(f.Log).Debug("opening map", "path", full, "error", err)
			maps.Add(newMapItem(f.Log, entry, full, domain.ResourceFolder, nil, nil))
			continue
		}
		maps.Add(newMapItem(f.Log, entry, full, domain.ResourceFolder, file, info))
		file.Close()
	}
}

func (Folder) ContainsMaps(dir string, c Classifier) bool {
	path, name, ok := mapsDir(dir)
	if !ok {
		return false
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return false
	}
	empty := domain.MapList{}
	for _, e := range entries {
		if !e.IsDir() && c.EntryIsMap(name+"/"+e.Name(), empty) {
			return true
		}
	}
	return false
}

func (Folder) ContainsFile(dir, filename string) bool {
	info, err := os.Stat(filepath.Join(dir, filename))
	return err == nil && info.Mode().IsRegular()
}

func (f Folder) GetDemos(dir, demosFolder string, c Classifier) []domain.DemoItem {
	root := filepath.Join(dir, demosFolder)
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}
	var demos []domain.DemoItem
	for _, e := range entries {
		if e.IsDir() || !c.IsDemoFile(e.Name()) {
			continue
		}
		full := filepath.Join(root, e.Name())
		file, err := os.Open(full)
		if err != nil {
			orDiscard(f.Log).Debug("opening demo", "path", full, "error", err)
			demos = append(demos, c.ResolveDemo(e.Name(), nil, domain.ResourceFolder))
			continue
		}
		demos = append(demos, c.ResolveDemo(e.Name(), file, domain.ResourceFolder))
		file.Close()
	}
	return demos
}
