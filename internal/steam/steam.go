// Package steam finds supported games installed through Steam.
package steam

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"qlaunch/internal/game"

	"github.com/charmbracelet/log"
)

// Install is a Steam game whose content folder was recognized.
type Install struct {
	AppID     string // Steam App ID
	Name      string // Name from the known games list
	GameTitle string // Title of the recognized game
	Path      string // Game path to select, e.g. .../common/Quake/rerelease
}

// Detector recognizes the game installed at a path.
type Detector interface {
	Detect(gamePath string) (game.Profile, error)
}

// FindSteamRoots returns candidate Steam installation roots in search order.
func FindSteamRoots() []string {
	home, _ := os.UserHomeDir()
	candidates := []string{
		filepath.Join(home, ".steam", "steam"),
		filepath.Join(home, ".local", "share", "Steam"),
		filepath.Join(home, ".var", "app", "com.valvesoftware.Steam", ".local", "share", "Steam"),
	}
	if p := os.Getenv("STEAM_ROOT"); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	var out []string
	seen := make(map[string]bool)
	for _, p := range candidates {
		if p == "" {
			continue
		}
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			continue
		}
		// ~/.steam/steam is usually a symlink to one of the others.
		if real, err := filepath.EvalSymlinks(p); err == nil {
			if seen[real] {
				continue
			}
			seen[real] = true
		}
		out = append(out, p)
	}
	return out
}

// GetLibraryPaths returns all Steam library paths of a Steam root, read from
// steamapps/libraryfolders.vdf.
func GetLibraryPaths(steamRoot string) ([]string, error) {
	f, err := os.Open(filepath.Join(steamRoot, "steamapps", "libraryfolders.vdf"))
	if err != nil {
		if os.IsNotExist(err) {
			// Single library: the steam root itself is the library
			return []string{steamRoot}, nil
		}
		return nil, fmt.Errorf("reading libraryfolders: %w", err)
	}
	defer f.Close()

	root, err := ParseVDF(f)
	if err != nil {
		return nil, fmt.Errorf("parsing libraryfolders: %w", err)
	}
	paths := libraryPaths(root)
	if len(paths) == 0 {
		return []string{steamRoot}, nil
	}
	return paths, nil
}

// Scanner looks for supported games in Steam libraries.
type Scanner struct {
	Roots    []string             // Steam roots, see FindSteamRoots
	Known    map[string]KnownGame // See LoadKnownGames
	Detector Detector
	Log      *log.Logger
}

// NewScanner returns a Scanner over the Steam roots of this machine.
func NewScanner(configDir string, d Detector, l *log.Logger) (*Scanner, error) {
	known, err := LoadKnownGames(configDir)
	if err != nil {
		return nil, err
	}
	return &Scanner{Roots: FindSteamRoots(), Known: known, Detector: d, Log: l}, nil
}

// Scan returns the recognized installs, one per distinct game path.
func (s *Scanner) Scan() []Install {
	logger := s.Log
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var found []Install
	seen := make(map[string]bool)
	for _, steamRoot := range s.Roots {
		libraries, err := GetLibraryPaths(steamRoot)
		if err != nil {
			logger.Debug("skipping steam root", "path", steamRoot, "error", err)
			continue
		}
		for _, lib := range libraries {
			for _, in := range s.scanLibrary(lib, logger) {
				if seen[in.Path] {
					continue
				}
				seen[in.Path] = true
				found = append(found, in)
			}
		}
	}
	return found
}

func (s *Scanner) scanLibrary(lib string, logger *log.Logger) []Install {
	steamapps := filepath.Join(lib, "steamapps")
	entries, err := os.ReadDir(steamapps)
	if err != nil {
		logger.Debug("skipping steam library", "path", lib, "error", err)
		return nil
	}

	var found []Install
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, "appmanifest_") || !strings.HasSuffix(name, ".acf") {
			continue
		}
		manifest, err := readManifest(filepath.Join(steamapps, name))
		if err != nil || manifest.AppID == "" || manifest.InstallDir == "" {
			logger.Debug("skipping app manifest", "file", name, "error", err)
			continue
		}
		known, ok := s.Known[manifest.AppID]
		if !ok {
			continue
		}
		installDir := filepath.Join(steamapps, "common", manifest.InstallDir)
		for _, dir := range known.dirs() {
			gamePath := filepath.Join(installDir, dir)
			p, err := s.Detector.Detect(gamePath)
			if err != nil {
				logger.Debug("steam content not recognized", "app", manifest.AppID, "path", gamePath)
				continue
			}
			found = append(found, Install{
				AppID:     manifest.AppID,
				Name:      known.Name,
				GameTitle: p.Title(),
				Path:      gamePath,
			})
			break
		}
	}
	return found
}

func readManifest(path string) (AppManifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return AppManifest{}, err
	}
	defer f.Close()
	return ParseAppManifest(f)
}
