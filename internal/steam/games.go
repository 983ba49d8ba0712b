package steam

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed data/steam-games.yaml
var defaultSteamGamesFS embed.FS

const defaultSteamGamesPath = "data/steam-games.yaml"

// KnownGame is a supported game sold on Steam.
type KnownGame struct {
	Name        string   `yaml:"name"`
	ContentDirs []string `yaml:"content_dirs"` // Folders under the install dir to probe, "" for the install dir
}

// LoadKnownGames returns the Steam App ID -> game map. The embedded list is
// merged with configDir/steam-games.yaml when present, so entries can be
// added or overridden without rebuilding.
func LoadKnownGames(configDir string) (map[string]KnownGame, error) {
	data, err := defaultSteamGamesFS.ReadFile(defaultSteamGamesPath)
	if err != nil {
		return nil, fmt.Errorf("reading embedded steam-games: %w", err)
	}
	out := make(map[string]KnownGame)
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parsing embedded steam-games: %w", err)
	}

	overridePath := filepath.Join(configDir, "steam-games.yaml")
	overrideData, err := os.ReadFile(overridePath)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return nil, fmt.Errorf("reading %s: %w", overridePath, err)
	}
	var override map[string]KnownGame
	if err := yaml.Unmarshal(overrideData, &override); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", overridePath, err)
	}
	for appID, g := range override {
		out[appID] = g
	}
	return out, nil
}

// dirs returns the content folders to probe, defaulting to the install dir.
func (g KnownGame) dirs() []string {
	if len(g.ContentDirs) == 0 {
		return []string{""}
	}
	return g.ContentDirs
}
