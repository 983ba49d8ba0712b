package game

import (
	"qlaunch/internal/domain"
	"qlaunch/internal/reader"
)

// Quake is the original Quake and its mission packs.
type Quake struct {
	titleTrimmer
}

func (*Quake) Title() string { return "Quake" }

func (*Quake) CanHandle(gamePath string) bool {
	return fileExists(gamePath, "id1/pak0.pak")
}

func (*Quake) Definition() Definition {
	return Definition{
		DefaultModPath:   "id1",
		IgnoredMapPrefix: "b_",
		MapExtension:     ".bsp",
		ModMarker:        "progs.dat",
		DemoExtensions:   []string{".dem", ".mvd", ".qwd"},
		BaseGames: []domain.GameItem{
			{Title: "Quake", Folder: "id1"},
			{Title: "Quoth", Folder: "quoth", Arg: "-quoth"},
			{Title: "Nehahra", Folder: "nehahra", Arg: "-nehahra"},
			{Title: "MP1: Scourge of Armagon", Folder: "hipnotic", Arg: "-hipnotic"},
			{Title: "MP2: Dissolution of Eternity", Folder: "rogue", Arg: "-rogue"},
		},
		Skills: []domain.Option{
			{Label: "Easy", Value: "0"},
			{Label: "Normal", Value: "1", Default: true},
			{Label: "Hard", Value: "2"},
			{Label: "Nightmare!", Value: "3"},
		},
		FullscreenArgs: map[bool]string{true: "", false: "-window "},
		LaunchParams: map[domain.ItemType]string{
			domain.ItemEngine:     "",
			domain.ItemResolution: "{2}-width {0} -height {1}",
			domain.ItemGame:       "{0}",
			domain.ItemMod:        "-game {0}",
			domain.ItemMap:        "+map {0}",
			domain.ItemSkill:      "+skill {0}",
			domain.ItemClass:      "",
			domain.ItemDemo:       "+playdemo {0}",
		},
		MapInfo:  reader.BSPTitle,
		DemoInfo: reader.QuakeDemoInfo,
	}
}
