package game

import (
	"qlaunch/internal/domain"
	"qlaunch/internal/reader"
)

// Quake2 is Quake II and its mission packs.
type Quake2 struct {
	titleTrimmer
}

func (*Quake2) Title() string { return "Quake II" }

func (*Quake2) CanHandle(gamePath string) bool {
	return fileExists(gamePath, "baseq2/pak0.pak")
}

func (*Quake2) Definition() Definition {
	return Definition{
		DefaultModPath: "baseq2",
		MapExtension:   ".bsp",
		ModMarker:      "gamex86.dll",
		DemoExtensions: []string{".dm2"},
		DemosFolder:    "demos",
		BaseGames: []domain.GameItem{
			{Title: "Quake II", Folder: "baseq2"},
			{Title: "MP1: The Reckoning", Folder: "xatrix", Arg: "+set game xatrix"},
			{Title: "MP2: Ground Zero", Folder: "rogue", Arg: "+set game rogue"},
		},
		Skills: []domain.Option{
			{Label: "Easy", Value: "0"},
			{Label: "Medium", Value: "1", Default: true},
			{Label: "Hard", Value: "2"},
			{Label: "Nightmare", Value: "3"},
		},
		FullscreenArgs: map[bool]string{true: "1", false: "0"},
		LaunchParams: map[domain.ItemType]string{
			domain.ItemEngine:     "",
			domain.ItemResolution: "+set r_mode -1 +set r_customwidth {0} +set r_customheight {1} +set vid_fullscreen {2}",
			domain.ItemGame:       "{0}",
			domain.ItemMod:        "+set game {0}",
			domain.ItemMap:        "+map {0}",
			domain.ItemSkill:      "+set skill {0}",
			domain.ItemClass:      "",
			domain.ItemDemo:       "+demomap {0}",
		},
		MapInfo:  reader.BSPTitle,
		DemoInfo: reader.Quake2DemoInfo,
	}
}
