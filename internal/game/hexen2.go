package game

import (
	"strings"

	"qlaunch/internal/domain"
	"qlaunch/internal/reader"
)

// Hexen2 is Hexen II and its mission pack.
type Hexen2 struct{}

func (*Hexen2) Title() string { return "Hexen II" }

func (*Hexen2) CanHandle(gamePath string) bool {
	return fileExists(gamePath, "data1/pak0.pak")
}

// CheckMapTitle collapses the line breaks Hexen II level titles often carry,
// both real ones and escaped `\n` sequences.
func (*Hexen2) CheckMapTitle(title string) string {
	title = strings.ReplaceAll(title, `\n`, " ")
	return strings.Join(strings.Fields(title), " ")
}

func (*Hexen2) Definition() Definition {
	return Definition{
		DefaultModPath: "data1",
		MapExtension:   ".bsp",
		ModMarker:      "progs.dat",
		DemoExtensions: []string{".dem"},
		BaseGames: []domain.GameItem{
			{Title: "Hexen II", Folder: "data1"},
			{Title: "Portal of Praevus", Folder: "portals", Arg: "-portals"},
		},
		Skills: []domain.Option{
			{Label: "Easy", Value: "0"},
			{Label: "Medium", Value: "1", Default: true},
			{Label: "Hard", Value: "2"},
			{Label: "Very Hard", Value: "3"},
		},
		Classes: []domain.Option{
			{Label: "Paladin", Value: "1"},
			{Label: "Crusader", Value: "2"},
			{Label: "Necromancer", Value: "3", Default: true},
			{Label: "Assassin", Value: "4"},
			{Label: "Demoness", Value: "5"},
		},
		FullscreenArgs: map[bool]string{true: "", false: "-window "},
		LaunchParams: map[domain.ItemType]string{
			domain.ItemEngine:     "",
			domain.ItemResolution: "{2}-width {0} -height {1}",
			domain.ItemGame:       "{0}",
			domain.ItemMod:        "-game {0}",
			domain.ItemMap:        "+map {0}",
			domain.ItemSkill:      "+skill {0}",
			domain.ItemClass:      "+playerclass {0}",
			domain.ItemDemo:       "+playdemo {0}",
		},
		MapInfo:  reader.BSPTitle,
		DemoInfo: reader.QuakeDemoInfo,
	}
}
