package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapList_FirstAddWins(t *testing.T) {
	l := MapList{}

	assert.True(t, l.Add(MapItem{Name: "E1M1", Kind: ResourceFolder}))
	assert.False(t, l.Add(MapItem{Name: "e1m1", Kind: ResourcePAK}))

	assert.Len(t, l, 1)
	assert.True(t, l.Has("e1M1"))
	assert.Equal(t, ResourceFolder, l[Key("e1m1")].Kind)
}

func TestNameSet_Union(t *testing.T) {
	a := NameSet{}
	a.Add("E1M1")
	b := NameSet{}
	b.Add("start")

	a.Union(b)

	assert.True(t, a.Contains("e1m1"))
	assert.True(t, a.Contains("START"))
	assert.False(t, a.Contains("e1m2"))
}

func TestNameSet_KeepsFirstSpelling(t *testing.T) {
	a := NameSet{}
	a.Add("MyMap")
	a.Add("MYMAP")
	b := NameSet{}
	b.Add("Straße")
	b.Add("mymap")

	a.Union(b)

	assert.Equal(t, []string{"MyMap", "Straße"}, a.Values())
	assert.True(t, a.Contains("STRASSE"))
}

func TestDemoItem_Title(t *testing.T) {
	info := &DemoInfo{Title: "The Slipgate Complex", MapFilePath: "maps/e1m1.bsp", ModName: "xatrix"}

	tests := []struct {
		name string
		demo DemoItem
		want string
	}{
		{"valid", DemoItem{Path: "demo1.dem", Info: info}, "The Slipgate Complex"},
		{"unknown format", DemoItem{Path: "demo1.dem", Problem: ProblemUnknownFormat}, "Unknown demo format"},
		{"missing map", DemoItem{Path: "demo1.dem", Info: info, Problem: ProblemMissingMap}, "Missing map file: 'maps/e1m1.bsp'"},
		{"wrong location", DemoItem{Path: "demo1.dem", Info: info, Problem: ProblemWrongLocation}, "Incorrect location: expected to be in 'xatrix' folder"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.demo.Title())
			assert.Equal(t, tt.demo.Problem != ProblemNone, tt.demo.IsInvalid())
		})
	}
}

func TestDemoItem_DedupKeyUsesBaseName(t *testing.T) {
	info := &DemoInfo{Title: "Start"}
	a := DemoItem{Path: "demos/run.dm2", Kind: ResourceFolder, Info: info}
	b := DemoItem{Path: "run.dm2", Kind: ResourcePAK, Info: info}

	assert.Equal(t, a.DedupKey(), b.DedupKey())
}

func TestDemoInfo_MapName(t *testing.T) {
	assert.Equal(t, "e1m1", DemoInfo{MapFilePath: "maps/e1m1.bsp"}.MapName())
	assert.Equal(t, "base1", DemoInfo{MapFilePath: "base1"}.MapName())
}

func TestParseItemType(t *testing.T) {
	it, err := ParseItemType("Skill")
	assert.NoError(t, err)
	assert.Equal(t, ItemSkill, it)

	_, err = ParseItemType("weapon")
	assert.ErrorIs(t, err, ErrUnknownItemType)
}

func TestOption_IsSynthetic(t *testing.T) {
	assert.True(t, DefaultOption.IsSynthetic())
	assert.True(t, RandomOption.IsSynthetic())
	assert.False(t, Option{Label: "Normal", Value: "1", Default: true}.IsSynthetic())
}
