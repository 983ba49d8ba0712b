package domain

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareNatural(t *testing.T) {
	tests := []struct {
		a    string
		b    string
		want int
	}{
		{"map9", "map10", -1},
		{"map10", "map9", 1},
		{"E1M1", "e1m1", 0},
		{"e1m2", "e1m10", -1},
		{"start", "start2", -1},
		{"dm1", "e1m1", -1},
		{"map01", "map1", 1},
		{"", "", 0},
		{"", "a", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareNatural(tt.a, tt.b))
		})
	}
}

func TestCompareNatural_Sorts(t *testing.T) {
	names := []string{"map10", "Map2", "map1", "e2m1", "e1m10", "e1m2"}
	sort.Slice(names, func(i, j int) bool { return CompareNatural(names[i], names[j]) < 0 })

	assert.Equal(t, []string{"e1m2", "e1m10", "e2m1", "map1", "Map2", "map10"}, names)
}

func TestKey_IgnoresCase(t *testing.T) {
	assert.Equal(t, Key("ROGUE"), Key("rogue"))
	assert.Equal(t, Key("E1M1"), Key("e1m1"))
}
