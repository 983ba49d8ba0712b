package steam

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVDF_LibraryFolders(t *testing.T) {
	vdf := `
"libraryfolders"
{
	"0"
	{
		"path"		"/home/user/.steam/steam"
		"label"		""
		"apps"
		{
			"2310"		"123456"
		}
	}
	"1"
	{
		"path"		"/mnt/games/steam"
		"label"		"Games"
	}
}
`
	root, err := ParseVDF(strings.NewReader(vdf))
	require.NoError(t, err)
	assert.Equal(t, []string{"/home/user/.steam/steam", "/mnt/games/steam"}, libraryPaths(root))

	lf, ok := root.Map("LibraryFolders")
	require.True(t, ok)
	first, ok := lf.Map("0")
	require.True(t, ok)
	assert.Equal(t, "", first.String("label"))
	apps, ok := first.Map("apps")
	require.True(t, ok)
	assert.Equal(t, "123456", apps.String("2310"))
}

func TestParseVDF_OldLibraryFormat(t *testing.T) {
	vdf := `"LibraryFolders"
{
	"TimeNextStatsReport"	"1600000000"
	"1"	"/mnt/old"
}`
	root, err := ParseVDF(strings.NewReader(vdf))
	require.NoError(t, err)
	assert.Empty(t, libraryPaths(root), "numbering starts at 0")

	vdf = strings.Replace(vdf, `"1"`, `"0"`, 1)
	root, err = ParseVDF(strings.NewReader(vdf))
	require.NoError(t, err)
	assert.Equal(t, []string{"/mnt/old"}, libraryPaths(root))
}

func TestParseVDF_EscapesAndComments(t *testing.T) {
	vdf := `// written by steam
"AppState"
{
	"name"	"Say \"hi\""   // trailing comment
	"path"	"C:\\Games"
	bare	word
}`
	root, err := ParseVDF(strings.NewReader(vdf))
	require.NoError(t, err)
	state, ok := root.Map("appstate")
	require.True(t, ok)
	assert.Equal(t, `Say "hi"`, state.String("name"))
	assert.Equal(t, `C:\Games`, state.String("path"))
	assert.Equal(t, "word", state.String("bare"))
}

func TestParseAppManifest(t *testing.T) {
	acf := `
"AppState"
{
	"appid"		"2310"
	"name"		"Quake"
	"installdir"		"Quake"
}
`
	m, err := ParseAppManifest(strings.NewReader(acf))
	require.NoError(t, err)
	assert.Equal(t, AppManifest{AppID: "2310", Name: "Quake", InstallDir: "Quake"}, m)
}

func TestParseVDF_Malformed(t *testing.T) {
	tests := []struct {
		name string
		vdf  string
		want string
	}{
		{"key without value", `"libraryfolders"`, "unexpected end after key"},
		{"unclosed block", `"a" { "b" "c"`, "unclosed block"},
		{"stray brace", `"a" "b" }`, "unexpected }"},
		{"unclosed quote", `"a" "b`, "unclosed quote"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVDF(strings.NewReader(tt.vdf))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := ParseAppManifest(strings.NewReader(`"Other" { }`))
	assert.Error(t, err)
}
