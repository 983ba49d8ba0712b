package views_test

import (
	"testing"

	"qlaunch/internal/domain"
	"qlaunch/internal/tui/views"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skillSetting() views.Setting {
	return views.Setting{
		Kind: domain.ItemSkill,
		Name: "Skill",
		Options: []domain.Option{
			domain.DefaultOption,
			domain.RandomOption,
			{Label: "Easy", Value: "0"},
			{Label: "Hard", Value: "2"},
		},
	}
}

func TestLaunch_DropsEmptySettings(t *testing.T) {
	launch := views.NewLaunch([]views.Setting{
		skillSetting(),
		{Kind: domain.ItemClass, Name: "Class"},
	}, vimKeys())

	require.Len(t, launch.Settings(), 1)
	assert.NotContains(t, launch.View(), "Class")
}

func TestLaunch_CycleSendsChange(t *testing.T) {
	launch := views.NewLaunch([]views.Setting{skillSetting()}, vimKeys())

	tests := []struct {
		name  string
		keys  []tea.KeyMsg
		value string
	}{
		{"right to random", []tea.KeyMsg{runes("l")}, "random"},
		{"right twice to value", []tea.KeyMsg{runes("l"), runes("l")}, "0"},
		{"left wraps to last", []tea.KeyMsg{{Type: tea.KeyLeft}}, "2"},
		{"full cycle back to default", []tea.KeyMsg{runes("l"), runes("l"), runes("l"), runes("l")}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				m   tea.Model = launch
				cmd tea.Cmd
			)
			for _, k := range tt.keys {
				m, cmd = m.Update(k)
			}
			require.NotNil(t, cmd)
			assert.Equal(t, views.SelectionChangedMsg{Kind: domain.ItemSkill, Value: tt.value}, cmd())
		})
	}

	// The original model is unchanged.
	assert.Equal(t, 0, launch.Settings()[0].Current)
}

func TestLaunch_EnterLaunches(t *testing.T) {
	launch := views.NewLaunch(nil, vimKeys())

	_, cmd := launch.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd, "nothing to launch without a command line")

	m, _ := launch.Update(views.CommandLineMsg{Line: "-game ad +map start"})
	assert.Contains(t, m.View(), "-game ad +map start")

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, views.LaunchMsg{Line: "-game ad +map start"}, cmd())
}

func TestLaunch_Summary(t *testing.T) {
	launch := views.NewLaunch(nil, vimKeys()).WithSummary("Mod: ad", "Map: start")

	view := launch.View()
	assert.Contains(t, view, "Mod: ad")
	assert.Contains(t, view, "Map: start")
}

func TestOptionValueAndIndex(t *testing.T) {
	opts := skillSetting().Options

	assert.Equal(t, "", views.OptionValue(opts[0]))
	assert.Equal(t, "random", views.OptionValue(opts[1]))
	assert.Equal(t, "2", views.OptionValue(opts[3]))

	assert.Equal(t, 3, views.OptionIndex(opts, "2"))
	assert.Equal(t, 1, views.OptionIndex(opts, "RANDOM"))
	assert.Equal(t, 0, views.OptionIndex(opts, ""))
	assert.Equal(t, 0, views.OptionIndex(opts, "9"))
}
