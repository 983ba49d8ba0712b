package core

import (
	"strconv"
	"strings"

	"qlaunch/internal/domain"
	"qlaunch/internal/game"
)

// RandomValue is stored as a skill, class or map selection to pick a new
// value every time a command line is built.
const RandomValue = "random"

// LaunchOptions are the values substituted into a game's launch templates.
// Empty fields are left off the command line.
type LaunchOptions struct {
	Engine     string // Engine executable
	Width      int
	Height     int
	Fullscreen bool
	Game       string // Official variant folder, e.g. "hipnotic"
	Mod        string // Mod name relative to the game path
	Map        string
	Skill      string
	Class      string
	Demo       string // Demo path; when set, Map, Skill and Class are ignored
}

// FormatArg replaces the positional placeholders {0}, {1}, ... of template
// with args. An empty template yields an empty string.
func FormatArg(template string, args ...string) string {
	if template == "" {
		return ""
	}
	pairs := make([]string, 0, 2*len(args))
	for i, a := range args {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", a)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// BuildArgs returns the command-line fragments for o, in launch order.
func BuildArgs(h *game.Handler, o LaunchOptions) []string {
	params := h.LaunchParameters()
	var args []string
	add := func(kind domain.ItemType, values ...string) {
		if s := FormatArg(params[kind], values...); s != "" {
			args = append(args, s)
		}
	}

	if o.Engine != "" {
		if tmpl := params[domain.ItemEngine]; tmpl != "" {
			add(domain.ItemEngine, quoteArg(o.Engine))
		} else {
			args = append(args, quoteArg(o.Engine))
		}
	}

	if o.Width > 0 && o.Height > 0 {
		add(domain.ItemResolution, strconv.Itoa(o.Width), strconv.Itoa(o.Height), h.FullScreenArg(o.Fullscreen))
	}

	// An official variant picked as the mod is launched through its flag.
	variant, mod := o.Game, o.Mod
	if g, ok := h.BaseGame(mod); ok {
		variant, mod = g.Folder, ""
	}
	if g, ok := h.BaseGame(variant); ok && g.Arg != "" {
		add(domain.ItemGame, g.Arg)
	}
	if mod != "" {
		add(domain.ItemMod, quoteArg(mod))
	}

	if o.Demo != "" {
		add(domain.ItemDemo, quoteArg(o.Demo))
		return args
	}
	if o.Map != "" {
		add(domain.ItemMap, quoteArg(o.Map))
	}
	if o.Skill != "" {
		add(domain.ItemSkill, o.Skill)
	}
	if o.Class != "" {
		add(domain.ItemClass, o.Class)
	}
	return args
}

// BuildCommandLine joins BuildArgs into a single line.
func BuildCommandLine(h *game.Handler, o LaunchOptions) string {
	return strings.Join(BuildArgs(h, o), " ")
}

func quoteArg(s string) string {
	if strings.ContainsAny(s, " \t\"'") {
		return strconv.Quote(s)
	}
	return s
}
