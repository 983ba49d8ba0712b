package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var modsCmd = &cobra.Command{
	Use:   "mods",
	Short: "List the mods of the game",
	Long: `List the folders of the game that can be launched as a mod: the base game,
the official variants and every folder holding maps or a mod marker.

Examples:
  qlaunch mods
  qlaunch mods --path ~/games/quake --json`,
	Args: cobra.NoArgs,
	RunE: runMods,
}

var mapsCmd = &cobra.Command{
	Use:   "maps [mod]",
	Short: "List the maps of a mod",
	Long: `List the maps of a mod, loose files first, then PAK and PK3 archive
entries. A mod without maps of its own lists the base game's maps.
Without a mod, the base game is listed.

Examples:
  qlaunch maps
  qlaunch maps rogue`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMaps,
}

var demosCmd = &cobra.Command{
	Use:   "demos [mod]",
	Short: "List the demos of a mod",
	Long: `List the recorded demos of a mod with the title of the level they play.
Demos that cannot be played from the mod are listed with a warning.

Examples:
  qlaunch demos
  qlaunch demos ad`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDemos,
}

var enginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "List the engines at the game root",
	Args:  cobra.NoArgs,
	RunE:  runEngines,
}

func init() {
	rootCmd.AddCommand(modsCmd)
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(demosCmd)
	rootCmd.AddCommand(enginesCmd)
}

type modJSON struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Official bool   `json:"official"`
}

type mapJSON struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Kind  string `json:"kind"`
	Path  string `json:"path"`
}

type demoJSON struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Kind    string `json:"kind"`
	Map     string `json:"map,omitempty"`
	Invalid bool   `json:"invalid"`
}

type engineJSON struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

func modArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func runMods(cmd *cobra.Command, args []string) error {
	svc, h, err := requireGame()
	if err != nil {
		return err
	}
	defer svc.Close()

	mods, err := svc.Mods()
	if err != nil {
		return fmt.Errorf("listing mods: %w", err)
	}

	if jsonOutput {
		out := make([]modJSON, 0, len(mods))
		for _, m := range mods {
			out = append(out, modJSON{Name: m.Name, Path: m.Path, Official: m.Official})
		}
		return printJSON(out)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MOD\tOFFICIAL\tTITLE")
	fmt.Fprintln(w, "---\t--------\t-----")
	for _, m := range mods {
		official, title := "no", ""
		if g, ok := h.BaseGame(m.Name); ok {
			official, title = "yes", g.Title
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", m.Name, official, title)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if verbose {
		fmt.Printf("\nTotal: %d mod(s)\n", len(mods))
	}
	return nil
}

func runMaps(cmd *cobra.Command, args []string) error {
	svc, _, err := requireGame()
	if err != nil {
		return err
	}
	defer svc.Close()

	maps, err := svc.Maps(modArg(args))
	if err != nil {
		return fmt.Errorf("listing maps: %w", err)
	}

	if jsonOutput {
		out := make([]mapJSON, 0, len(maps))
		for _, m := range maps {
			out = append(out, mapJSON{Name: m.Name, Title: m.Title, Kind: m.Kind.String(), Path: m.Path})
		}
		return printJSON(out)
	}

	if len(maps) == 0 {
		fmt.Println("No maps found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MAP\tTITLE\tSOURCE")
	fmt.Fprintln(w, "---\t-----\t------")
	for _, m := range maps {
		fmt.Fprintf(w, "%s\t%s\t%s\n", m.Name, truncate(m.Title, 50), m.Kind)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if verbose {
		fmt.Printf("\nTotal: %d map(s)\n", len(maps))
	}
	return nil
}

func runDemos(cmd *cobra.Command, args []string) error {
	svc, _, err := requireGame()
	if err != nil {
		return err
	}
	defer svc.Close()

	demos, err := svc.Demos(modArg(args))
	if err != nil {
		return fmt.Errorf("listing demos: %w", err)
	}

	if jsonOutput {
		out := make([]demoJSON, 0, len(demos))
		for _, d := range demos {
			j := demoJSON{Path: d.Path, Title: d.Title(), Kind: d.Kind.String(), Invalid: d.IsInvalid()}
			if d.Info != nil {
				j.Map = d.Info.MapName()
			}
			out = append(out, j)
		}
		return printJSON(out)
	}

	if len(demos) == 0 {
		fmt.Println("No demos found.")
		return nil
	}

	invalid := 0
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DEMO\tTITLE\tSOURCE")
	fmt.Fprintln(w, "----\t-----\t------")
	for _, d := range demos {
		title := truncate(d.Title(), 60)
		if d.IsInvalid() {
			invalid++
			title = colorRed(title)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", d.Path, title, d.Kind)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if invalid > 0 {
		fmt.Printf("\n%s %d demo(s) cannot be played from this mod\n", colorYellow("⚠"), invalid)
	}
	return nil
}

func runEngines(cmd *cobra.Command, args []string) error {
	svc, h, err := requireGame()
	if err != nil {
		return err
	}
	defer svc.Close()

	engines, err := svc.Engines()
	if err != nil {
		return err
	}

	if jsonOutput {
		out := make([]engineJSON, 0, len(engines))
		for _, e := range engines {
			out = append(out, engineJSON{Name: e.Name, Path: e.Path})
		}
		return printJSON(out)
	}

	if len(engines) == 0 {
		fmt.Printf("No engines found in %s\n", h.GamePath())
		return nil
	}
	for _, e := range engines {
		fmt.Println(e.Name)
	}
	return nil
}

// truncate shortens s to maxWidth terminal cells, marking the cut with
// "...". It never splits a rune.
func truncate(s string, maxWidth int) string {
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	tail := "..."
	if maxWidth <= len(tail) {
		tail = ""
	}
	limit := maxWidth - len(tail)

	var b strings.Builder
	width := 0
	for _, r := range s {
		w := lipgloss.Width(string(r))
		if width+w > limit {
			break
		}
		b.WriteRune(r)
		width += w
	}
	return b.String() + tail
}
