package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"qlaunch/internal/game"

	"github.com/spf13/cobra"
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List supported games",
	Long: `List the games qlaunch can detect, with their base content folder,
demo folder and official variants.

Examples:
  qlaunch games
  qlaunch games --json`,
	Args: cobra.NoArgs,
	RunE: runGames,
}

func init() {
	rootCmd.AddCommand(gamesCmd)
}

type gameJSON struct {
	Title          string   `json:"title"`
	DefaultModPath string   `json:"default_mod_path"`
	DemosFolder    string   `json:"demos_folder,omitempty"`
	BaseGames      []string `json:"base_games"`
}

func runGames(cmd *cobra.Command, args []string) error {
	profiles := game.Default().List()

	if jsonOutput {
		out := make([]gameJSON, 0, len(profiles))
		for _, p := range profiles {
			def := p.Definition()
			g := gameJSON{Title: p.Title(), DefaultModPath: def.DefaultModPath, DemosFolder: def.DemosFolder, BaseGames: []string{}}
			for _, b := range def.BaseGames {
				g.BaseGames = append(g.BaseGames, b.Folder)
			}
			out = append(out, g)
		}
		return printJSON(out)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GAME\tCONTENT\tDEMOS\tVARIANTS")
	fmt.Fprintln(w, "----\t-------\t-----\t--------")
	for _, p := range profiles {
		def := p.Definition()
		demos := def.DemosFolder
		if demos == "" {
			demos = "(mod root)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", p.Title(), def.DefaultModPath, demos, len(def.BaseGames))
	}
	return w.Flush()
}
