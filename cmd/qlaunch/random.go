package main

import (
	"fmt"

	"qlaunch/internal/domain"

	"github.com/spf13/cobra"
)

var randomMod string

var randomCmd = &cobra.Command{
	Use:   "random <skill|class|map>",
	Short: "Pick a random skill, class or map",
	Long: `Pick a random launch value. Maps are picked from the given mod, or from
the base game. Nothing is printed for a map when there is none to pick, and
"0" is printed for a skill or class the game does not have.

Examples:
  qlaunch random map --mod rogue
  qlaunch random skill`,
	Args: cobra.ExactArgs(1),
	RunE: runRandom,
}

func init() {
	randomCmd.Flags().StringVarP(&randomMod, "mod", "m", "", "mod to pick a map from (default: base game)")

	rootCmd.AddCommand(randomCmd)
}

func runRandom(cmd *cobra.Command, args []string) error {
	kind, err := domain.ParseItemType(args[0])
	if err != nil {
		return fmt.Errorf("%q: %w", args[0], err)
	}

	svc, _, err := requireGame()
	if err != nil {
		return err
	}
	defer svc.Close()

	value, err := svc.Random(kind, randomMod)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(map[string]string{"kind": kind.String(), "value": value})
	}
	fmt.Println(value)
	return nil
}
