package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"qlaunch/internal/domain"

	"github.com/spf13/cobra"
)

var selectClear bool

var selectCmd = &cobra.Command{
	Use:   "select [kind] [value]",
	Short: "Remember a launch parameter",
	Long: `Remember a launch parameter for the game: engine, game, mod, map, skill,
class or demo. Skills and classes accept a label, a value or "random".
Omit the value to forget a parameter. Without arguments, the remembered
parameters are listed.

Examples:
  qlaunch select mod rogue
  qlaunch select skill Hard
  qlaunch select map random
  qlaunch select demo
  qlaunch select --clear`,
	Args: cobra.MaximumNArgs(2),
	RunE: runSelect,
}

func init() {
	selectCmd.Flags().BoolVar(&selectClear, "clear", false, "forget every remembered parameter")

	rootCmd.AddCommand(selectCmd)
}

// selectionOrder is the listing order of remembered parameters.
var selectionOrder = []domain.ItemType{
	domain.ItemEngine,
	domain.ItemGame,
	domain.ItemMod,
	domain.ItemMap,
	domain.ItemSkill,
	domain.ItemClass,
	domain.ItemDemo,
}

func runSelect(cmd *cobra.Command, args []string) error {
	if selectClear && len(args) > 0 {
		return fmt.Errorf("--clear takes no arguments")
	}

	svc, _, err := requireGame()
	if err != nil {
		return err
	}
	defer svc.Close()

	if selectClear {
		if err := svc.ClearSelections(); err != nil {
			return fmt.Errorf("clearing selections: %w", err)
		}
		if !jsonOutput {
			fmt.Printf("%s Selections cleared\n", colorGreen("✓"))
		}
		return nil
	}

	if len(args) > 0 {
		kind, err := domain.ParseItemType(args[0])
		if err != nil {
			return fmt.Errorf("%q: %w", args[0], err)
		}
		value := ""
		if len(args) == 2 {
			value = args[1]
		}
		if err := svc.Select(kind, value); err != nil {
			return err
		}
		if !jsonOutput {
			if value == "" {
				fmt.Printf("%s Forgot %s\n", colorGreen("✓"), kind)
			} else {
				fmt.Printf("%s %s set to %s\n", colorGreen("✓"), kind, value)
			}
			return nil
		}
	}

	sel, err := svc.Selections()
	if err != nil {
		return fmt.Errorf("reading selections: %w", err)
	}

	if jsonOutput {
		out := make(map[string]string, len(sel))
		for k, v := range sel {
			out[k.String()] = v
		}
		return printJSON(out)
	}

	if len(sel) == 0 {
		fmt.Println("Nothing selected.")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, k := range selectionOrder {
		if v, ok := sel[k]; ok {
			fmt.Fprintf(w, "%s\t%s\n", k, v)
		}
	}
	return w.Flush()
}
