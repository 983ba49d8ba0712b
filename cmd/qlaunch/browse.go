package main

import (
	"fmt"

	"qlaunch/internal/tui"

	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse mods, maps and demos interactively",
	Long: `Open the interactive browser for the game: pick a mod, then a map or a
demo, adjust the engine, skill and class, and press enter to print the
command line. Choices are remembered like with 'qlaunch select'.

Examples:
  qlaunch browse
  qlaunch browse --path ~/games/quake`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	svc, _, err := requireGame()
	if err != nil {
		return err
	}
	defer svc.Close()

	line, err := tui.Run(svc)
	if err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	if line == "" {
		return ErrCancelled
	}

	if jsonOutput {
		return printJSON(map[string]string{"command_line": line})
	}
	fmt.Println(line)
	return nil
}
