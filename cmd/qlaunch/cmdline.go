package main

import (
	"fmt"

	"qlaunch/internal/domain"

	"github.com/spf13/cobra"
)

var cmdlineFlags = map[domain.ItemType]*string{
	domain.ItemEngine: new(string),
	domain.ItemGame:   new(string),
	domain.ItemMod:    new(string),
	domain.ItemMap:    new(string),
	domain.ItemSkill:  new(string),
	domain.ItemClass:  new(string),
	domain.ItemDemo:   new(string),
}

var cmdlineCmd = &cobra.Command{
	Use:   "cmdline",
	Short: "Print the engine command line",
	Long: `Print the command line that launches the game with the remembered
parameters. Flags override them for this command line only. A "random"
map, skill or class is resolved each time.

Examples:
  qlaunch cmdline
  qlaunch cmdline --mod ad --map random
  qlaunch cmdline --demo demo1`,
	Args: cobra.NoArgs,
	RunE: runCmdline,
}

func init() {
	for kind, value := range cmdlineFlags {
		cmdlineCmd.Flags().StringVar(value, kind.String(), "", fmt.Sprintf("%s to launch with", kind))
	}

	rootCmd.AddCommand(cmdlineCmd)
}

// cmdlineOverrides returns the flags that were set on cmd.
func cmdlineOverrides(cmd *cobra.Command) map[domain.ItemType]string {
	out := make(map[domain.ItemType]string)
	for kind, value := range cmdlineFlags {
		if cmd.Flags().Changed(kind.String()) {
			out[kind] = *value
		}
	}
	return out
}

func runCmdline(cmd *cobra.Command, args []string) error {
	svc, _, err := requireGame()
	if err != nil {
		return err
	}
	defer svc.Close()

	line, err := svc.CommandLine(cmdlineOverrides(cmd))
	if err != nil {
		return fmt.Errorf("building command line: %w", err)
	}

	if jsonOutput {
		return printJSON(map[string]string{"command_line": line})
	}
	fmt.Println(line)
	return nil
}
