package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"qlaunch/internal/core"

	"github.com/spf13/cobra"
)

var detectSave bool

var detectCmd = &cobra.Command{
	Use:   "detect [path]",
	Short: "Detect a game installation",
	Long: `Detect which supported game is installed at a path. Without a path, the
Steam libraries are scanned and every supported game found is remembered.

Examples:
  qlaunch detect ~/games/quake
  qlaunch detect ~/games/quake --save
  qlaunch detect`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().BoolVar(&detectSave, "save", false, "make the detected game the default game_path")

	rootCmd.AddCommand(detectCmd)
}

type detectJSON struct {
	Game  string `json:"game"`
	Path  string `json:"path"`
	AppID string `json:"app_id,omitempty"`
}

func runDetect(cmd *cobra.Command, args []string) error {
	svc, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	defer svc.Close()

	if len(args) == 0 {
		return detectSteam(svc)
	}

	h, err := svc.SelectGame(args[0])
	if err != nil {
		return err
	}

	if detectSave {
		svc.Config().GamePath = h.GamePath()
		if err := svc.SaveConfig(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
	}

	if jsonOutput {
		return printJSON(detectJSON{Game: h.Title(), Path: h.GamePath()})
	}
	fmt.Printf("%s %s at %s\n", colorGreen("✓"), h.Title(), h.GamePath())
	if detectSave {
		fmt.Println("Saved as the default game.")
	}
	return nil
}

func detectSteam(svc *core.Service) error {
	installs, err := svc.DetectSteamInstalls()
	if err != nil {
		return fmt.Errorf("scanning steam libraries: %w", err)
	}

	if jsonOutput {
		out := make([]detectJSON, 0, len(installs))
		for _, in := range installs {
			out = append(out, detectJSON{Game: in.GameTitle, Path: in.Path, AppID: in.AppID})
		}
		return printJSON(out)
	}

	if len(installs) == 0 {
		fmt.Println(colorYellow("No supported games found in the Steam libraries."))
		fmt.Println("Pass the installation folder: qlaunch detect <path>")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "APP\tGAME\tPATH")
	fmt.Fprintln(w, "---\t----\t----")
	for _, in := range installs {
		fmt.Fprintf(w, "%s\t%s\t%s\n", in.AppID, in.GameTitle, in.Path)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%s %d installation(s) remembered. Select one with --path.\n", colorGreen("✓"), len(installs))
	return nil
}
