package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var installsCmd = &cobra.Command{
	Use:   "installs",
	Short: "List remembered game installations",
	Long: `List the game installations qlaunch has seen, either selected with --path
or found by 'qlaunch detect'.`,
	Args: cobra.NoArgs,
	RunE: runInstalls,
}

var installsForgetCmd = &cobra.Command{
	Use:   "forget <path>",
	Short: "Forget an installation and its selections",
	Args:  cobra.ExactArgs(1),
	RunE:  runInstallsForget,
}

func init() {
	installsCmd.AddCommand(installsForgetCmd)

	rootCmd.AddCommand(installsCmd)
}

type installJSON struct {
	Path       string `json:"path"`
	Game       string `json:"game"`
	Source     string `json:"source"`
	DetectedAt string `json:"detected_at"`
}

func runInstalls(cmd *cobra.Command, args []string) error {
	svc, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	defer svc.Close()

	installs, err := svc.Installs()
	if err != nil {
		return fmt.Errorf("listing installs: %w", err)
	}
	current := svc.Config().GamePath

	if jsonOutput {
		out := make([]installJSON, 0, len(installs))
		for _, in := range installs {
			out = append(out, installJSON{
				Path:       in.Path,
				Game:       in.GameTitle,
				Source:     in.Source,
				DetectedAt: in.DetectedAt.Format(time.RFC3339),
			})
		}
		return printJSON(out)
	}

	if len(installs) == 0 {
		fmt.Println("No installations remembered. Run 'qlaunch detect'.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GAME\tSOURCE\tPATH\t")
	fmt.Fprintln(w, "----\t------\t----\t")
	for _, in := range installs {
		marker := ""
		if in.Path == current {
			marker = colorGreen("(default)")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", in.GameTitle, in.Source, in.Path, marker)
	}
	return w.Flush()
}

func runInstallsForget(cmd *cobra.Command, args []string) error {
	svc, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	defer svc.Close()

	if err := svc.ForgetInstall(args[0]); err != nil {
		return fmt.Errorf("forgetting %s: %w", args[0], err)
	}
	if !jsonOutput {
		fmt.Printf("%s Forgot %s\n", colorGreen("✓"), args[0])
	}
	return nil
}
