package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"qlaunch/internal/core"
	"qlaunch/internal/game"
	"qlaunch/internal/storage/config"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// ErrCancelled is returned when the user leaves an interactive command without choosing.
// When returned from a command, Execute exits with code 2.
var ErrCancelled = errors.New("cancelled")

var (
	version = "0.3.0"

	// Global flags
	configDir  string
	configFile string
	dataDir    string
	gamePath   string
	verbose    bool
	jsonOutput bool
	noColor    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "qlaunch",
	Short: "qlaunch - Quake family launcher and content browser",
	Long: `qlaunch indexes a Quake, Quake II or Hexen II installation: the mods in it,
the maps and demos of each mod, and the engines at the game root. It remembers
your choices per installation and builds the engine command line from them.

Use subcommands for operations. Run 'qlaunch --help' for available commands.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default: ~/.config/qlaunch)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config-file", "", "absolute path of a config file to use instead of <config>/config.yaml")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default: ~/.local/share/qlaunch)")
	rootCmd.PersistentFlags().StringVarP(&gamePath, "path", "p", "", "game installation to operate on (default: game_path from config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// colorEnabled returns true if colored output should be used (respects --no-color and NO_COLOR env).
// NO_COLOR: if set (any value), color is disabled per https://no-color.org
func colorEnabled() bool {
	if noColor {
		return false
	}
	return os.Getenv("NO_COLOR") == ""
}

const (
	ansiReset  = "\033[0m"
	ansiGreen  = "\033[32m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
)

// colorGreen returns s with green ANSI when color is enabled, otherwise s.
func colorGreen(s string) string {
	if !colorEnabled() {
		return s
	}
	return ansiGreen + s + ansiReset
}

// colorRed returns s with red ANSI when color is enabled, otherwise s.
func colorRed(s string) string {
	if !colorEnabled() {
		return s
	}
	return ansiRed + s + ansiReset
}

// colorYellow returns s with yellow ANSI when color is enabled, otherwise s.
func colorYellow(s string) string {
	if !colorEnabled() {
		return s
	}
	return ansiYellow + s + ansiReset
}

// Execute runs the root command. Exit codes: 0 = success, 1 = error, 2 = user cancelled.
// When --json is set and an error occurs, prints {"error":"..."} to stdout before exiting.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, ErrCancelled) {
			os.Exit(2)
		}
		if jsonOutput {
			fmt.Printf(`{"error":%q}`+"\n", err.Error())
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// newLogger returns the diagnostics logger: info level, debug with --verbose.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "qlaunch"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}

// initService creates and initializes the core service
func initService() (*core.Service, error) {
	cfg, err := getServiceConfig()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.ConfigDir, 0755); err != nil {
		return nil, fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	return core.NewService(cfg)
}

// getServiceConfig returns the service configuration with defaults.
// Returns an error if UserHomeDir fails and defaults are needed.
func getServiceConfig() (core.ServiceConfig, error) {
	cfg := core.ServiceConfig{
		ConfigDir: configDir,
		DataDir:   dataDir,
		Logger:    newLogger(),
		Registry:  game.Default(),
	}

	if configFile != "" {
		path, err := config.ParseConfigPath(configFile)
		if err != nil {
			return core.ServiceConfig{}, fmt.Errorf("--config-file: %w", err)
		}
		cfg.ConfigFile = path
	}

	if cfg.ConfigDir == "" || cfg.DataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return core.ServiceConfig{}, fmt.Errorf("home directory: %w", err)
		}
		if cfg.ConfigDir == "" {
			cfg.ConfigDir = filepath.Join(homeDir, ".config", "qlaunch")
		}
		if cfg.DataDir == "" {
			cfg.DataDir = filepath.Join(homeDir, ".local", "share", "qlaunch")
		}
	}

	return cfg, nil
}

// requireGame starts the service and selects the game from --path or the
// configured game_path. The caller closes the service.
func requireGame() (*core.Service, *game.Handler, error) {
	svc, err := initService()
	if err != nil {
		return nil, nil, fmt.Errorf("initializing service: %w", err)
	}
	h, err := svc.SelectGame(gamePath)
	if err != nil {
		svc.Close()
		return nil, nil, fmt.Errorf("%w; use --path or set game_path in config.yaml", err)
	}
	if verbose && !jsonOutput {
		fmt.Printf("Using %s at %s\n", h.Title(), h.GamePath())
	}
	return svc, h, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
