// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall play                     - Play in this terminal
//	blockfall scores [--tui]           - Show the game history
//	blockfall serve                    - Start SSH server for remote play
//	blockfall simulate --ticks N       - Run a headless game with random input
//	blockfall config init|show         - Write or print the configuration
//
// Global flags:
//
//	--config <path> - Config file (default search: ~/.blockfall/config.yaml, ./configs/blockfall.yaml)
//	--fps <rate>    - Set tick rate (default: 10)
//	--seed <value>  - Set the initial tick counter for reproducible games
//	--db <path>     - Set history database path (default: ~/.blockfall/history.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagFPS    int
	flagSeed   uint64
	flagDBPath string

	// appConfig is loaded before any subcommand runs.
	appConfig config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle in your terminal",
	Long: `Blockfall drops tetromino pieces into a 10 x 32 well. Complete rows to
clear them; the game speeds up every 10 rows and ends when a new piece
cannot spawn.

Available commands:
  play      - Play in this terminal
  scores    - View the game history
  serve     - Start SSH server for remote play
  simulate  - Run a headless game with random input
  config    - Write or print the configuration

Examples:
  blockfall play
  blockfall play --fps 15
  blockfall scores --tui
  blockfall serve --ssh :2222
  blockfall simulate --ticks 5000 --seed 42`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (steps per second, default from config)")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "Initial tick counter (0 = derive from time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (default from config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies command-line overrides.
func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Game.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Game.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.Storage.Path = flagDBPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	appConfig = cfg
	return nil
}
