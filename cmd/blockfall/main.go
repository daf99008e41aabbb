// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall list              - List available engines
//	blockfall play [engine]     - Play a game
//	blockfall serve             - Start SSH server for remote play
//	blockfall history           - Show finished games
//
// Global flags:
//
//	--config <path>    - Config file (default: ~/.blockfall/config.yaml)
//	--tick <duration>  - Tick period (default: 800ms)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set history database path (default: ~/.blockfall/history.db)
//	--log-level <lvl>  - Enable logging at debug, info, warn or error
//	--log-file <path>  - Log destination (default: ~/.blockfall/blockfall.log)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"

	// Import engines to register them
	_ "github.com/vovakirdan/blockfall/internal/engine/classic"
)

var (
	// Global flags
	flagConfig   string
	flagTick     time.Duration
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle in your terminal",
	Long: `Blockfall drops pieces onto a board; fill rows to clear them and keep
the stack from reaching the top.

Available commands:
  list     - Show all available engines
  play     - Play a game
  serve    - Start SSH server for remote play
  history  - View finished games

Examples:
  blockfall list
  blockfall play
  blockfall play --tick 400ms --seed 42
  blockfall serve --ssh :2222
  blockfall history`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().DurationVar(&flagTick, "tick", 0, "Tick period (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (empty = off)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.blockfall/blockfall.log", "Log file path")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("tick") {
		cfg.Tick = flagTick
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.History.Path = flagDBPath
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
