package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [engine]",
	Short: "Play a game",
	Long: `Start a game with the configured engine, or the one named.

Controls (defaults, see config):
  S/Enter    - Start
  Arrows     - Rotate / move left, right, down
  P/Space    - Pause and resume
  R/Enter    - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  blockfall play
  blockfall play classic --tick 500ms
  blockfall play --config ./my-blockfall.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Engine = args[0]
	}

	if !registry.Exists(cfg.Engine) {
		return fmt.Errorf("unknown engine %q, run 'blockfall list' to see available engines", cfg.Engine)
	}

	logger, closer, err := setupLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	rc := cfg.RuntimeConfig()
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	eng, err := registry.Create(cfg.Engine, rc)
	if err != nil {
		return err
	}

	opts := tui.Options{
		Config:     cfg,
		EngineName: cfg.Engine,
		Engine:     eng,
		Logger:     logger,
	}

	if cfg.History.Enabled {
		store, openErr := storage.Open(cfg.History.Path)
		if openErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", openErr)
			// Continue without storage - game still works
		} else {
			defer store.Close()
			opts.Saver = store
		}
	}

	logger.Info("starting game", "engine", cfg.Engine, "tick", cfg.Tick, "seed", rc.Seed)
	return tui.Run(opts)
}
