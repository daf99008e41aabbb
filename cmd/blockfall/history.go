package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagHistoryPlain bool
	flagHistoryLimit int
	flagHistoryClear bool
	flagHistoryID    string
)

var historyCmd = &cobra.Command{
	Use:   "history [engine]",
	Short: "Show finished games",
	Long: `Browse the games recorded in the history database.

Without --plain an interactive table opens with one tab per engine.

Examples:
  blockfall history
  blockfall history classic --plain
  blockfall history --session 3f1c...
  blockfall history classic --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print sessions and totals instead of the interactive table")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of sessions to print with --plain")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete recorded sessions for the engine")
	historyCmd.Flags().StringVar(&flagHistoryID, "session", "", "Print one session by its ID")
}

func runHistory(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	engineName := cfg.Engine
	if len(args) == 1 {
		engineName = args[0]
	}
	if !registry.Exists(engineName) {
		fmt.Fprintf(os.Stderr, "Error: unknown engine %q\n", engineName)
		fmt.Fprintln(os.Stderr, "Run 'blockfall list' to see available engines.")
		os.Exit(1)
	}

	store, err := storage.Open(cfg.History.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagHistoryID != "":
		if !printSession(os.Stdout, store, flagHistoryID) {
			os.Exit(1)
		}
	case flagHistoryClear:
		if err := store.ClearSessions(engineName); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared history for %s.\n", engineName)
	case flagHistoryPlain:
		printHistory(store, engineName, flagHistoryLimit)
	default:
		width, height, sizeErr := term.GetSize(int(os.Stdout.Fd()))
		if sizeErr != nil {
			width, height = 80, 24
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func printHistory(store *storage.Store, engineName string, limit int) {
	sessions, err := store.RecentSessions(engineName, limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recent games - %s\n", engineName)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'blockfall play %s' to record the first one!\n", engineName)
		return
	}

	fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "#", "Played", "Length", "Updates")
	fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "-", "------", "------", "-------")
	for i, s := range sessions {
		fmt.Printf("  %-4d  %-16s  %-8s  %d\n", i+1, s.StartedAt.Format("2006-01-02 15:04"), s.Duration().Round(time.Second), s.Updates)
	}

	stats, err := store.Stats(engineName)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Games: %d  Most updates: %d  Total time: %s\n", stats.Games, stats.MostUpdates, stats.TotalTime.Round(time.Second))
}

// printSession writes one recorded session. It reports false when the
// session cannot be shown.
func printSession(w io.Writer, store *storage.Store, id string) bool {
	s, err := store.SessionByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving session: %v\n", err)
		return false
	}
	if s == nil {
		fmt.Fprintf(os.Stderr, "Error: no session %q\n", id)
		return false
	}

	fmt.Fprintf(w, "Session:  %s\n", s.SessionID)
	fmt.Fprintf(w, "Engine:   %s\n", s.Engine)
	fmt.Fprintf(w, "Started:  %s\n", s.StartedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Length:   %s\n", s.Duration().Round(time.Second))
	fmt.Fprintf(w, "Updates:  %d\n", s.Updates)
	return true
}
