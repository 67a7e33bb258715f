// host runs the Breakout and hello-world loops in a terminal, a desktop
// window, headless, or over SSH.
//
// Usage:
//
//	host list              - List available games
//	host play <game>       - Play a game in the terminal
//	host menu              - Start menu to pick games interactively
//	host window [game]     - Play a game in a desktop window
//	host greet             - Print the greeting once per tick
//	host sim               - Run Breakout headless and print the result
//	host scores <game>     - Show high scores for a game
//	host serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set seed recorded in the runtime config
//	--db <path>          - Set database path (default: ~/.breakout-host/scores.db)
//	--log-level <level>  - debug, info, warn, error (default: info)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout-host/internal/host"
	"github.com/vovakirdan/breakout-host/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/breakout-host/internal/games/breakout"
	_ "github.com/vovakirdan/breakout-host/internal/games/hello"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

var (
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout-host",
	})
	fatal = host.NewFatal(logger)
)

func main() {
	defer fatal.Recover()

	if err := rootCmd.Execute(); err != nil {
		fatal.Abort("command failed", err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "host",
	Short: "Breakout host - Breakout and hello-world loops driven by outside values",
	Long: `Breakout host runs two small simulations: a Breakout game whose ball
speed is supplied from outside once at startup, and a hello-world loop that
polls a greeting every tick.

Available commands:
  list     - Show all available games
  play     - Play a specific game in the terminal
  menu     - Interactive game picker menu
  window   - Play in a desktop window
  greet    - Print the greeting once per tick
  sim      - Run Breakout headless for a number of ticks
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  host list
  host play breakout --speed 400
  host window breakout --difficulty hard
  host greet --greeting "Hello, World" --count 3
  host sim --ticks 3600
  host serve --ssh :2222`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return err
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Seed recorded in the runtime config (0 = time based)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(greetCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// openStore opens the score database. Play continues without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// closeStore closes store if it was opened.
func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("could not close scores database", "error", err)
	}
}
