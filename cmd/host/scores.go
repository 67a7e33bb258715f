package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout-host/internal/registry"
	"github.com/vovakirdan/breakout-host/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for the specified game, with the
speed each run was played at. Without a game, show a summary of every
game that has recorded scores.

Examples:
  host scores
  host scores breakout
  host scores breakout --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored score for the game")
}

func runScores(_ *cobra.Command, args []string) {
	if len(args) == 0 {
		runScoresSummary()
		return
	}
	gameID := args[0]

	if !registry.Exists(gameID) {
		fatal.Abort("unknown game", fmt.Errorf("no game %q, run 'host list'", gameID))
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fatal.Abort("cannot create game", err, "game", gameID)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal.Abort("cannot open scores database", err, "path", flagDBPath)
	}
	defer closeStore(store)

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			closeStore(store)
			fatal.Abort("cannot clear scores", err, "game", gameID)
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		closeStore(store)
		fatal.Abort("cannot retrieve scores", err, "game", gameID)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'host play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Speed", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-8.0f  %s\n", i+1, entry.Score, entry.Speed, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Best: %d  |  Runs: %d  |  Avg score: %.1f  |  Avg speed: %.0f\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.AvgSpeed)
	}
}

// runScoresSummary prints one line per game with recorded scores.
func runScoresSummary() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal.Abort("cannot open scores database", err, "path", flagDBPath)
		return
	}
	defer closeStore(store)

	stats, err := store.GetAllGamesStats()
	if err != nil {
		closeStore(store)
		fatal.Abort("cannot retrieve stats", err)
		return
	}
	writeSummary(os.Stdout, stats, registry.List())
}

// writeSummary prints stats for every registered game that has scores,
// in registry order.
func writeSummary(w io.Writer, stats map[string]*storage.GameStats, games []registry.GameInfo) {
	fmt.Fprintln(w, "High Scores")
	fmt.Fprintln(w)

	printed := 0
	for _, g := range games {
		s, ok := stats[g.ID]
		if !ok || s.GamesCount == 0 {
			continue
		}
		if printed == 0 {
			fmt.Fprintf(w, "  %-14s  %-6s  %-6s  %-9s  %-9s  %s\n", "Game", "Best", "Runs", "Avg score", "Avg speed", "Last played")
			fmt.Fprintf(w, "  %-14s  %-6s  %-6s  %-9s  %-9s  %s\n", "----", "----", "----", "---------", "---------", "-----------")
		}
		fmt.Fprintf(w, "  %-14s  %-6d  %-6d  %-9.1f  %-9.0f  %s\n",
			g.Title, s.HighScore, s.GamesCount, s.AvgScore, s.AvgSpeed, s.LastPlayed.Format("2006-01-02 15:04"))
		printed++
	}

	if printed == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'host play breakout' to set the first high score!")
	}
}
