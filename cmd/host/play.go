package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout-host/internal/platform/tui"
	"github.com/vovakirdan/breakout-host/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game in the terminal.

Controls:
  A/D, Left/Right  - Move paddle (held for a moment after each press)
  P/Space          - Pause
  R                - Restart (after all bricks are cleared)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options (Breakout):
  easy   - 0.75x speed
  normal - configured speed
  hard   - 1.5x speed

Examples:
  host play breakout
  host play breakout --speed 450
  host play breakout --difficulty hard
  host play breakout --config ./my-breakout.yaml
  host play hello --greeting "Hi there"`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fatal.Abort("unknown game", fmt.Errorf("no game %q, run 'host list'", gameID))
	}

	prepareGame(cmd, gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		fatal.Abort("cannot create game", err, "game", gameID)
	}

	store := openStore()
	runErr := tui.Run(game, store, runtimeConfig())
	closeStore(store)

	if runErr != nil {
		fatal.Abort("game stopped", runErr, "game", gameID)
	}
}
