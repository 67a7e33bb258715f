package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout-host/internal/core"
	"github.com/vovakirdan/breakout-host/internal/platform/window"
	"github.com/vovakirdan/breakout-host/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window [game]",
	Short: "Play a game in a desktop window",
	Long: `Open a desktop window for the given game (default: breakout).

Window input sees real key holds, so the paddle moves for exactly as long
as a direction key is down.

Controls:
  A/D, Left/Right  - Move paddle
  P/Space          - Pause
  R                - Restart (after all bricks are cleared)
  Esc/Q            - Quit

Examples:
  host window
  host window breakout --speed 600
  host window hello --greeting "Hello from the host"`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	addGameFlags(windowCmd)
}

func runWindow(cmd *cobra.Command, args []string) {
	gameID := "breakout"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fatal.Abort("unknown game", fmt.Errorf("no game %q, run 'host list'", gameID))
	}

	prepareGame(cmd, gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		fatal.Abort("cannot create game", err, "game", gameID)
	}

	// Text games get a fixed grid; the terminal size is irrelevant here.
	cfg := runtimeConfig()
	def := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH

	store := openStore()
	runErr := window.Run(game, store, cfg, logger)
	closeStore(store)

	if runErr != nil {
		fatal.Abort("window closed with error", runErr, "game", gameID)
	}
}
