package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout-host/internal/core"
	"github.com/vovakirdan/breakout-host/internal/games/breakout"
)

var (
	flagTicks     int
	flagDirection int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run Breakout headless and print the result",
	Long: `Run Breakout without a frontend for a fixed number of ticks and
print the final snapshot. Runs are deterministic for a given speed, config
and input, so the hash can be compared across machines.

With --log-level debug every collision is logged.

Examples:
  host sim
  host sim --ticks 3600 --speed 500
  host sim --direction 1 --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	addGameFlags(simCmd)
	simCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Number of ticks to simulate")
	simCmd.Flags().IntVar(&flagDirection, "direction", 0, "Paddle input held for the whole run: -1, 0 or 1")
}

func runSim(cmd *cobra.Command, _ []string) {
	if flagDirection < -1 || flagDirection > 1 {
		fatal.Abort("invalid flag", fmt.Errorf("direction must be -1, 0 or 1, got %d", flagDirection), "flag", "direction")
	}

	prepareGame(cmd, "breakout")

	cfg := core.DefaultConfig()
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed

	game := breakout.New()
	game.Reset(cfg)
	if err := game.Err(); err != nil {
		fatal.Abort("cannot start breakout", err)
	}

	in := core.NewInputFrame()
	switch flagDirection {
	case -1:
		in.Set(core.ActionLeft)
	case 1:
		in.Set(core.ActionRight)
	}

	for range flagTicks {
		result := game.Step(in)
		for _, c := range game.Contacts() {
			logger.Debug("contact", "tick", game.Ticks(), "kind", c.Kind, "side", c.Side, "row", c.Row, "col", c.Col)
		}
		if result.State.GameOver {
			break
		}
	}

	snap := game.Snapshot()
	fmt.Printf("ticks:   %d\n", snap.Tick)
	fmt.Printf("state:   %s\n", snap.State)
	fmt.Printf("speed:   %.2f\n", snap.Speed)
	fmt.Printf("score:   %d (%d bricks left)\n", snap.Score, snap.BricksRemaining)
	fmt.Printf("paddle:  x=%.2f\n", snap.PaddleX)
	fmt.Printf("ball:    (%.2f, %.2f) v=(%.2f, %.2f)\n", snap.BallX, snap.BallY, snap.BallVX, snap.BallVY)
	fmt.Printf("hash:    %016x\n", snap.Hash())
}
