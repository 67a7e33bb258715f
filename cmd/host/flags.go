package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/breakout-host/internal/config"
	"github.com/vovakirdan/breakout-host/internal/core"
	"github.com/vovakirdan/breakout-host/internal/games/breakout"
	"github.com/vovakirdan/breakout-host/internal/games/hello"
	"github.com/vovakirdan/breakout-host/internal/host"
)

// Game flags shared by every command that runs a game.
var (
	flagConfig     string
	flagDifficulty string
	flagSpeed      float64
	flagGreeting   string
)

// addGameFlags registers the game flags on cmd.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Breakout difficulty preset: easy, normal, hard")
	cmd.Flags().Float64Var(&flagSpeed, "speed", 0, "Breakout speed, read once at startup (default from config)")
	cmd.Flags().StringVar(&flagGreeting, "greeting", "", "Hello greeting text (default from config)")
}

// prepareGame applies the game flags to gameID before it is created.
// Anything that cannot start the game goes through the fatal path.
func prepareGame(cmd *cobra.Command, gameID string) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fatal.Abort("invalid flag", err, "flag", "difficulty")
		return
	}

	switch gameID {
	case "breakout":
		var src host.SpeedSource
		var speed *float64
		if cmd.Flags().Changed("speed") {
			src = host.OnceSpeed(host.Static{SpeedValue: flagSpeed})
			v, err := src.Speed()
			if err != nil {
				fatal.Abort("cannot obtain speed", err)
				return
			}
			logger.Debug("speed fetched", "speed", v)
			speed = &v
		}

		if err := checkBreakoutConfig(flagConfig, speed, preset); err != nil {
			fatal.Abort("cannot start breakout", err, "path", flagConfig)
			return
		}
		breakout.SetConfigPath(flagConfig)
		breakout.SetDifficultyPreset(flagDifficulty)
		if src != nil {
			breakout.SetSpeedSource(src)
		}

	case "hello":
		if _, err := config.LoadHello(flagConfig); err != nil {
			fatal.Abort("cannot load hello config", err, "path", flagConfig)
			return
		}
		hello.SetConfigPath(flagConfig)
		if flagGreeting != "" {
			hello.SetGreetingSource(host.Static{GreetingText: flagGreeting})
		}
	}
}

// checkBreakoutConfig loads the Breakout config the way the game will and
// checks a world can be built from it. speed, when set, replaces the
// configured speed before the preset is applied.
func checkBreakoutConfig(path string, speed *float64, preset config.DifficultyPreset) error {
	cfg, err := config.LoadBreakout(path)
	if err != nil {
		return err
	}
	if speed != nil {
		cfg.Speed = *speed
	}
	if preset != "" {
		config.ApplyBreakoutPreset(&cfg, preset)
	}
	return cfg.Validate()
}

// runtimeConfig builds the runtime config from the global flags, sized to
// the terminal when stdout is one.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}
