// Package hello implements the greeting loop: every tick it asks its
// greeting source for a line and appends it to a scrollback.
package hello

import (
	"fmt"

	"github.com/vovakirdan/breakout-host/internal/config"
	"github.com/vovakirdan/breakout-host/internal/core"
	"github.com/vovakirdan/breakout-host/internal/host"
	"github.com/vovakirdan/breakout-host/internal/registry"
)

// Package-level variables for config
var (
	configPath     string
	greetingSource host.GreetingSource
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetGreetingSource sets the source used by registry-created games.
// nil restores the configured greeting.
func SetGreetingSource(src host.GreetingSource) {
	greetingSource = src
}

// Game implements the greeting loop.
type Game struct {
	src     host.GreetingSource
	fixed   bool
	lines   []string
	history int
	printed int
	tick    uint64
	paused  bool
	err     error
	runtime core.RuntimeConfig
}

// New creates a greeting loop that polls the package-level source.
func New() *Game {
	return &Game{}
}

// NewWithSource creates a greeting loop bound to src, keeping at most
// history lines.
func NewWithSource(src host.GreetingSource, history int) *Game {
	return &Game{src: src, fixed: true, history: history}
}

func init() {
	registry.Register("hello", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "hello"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Hello, World"
}

// Reset clears the scrollback and resolves the greeting source.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.lines = g.lines[:0]
	g.printed = 0
	g.tick = 0
	g.paused = false
	g.err = nil

	if g.fixed {
		if g.history <= 0 {
			g.history = config.DefaultHelloConfig().History
		}
		return
	}

	hc, err := config.LoadHello(configPath)
	if err != nil {
		hc = config.DefaultHelloConfig()
	}
	g.history = hc.History
	if g.history <= 0 {
		g.history = cfg.ScreenH
	}
	g.src = greetingSource
	if g.src == nil {
		g.src = host.Static{GreetingText: hc.Greeting}
	}
}

// Step polls the greeting source once and records the line.
// A source error ends the loop.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.err != nil {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.err == nil {
		g.paused = !g.paused
	}
	if g.paused || g.err != nil {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	line, err := g.src.Greeting()
	if err != nil {
		g.err = fmt.Errorf("hello: greeting source: %w", err)
		return core.StepResult{State: g.State()}
	}

	g.lines = append(g.lines, line)
	if len(g.lines) > g.history {
		g.lines = g.lines[len(g.lines)-g.history:]
	}
	g.printed++

	return core.StepResult{State: g.State()}
}

// Lines returns the scrollback, oldest first.
func (g *Game) Lines() []string {
	return g.lines
}

// Err returns the error that stopped the loop, if any.
func (g *Game) Err() error {
	return g.err
}

// State returns the current game state. Score counts printed lines.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.printed,
		GameOver: g.err != nil,
		Paused:   g.paused,
	}
}

// Render draws the newest lines bottom-aligned under a status row.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	status := fmt.Sprintf("Hello loop | tick %d | %d lines", g.tick, g.printed)
	if g.paused {
		status += " | PAUSED"
	}
	dst.DrawTextColor(0, 0, status, core.ColorGray)

	bottom := dst.Height() - 1
	if g.err != nil {
		dst.DrawTextColor(0, bottom, g.err.Error(), core.ColorRed)
		bottom--
	}

	y := bottom
	for i := len(g.lines) - 1; i >= 0 && y >= 1; i-- {
		dst.DrawTextColor(0, y, g.lines[i], core.ColorGreen)
		y--
	}
}
