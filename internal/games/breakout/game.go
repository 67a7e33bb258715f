// Package breakout implements the Breakout simulation: one ball, one paddle,
// four walls and a grid of bricks, advanced by a fixed sequence of systems
// each tick.
package breakout

import (
	"sync"

	"github.com/vovakirdan/breakout-host/internal/config"
	"github.com/vovakirdan/breakout-host/internal/core"
	"github.com/vovakirdan/breakout-host/internal/host"
	"github.com/vovakirdan/breakout-host/internal/registry"
)

// GameState constants
const (
	StatePlaying = "playing" // Ball in play
	StatePaused  = "paused"  // Game paused
	StateCleared = "cleared" // Every brick destroyed
	StateFailed  = "failed"  // World could not be built
)

// configPath stores the custom config path set via CLI
var configPath string

// loadedCfg is the config read from configPath. It is read once per path so
// restarts never see a changed file.
var (
	loadedMu   sync.Mutex
	loadedCfg  *config.BreakoutConfig
	loadedPath string
)

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// speedSource supplies the speed scalar when a game was not given its own
var speedSource host.SpeedSource

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	loadedMu.Lock()
	defer loadedMu.Unlock()
	configPath = path
	loadedCfg = nil
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetSpeedSource sets the process-wide speed source used by registry-created
// games. It is wrapped with host.OnceSpeed so restarts reuse the first value.
func SetSpeedSource(src host.SpeedSource) {
	if src == nil {
		speedSource = nil
		return
	}
	speedSource = host.OnceSpeed(src)
}

// Game implements the Breakout game logic.
type Game struct {
	world    *World
	state    string
	err      error
	speed    float64
	contacts []Contact

	tickCount int
	dt        float64

	// Configuration
	runtime  core.RuntimeConfig
	cfg      config.BreakoutConfig
	fixedCfg *config.BreakoutConfig
	src      host.SpeedSource

	// Layout
	minScreenW int
	minScreenH int
}

// New creates a Breakout game that loads its config from the search path and
// takes its speed from the source set with SetSpeedSource.
func New() *Game {
	return &Game{minScreenW: 30, minScreenH: 12}
}

// NewWithConfig creates a Breakout game bound to an explicit config and speed
// source. A nil src falls back to cfg.Speed.
func NewWithConfig(cfg config.BreakoutConfig, src host.SpeedSource) *Game {
	g := New()
	g.fixedCfg = &cfg
	if src != nil {
		g.src = host.OnceSpeed(src)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset builds a fresh world. The speed source is consulted here; sources
// installed through SetSpeedSource or NewWithConfig answer only once, so a
// restart keeps the original speed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.dt = runtime.TimeStep()
	g.tickCount = 0
	g.contacts = nil
	g.world = nil
	g.err = nil

	cfg := g.loadConfig()
	speed, err := g.speedSource(cfg).Speed()
	if err != nil {
		g.fail(cfg, err)
		return
	}
	cfg.Speed = speed
	if difficultyPreset != "" && g.fixedCfg == nil {
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.speed = cfg.Speed

	world, err := NewWorld(cfg, cfg.Speed)
	if err != nil {
		g.fail(cfg, err)
		return
	}
	g.world = world
	g.state = StatePlaying
}

func (g *Game) fail(cfg config.BreakoutConfig, err error) {
	g.cfg = cfg
	g.err = err
	g.state = StateFailed
}

// loadConfig returns the bound config, or the config from the search path.
// The search path is read on first use only.
func (g *Game) loadConfig() config.BreakoutConfig {
	if g.fixedCfg != nil {
		return *g.fixedCfg
	}

	loadedMu.Lock()
	defer loadedMu.Unlock()
	if loadedCfg == nil || loadedPath != configPath {
		cfg, err := config.LoadBreakout(configPath)
		if err != nil {
			cfg = config.DefaultBreakoutConfig()
		}
		loadedCfg = &cfg
		loadedPath = configPath
	}
	return *loadedCfg
}

func (g *Game) speedSource(cfg config.BreakoutConfig) host.SpeedSource {
	switch {
	case g.src != nil:
		return g.src
	case g.fixedCfg == nil && speedSource != nil:
		return speedSource
	default:
		return host.Static{SpeedValue: cfg.Speed}
	}
}

// Step advances the game by one tick. Systems run in a fixed order: paddle
// movement, ball movement, collision resolution, scoreboard refresh.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state == StateFailed {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.state == StateCleared {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	w := g.world
	MovePaddle(w.Paddle, in.Direction(), g.dt)
	MoveBall(w.Ball, g.dt)
	g.contacts = ResolveCollisions(w)
	RefreshScoreboard(&w.Scoreboard)

	if w.BricksRemaining() == 0 {
		g.state = StateCleared
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.world != nil {
		score = g.world.Scoreboard.Score
	}
	return core.GameState{
		Score:    score,
		GameOver: g.state == StateCleared || g.state == StateFailed,
		Paused:   g.state == StatePaused,
	}
}

// World returns the simulated world, or nil if it could not be built.
func (g *Game) World() *World {
	return g.world
}

// Err returns the error that stopped the world from being built.
func (g *Game) Err() error {
	return g.err
}

// Speed returns the speed scalar the current world was built with.
func (g *Game) Speed() float64 {
	return g.speed
}

// Ticks returns the number of simulated ticks since the last reset.
func (g *Game) Ticks() int {
	return g.tickCount
}

// Contacts returns the colliders the ball touched on the last tick.
func (g *Game) Contacts() []Contact {
	return g.contacts
}

// Phase returns the raw state string (playing, paused, cleared, failed).
func (g *Game) Phase() string {
	return g.state
}

// Register the game with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
