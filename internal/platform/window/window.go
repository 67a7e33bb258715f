// Package window runs a registered game in a desktop window with Ebitengine.
//
// Unlike the terminal frontend, a window sees real key holds, so paddle
// movement follows the key state directly. Games that expose a Breakout
// world are drawn as filled rectangles in world units; anything else is
// drawn from its character screen.
package window

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/breakout-host/internal/core"
	"github.com/vovakirdan/breakout-host/internal/games/breakout"
	"github.com/vovakirdan/breakout-host/internal/registry"
	"github.com/vovakirdan/breakout-host/internal/storage"
)

// Debug font cell size in pixels.
const (
	cellW = 6
	cellH = 16
)

// worldGame is implemented by games with a Breakout world to draw.
type worldGame interface {
	World() *breakout.World
	Phase() string
}

// rankedGame is implemented by games whose score goes on the leaderboard.
type rankedGame interface {
	Speed() float64
}

// Frontend adapts a registry.Game to ebiten.Game.
type Frontend struct {
	game   registry.Game
	store  *storage.Store
	logger *log.Logger
	cfg    core.RuntimeConfig
	screen *core.Screen
	keys   KeyReader

	width, height int // logical size, fixed after the first reset
	state         core.GameState
	scoreSaved    bool
}

// New resets game and prepares a frontend for it. store and logger may be nil.
func New(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) *Frontend {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.Default()
	}

	f := &Frontend{
		game:   game,
		store:  store,
		logger: logger,
		cfg:    cfg,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:   EbitenKeys(),
	}
	game.Reset(cfg)
	f.state = game.State()
	f.width, f.height = f.logicalSize()
	return f
}

// logicalSize is the world extent for world games, the character grid otherwise.
func (f *Frontend) logicalSize() (int, int) {
	if w := f.world(); w != nil {
		return int(w.Bounds.Size.X), int(w.Bounds.Size.Y)
	}
	return f.screen.Width() * cellW, f.screen.Height() * cellH
}

func (f *Frontend) world() *breakout.World {
	if wg, ok := f.game.(worldGame); ok {
		return wg.World()
	}
	return nil
}

// Update advances the game by one tick. Quit ends the run loop.
func (f *Frontend) Update() error {
	in, quit := ReadInput(f.keys)
	if quit {
		f.saveScore()
		return ebiten.Termination
	}

	if in.Has(core.ActionRestart) && f.state.GameOver {
		f.game.Reset(f.cfg)
		f.state = f.game.State()
		f.scoreSaved = false
		return nil
	}

	f.state = f.game.Step(in).State
	if f.state.GameOver {
		f.saveScore()
	}
	return nil
}

// saveScore records the score of a ranked game once per run.
func (f *Frontend) saveScore() {
	ranked, ok := f.game.(rankedGame)
	if !ok || f.scoreSaved || f.state.Score <= 0 {
		return
	}
	f.scoreSaved = true
	if f.store == nil {
		return
	}

	if _, err := f.store.SaveScore(f.game.ID(), f.state.Score, ranked.Speed()); err != nil {
		f.logger.Warn("could not save score", "game", f.game.ID(), "error", err)
	}
}

// Draw renders the current state.
func (f *Frontend) Draw(dst *ebiten.Image) {
	dst.Fill(core.ColorDefault.RGBA())

	w := f.world()
	if w == nil {
		f.drawText(dst)
		return
	}

	for _, c := range w.Colliders {
		x, y, cw, ch := toScreen(*c.Box, w.Bounds)
		vector.DrawFilledRect(dst, x, y, cw, ch, colliderColor(c).RGBA(), false)
	}
	x, y, bw, bh := toScreen(w.Ball.Box, w.Bounds)
	vector.DrawFilledRect(dst, x, y, bw, bh, core.ColorBall.RGBA(), true)

	ebitenutil.DebugPrintAt(dst, w.Scoreboard.Text, 2*cellW, cellH)

	switch f.game.(worldGame).Phase() {
	case breakout.StatePaused:
		f.printCentered(dst, "PAUSED", f.height/2)
	case breakout.StateCleared:
		f.printCentered(dst, "ALL BRICKS CLEARED", f.height/2-cellH)
		f.printCentered(dst, fmt.Sprintf("%s  |  Press R to restart", w.Scoreboard.Text), f.height/2+cellH)
	}
}

// drawText prints the game's character screen line by line.
func (f *Frontend) drawText(dst *ebiten.Image) {
	f.game.Render(f.screen)
	for y := range f.screen.Height() {
		ebitenutil.DebugPrintAt(dst, f.screen.Row(y), 0, y*cellH)
	}
}

func (f *Frontend) printCentered(dst *ebiten.Image, text string, y int) {
	x := (f.width - len([]rune(text))*cellW) / 2
	ebitenutil.DebugPrintAt(dst, text, max(x, 0), y)
}

// Layout keeps the logical size fixed; Ebitengine scales it to the window.
func (f *Frontend) Layout(_, _ int) (int, int) {
	return f.width, f.height
}

// State returns the game state after the last update.
func (f *Frontend) State() core.GameState {
	return f.state
}

// colliderColor picks the fill for a collider by kind.
func colliderColor(c *breakout.Collider) core.Color {
	switch c.Kind {
	case breakout.ColliderScorable:
		return core.ColorBrick
	case breakout.ColliderPaddle:
		return core.ColorPaddle
	default:
		return core.ColorGray
	}
}

// toScreen maps a world box (y up, origin at the center of bounds) to a
// pixel rectangle (y down, origin at the top-left of bounds).
func toScreen(b, bounds core.Box) (x, y, w, h float32) {
	lo, hi := b.Min(), b.Max()
	return float32(lo.X - bounds.Min().X),
		float32(bounds.Max().Y - hi.Y),
		float32(b.Size.X),
		float32(b.Size.Y)
}

// Run opens a window for game and blocks until it is closed or the player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	f := New(game, store, cfg, logger)

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(f.width, f.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(f.cfg.TickRate)

	f.logger.Debug("opening window", "game", game.ID(), "width", f.width, "height", f.height, "tps", f.cfg.TickRate)
	if err := ebiten.RunGame(f); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
