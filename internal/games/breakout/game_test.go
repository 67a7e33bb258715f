package breakout

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/breakout-host/internal/config"
	"github.com/vovakirdan/breakout-host/internal/core"
	"github.com/vovakirdan/breakout-host/internal/host"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}
}

func newTestGame(t *testing.T, speed float64) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultBreakoutConfig(), host.Static{SpeedValue: speed})
	g.Reset(testRuntime())
	if g.Err() != nil {
		t.Fatalf("Reset() failed: %v", g.Err())
	}
	return g
}

func TestGameDeterminism(t *testing.T) {
	// Alternate left/right bursts so the paddle and ball both travel
	inputSequence := make([]core.InputFrame, 600)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		switch {
		case i%40 < 15:
			inputSequence[i].Set(core.ActionRight)
		case i%40 < 30:
			inputSequence[i].Set(core.ActionLeft)
		}
	}

	run := func() Snapshot {
		g := newTestGame(t, 400)
		for _, in := range inputSequence {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
	if snap1.BallX != snap2.BallX || snap1.BallY != snap2.BallY {
		t.Errorf("Determinism failed: ball positions differ")
	}
}

func TestGameStaysInsideWalls(t *testing.T) {
	g := newTestGame(t, 400)

	for tick := range 3000 {
		in := core.NewInputFrame()
		if (tick/90)%2 == 0 {
			in.Set(core.ActionRight)
		} else {
			in.Set(core.ActionLeft)
		}
		if g.Step(in).State.GameOver {
			break
		}

		c := g.World().Ball.Box.Center
		if c.X < -455 || c.X > 455 || c.Y < -305 || c.Y > 305 {
			t.Fatalf("tick %d: ball escaped to %+v", tick, c)
		}
		if x := g.World().Paddle.Box.Center.X; x < -380 || x > 380 {
			t.Fatalf("tick %d: paddle x = %v", tick, x)
		}
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, 400)

	for i := range 50 {
		in := core.NewInputFrame()
		if i%2 == 0 {
			in.Set(core.ActionRight)
		}
		g.Step(in)
	}

	g.Reset(testRuntime())

	if g.State().Score != 0 {
		t.Errorf("Reset should clear score, got %d", g.State().Score)
	}
	if g.Phase() != StatePlaying {
		t.Errorf("Reset should set state to playing, got %s", g.Phase())
	}
	if g.Ticks() != 0 {
		t.Errorf("Reset should clear tickCount, got %d", g.Ticks())
	}
	if g.World().Ball.Box.Center != core.V2(0, -50) {
		t.Errorf("Reset should put the ball back, got %+v", g.World().Ball.Box.Center)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, 400)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	ball := g.World().Ball.Box.Center
	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	for range 10 {
		g.Step(right)
	}
	if g.World().Ball.Box.Center != ball || g.World().Paddle.Box.Center.X != 0 {
		t.Error("paused game should not advance")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestGameClearedAndRestart(t *testing.T) {
	calls := 0
	src := host.SpeedFunc(func() (float64, error) {
		calls++
		return 300, nil
	})
	g := NewWithConfig(config.DefaultBreakoutConfig(), src)
	g.Reset(testRuntime())

	// Remove every brick but one and drop the ball onto it.
	w := g.World()
	var last *Collider
	kept := w.Colliders[:0]
	for _, c := range w.Colliders {
		if c.Kind == ColliderScorable {
			if last != nil {
				w.Scoreboard.Score++
				continue
			}
			last = c
		}
		kept = append(kept, c)
	}
	w.Colliders = kept
	w.Ball.Box.Center = last.Box.Center
	w.Ball.Velocity = core.V2(0, 0)

	result := g.Step(core.NewInputFrame())
	if !result.State.GameOver || g.Phase() != StateCleared {
		t.Fatalf("game should be cleared, state %s", g.Phase())
	}
	if result.State.Score != 20 {
		t.Errorf("score = %d, expected 20", result.State.Score)
	}

	// Cleared game ignores movement
	g.Step(core.NewInputFrame())
	if g.Ticks() != 1 {
		t.Errorf("cleared game should not tick, got %d ticks", g.Ticks())
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.Phase() != StatePlaying || g.State().Score != 0 {
		t.Errorf("restart should start a fresh world, got %s score %d", g.Phase(), g.State().Score)
	}
	if g.Speed() != 300 {
		t.Errorf("restart should keep speed 300, got %v", g.Speed())
	}
	if calls != 1 {
		t.Errorf("speed source consulted %d times, expected once", calls)
	}
}

func TestGameSpeedSourceError(t *testing.T) {
	boom := errors.New("speed unavailable")
	g := NewWithConfig(config.DefaultBreakoutConfig(), host.SpeedFunc(func() (float64, error) {
		return 0, boom
	}))
	g.Reset(testRuntime())

	if !errors.Is(g.Err(), boom) {
		t.Fatalf("Err() = %v, expected %v", g.Err(), boom)
	}
	if g.World() != nil {
		t.Error("no world should be built")
	}
	if !g.Step(core.NewInputFrame()).State.GameOver {
		t.Error("failed game should report game over")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Cannot start Breakout") {
		t.Error("failed game should render its error")
	}
}

func TestGameUsesPackageSpeedSource(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	SetSpeedSource(host.Static{SpeedValue: 123})
	t.Cleanup(func() { SetSpeedSource(nil) })

	g := New()
	g.Reset(testRuntime())
	if g.Speed() != 123 {
		t.Errorf("Speed() = %v, expected 123 from the package source", g.Speed())
	}
}

func TestGameDifficultyPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	SetSpeedSource(host.Static{SpeedValue: 400})
	SetDifficultyPreset("hard")
	t.Cleanup(func() {
		SetSpeedSource(nil)
		SetDifficultyPreset("")
	})

	g := New()
	g.Reset(testRuntime())
	if g.Speed() != 600 {
		t.Errorf("Speed() = %v, expected 600 on hard", g.Speed())
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, 400)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.HasPrefix(strings.TrimSpace(screen.Row(0)), "Score: 0") {
		t.Errorf("HUD row = %q, expected the scoreboard text", screen.Row(0))
	}

	out := screen.String()
	for _, r := range []rune{BallChar, PaddleChar, BrickChar, WallChar} {
		if !strings.ContainsRune(out, r) {
			t.Errorf("render is missing %q", r)
		}
	}

	// Ball (layer 1) sits above the paddle row.
	vp := NewViewport(g.World().Bounds, hudRows, 80, 23)
	bx, by := vp.Cell(g.World().Ball.Box.Center)
	if cell := screen.GetCell(bx, by); cell.Rune != BallChar || cell.Color != core.ColorBall {
		t.Errorf("ball cell = %+v", cell)
	}
	paddle := vp.Rect(g.World().Paddle.Box)
	if by >= paddle.Y {
		t.Errorf("ball row %d should be above paddle row %d", by, paddle.Y)
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newTestGame(t, 400)
	screen := core.NewScreen(20, 8)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("small screen should show a hint")
	}
}

func TestViewportCoversCorners(t *testing.T) {
	bounds := core.NewBox(0, 0, 910, 610)
	vp := NewViewport(bounds, 1, 80, 23)

	if r := vp.Rect(core.NewBox(-450, 0, 10, 610)); r.X != 0 || r.Y != 1 || r.Bottom() != 24 {
		t.Errorf("left wall rect = %+v", r)
	}
	if r := vp.Rect(core.NewBox(450, 0, 10, 610)); r.Right() != 80 {
		t.Errorf("right wall rect = %+v", r)
	}
	if r := vp.Rect(core.NewBox(0, 300, 910, 10)); r.Y != 1 || r.W != 80 {
		t.Errorf("top wall rect = %+v", r)
	}
	if x, y := vp.Cell(core.V2(0, 0)); x != 40 || y != 12 {
		t.Errorf("origin cell = (%d,%d), expected (40,12)", x, y)
	}
}

func TestGameConfigReadOncePerPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "breakout.yaml")
	if err := os.WriteFile(path, []byte("speed: 250\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(testRuntime())
	if g.Speed() != 250 {
		t.Fatalf("Speed() = %v, expected 250 from the config file", g.Speed())
	}

	if err := os.WriteFile(path, []byte("speed: 900\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	g.Reset(testRuntime())
	if g.Speed() != 250 {
		t.Errorf("restart Speed() = %v, expected 250; the config must not be reread", g.Speed())
	}

	fresh := New()
	fresh.Reset(testRuntime())
	if fresh.Speed() != 250 {
		t.Errorf("new game Speed() = %v, expected 250 from the first read", fresh.Speed())
	}
}
