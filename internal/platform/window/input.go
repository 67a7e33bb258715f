package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/breakout-host/internal/core"
)

// KeyReader reports keyboard state for the current tick.
type KeyReader interface {
	// Held reports whether k is down right now.
	Held(k ebiten.Key) bool
	// Tapped reports whether k went down on this tick.
	Tapped(k ebiten.Key) bool
}

type ebitenKeys struct{}

// EbitenKeys reads the live Ebitengine keyboard state.
func EbitenKeys() KeyReader {
	return ebitenKeys{}
}

func (ebitenKeys) Held(k ebiten.Key) bool   { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) Tapped(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// Bindings. Directions are level-triggered, everything else edge-triggered.
var (
	leftKeys    = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys   = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	pauseKeys   = []ebiten.Key{ebiten.KeyP, ebiten.KeySpace}
	restartKeys = []ebiten.Key{ebiten.KeyR}
	quitKeys    = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// ReadInput builds the input frame for one tick.
// Returns true as the second value when the player asked to quit.
func ReadInput(keys KeyReader) (core.InputFrame, bool) {
	frame := core.NewInputFrame()

	if anyKey(keys.Tapped, quitKeys) {
		frame.Set(core.ActionQuit)
		return frame, true
	}

	if anyKey(keys.Held, leftKeys) {
		frame.Set(core.ActionLeft)
	}
	if anyKey(keys.Held, rightKeys) {
		frame.Set(core.ActionRight)
	}
	if anyKey(keys.Tapped, pauseKeys) {
		frame.Set(core.ActionPause)
	}
	if anyKey(keys.Tapped, restartKeys) {
		frame.Set(core.ActionRestart)
	}
	return frame, false
}

func anyKey(pressed func(ebiten.Key) bool, keys []ebiten.Key) bool {
	for _, k := range keys {
		if pressed(k) {
			return true
		}
	}
	return false
}
