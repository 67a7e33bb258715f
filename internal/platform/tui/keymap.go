package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/breakout-host/internal/core"
)

// DefaultHoldWindow is how long a direction key counts as held after its
// last press or repeat. Terminals report no key releases, so holding a key
// is only visible as a stream of repeats.
const DefaultHoldWindow = 250 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
//
// Direction keys are latched for the hold window so the paddle keeps moving
// between key repeats; pressing the opposite direction releases the other.
type KeyMapper struct {
	hold    time.Duration
	latched map[core.Action]time.Time // direction -> release deadline
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return NewKeyMapperWithHold(DefaultHoldWindow)
}

// NewKeyMapperWithHold creates a key mapper with a custom hold window.
func NewKeyMapperWithHold(hold time.Duration) *KeyMapper {
	return &KeyMapper{
		hold:    hold,
		latched: make(map[core.Action]time.Time, 2),
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p", " ":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// Press records a key press at now. Discrete actions go straight into the
// frame; directions are latched and show up through Apply.
// Returns true if the key was a quit request.
func (km *KeyMapper) Press(msg tea.KeyMsg, now time.Time, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionNone:
	case core.ActionLeft, core.ActionRight:
		delete(km.latched, opposite(action))
		km.latched[action] = now.Add(km.hold)
	default:
		frame.Set(action)
	}
	return isQuit
}

// Apply sets every direction still held at now and forgets expired ones.
func (km *KeyMapper) Apply(now time.Time, frame *core.InputFrame) {
	for action, until := range km.latched {
		if now.After(until) {
			delete(km.latched, action)
			continue
		}
		frame.Set(action)
	}
}

// Release drops every latched direction.
func (km *KeyMapper) Release() {
	clear(km.latched)
}

func opposite(a core.Action) core.Action {
	if a == core.ActionLeft {
		return core.ActionRight
	}
	return core.ActionLeft
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
