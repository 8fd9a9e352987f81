package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-roids/internal/core"
)

// DefaultHoldWindow is how long a held key survives without a repeat.
// It must exceed the terminal's initial key-repeat delay.
const DefaultHoldWindow = 550 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "left", "a":
		return core.ActionRotateLeft, false
	case "right", "d":
		return core.ActionRotateRight, false
	case "up", "w":
		return core.ActionThrust, false
	case " ", "space":
		return core.ActionFire, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "b", "esc":
		return core.ActionBack, false
	}

	return core.ActionNone, false
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

// HoldTracker turns the terminal's stream of key-down repeats into press
// and release edges. Terminals never report key-up, so a held action is
// released once no repeat has arrived within the hold window.
//
// Fire is not held: every fire key event is a separate tap, pressed and
// released within one frame.
type HoldTracker struct {
	window time.Duration
	held   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker. A non-positive window uses DefaultHoldWindow.
func NewHoldTracker(window time.Duration) *HoldTracker {
	h := &HoldTracker{held: make(map[core.Action]time.Time)}
	h.SetWindow(window)
	return h
}

// SetWindow changes the hold window.
func (h *HoldTracker) SetWindow(window time.Duration) {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	h.window = window
}

// Window returns the hold window.
func (h *HoldTracker) Window() time.Duration {
	return h.window
}

// opposite returns the action that cannot be held together with a.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionRotateLeft:
		return core.ActionRotateRight
	case core.ActionRotateRight:
		return core.ActionRotateLeft
	default:
		return core.ActionNone
	}
}

// Holdable reports whether a is tracked as a held key.
func Holdable(a core.Action) bool {
	switch a {
	case core.ActionRotateLeft, core.ActionRotateRight, core.ActionThrust:
		return true
	default:
		return false
	}
}

// Key records a key event for a at now and writes it into frame.
// Every repeat of a held action presses it again, so a craft built while
// the key is down (respawn, new game, unpause) picks the control up.
func (h *HoldTracker) Key(a core.Action, now time.Time, frame *core.InputFrame) {
	if a == core.ActionFire {
		frame.Release(a)
		frame.Set(a)
		return
	}
	if !Holdable(a) {
		frame.Set(a)
		return
	}

	if opp := opposite(a); opp != core.ActionNone {
		if _, ok := h.held[opp]; ok {
			delete(h.held, opp)
			frame.Release(opp)
		}
	}

	frame.Set(a)
	h.held[a] = now
}

// Expire releases every held action whose last repeat is older than the window.
func (h *HoldTracker) Expire(now time.Time, frame *core.InputFrame) {
	for a, last := range h.held {
		if now.Sub(last) > h.window {
			delete(h.held, a)
			frame.Release(a)
		}
	}
}

// ReleaseAll releases every held action.
func (h *HoldTracker) ReleaseAll(frame *core.InputFrame) {
	for a := range h.held {
		delete(h.held, a)
		frame.Release(a)
	}
}

// Held reports whether a is currently held.
func (h *HoldTracker) Held(a core.Action) bool {
	_, ok := h.held[a]
	return ok
}
