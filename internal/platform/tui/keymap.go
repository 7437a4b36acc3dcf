package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/defender/internal/core"
)

// holdWindow is how long a movement key counts as held after a press.
// Terminals report presses and auto-repeats but never releases.
const holdWindow = 0.15 // seconds

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case " ", "k", "up":
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
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
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action. Letters are left
// to the name field, so only special keys navigate.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c":
		return MenuActionQuit
	case "up":
		return MenuActionUp
	case "down":
		return MenuActionDown
	case "enter":
		return MenuActionSelect
	case "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// HeldKeys stretches discrete key presses into held movement over a
// number of ticks. Pressing one direction releases the other.
type HeldKeys struct {
	window    int
	remaining map[core.Action]int
}

// NewHeldKeys creates a tracker whose hold window matches tickRate.
func NewHeldKeys(tickRate int) *HeldKeys {
	if tickRate <= 0 {
		tickRate = 60
	}
	window := int(holdWindow*float64(tickRate) + 0.999)
	if window < 1 {
		window = 1
	}
	return &HeldKeys{window: window, remaining: make(map[core.Action]int)}
}

// Window returns the hold window in ticks.
func (h *HeldKeys) Window() int {
	return h.window
}

// Press marks a movement action held for the full window.
func (h *HeldKeys) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.remaining, core.ActionRight)
	case core.ActionRight:
		delete(h.remaining, core.ActionLeft)
	default:
		return
	}
	h.remaining[a] = h.window
}

// Apply sets every held action on frame and ages the holds by one tick.
func (h *HeldKeys) Apply(frame *core.InputFrame) {
	for a, n := range h.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
}

// Release drops every hold.
func (h *HeldKeys) Release() {
	clear(h.remaining)
}

// isMovement reports whether a is held rather than one-shot.
func isMovement(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight
}
