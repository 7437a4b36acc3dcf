package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/defender/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"a", runeKey("a"), core.ActionLeft, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", runeKey("d"), core.ActionRight, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionFire, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionFire, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey = (%v, %v), expected (%v, %v)", action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuActionLeavesLetters(t *testing.T) {
	km := NewKeyMapper()

	if got := km.MapKeyToMenuAction(runeKey("q")); got != MenuActionNone {
		t.Errorf("q = %v, expected none so it can be typed", got)
	}
	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}); got != MenuActionScoreboard {
		t.Errorf("tab = %v, expected scoreboard", got)
	}
	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}); got != MenuActionSelect {
		t.Errorf("enter = %v, expected select", got)
	}
}

func TestHeldKeysWindow(t *testing.T) {
	tests := []struct {
		rate, window int
	}{
		{60, 9},
		{30, 5},
		{10, 2},
		{1, 1},
		{0, 9},
	}
	for _, tt := range tests {
		if got := NewHeldKeys(tt.rate).Window(); got != tt.window {
			t.Errorf("NewHeldKeys(%d).Window() = %d, expected %d", tt.rate, got, tt.window)
		}
	}
}

func TestHeldKeysApply(t *testing.T) {
	h := NewHeldKeys(10)
	h.Press(core.ActionLeft)

	for tick := range h.Window() {
		frame := core.NewInputFrame()
		h.Apply(&frame)
		if !frame.Has(core.ActionLeft) {
			t.Fatalf("tick %d: left should still be held", tick)
		}
	}

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.Has(core.ActionLeft) {
		t.Error("left should expire after the window")
	}
}

func TestHeldKeysOppositeReleases(t *testing.T) {
	h := NewHeldKeys(60)
	h.Press(core.ActionLeft)
	h.Press(core.ActionRight)

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.Has(core.ActionLeft) || !frame.Has(core.ActionRight) {
		t.Errorf("expected only right held, left=%v right=%v",
			frame.Has(core.ActionLeft), frame.Has(core.ActionRight))
	}

	h.Press(core.ActionFire)
	h.Release()
	frame = core.NewInputFrame()
	h.Apply(&frame)
	if frame.Has(core.ActionRight) || frame.Has(core.ActionFire) {
		t.Error("Release should drop every hold and fire is never held")
	}
}
