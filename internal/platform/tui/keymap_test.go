package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"a", runeKey('a'), core.ActionLeft},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"d", runeKey('d'), core.ActionRight},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"w", runeKey('w'), core.ActionUp},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"s", runeKey('s'), core.ActionDown},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire},
		{"r", runeKey('r'), core.ActionRestart},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestHeldKeysDirectionExpires(t *testing.T) {
	h := NewHeldKeys(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press(core.ActionLeft, t0)

	if f := h.Frame(t0.Add(50 * time.Millisecond)); !f.Has(core.ActionLeft) {
		t.Error("direction should be held inside the window")
	}
	if f := h.Frame(t0.Add(60 * time.Millisecond)); !f.Has(core.ActionLeft) {
		t.Error("held direction should repeat on every frame")
	}
	if f := h.Frame(t0.Add(100 * time.Millisecond)); f.Has(core.ActionLeft) {
		t.Error("direction should be released once the window passes")
	}
}

func TestHeldKeysRepeatExtendsHold(t *testing.T) {
	h := NewHeldKeys(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press(core.ActionUp, t0)
	h.Press(core.ActionUp, t0.Add(80*time.Millisecond))

	if f := h.Frame(t0.Add(150 * time.Millisecond)); !f.Has(core.ActionUp) {
		t.Error("auto-repeat should keep the direction held")
	}
}

func TestHeldKeysOppositeReleases(t *testing.T) {
	h := NewHeldKeys(time.Second)
	t0 := time.Unix(0, 0)

	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionUp, t0)
	h.Press(core.ActionRight, t0)

	f := h.Frame(t0)
	if f.Has(core.ActionLeft) || !f.Has(core.ActionRight) || !f.Has(core.ActionUp) {
		t.Errorf("expected right+up held, got %v", f.Actions)
	}
}

func TestHeldKeysEdgeActionsFireOnce(t *testing.T) {
	h := NewHeldKeys(time.Second)
	t0 := time.Unix(0, 0)

	h.Press(core.ActionFire, t0)
	h.Press(core.ActionFire, t0)

	if f := h.Frame(t0); !f.Has(core.ActionFire) {
		t.Fatal("fire should be delivered on the next frame")
	}
	if f := h.Frame(t0); f.Has(core.ActionFire) {
		t.Error("fire should be consumed after one frame")
	}
}

func TestHeldKeysRelease(t *testing.T) {
	h := NewHeldKeys(time.Second)
	t0 := time.Unix(0, 0)

	h.Press(core.ActionDown, t0)
	h.Press(core.ActionRestart, t0)
	h.Release()

	if f := h.Frame(t0); len(f.Actions) != 0 {
		t.Errorf("expected empty frame after release, got %v", f.Actions)
	}
}

func TestHeldKeysDefaultWindow(t *testing.T) {
	if h := NewHeldKeys(0); h.window != DefaultHoldWindow {
		t.Errorf("window = %v, expected %v", h.window, DefaultHoldWindow)
	}
}
