package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/codesnake/internal/core"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected core.Action
		isQuit   bool
	}{
		{keyMsg('w'), core.ActionUp, false},
		{keyMsg('k'), core.ActionUp, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{keyMsg('s'), core.ActionDown, false},
		{keyMsg('a'), core.ActionLeft, false},
		{keyMsg('d'), core.ActionRight, false},
		{keyMsg('h'), core.ActionLeft, false},
		{keyMsg('l'), core.ActionRight, false},
		{keyMsg('p'), core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{keyMsg('x'), core.ActionStop, false},
		{keyMsg('r'), core.ActionRestart, false},
		{keyMsg('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{keyMsg('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		action, isQuit := km.MapKey(tc.msg)
		if action != tc.expected || isQuit != tc.isQuit {
			t.Errorf("MapKey(%q) = (%s, %v), expected (%s, %v)",
				tc.msg.String(), action, isQuit, tc.expected, tc.isQuit)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(keyMsg('w'), &frame) {
		t.Error("movement key should not be a quit request")
	}
	if !frame.Has(core.ActionUp) {
		t.Error("frame should record the mapped action")
	}

	// Unmapped keys leave the frame untouched.
	frame.Clear()
	km.MapKeyToFrame(keyMsg('z'), &frame)
	if frame.Has(core.ActionNone) {
		t.Error("unmapped key should not set any action")
	}

	if !km.MapKeyToFrame(keyMsg('q'), &frame) {
		t.Error("q should be a quit request")
	}
}
