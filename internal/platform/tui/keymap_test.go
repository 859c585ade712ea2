package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/coursefield/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultEditorKeyMap())

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"ctrl+s exports", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionExport},
		{"shift+up", tea.KeyMsg{Type: tea.KeyShiftUp}, core.ActionNudgeUp},
		{"shift+down", tea.KeyMsg{Type: tea.KeyShiftDown}, core.ActionNudgeDown},
		{"shift+left", tea.KeyMsg{Type: tea.KeyShiftLeft}, core.ActionNudgeLeft},
		{"shift+right", tea.KeyMsg{Type: tea.KeyShiftRight}, core.ActionNudgeRight},
		{"add column", runeKey(']'), core.ActionAddColumn},
		{"remove column", runeKey('['), core.ActionRemoveColumn},
		{"add row", runeKey('}'), core.ActionAddRow},
		{"remove row", runeKey('{'), core.ActionRemoveRow},
		{"clear goal", tea.KeyMsg{Type: tea.KeyCtrlG}, core.ActionClearGoal},
		{"digits belong to the form", runeKey('4'), core.ActionNone},
		{"plain arrows belong to the form", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionNone},
		{"q is not quit", runeKey('q'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper(DefaultEditorKeyMap())
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey(']'), &frame) {
		t.Error("']' must not quit")
	}
	if !frame.Has(core.ActionAddColumn) {
		t.Error("Frame should hold ActionAddColumn")
	}

	frame = core.NewInputFrame()
	if km.MapKeyToFrame(runeKey('7'), &frame) {
		t.Error("'7' must not quit")
	}
	if !frame.Empty() {
		t.Errorf("Frame = %v, expected empty", frame.Actions)
	}

	if !km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEsc}, &frame) {
		t.Error("esc should quit")
	}
}

func TestEditorKeyMapHelp(t *testing.T) {
	keys := DefaultEditorKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}
	for i, group := range keys.FullHelp() {
		for _, b := range group {
			if b.Help().Key == "" || b.Help().Desc == "" {
				t.Errorf("FullHelp() group %d has a binding without help text: %v", i, b.Keys())
			}
		}
	}
}
