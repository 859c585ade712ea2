package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/coursefield/internal/core"
)

// EditorKeyMap defines the key bindings for the field editor.
type EditorKeyMap struct {
	NextField  key.Binding
	PrevField  key.Binding
	Apply      key.Binding
	PrevOption key.Binding
	NextOption key.Binding

	NudgeUp    key.Binding
	NudgeDown  key.Binding
	NudgeLeft  key.Binding
	NudgeRight key.Binding

	AddColumn    key.Binding
	RemoveColumn key.Binding
	AddRow       key.Binding
	RemoveRow    key.Binding

	ClearGoal key.Binding
	Export    key.Binding
	Copy      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k EditorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Apply, k.NudgeUp, k.Export, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k EditorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.Apply, k.PrevOption, k.NextOption},
		{k.NudgeUp, k.NudgeDown, k.NudgeLeft, k.NudgeRight, k.ClearGoal},
		{k.AddColumn, k.RemoveColumn, k.AddRow, k.RemoveRow},
		{k.Export, k.Copy, k.Help, k.Quit},
	}
}

// DefaultEditorKeyMap returns default key bindings.
func DefaultEditorKeyMap() EditorKeyMap {
	return EditorKeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab", "prev field"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "update"),
		),
		PrevOption: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("left", "prev direction"),
		),
		NextOption: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("right", "next direction"),
		),
		NudgeUp: key.NewBinding(
			key.WithKeys("shift+up"),
			key.WithHelp("S-arrows", "move start"),
		),
		NudgeDown: key.NewBinding(
			key.WithKeys("shift+down"),
			key.WithHelp("S-down", "start down"),
		),
		NudgeLeft: key.NewBinding(
			key.WithKeys("shift+left"),
			key.WithHelp("S-left", "start left"),
		),
		NudgeRight: key.NewBinding(
			key.WithKeys("shift+right"),
			key.WithHelp("S-right", "start right"),
		),
		AddColumn: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "add column"),
		),
		RemoveColumn: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "remove column"),
		),
		AddRow: key.NewBinding(
			key.WithKeys("}"),
			key.WithHelp("}", "add row"),
		),
		RemoveRow: key.NewBinding(
			key.WithKeys("{"),
			key.WithHelp("{", "remove row"),
		),
		ClearGoal: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("C-g", "clear goal"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "snapshot"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("C-y", "copy points"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to field actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys EditorKeyMap
}

// NewKeyMapper creates a key mapper for the given bindings.
func NewKeyMapper(keys EditorKeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to a field action.
// Returns ActionNone for keys that belong to the form.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Export):
		return core.ActionExport
	case key.Matches(msg, k.NudgeUp):
		return core.ActionNudgeUp
	case key.Matches(msg, k.NudgeDown):
		return core.ActionNudgeDown
	case key.Matches(msg, k.NudgeLeft):
		return core.ActionNudgeLeft
	case key.Matches(msg, k.NudgeRight):
		return core.ActionNudgeRight
	case key.Matches(msg, k.AddColumn):
		return core.ActionAddColumn
	case key.Matches(msg, k.RemoveColumn):
		return core.ActionRemoveColumn
	case key.Matches(msg, k.AddRow):
		return core.ActionAddRow
	case key.Matches(msg, k.RemoveRow):
		return core.ActionRemoveRow
	case key.Matches(msg, k.ClearGoal):
		return core.ActionClearGoal
	}
	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action := km.MapKey(msg)
	frame.Set(action)
	return action == core.ActionQuit
}
