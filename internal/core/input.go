package core

// Action represents a semantic editor action, abstracted from physical key presses.
// Both the terminal editor and the window viewer translate their keys into actions,
// so the field state only ever sees intents.
type Action int

const (
	ActionNone          Action = iota
	ActionNudgeUp              // Move START one grid step up
	ActionNudgeDown            // Move START one grid step down
	ActionNudgeLeft            // Move START one grid step left
	ActionNudgeRight           // Move START one grid step right
	ActionAddColumn            // One more board horizontally
	ActionRemoveColumn         // One board less horizontally (never below 1)
	ActionAddRow               // One more board vertically
	ActionRemoveRow            // One board less vertically (never below 1)
	ActionNextDirection        // Cycle the GOAL direction forward
	ActionPrevDirection        // Cycle the GOAL direction backward
	ActionClearGoal            // Drop the direction selection
	ActionExport               // Write a PNG snapshot
	ActionQuit                 // Leave the editor
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionNudgeUp:
		return "NudgeUp"
	case ActionNudgeDown:
		return "NudgeDown"
	case ActionNudgeLeft:
		return "NudgeLeft"
	case ActionNudgeRight:
		return "NudgeRight"
	case ActionAddColumn:
		return "AddColumn"
	case ActionRemoveColumn:
		return "RemoveColumn"
	case ActionAddRow:
		return "AddRow"
	case ActionRemoveRow:
		return "RemoveRow"
	case ActionNextDirection:
		return "NextDirection"
	case ActionPrevDirection:
		return "PrevDirection"
	case ActionClearGoal:
		return "ClearGoal"
	case ActionExport:
		return "Export"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered during one frame of a polling
// frontend (the window viewer checks keys once per frame).
type InputFrame struct {
	// Actions holds the triggered actions in the order they were seen.
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame. Duplicates are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || f.Has(a) {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}
