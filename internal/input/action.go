// internal/input/action.go
package input

import "github.com/bethropolis/quill/internal/core/action"

// Action represents what the application should do with a key press.
type Action int

const (
	ActionUnknown Action = iota
	ActionQuit

	// ActionEdit hands the Intent of the ActionEvent to the editing session.
	ActionEdit

	// --- Clipboard ---
	ActionCopy
	ActionCut
	ActionPaste

	// --- Journal navigation ---
	ActionPrevDay
	ActionNextDay
	ActionToday
)

var actionNames = map[Action]string{
	ActionUnknown: "unknown",
	ActionQuit:    "quit",
	ActionEdit:    "edit",
	ActionCopy:    "copy",
	ActionCut:     "cut",
	ActionPaste:   "paste",
	ActionPrevDay: "prev-day",
	ActionNextDay: "next-day",
	ActionToday:   "today",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ActionEvent represents a decoded key press.
type ActionEvent struct {
	Action Action
	Intent action.Intent // Used for ActionEdit
}

func edit(in action.Intent) ActionEvent {
	return ActionEvent{Action: ActionEdit, Intent: in}
}
