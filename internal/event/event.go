// internal/event/event.go
package event

import "github.com/bethropolis/quill/internal/types"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Editing session events
	TypeBufferModified   // Fired when an action changed the text
	TypeCursorMoved      // Fired when the cursor or selection changed
	TypeHistoryChanged   // Fired when the undo/redo counts changed
	TypeDocumentSwitched // Fired after the session was retargeted to another day

	// Application lifecycle
	TypeAppReady
	TypeAppQuit
)

var typeNames = [...]string{
	TypeUnknown:          "unknown",
	TypeBufferModified:   "buffer-modified",
	TypeCursorMoved:      "cursor-moved",
	TypeHistoryChanged:   "history-changed",
	TypeDocumentSwitched: "document-switched",
	TypeAppReady:         "app-ready",
	TypeAppQuit:          "app-quit",
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// BufferModifiedData names the action that changed the text.
type BufferModifiedData struct {
	SessionID string
	Action    string
}

// CursorMovedData contains the new cursor.
type CursorMovedData struct {
	Cursor types.Cursor
}

// HistoryChangedData carries the counts a UI needs to enable undo and redo.
type HistoryChangedData struct {
	UndoCount int
	RedoCount int
}

// DocumentSwitchedData names the document the session now edits.
type DocumentSwitchedData struct {
	SessionID string
	Previous  string
	Key       string
}

type AppQuitData struct{}

type AppReadyData struct{}
