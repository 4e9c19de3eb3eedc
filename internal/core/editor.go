// internal/core/editor.go
package core

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/bethropolis/quill/internal/buffer"
	"github.com/bethropolis/quill/internal/core/action"
	"github.com/bethropolis/quill/internal/core/clipboard"
	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/types"
)

// Editor is one editing session: a buffer, the action engine driving it and
// the document (journal day) it is currently bound to.
// All methods must be called from the goroutine that owns the session.
type Editor struct {
	id     string
	docKey string

	buffer buffer.Buffer
	engine *action.Engine

	eventManager *event.Manager
	clipboard    *clipboard.Manager

	ViewportY  int // Top visible line index (0-based)
	ViewportX  int // Leftmost visible screen column
	viewWidth  int
	viewHeight int
	ScrollOff  int // Lines kept visible above/below the cursor
	TabWidth   int // Screen cells of a tab
}

// NewEditor creates a session over buf. opts configure its action engine.
func NewEditor(buf buffer.Buffer, opts ...action.Option) *Editor {
	e := &Editor{
		id:        uuid.NewString(),
		buffer:    buf,
		engine:    action.New(buf, opts...),
		clipboard: clipboard.NewManager(false),
		ScrollOff: DefaultScrollOff,
		TabWidth:  DefaultTabWidth,
	}
	logger.DebugTagf("session", "new session %s", e.id)
	return e
}

// SetEventManager sets the event manager for dispatching events.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

// SetClipboard injects the clipboard used by Copy and PasteClipboard.
func (e *Editor) SetClipboard(cb *clipboard.Manager) {
	if cb != nil {
		e.clipboard = cb
	}
}

func (e *Editor) ID() string                   { return e.id }
func (e *Editor) DocumentKey() string          { return e.docKey }
func (e *Editor) GetBuffer() buffer.Buffer     { return e.buffer }
func (e *Editor) Engine() *action.Engine       { return e.engine }
func (e *Editor) Text() string                 { return e.buffer.Text() }
func (e *Editor) Cursor() types.Cursor         { return e.buffer.Cursor() }
func (e *Editor) SelectedText() (string, bool) { return e.buffer.SelectedText() }
func (e *Editor) UndoCount() int               { return e.engine.UndoCount() }
func (e *Editor) RedoCount() int               { return e.engine.RedoCount() }
func (e *Editor) IsModified() bool             { return e.buffer.IsModified() }

// Perform runs one intent through the engine and notifies subscribers of
// what changed.
func (e *Editor) Perform(in action.Intent) (bool, error) {
	cursorBefore := e.buffer.Cursor()
	undoBefore, redoBefore := e.engine.UndoCount(), e.engine.RedoCount()

	changed, err := e.engine.Perform(in)
	if err != nil {
		return false, fmt.Errorf("session %s: %w", e.id, err)
	}
	if !changed {
		return false, nil
	}

	textChanged := in.IsEdit() || in.Kind == action.KindUndo || in.Kind == action.KindRedo
	if textChanged {
		e.eventManager.Dispatch(event.TypeBufferModified, event.BufferModifiedData{
			SessionID: e.id,
			Action:    in.String(),
		})
	}
	if cursor := e.buffer.Cursor(); !cursor.Equal(cursorBefore) {
		e.ScrollToCursor()
		e.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{Cursor: cursor})
	}
	// Counts can stay equal when the undo list is full, so edits always notify.
	if textChanged || e.engine.UndoCount() != undoBefore || e.engine.RedoCount() != redoBefore {
		e.dispatchHistory()
	}
	return true, nil
}

// SwitchDocument retargets the session to another document. The content is
// loaded and the history cleared before it returns, so the next action only
// ever sees the new document.
func (e *Editor) SwitchDocument(key, content string) {
	previous := e.docKey
	e.buffer.SetText(content)
	if _, err := e.engine.Perform(action.ClearHistory()); err != nil {
		logger.Errorf("session %s: clearing history: %v", e.id, err)
	}
	e.docKey = key
	e.ViewportX, e.ViewportY = 0, 0

	logger.Infof("session %s: switched document %q -> %q", e.id, previous, key)
	e.eventManager.Dispatch(event.TypeDocumentSwitched, event.DocumentSwitchedData{
		SessionID: e.id,
		Previous:  previous,
		Key:       key,
	})
	e.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{Cursor: e.buffer.Cursor()})
	e.dispatchHistory()
}

// Copy puts the selected text on the clipboard. It returns false without a selection.
func (e *Editor) Copy() bool {
	text, ok := e.buffer.SelectedText()
	if !ok {
		return false
	}
	return e.clipboard.Copy(text)
}

// PasteClipboard pastes the clipboard content as one recorded edit.
func (e *Editor) PasteClipboard() (bool, error) {
	text := e.clipboard.Read()
	if text == "" {
		return false, nil
	}
	return e.Perform(action.Paste(text))
}

func (e *Editor) dispatchHistory() {
	e.eventManager.Dispatch(event.TypeHistoryChanged, event.HistoryChangedData{
		UndoCount: e.engine.UndoCount(),
		RedoCount: e.engine.RedoCount(),
	})
}
