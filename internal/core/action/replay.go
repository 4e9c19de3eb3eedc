package action

import (
	"fmt"
	"unicode/utf8"

	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/types"
)

// undo reverts the most recent recorded edit and moves it to the redo list.
func (e *Engine) undo() (bool, error) {
	ev, ok := e.history.TakeTopUndo()
	if !ok {
		return false, nil
	}
	if err := e.swap(ev.At, ev.Added, ev.Removed); err != nil {
		e.history.PushUndo(ev)
		logger.Errorf("action: undo %v: %v", ev, err)
		return false, fmt.Errorf("undo: %w", err)
	}
	e.buf.SetCursor(ev.CursorBefore)
	e.history.PushRedo(ev)
	logger.DebugTagf("action", "undo %v (undo=%d redo=%d)", ev, e.UndoCount(), e.RedoCount())
	return true, nil
}

// redo reapplies the most recently undone edit. The redo list is kept.
func (e *Engine) redo() (bool, error) {
	ev, ok := e.history.TakeTopRedo()
	if !ok {
		return false, nil
	}
	if err := e.swap(ev.At, ev.Removed, ev.Added); err != nil {
		e.history.PushRedo(ev)
		logger.Errorf("action: redo %v: %v", ev, err)
		return false, fmt.Errorf("redo: %w", err)
	}
	e.buf.SetCursor(ev.CursorAfter)
	e.history.PushUndo(ev)
	logger.DebugTagf("action", "redo %v (undo=%d redo=%d)", ev, e.UndoCount(), e.RedoCount())
	return true, nil
}

// swap replaces current, which must sit at at, with replacement using only
// buffer primitives. The buffer is left untouched when current isn't there.
func (e *Engine) swap(at types.Position, current, replacement string) error {
	end := at.Advance(current)
	found, err := e.buf.TextRange(at, end)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrHistoryMismatch, err)
	}
	if found != current {
		return fmt.Errorf("%w: expected %q at %d:%d, found %q", ErrHistoryMismatch, current, at.Line, at.Col, found)
	}

	e.buf.SetCursor(types.At(end))
	for n := utf8.RuneCountInString(current); n > 0; n-- {
		e.buf.BackspaceOne()
	}
	if replacement != "" {
		e.buf.PasteString(replacement)
	}
	return nil
}
