package action

import (
	"strings"

	"github.com/bethropolis/quill/internal/buffer"
	"github.com/bethropolis/quill/internal/core/history"
	"github.com/bethropolis/quill/internal/types"
)

// replaceSelection runs an inserting primitive. The selection, if any, is
// what it removes; added is what it writes.
func (e *Engine) replaceSelection(added string, apply func()) bool {
	before := e.buf.Cursor()
	removed, _ := e.buf.SelectedText()
	at, _, _ := before.Selection()

	apply()
	return e.record(history.Event{
		Removed:      removed,
		Added:        added,
		At:           at,
		CursorBefore: before,
	})
}

// removeSelection deletes an active selection with a single primitive.
func (e *Engine) removeSelection() (changed, ok bool) {
	before := e.buf.Cursor()
	selected, ok := e.buf.SelectedText()
	if !ok {
		return false, false
	}
	start, _, _ := before.Selection()
	e.buf.BackspaceOne()
	return e.record(history.Event{Removed: selected, At: start, CursorBefore: before}), true
}

func (e *Engine) backspace() bool {
	if changed, ok := e.removeSelection(); ok {
		return changed
	}
	before := e.buf.Cursor()
	start, ok := e.previousPosition(before.Position)
	if !ok {
		return false
	}
	removed, err := e.buf.TextRange(start, before.Position)
	if err != nil {
		return false
	}
	e.buf.BackspaceOne()
	return e.record(history.Event{Removed: removed, At: start, CursorBefore: before})
}

func (e *Engine) deleteForward() bool {
	if changed, ok := e.removeSelection(); ok {
		return changed
	}
	before := e.buf.Cursor()
	end, ok := e.nextPosition(before.Position)
	if !ok {
		return false
	}
	removed, err := e.buf.TextRange(before.Position, end)
	if err != nil {
		return false
	}
	e.buf.DeleteOne()
	return e.record(history.Event{Removed: removed, At: before.Position, CursorBefore: before})
}

// previousPosition returns the position one unit (character or line break)
// before pos. ok is false at the start of the document.
func (e *Engine) previousPosition(pos types.Position) (types.Position, bool) {
	switch {
	case pos.Col > 0:
		return types.Position{Line: pos.Line, Col: pos.Col - 1}, true
	case pos.Line > 0:
		return types.Position{Line: pos.Line - 1, Col: e.buf.LineLen(pos.Line - 1)}, true
	}
	return pos, false
}

// nextPosition returns the position one unit after pos. ok is false at the
// end of the document.
func (e *Engine) nextPosition(pos types.Position) (types.Position, bool) {
	switch {
	case pos.Col < e.buf.LineLen(pos.Line):
		return types.Position{Line: pos.Line, Col: pos.Col + 1}, true
	case pos.Line < e.buf.LineCount()-1:
		return types.Position{Line: pos.Line + 1}, true
	}
	return pos, false
}

// move is non-destructive and never touches history.
func (e *Engine) move(m buffer.Motion, extend bool) bool {
	before := e.buf.Cursor()
	if extend {
		if before.Anchor == nil {
			e.buf.SetCursor(types.Selecting(before.Position, before.Position))
		}
	} else {
		e.buf.ClearSelection()
	}

	e.buf.MoveCursor(m)
	if e.buf.Cursor().Position == before.Position {
		// Up on the first line goes to the document start, Down on the last to its end.
		switch m {
		case buffer.MotionUp:
			e.buf.MoveCursor(buffer.MotionDocStart)
		case buffer.MotionDown:
			e.buf.MoveCursor(buffer.MotionDocEnd)
		}
	}
	return !e.buf.Cursor().Equal(before)
}

// normalizeNewlines also replaces invalid UTF-8, which could otherwise merge
// with the bytes around the cursor into a different rune.
func normalizeNewlines(s string) string {
	s = strings.ToValidUTF8(s, "\uFFFD")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
