package action

import (
	"unicode/utf8"

	"github.com/bethropolis/quill/internal/core/history"
	"github.com/bethropolis/quill/internal/types"
)

// bulkDelete removes a selection, a line break or one scanned run of
// characters, in that order of priority, and records it as one event.
func (e *Engine) bulkDelete(b Boundary) bool {
	if changed, ok := e.removeSelection(); ok {
		return changed
	}

	before := e.buf.Cursor()
	pos := before.Position
	step := e.buf.DeleteOne
	if b.Direction == Backward {
		step = e.buf.BackspaceOne
	}

	// Line boundaries are their own unit.
	if b.Direction == Backward && pos.Col == 0 || b.Direction == Forward && pos.Col == e.buf.LineLen(pos.Line) {
		var at types.Position
		var ok bool
		if b.Direction == Backward {
			at, ok = e.previousPosition(pos)
		} else {
			_, ok = e.nextPosition(pos)
			at = pos
		}
		if !ok {
			return false
		}
		step()
		return e.record(history.Event{Removed: "\n", At: at, CursorBefore: before})
	}

	line, err := e.buf.Line(pos.Line)
	if err != nil {
		return false
	}
	runes := []rune(string(line))
	from, to := b.span(runes, pos.Col)
	if from == to {
		return false
	}
	start := types.Position{Line: pos.Line, Col: from}
	removed, err := e.buf.TextRange(start, types.Position{Line: pos.Line, Col: to})
	if err != nil {
		return false
	}

	for n := utf8.RuneCountInString(removed); n > 0; n-- {
		step()
	}
	return e.record(history.Event{Removed: removed, At: start, CursorBefore: before})
}
