// Package action turns edit intents into buffer primitives and keeps the
// undo/redo history of a single editing session.
package action

import (
	"fmt"

	"github.com/bethropolis/quill/internal/buffer"
	"github.com/bethropolis/quill/internal/core/history"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/types"
)

// Engine applies intents to one buffer and records what they changed.
// It is not safe for concurrent use; one goroutine owns the engine and its buffer.
type Engine struct {
	buf     buffer.Buffer
	history *history.Stack

	capacity      int
	wordStops     StopSet
	sentenceStops StopSet
}

// New creates an engine editing buf.
func New(buf buffer.Buffer, opts ...Option) *Engine {
	e := &Engine{buf: buf}
	for _, opt := range append(defaults(), opts...) {
		opt(e)
	}
	e.history = history.NewStack(e.capacity)
	return e
}

func (e *Engine) Buffer() buffer.Buffer   { return e.buf }
func (e *Engine) History() *history.Stack { return e.history }
func (e *Engine) UndoCount() int          { return e.history.UndoCount() }
func (e *Engine) RedoCount() int          { return e.history.RedoCount() }
func (e *Engine) WordStops() StopSet      { return e.wordStops }
func (e *Engine) SentenceStops() StopSet  { return e.sentenceStops }

// Perform executes one intent to completion.
// changed reports whether text, cursor or history changed; expected no-ops
// (backspace at document start, undo with empty history, ...) return false
// and a nil error.
func (e *Engine) Perform(in Intent) (changed bool, err error) {
	if in.Kind == KindClearHistory {
		changed = e.history.UndoCount()+e.history.RedoCount() > 0
		e.history.Clear()
		return changed, nil
	}

	if err := e.validate(); err != nil {
		logger.Warnf("action: refusing %v: %v", in, err)
		return false, fmt.Errorf("%v: %w", in, err)
	}

	switch in.Kind {
	case KindInsert:
		if in.Rune == '\r' {
			changed = e.replaceSelection("\n", e.buf.InsertNewline)
			break
		}
		changed = e.replaceSelection(string(in.Rune), func() { e.buf.InsertChar(in.Rune) })
	case KindPaste:
		text := normalizeNewlines(in.Text)
		changed = e.replaceSelection(text, func() { e.buf.PasteString(text) })
	case KindEnter:
		changed = e.replaceSelection("\n", e.buf.InsertNewline)
	case KindBackspace:
		changed = e.backspace()
	case KindDelete:
		changed = e.deleteForward()
	case KindMove:
		changed = e.move(in.Motion, in.Extend)
	case KindBackspaceWord:
		changed = e.bulkDelete(Boundary{Direction: Backward, Stops: e.wordStops})
	case KindBackspaceSentence:
		changed = e.bulkDelete(Boundary{Direction: Backward, Stops: e.sentenceStops})
	case KindDeleteWord:
		changed = e.bulkDelete(Boundary{Direction: Forward, Stops: e.wordStops})
	case KindDeleteSentence:
		changed = e.bulkDelete(Boundary{Direction: Forward, Stops: e.sentenceStops})
	case KindUndo:
		return e.undo()
	case KindRedo:
		return e.redo()
	default:
		return false, fmt.Errorf("%v: %w", in, ErrUnknownIntent)
	}

	logger.DebugTagf("action", "%v changed=%t undo=%d redo=%d", in, changed, e.UndoCount(), e.RedoCount())
	return changed, nil
}

// record pushes a non-empty edit and abandons the redo branch.
// The event's CursorAfter is taken from the buffer.
func (e *Engine) record(ev history.Event) bool {
	if ev.IsEmpty() {
		return false
	}
	ev.CursorAfter = e.buf.Cursor()
	e.history.PushUndo(ev)
	e.history.ClearRedo()
	return true
}

func (e *Engine) validate() error {
	c := e.buf.Cursor()
	if !e.inBounds(c.Position) {
		return fmt.Errorf("%w: cursor at %d:%d", ErrCursorOutOfRange, c.Position.Line, c.Position.Col)
	}
	if c.Anchor != nil && !e.inBounds(*c.Anchor) {
		return fmt.Errorf("%w: anchor at %d:%d", ErrCursorOutOfRange, c.Anchor.Line, c.Anchor.Col)
	}
	return nil
}

func (e *Engine) inBounds(pos types.Position) bool {
	return pos.Line >= 0 && pos.Line < e.buf.LineCount() &&
		pos.Col >= 0 && pos.Col <= e.buf.LineLen(pos.Line)
}
