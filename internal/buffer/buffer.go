// internal/buffer/buffer.go
package buffer

import "github.com/bethropolis/quill/internal/types"

// Motion is a non-destructive cursor movement.
type Motion int

const (
	MotionLeft Motion = iota
	MotionRight
	MotionUp
	MotionDown
	MotionLineStart
	MotionLineEnd
	MotionDocStart
	MotionDocEnd
)

func (m Motion) String() string {
	switch m {
	case MotionLeft:
		return "left"
	case MotionRight:
		return "right"
	case MotionUp:
		return "up"
	case MotionDown:
		return "down"
	case MotionLineStart:
		return "line-start"
	case MotionLineEnd:
		return "line-end"
	case MotionDocStart:
		return "doc-start"
	case MotionDocEnd:
		return "doc-end"
	}
	return "unknown"
}

// Buffer is the primitive, single-user text surface the action engine drives.
//
// Every edit primitive mutates exactly one unit of content, removes an active
// selection first and leaves the cursor without an anchor. BackspaceOne and
// DeleteOne only no-op at the absolute start and end of the document.
type Buffer interface {
	Text() string
	Line(index int) ([]byte, error)
	LineCount() int
	LineLen(index int) int // in runes
	TextRange(start, end types.Position) (string, error)

	Cursor() types.Cursor
	SetCursor(c types.Cursor)
	ClearSelection()
	SelectedText() (string, bool)
	MoveCursor(m Motion)

	InsertChar(r rune)
	PasteString(s string)
	InsertNewline()
	BackspaceOne()
	DeleteOne()

	SetText(s string)
	IsModified() bool
}
