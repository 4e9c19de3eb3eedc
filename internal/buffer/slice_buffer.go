// internal/buffer/slice_buffer.go
package buffer

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/quill/internal/types"
	"github.com/bethropolis/quill/internal/utils"
)

// SliceBuffer keeps one byte slice per line; columns are rune indexes.
type SliceBuffer struct {
	lines    [][]byte
	cursor   types.Cursor
	modified bool // Track if buffer has changes since the last SetText
}

// NewSliceBuffer creates an empty SliceBuffer.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{
		// Start with a single empty line, common for new documents
		lines: [][]byte{{}},
	}
}

// NewSliceBufferFromString creates a SliceBuffer holding s with the cursor at 0,0.
func NewSliceBufferFromString(s string) *SliceBuffer {
	sb := NewSliceBuffer()
	sb.SetText(s)
	return sb
}

// SetText replaces the whole content, resets the cursor and the modified flag.
// Invalid UTF-8 becomes U+FFFD so every byte belongs to a whole rune.
func (sb *SliceBuffer) SetText(s string) {
	s = strings.ToValidUTF8(s, "\uFFFD")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	parts := strings.Split(s, "\n")
	lines := make([][]byte, len(parts))
	for i, p := range parts {
		lines[i] = []byte(p)
	}
	sb.lines = lines
	sb.cursor = types.Cursor{}
	sb.modified = false
}

// Text returns the content with lines joined by "\n".
func (sb *SliceBuffer) Text() string {
	return string(bytes.Join(sb.lines, []byte("\n")))
}

// Lines returns the underlying lines. Callers must not modify them.
func (sb *SliceBuffer) Lines() [][]byte {
	return sb.lines
}

func (sb *SliceBuffer) LineCount() int {
	return len(sb.lines)
}

func (sb *SliceBuffer) Line(index int) ([]byte, error) {
	if index < 0 || index >= len(sb.lines) {
		return nil, fmt.Errorf("line index %d out of bounds (0-%d)", index, len(sb.lines)-1)
	}
	return sb.lines[index], nil
}

// LineLen returns the rune count of a line, or 0 for an invalid index.
func (sb *SliceBuffer) LineLen(index int) int {
	if index < 0 || index >= len(sb.lines) {
		return 0
	}
	return utf8.RuneCount(sb.lines[index])
}

// IsModified returns true if the buffer changed since the last SetText.
func (sb *SliceBuffer) IsModified() bool {
	return sb.modified
}

// TextRange returns the text between two positions (end exclusive).
// Unlike the edit primitives it never clamps: an invalid position is an error.
func (sb *SliceBuffer) TextRange(start, end types.Position) (string, error) {
	start, end = types.Ordered(start, end)
	if !sb.valid(start) || !sb.valid(end) {
		return "", fmt.Errorf("invalid range %v-%v", start, end)
	}
	sOff := sb.byteOffset(start)
	eOff := sb.byteOffset(end)
	if start.Line == end.Line {
		return string(sb.lines[start.Line][sOff:eOff]), nil
	}

	var content bytes.Buffer
	content.Write(sb.lines[start.Line][sOff:])
	for i := start.Line + 1; i < end.Line; i++ {
		content.WriteByte('\n')
		content.Write(sb.lines[i])
	}
	content.WriteByte('\n')
	content.Write(sb.lines[end.Line][:eOff])
	return content.String(), nil
}

// --- Cursor & selection ---

// Cursor returns a copy of the current cursor.
func (sb *SliceBuffer) Cursor() types.Cursor {
	return sb.cursor.Clone()
}

// SetCursor stores c verbatim. It does not clamp, so a cursor that does not
// fit the text stays observable until the next edit primitive.
func (sb *SliceBuffer) SetCursor(c types.Cursor) {
	sb.cursor = c.Clone()
}

func (sb *SliceBuffer) ClearSelection() {
	sb.cursor.Anchor = nil
}

// SelectedText returns the selected text, ok is false without a selection.
func (sb *SliceBuffer) SelectedText() (string, bool) {
	start, end, ok := sb.cursor.Selection()
	if !ok {
		return "", false
	}
	text, err := sb.TextRange(start, end)
	if err != nil {
		return "", false
	}
	return text, true
}

// MoveCursor moves the caret; the anchor is left where it is.
func (sb *SliceBuffer) MoveCursor(m Motion) {
	pos := sb.clamp(sb.cursor.Position)
	last := len(sb.lines) - 1

	switch m {
	case MotionLeft:
		if pos.Col > 0 {
			pos.Col--
		} else if pos.Line > 0 {
			pos.Line--
			pos.Col = sb.LineLen(pos.Line)
		}
	case MotionRight:
		if pos.Col < sb.LineLen(pos.Line) {
			pos.Col++
		} else if pos.Line < last {
			pos.Line++
			pos.Col = 0
		}
	case MotionUp:
		if pos.Line > 0 {
			pos.Line--
			pos.Col = min(pos.Col, sb.LineLen(pos.Line))
		}
	case MotionDown:
		if pos.Line < last {
			pos.Line++
			pos.Col = min(pos.Col, sb.LineLen(pos.Line))
		}
	case MotionLineStart:
		pos.Col = 0
	case MotionLineEnd:
		pos.Col = sb.LineLen(pos.Line)
	case MotionDocStart:
		pos = types.Position{}
	case MotionDocEnd:
		pos = types.Position{Line: last, Col: sb.LineLen(last)}
	}
	sb.cursor.Position = pos
}

// --- Edit primitives ---

func (sb *SliceBuffer) InsertChar(r rune) {
	sb.replaceSelection(string(r))
}

func (sb *SliceBuffer) PasteString(s string) {
	sb.replaceSelection(s)
}

func (sb *SliceBuffer) InsertNewline() {
	sb.replaceSelection("\n")
}

// BackspaceOne deletes the selection, else the character or line break
// immediately before the cursor.
func (sb *SliceBuffer) BackspaceOne() {
	if sb.deleteSelection() {
		return
	}
	pos := sb.clamp(sb.cursor.Position)
	start := pos
	if pos.Col > 0 {
		start.Col--
	} else if pos.Line > 0 {
		start.Line--
		start.Col = sb.LineLen(start.Line)
	} else {
		sb.cursor = types.At(pos) // At beginning of buffer, nothing to delete
		return
	}
	sb.delete(start, pos)
	sb.cursor = types.At(start)
}

// DeleteOne deletes the selection, else the character or line break
// immediately after the cursor.
func (sb *SliceBuffer) DeleteOne() {
	if sb.deleteSelection() {
		return
	}
	pos := sb.clamp(sb.cursor.Position)
	end := pos
	if pos.Col < sb.LineLen(pos.Line) {
		end.Col++
	} else if pos.Line < len(sb.lines)-1 {
		end.Line++
		end.Col = 0
	}
	if end != pos {
		sb.delete(pos, end)
	}
	sb.cursor = types.At(pos)
}

func (sb *SliceBuffer) deleteSelection() bool {
	start, end, ok := sb.cursor.Selection()
	if !ok {
		return false
	}
	start, end = sb.clamp(start), sb.clamp(end)
	sb.delete(start, end)
	sb.cursor = types.At(start)
	return true
}

func (sb *SliceBuffer) replaceSelection(text string) {
	at := sb.clamp(sb.cursor.Position)
	if start, end, ok := sb.cursor.Selection(); ok {
		at = sb.clamp(start)
		sb.delete(at, sb.clamp(end))
	}
	sb.cursor = types.At(sb.insert(at, text))
}

// insert writes text at pos and returns the position right after it.
func (sb *SliceBuffer) insert(pos types.Position, text string) types.Position {
	if text == "" {
		return pos
	}
	text = strings.ToValidUTF8(text, "\uFFFD")
	sb.modified = true

	off := sb.byteOffset(pos)
	current := sb.lines[pos.Line]
	head := append([]byte(nil), current[:off]...)
	tail := append([]byte(nil), current[off:]...)

	parts := strings.Split(text, "\n")
	newLines := make([][]byte, len(parts))
	for i, p := range parts {
		newLines[i] = []byte(p)
	}
	newLines[0] = append(head, newLines[0]...)
	last := len(newLines) - 1
	endCol := utf8.RuneCount(newLines[last])
	newLines[last] = append(newLines[last], tail...)

	rest := sb.lines[pos.Line+1:]
	merged := make([][]byte, 0, pos.Line+len(newLines)+len(rest))
	merged = append(merged, sb.lines[:pos.Line]...)
	merged = append(merged, newLines...)
	merged = append(merged, rest...)
	sb.lines = merged

	return types.Position{Line: pos.Line + last, Col: endCol}
}

// delete removes text within a range (start inclusive, end exclusive).
// Both positions must already be valid and ordered.
func (sb *SliceBuffer) delete(start, end types.Position) {
	if start == end {
		return
	}
	sb.modified = true

	sOff := sb.byteOffset(start)
	eOff := sb.byteOffset(end)
	joined := append([]byte(nil), sb.lines[start.Line][:sOff]...)
	joined = append(joined, sb.lines[end.Line][eOff:]...)

	rest := sb.lines[end.Line+1:]
	merged := make([][]byte, 0, start.Line+1+len(rest))
	merged = append(merged, sb.lines[:start.Line]...)
	merged = append(merged, joined)
	merged = append(merged, rest...)
	sb.lines = merged
}

// --- Position helpers ---

func (sb *SliceBuffer) valid(pos types.Position) bool {
	return pos.Line >= 0 && pos.Line < len(sb.lines) &&
		pos.Col >= 0 && pos.Col <= sb.LineLen(pos.Line)
}

func (sb *SliceBuffer) clamp(pos types.Position) types.Position {
	pos.Line = max(0, min(pos.Line, len(sb.lines)-1))
	pos.Col = max(0, min(pos.Col, sb.LineLen(pos.Line)))
	return pos
}

func (sb *SliceBuffer) byteOffset(pos types.Position) int {
	off := utils.RuneIndexToByteOffset(sb.lines[pos.Line], pos.Col)
	if off < 0 {
		return len(sb.lines[pos.Line])
	}
	return off
}

// Ensure SliceBuffer satisfies the Buffer interface
var _ Buffer = (*SliceBuffer)(nil)
