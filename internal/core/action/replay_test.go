package action

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/bethropolis/quill/internal/buffer"
	"github.com/bethropolis/quill/internal/types"
)

func TestReplay_UndoRedoInsert(t *testing.T) {
	e, buf := newEngineAt("ac", 0, 1)
	perform(t, e, Insert('b'))

	assert.True(t, perform(t, e, Undo()))
	assert.Equal(t, "ac", buf.Text())
	assert.Equal(t, pos(0, 1), buf.Cursor().Position)
	assert.Equal(t, 0, e.UndoCount())
	assert.Equal(t, 1, e.RedoCount())

	assert.True(t, perform(t, e, Redo()))
	assert.Equal(t, "abc", buf.Text())
	assert.Equal(t, pos(0, 2), buf.Cursor().Position)
	assert.Equal(t, 1, e.UndoCount())
	assert.Equal(t, 0, e.RedoCount())
}

func TestReplay_DifferentLengths(t *testing.T) {
	e, buf := newEngineAt("hello world", 0, 0)
	selection := types.Selecting(pos(0, 6), pos(0, 11))
	buf.SetCursor(selection)

	perform(t, e, Paste("there,\nmy friend"))
	require.Equal(t, "hello there,\nmy friend", buf.Text())
	after := buf.Cursor()

	perform(t, e, Undo())
	assert.Equal(t, "hello world", buf.Text())
	assert.True(t, buf.Cursor().Equal(selection), "undo restores the selection the edit replaced")

	perform(t, e, Redo())
	assert.Equal(t, "hello there,\nmy friend", buf.Text())
	assert.True(t, buf.Cursor().Equal(after))
}

func TestReplay_InvalidUTF8Paste(t *testing.T) {
	e, buf := newEngineAt("x\xac", 0, 1)
	require.Equal(t, "x\uFFFD", buf.Text())

	perform(t, e, Paste("\xe2\x82"))
	assert.Equal(t, "x\uFFFD\uFFFD", buf.Text(), "a partial sequence can't merge with the text after it")
	assert.Equal(t, pos(0, 2), buf.Cursor().Position)
	assert.Equal(t, "\uFFFD", lastEvent(t, e).Added)

	assert.True(t, perform(t, e, Undo()))
	assert.Equal(t, "x\uFFFD", buf.Text())
	assert.Equal(t, pos(0, 1), buf.Cursor().Position)

	assert.True(t, perform(t, e, Redo()))
	assert.Equal(t, "x\uFFFD\uFFFD", buf.Text())
	assert.True(t, perform(t, e, Move(buffer.MotionLineStart, false)))
}

func TestReplay_ForwardDeleteKeepsCursor(t *testing.T) {
	e, buf := newEngineAt("abc def", 0, 3)

	perform(t, e, DeleteWord())
	perform(t, e, DeleteWord())
	require.Equal(t, "abc", buf.Text())

	perform(t, e, Undo())
	perform(t, e, Undo())
	assert.Equal(t, "abc def", buf.Text())
	assert.Equal(t, types.At(pos(0, 3)), buf.Cursor(), "the cursor goes back to where the deletes started")
}

func TestReplay_RedoKeepsRemainingRedo(t *testing.T) {
	e, buf := newEngineAt("", 0, 0)
	for _, r := range "abc" {
		perform(t, e, Insert(r))
	}
	perform(t, e, Undo())
	perform(t, e, Undo())
	require.Equal(t, "a", buf.Text())

	perform(t, e, Redo())
	assert.Equal(t, "ab", buf.Text())
	assert.Equal(t, 1, e.RedoCount(), "redo must not invalidate the rest of the redo list")
	perform(t, e, Redo())
	assert.Equal(t, "abc", buf.Text())
}

func TestReplay_EmptyHistoryIsNoop(t *testing.T) {
	e, buf := newEngineAt("text", 0, 2)
	assert.False(t, perform(t, e, Undo()))
	assert.False(t, perform(t, e, Redo()))
	assert.Equal(t, "text", buf.Text())
	assert.Equal(t, pos(0, 2), buf.Cursor().Position)
}

func TestReplay_Mismatch(t *testing.T) {
	e, buf := newEngineAt("hello", 0, 5)
	perform(t, e, Insert('!'))

	// Someone rewrote the buffer behind the engine's back.
	buf.SetText("goodbye")
	buf.SetCursor(types.At(pos(0, 7)))

	changed, err := e.Perform(Undo())
	require.ErrorIs(t, err, ErrHistoryMismatch)
	assert.False(t, changed)
	assert.Equal(t, "goodbye", buf.Text())
	assert.Equal(t, types.At(pos(0, 7)), buf.Cursor())
	assert.Equal(t, 1, e.UndoCount(), "the event is kept for a later attempt")
	assert.Zero(t, e.RedoCount())

	buf.SetText("hello!")
	buf.SetCursor(types.At(pos(0, 6)))
	perform(t, e, Undo())
	assert.Equal(t, "hello", buf.Text())

	buf.SetText("")
	_, err = e.Perform(Redo())
	require.ErrorIs(t, err, ErrHistoryMismatch)
	assert.Equal(t, 1, e.RedoCount())
}

func TestReplay_CapacityEvictsOldest(t *testing.T) {
	e, buf := newEngineAt("", 0, 0, WithHistoryCapacity(3))
	for _, r := range "abcde" {
		perform(t, e, Insert(r))
	}
	assert.Equal(t, 3, e.UndoCount())

	for perform(t, e, Undo()) {
	}
	assert.Equal(t, "ab", buf.Text(), "the two oldest edits were evicted")
}

// --- Property tests ---

const propertyAlphabet = "ab .-\n"

func drawText(t *rapid.T, label string) string {
	return rapid.StringOf(rapid.RuneFrom([]rune(propertyAlphabet))).Draw(t, label)
}

func drawEngine(t *rapid.T) (*Engine, *buffer.SliceBuffer) {
	buf := buffer.NewSliceBufferFromString(drawText(t, "text"))
	line := rapid.IntRange(0, buf.LineCount()-1).Draw(t, "line")
	col := rapid.IntRange(0, buf.LineLen(line)).Draw(t, "col")
	buf.SetCursor(types.At(pos(line, col)))
	return New(buf), buf
}

func drawEdit(t *rapid.T) Intent {
	switch rapid.IntRange(0, 8).Draw(t, "edit") {
	case 0:
		return Insert(rapid.RuneFrom([]rune(propertyAlphabet)).Draw(t, "rune"))
	case 1:
		return Paste(drawText(t, "paste"))
	case 2:
		return Enter()
	case 3:
		return Backspace()
	case 4:
		return Delete()
	case 5:
		return BackspaceWord()
	case 6:
		return BackspaceSentence()
	case 7:
		return DeleteWord()
	default:
		return DeleteSentence()
	}
}

func drawMove(t *rapid.T) Intent {
	motion := buffer.Motion(rapid.IntRange(int(buffer.MotionLeft), int(buffer.MotionDocEnd)).Draw(t, "motion"))
	return Move(motion, rapid.Bool().Draw(t, "extend"))
}

func TestProperty_UndoAllRestoresText(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e, buf := drawEngine(t)
		initial := buf.Text()

		steps := rapid.IntRange(1, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			in := drawEdit(t)
			if rapid.Bool().Draw(t, "isMove") {
				in = drawMove(t)
			}
			_, err := e.Perform(in)
			require.NoError(t, err)
		}

		for e.UndoCount() > 0 {
			_, err := e.Perform(Undo())
			require.NoError(t, err)
		}
		assert.Equal(t, initial, buf.Text())
	})
}

func TestProperty_UndoAllRestoresCursor(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e, buf := drawEngine(t)
		initial := buf.Text()
		initialCursor := buf.Cursor()

		steps := rapid.IntRange(1, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			_, err := e.Perform(drawEdit(t))
			require.NoError(t, err)
		}

		for e.UndoCount() > 0 {
			_, err := e.Perform(Undo())
			require.NoError(t, err)
		}
		assert.Equal(t, initial, buf.Text())
		assert.True(t, initialCursor.Equal(buf.Cursor()), "cursor %v, want %v", buf.Cursor(), initialCursor)
	})
}

func TestProperty_RedoAfterUndo(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e, buf := drawEngine(t)

		steps := rapid.IntRange(1, 20).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			in := drawEdit(t)
			if rapid.Bool().Draw(t, "isMove") {
				in = drawMove(t)
			}
			undoBefore := e.UndoCount()
			_, err := e.Perform(in)
			require.NoError(t, err)
			if e.UndoCount() == undoBefore {
				continue
			}

			text, cursor := buf.Text(), buf.Cursor()
			_, err = e.Perform(Undo())
			require.NoError(t, err)
			_, err = e.Perform(Redo())
			require.NoError(t, err)

			assert.Equal(t, text, buf.Text())
			assert.True(t, cursor.Equal(buf.Cursor()), "after %v", in)
			assert.Zero(t, e.RedoCount())
		}
	})
}

func TestProperty_TextNeverHasCarriageReturn(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e, buf := drawEngine(t)
		_, err := e.Perform(Paste(rapid.StringOf(rapid.RuneFrom([]rune("x\r\n"))).Draw(t, "paste")))
		require.NoError(t, err)
		assert.False(t, strings.ContainsRune(buf.Text(), '\r'))
	})
}

func TestProperty_PasteKeepsTextValid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e, buf := drawEngine(t)
		initial := buf.Text()
		raw := rapid.SliceOf(rapid.Byte()).Draw(t, "paste")

		_, err := e.Perform(Paste(string(raw)))
		require.NoError(t, err)
		require.True(t, utf8.ValidString(buf.Text()))
		c := buf.Cursor().Position
		require.LessOrEqual(t, c.Col, buf.LineLen(c.Line))

		for e.UndoCount() > 0 {
			_, err := e.Perform(Undo())
			require.NoError(t, err)
		}
		assert.Equal(t, initial, buf.Text())
	})
}
