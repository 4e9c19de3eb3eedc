package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/quill/internal/types"
)

func TestBulkDelete_WordBackspace(t *testing.T) {
	e, buf := newEngineAt("hello world", 0, 11)

	perform(t, e, BackspaceWord())
	assert.Equal(t, "hello ", buf.Text())
	assert.Equal(t, pos(0, 6), buf.Cursor().Position)

	ev := lastEvent(t, e)
	assert.Equal(t, "world", ev.Removed)
	assert.Empty(t, ev.Added)
	assert.Equal(t, pos(0, 6), ev.At)

	perform(t, e, BackspaceWord())
	assert.Equal(t, "hello", buf.Text(), "a stop character is removed on its own")
	perform(t, e, BackspaceWord())
	assert.Equal(t, "", buf.Text())
	assert.Equal(t, 3, e.UndoCount(), "one event per bulk delete")
}

func TestBulkDelete_RepeatedStopRun(t *testing.T) {
	e, buf := newEngineAt("wait....", 0, 8)

	perform(t, e, BackspaceWord())
	assert.Equal(t, "wait", buf.Text())
	assert.Equal(t, "....", lastEvent(t, e).Removed)
}

func TestBulkDelete_SelectionTakesPriority(t *testing.T) {
	e, buf := newEngineAt("hello brave world", 0, 0)
	buf.SetCursor(types.Selecting(pos(0, 6), pos(0, 9)))

	perform(t, e, BackspaceWord())
	assert.Equal(t, "hello ve world", buf.Text())
	assert.Equal(t, "bra", lastEvent(t, e).Removed)
	assert.Equal(t, pos(0, 6), buf.Cursor().Position)
	assert.Nil(t, buf.Cursor().Anchor)
}

func TestBulkDelete_LineJoin(t *testing.T) {
	t.Run("backward", func(t *testing.T) {
		e, buf := newEngineAt("first\nsecond", 1, 0)
		perform(t, e, BackspaceWord())
		assert.Equal(t, "firstsecond", buf.Text())
		assert.Equal(t, pos(0, 5), buf.Cursor().Position)
		ev := lastEvent(t, e)
		assert.Equal(t, "\n", ev.Removed)
		assert.Equal(t, pos(0, 5), ev.At)
	})

	t.Run("forward", func(t *testing.T) {
		e, buf := newEngineAt("first\nsecond", 0, 5)
		perform(t, e, DeleteSentence())
		assert.Equal(t, "firstsecond", buf.Text())
		assert.Equal(t, pos(0, 5), buf.Cursor().Position)
		assert.Equal(t, "\n", lastEvent(t, e).Removed)
	})
}

func TestBulkDelete_DocumentEdges(t *testing.T) {
	e, buf := newEngineAt("one two", 0, 7)
	assert.False(t, perform(t, e, DeleteWord()))
	assert.False(t, perform(t, e, DeleteSentence()))

	buf.SetCursor(types.At(pos(0, 0)))
	assert.False(t, perform(t, e, BackspaceWord()))
	assert.False(t, perform(t, e, BackspaceSentence()))

	assert.Equal(t, "one two", buf.Text())
	assert.Zero(t, e.UndoCount())
}

func TestBulkDelete_Forward(t *testing.T) {
	e, buf := newEngineAt("hello world", 0, 0)

	perform(t, e, DeleteWord())
	assert.Equal(t, " world", buf.Text())
	assert.Equal(t, pos(0, 0), buf.Cursor().Position)
	ev := lastEvent(t, e)
	assert.Equal(t, "hello", ev.Removed)
	assert.Equal(t, pos(0, 0), ev.At)
}

func TestBulkDelete_Sentence(t *testing.T) {
	e, buf := newEngineAt("First one. Second bit", 0, 21)

	perform(t, e, BackspaceSentence())
	assert.Equal(t, "First one.", buf.Text())
	assert.Equal(t, " Second bit", lastEvent(t, e).Removed)

	perform(t, e, BackspaceSentence())
	assert.Equal(t, "First one", buf.Text())
}

func TestBulkDelete_StaysOnLine(t *testing.T) {
	e, buf := newEngineAt("alpha\nbeta gamma", 1, 4)

	perform(t, e, BackspaceSentence())
	assert.Equal(t, "alpha\n gamma", buf.Text(), "the scan never crosses a line break")
}

func TestBulkDelete_CustomStops(t *testing.T) {
	e, buf := newEngineAt("snake_case word", 0, 10, WithWordStops(" _"))

	perform(t, e, BackspaceWord())
	assert.Equal(t, "snake_ word", buf.Text())
}

func TestBulkDelete_UndoRestores(t *testing.T) {
	e, buf := newEngineAt("wait.... then", 0, 8)

	perform(t, e, BackspaceWord())
	require.Equal(t, "wait then", buf.Text())

	perform(t, e, Undo())
	assert.Equal(t, "wait.... then", buf.Text())
	assert.Equal(t, types.At(pos(0, 8)), buf.Cursor())
}
