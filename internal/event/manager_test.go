package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManager_DispatchInOrder(t *testing.T) {
	m := NewManager()
	var got []string
	m.Subscribe(TypeHistoryChanged, func(e Event) bool {
		data := e.Data.(HistoryChangedData)
		got = append(got, "first")
		assert.Equal(t, 2, data.UndoCount)
		return false
	})
	m.Subscribe(TypeHistoryChanged, func(Event) bool {
		got = append(got, "second")
		return false
	})
	m.Subscribe(TypeCursorMoved, func(Event) bool {
		got = append(got, "other")
		return false
	})

	m.Dispatch(TypeHistoryChanged, HistoryChangedData{UndoCount: 2})
	assert.Equal(t, []string{"first", "second"}, got)
}

func TestManager_ConsumedStopsPropagation(t *testing.T) {
	m := NewManager()
	calls := 0
	m.Subscribe(TypeAppQuit, func(Event) bool { calls++; return true })
	m.Subscribe(TypeAppQuit, func(Event) bool { calls++; return false })

	m.Dispatch(TypeAppQuit, AppQuitData{})
	assert.Equal(t, 1, calls)
}

func TestManager_HandlerMaySubscribe(t *testing.T) {
	m := NewManager()
	m.Subscribe(TypeAppReady, func(Event) bool {
		m.Subscribe(TypeAppQuit, func(Event) bool { return false })
		return false
	})
	assert.NotPanics(t, func() { m.Dispatch(TypeAppReady, AppReadyData{}) })

	var nilManager *Manager
	assert.NotPanics(t, func() { nilManager.Dispatch(TypeAppQuit, nil) })
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "document-switched", TypeDocumentSwitched.String())
	assert.Equal(t, "unknown", Type(99).String())
}
