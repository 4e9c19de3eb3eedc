package history

import "github.com/bethropolis/quill/internal/logger"

// DefaultCapacity bounds each of the undo and redo lists.
const DefaultCapacity = 1000

// Stack holds the undo and redo lists of one editing session.
// The top of each list is the most recent entry; pushing past the capacity
// silently evicts the oldest one. Stack is not safe for concurrent use.
type Stack struct {
	undo     []Event
	redo     []Event
	capacity int
}

// NewStack creates a stack whose lists hold at most capacity events each.
func NewStack(capacity int) *Stack {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Stack{capacity: capacity}
}

// PushUndo records ev as the most recent undo entry. Empty events are ignored.
func (s *Stack) PushUndo(ev Event) {
	if ev.IsEmpty() {
		return
	}
	s.undo = s.push(s.undo, ev)
	logger.DebugTagf("history", "push undo %v (undo=%d redo=%d)", ev, len(s.undo), len(s.redo))
}

// PushRedo records ev as the most recent redo entry. Empty events are ignored.
func (s *Stack) PushRedo(ev Event) {
	if ev.IsEmpty() {
		return
	}
	s.redo = s.push(s.redo, ev)
	logger.DebugTagf("history", "push redo %v (undo=%d redo=%d)", ev, len(s.undo), len(s.redo))
}

func (s *Stack) push(list []Event, ev Event) []Event {
	list = append(list, ev)
	if excess := len(list) - s.capacity; excess > 0 {
		// Copy so the evicted events don't stay reachable through the backing array.
		list = append([]Event(nil), list[excess:]...)
	}
	return list
}

// TakeTopUndo removes and returns the most recent undo entry.
func (s *Stack) TakeTopUndo() (Event, bool) {
	var ev Event
	var ok bool
	s.undo, ev, ok = pop(s.undo)
	return ev, ok
}

// TakeTopRedo removes and returns the most recent redo entry.
func (s *Stack) TakeTopRedo() (Event, bool) {
	var ev Event
	var ok bool
	s.redo, ev, ok = pop(s.redo)
	return ev, ok
}

func pop(list []Event) ([]Event, Event, bool) {
	if len(list) == 0 {
		return list, Event{}, false
	}
	top := list[len(list)-1]
	list[len(list)-1] = Event{}
	return list[:len(list)-1], top, true
}

// ClearRedo drops the redo list. Called whenever a fresh edit abandons the redo branch.
func (s *Stack) ClearRedo() {
	if len(s.redo) > 0 {
		logger.DebugTagf("history", "dropping %d redo entries", len(s.redo))
	}
	s.redo = nil
}

// Clear empties both lists. Call this when the session switches document.
func (s *Stack) Clear() {
	s.undo = nil
	s.redo = nil
	logger.DebugTagf("history", "cleared")
}

func (s *Stack) UndoCount() int { return len(s.undo) }
func (s *Stack) RedoCount() int { return len(s.redo) }
func (s *Stack) Capacity() int  { return s.capacity }

// UndoEvents returns a copy of the undo list, most recent first.
func (s *Stack) UndoEvents() []Event {
	return newestFirst(s.undo)
}

// RedoEvents returns a copy of the redo list, most recent first.
func (s *Stack) RedoEvents() []Event {
	return newestFirst(s.redo)
}

func newestFirst(list []Event) []Event {
	out := make([]Event, len(list))
	for i, ev := range list {
		out[len(list)-1-i] = ev
	}
	return out
}
