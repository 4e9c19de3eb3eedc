// Package history provides the diff records and bounded stacks behind undo/redo.
package history

import (
	"fmt"

	"github.com/bethropolis/quill/internal/types"
)

// Event is one atomic or batch edit expressed as a diff.
//
// Removed existed before the edit and is gone afterward; Added exists
// afterward and didn't before. Both sit at At: Removed started there before
// the edit and Added starts there after it. The saved cursors let replay put
// the caret back exactly where the user had it.
type Event struct {
	Removed string
	Added   string
	At      types.Position

	CursorBefore types.Cursor
	CursorAfter  types.Cursor
}

// IsEmpty reports whether the event changes nothing. Empty events are never recorded.
func (e Event) IsEmpty() bool {
	return e.Removed == "" && e.Added == ""
}

func (e Event) String() string {
	return fmt.Sprintf("{removed:%q added:%q at:%d:%d}", e.Removed, e.Added, e.At.Line, e.At.Col)
}
