package action

import (
	"fmt"

	"github.com/bethropolis/quill/internal/buffer"
)

// Kind identifies what an Intent asks the engine to do.
type Kind int

const (
	KindUnknown Kind = iota

	// Standard primitives
	KindInsert
	KindPaste
	KindEnter
	KindBackspace
	KindDelete
	KindMove

	// Ctrl bulk deletes
	KindBackspaceWord
	KindBackspaceSentence
	KindDeleteWord
	KindDeleteSentence

	// History
	KindUndo
	KindRedo
	KindClearHistory
)

var kindNames = map[Kind]string{
	KindInsert:            "insert",
	KindPaste:             "paste",
	KindEnter:             "enter",
	KindBackspace:         "backspace",
	KindDelete:            "delete",
	KindMove:              "move",
	KindBackspaceWord:     "backspace-word",
	KindBackspaceSentence: "backspace-sentence",
	KindDeleteWord:        "delete-word",
	KindDeleteSentence:    "delete-sentence",
	KindUndo:              "undo",
	KindRedo:              "redo",
	KindClearHistory:      "clear-history",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Intent is one discrete edit request coming from the UI.
type Intent struct {
	Kind   Kind
	Rune   rune          // KindInsert
	Text   string        // KindPaste
	Motion buffer.Motion // KindMove
	Extend bool          // KindMove: grow the selection instead of dropping it
}

func (in Intent) String() string {
	switch in.Kind {
	case KindInsert:
		return fmt.Sprintf("insert(%q)", in.Rune)
	case KindPaste:
		return fmt.Sprintf("paste(%d bytes)", len(in.Text))
	case KindMove:
		if in.Extend {
			return "select-" + in.Motion.String()
		}
		return "move-" + in.Motion.String()
	}
	return in.Kind.String()
}

func Insert(r rune) Intent      { return Intent{Kind: KindInsert, Rune: r} }
func Paste(s string) Intent     { return Intent{Kind: KindPaste, Text: s} }
func Enter() Intent             { return Intent{Kind: KindEnter} }
func Backspace() Intent         { return Intent{Kind: KindBackspace} }
func Delete() Intent            { return Intent{Kind: KindDelete} }
func BackspaceWord() Intent     { return Intent{Kind: KindBackspaceWord} }
func BackspaceSentence() Intent { return Intent{Kind: KindBackspaceSentence} }
func DeleteWord() Intent        { return Intent{Kind: KindDeleteWord} }
func DeleteSentence() Intent    { return Intent{Kind: KindDeleteSentence} }
func Undo() Intent              { return Intent{Kind: KindUndo} }
func Redo() Intent              { return Intent{Kind: KindRedo} }
func ClearHistory() Intent      { return Intent{Kind: KindClearHistory} }

// Move moves the cursor; with extend the selection anchor is kept (or set).
func Move(m buffer.Motion, extend bool) Intent {
	return Intent{Kind: KindMove, Motion: m, Extend: extend}
}

// IsEdit reports whether the intent may change buffer content and record history.
func (in Intent) IsEdit() bool {
	switch in.Kind {
	case KindInsert, KindPaste, KindEnter, KindBackspace, KindDelete,
		KindBackspaceWord, KindBackspaceSentence, KindDeleteWord, KindDeleteSentence:
		return true
	}
	return false
}
