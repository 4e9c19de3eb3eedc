// internal/types/position.go
package types

import (
	"strings"
	"unicode/utf8"
)

// Position represents a cursor or text position within the buffer.
// Line is the 0-based line index.
// Col is the 0-based column (rune) index within the line.
type Position struct {
	Line int
	Col  int // Rune index
}

// Before reports whether p sits strictly before other in document order.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}

// Advance returns the position reached after writing s starting at p.
// Every "\n" in s moves to column 0 of the next line.
func (p Position) Advance(s string) Position {
	nl := strings.Count(s, "\n")
	if nl == 0 {
		return Position{Line: p.Line, Col: p.Col + utf8.RuneCountInString(s)}
	}
	tail := s[strings.LastIndexByte(s, '\n')+1:]
	return Position{Line: p.Line + nl, Col: utf8.RuneCountInString(tail)}
}

// Ordered returns a and b sorted so that the first is not after the second.
func Ordered(a, b Position) (Position, Position) {
	if b.Before(a) {
		return b, a
	}
	return a, b
}
