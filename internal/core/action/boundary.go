package action

import "strings"

// Direction of a boundary scan.
type Direction int

const (
	Backward Direction = iota
	Forward
)

// StopSet lists the characters that end a boundary scan.
type StopSet string

const (
	// DefaultWordStops is whitespace plus common punctuation, brackets and quotes.
	DefaultWordStops StopSet = " \t.,;:!?\"'`()[]{}<>-/\\"
	// DefaultSentenceStops is sentence-terminal punctuation.
	DefaultSentenceStops StopSet = ".!?"
)

func (s StopSet) Contains(r rune) bool {
	return strings.ContainsRune(string(s), r)
}

// Boundary parameterises the bulk-delete scan.
type Boundary struct {
	Direction Direction
	Stops     StopSet
}

// continues reports whether the scan that started by removing first may also
// remove next. A run that starts on a stop character only swallows more of
// that same character ("...." or "----" go as one token).
func (b Boundary) continues(first, next rune) bool {
	if b.Stops.Contains(first) {
		return next == first
	}
	return !b.Stops.Contains(next)
}

// span returns the half-open rune range [from, to) of line that a scan from
// col removes. It stays inside the line; from == to means nothing to remove.
func (b Boundary) span(line []rune, col int) (from, to int) {
	if b.Direction == Backward {
		if col <= 0 {
			return col, col
		}
		first := line[col-1]
		from = col - 1
		for from > 0 && b.continues(first, line[from-1]) {
			from--
		}
		return from, col
	}

	if col >= len(line) {
		return col, col
	}
	first := line[col]
	to = col + 1
	for to < len(line) && b.continues(first, line[to]) {
		to++
	}
	return col, to
}
