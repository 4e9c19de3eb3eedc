package types

// Cursor is the caret plus an optional selection anchor.
// A selection exists when Anchor is set and differs from Position; it spans
// the text between the smaller and the larger of the two.
type Cursor struct {
	Position Position
	Anchor   *Position
}

// At returns a cursor at pos without a selection.
func At(pos Position) Cursor {
	return Cursor{Position: pos}
}

// Selecting returns a cursor at pos with the selection anchored at anchor.
func Selecting(anchor, pos Position) Cursor {
	return Cursor{Position: pos, Anchor: &anchor}
}

// HasSelection reports whether the cursor spans a non-empty selection.
func (c Cursor) HasSelection() bool {
	return c.Anchor != nil && *c.Anchor != c.Position
}

// Selection returns the normalized selection range (start <= end).
// ok is false when there is no non-empty selection.
func (c Cursor) Selection() (start, end Position, ok bool) {
	if !c.HasSelection() {
		return c.Position, c.Position, false
	}
	start, end = Ordered(*c.Anchor, c.Position)
	return start, end, true
}

// Clone returns a copy that shares no memory with c.
func (c Cursor) Clone() Cursor {
	if c.Anchor == nil {
		return Cursor{Position: c.Position}
	}
	a := *c.Anchor
	return Cursor{Position: c.Position, Anchor: &a}
}

// Equal reports whether both cursors have the same position and the same anchor.
func (c Cursor) Equal(other Cursor) bool {
	if c.Position != other.Position {
		return false
	}
	if c.Anchor == nil || other.Anchor == nil {
		return c.Anchor == nil && other.Anchor == nil
	}
	return *c.Anchor == *other.Anchor
}
