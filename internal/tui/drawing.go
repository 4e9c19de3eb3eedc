// internal/tui/drawing.go
package tui

import (
	"github.com/rivo/uniseg"

	"github.com/bethropolis/quill/internal/config"
	"github.com/bethropolis/quill/internal/core"
	"github.com/bethropolis/quill/internal/types"
	"github.com/bethropolis/quill/internal/utils"
)

// isPositionWithin checks if pos is within the range [start, end).
// Assumes start <= end.
func isPositionWithin(pos, start, end types.Position) bool {
	if pos.Line < start.Line || pos.Line > end.Line {
		return false
	}
	if pos.Line == start.Line && pos.Col < start.Col {
		return false
	}
	// The end position is exclusive for selection ranges.
	if pos.Line == end.Line && pos.Col >= end.Col {
		return false
	}
	return true
}

// DrawBuffer draws the visible portion of the editor's text above the status bar.
func DrawBuffer(t *TUI, editor *core.Editor) {
	width, height := t.Size()
	viewHeight := height - config.StatusBarHeight
	if viewHeight <= 0 || width <= 0 {
		return
	}

	buf := editor.GetBuffer()
	viewY, viewX := editor.GetViewport()
	selStart, selEnd, selectionActive := editor.Cursor().Selection()
	tabWidth := max(editor.TabWidth, 1)

	for screenY := 0; screenY < viewHeight; screenY++ {
		lineIdx := screenY + viewY
		for x := 0; x < width; x++ {
			t.screen.SetContent(x, screenY, ' ', nil, t.styles.Default)
		}
		line, err := buf.Line(lineIdx)
		if err != nil {
			continue // Below the end of the text
		}

		gr := uniseg.NewGraphemes(string(line))
		visualX := 0
		runeIndex := 0
		for gr.Next() {
			runes := gr.Runes()
			clusterWidth := utils.ClusterWidth(gr.Str(), gr.Width(), tabWidth)
			screenX := visualX - viewX

			if screenX >= width {
				break
			}
			if screenX >= 0 {
				style := t.styles.Default
				pos := types.Position{Line: lineIdx, Col: runeIndex}
				if selectionActive && isPositionWithin(pos, selStart, selEnd) {
					style = t.styles.Selection
				}

				if runes[0] == '\t' {
					for i := 0; i < clusterWidth && screenX+i < width; i++ {
						t.screen.SetContent(screenX+i, screenY, ' ', nil, style)
					}
				} else {
					t.screen.SetContent(screenX, screenY, runes[0], runes[1:], style)
				}
			}

			visualX += clusterWidth
			runeIndex += len(runes)
		}
	}
}

// DrawCursor places the terminal cursor at the editor's cursor, or hides it
// when the cursor is scrolled out of view.
func DrawCursor(t *TUI, editor *core.Editor) {
	width, height := t.Size()
	viewHeight := height - config.StatusBarHeight
	viewY, viewX := editor.GetViewport()

	pos := editor.Cursor().Position
	screenY := pos.Line - viewY
	screenX := editor.VisualColumn() - viewX
	if screenX < 0 || screenX >= width || screenY < 0 || screenY >= viewHeight {
		t.screen.HideCursor()
		return
	}
	t.screen.ShowCursor(screenX, screenY)
}
