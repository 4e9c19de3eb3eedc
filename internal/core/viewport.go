package core

import (
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/utils"
)

const (
	DefaultScrollOff = 3 // Lines kept visible around the cursor
	DefaultTabWidth  = 4
)

// SetViewSize updates the cached view dimensions. Called on resize or before drawing.
func (e *Editor) SetViewSize(width, height int) {
	e.viewWidth = width
	e.viewHeight = max(height, 0)
	e.ScrollToCursor()
}

func (e *Editor) GetViewport() (int, int) {
	return e.ViewportY, e.ViewportX
}

// VisualColumn returns the screen column of the cursor within its line.
func (e *Editor) VisualColumn() int {
	pos := e.buffer.Cursor().Position
	line, err := e.buffer.Line(pos.Line)
	if err != nil {
		return 0
	}
	return utils.VisualColumn(line, pos.Col, e.TabWidth)
}

// ScrollToCursor adjusts the viewport incorporating ScrollOff and visual width.
func (e *Editor) ScrollToCursor() {
	if e.viewHeight <= 0 || e.viewWidth <= 0 {
		return
	}
	cursor := e.buffer.Cursor().Position

	// Effective scrolloff (cannot be larger than half the view height)
	scrollOff := e.ScrollOff
	if scrollOff*2 >= e.viewHeight {
		scrollOff = (e.viewHeight - 1) / 2
	}

	if cursor.Line < e.ViewportY+scrollOff {
		e.ViewportY = cursor.Line - scrollOff
	} else if cursor.Line >= e.ViewportY+e.viewHeight-scrollOff {
		e.ViewportY = cursor.Line - e.viewHeight + 1 + scrollOff
	}

	visualCol := 0
	if line, err := e.buffer.Line(cursor.Line); err == nil {
		visualCol = utils.VisualColumn(line, cursor.Col, e.TabWidth)
	} else {
		logger.Debugf("ScrollToCursor: Error getting line %d: %v", cursor.Line, err)
	}
	if visualCol < e.ViewportX {
		e.ViewportX = visualCol
	} else if visualCol >= e.ViewportX+e.viewWidth {
		e.ViewportX = visualCol - e.viewWidth + 1
	}

	e.ViewportY = max(e.ViewportY, 0)
	e.ViewportX = max(e.ViewportX, 0)
}
