package app

import (
	"github.com/bethropolis/quill/internal/event"
)

func (a *App) handleCursorMovedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.CursorMovedData); ok {
		a.statusBar.SetCursorInfo(data.Cursor.Position)
	}
	return false
}

func (a *App) handleBufferModifiedForStatus(e event.Event) bool {
	a.statusBar.SetDayInfo(a.editor.DocumentKey(), a.editor.IsModified())
	return false
}

func (a *App) handleHistoryChangedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.HistoryChangedData); ok {
		a.statusBar.SetHistoryInfo(data.UndoCount, data.RedoCount)
	}
	return false
}

func (a *App) handleDocumentSwitchedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.DocumentSwitchedData); ok {
		a.statusBar.SetDayInfo(data.Key, false)
	}
	return false
}
