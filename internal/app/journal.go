package app

import (
	"time"

	"github.com/bethropolis/quill/internal/journal"
	"github.com/bethropolis/quill/internal/logger"
)

// openDay binds the session to day without saving the current one.
func (a *App) openDay(day time.Time) {
	a.day = journal.Day(day)
	key := journal.Key(a.day)
	text, _ := a.store.Load(key)
	a.editor.SwitchDocument(key, text)
}

// saveDay writes the current text back to the store if it was edited.
func (a *App) saveDay() {
	if !a.editor.IsModified() {
		return
	}
	a.store.Save(a.editor.DocumentKey(), a.editor.Text())
}

// switchDay saves the current day and opens another. The switch finishes
// before the next key is handled.
func (a *App) switchDay(day time.Time) {
	if journal.Key(day) == a.editor.DocumentKey() {
		return
	}
	a.saveDay()
	a.openDay(day)
	logger.DebugTagf("app", "now editing %s", a.editor.DocumentKey())
}
