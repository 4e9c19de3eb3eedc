package app

import (
	"github.com/bethropolis/quill/internal/config"
	"github.com/bethropolis/quill/internal/statusbar"
	"github.com/bethropolis/quill/internal/theme"
	"github.com/bethropolis/quill/internal/tui"
)

func tuiStyles(th *theme.Theme) tui.Styles {
	return tui.Styles{
		Default:   th.GetStyle(theme.StyleDefault),
		Selection: th.GetStyle(theme.StyleSelection),
	}
}

func statusBarConfig(th *theme.Theme) statusbar.Config {
	return statusbar.Config{
		StyleDefault:   th.GetStyle(theme.StyleStatusBar),
		StyleModified:  th.GetStyle(theme.StyleStatusBarModified),
		StyleMessage:   th.GetStyle(theme.StyleStatusBarMessage),
		MessageTimeout: config.MessageTimeout,
	}
}

// drawEditor clears screen and redraws all components.
func (a *App) drawEditor() {
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()

	a.tuiManager.Clear()
	tui.DrawBuffer(a.tuiManager, a.editor)
	a.statusBar.Draw(screen, width, height)
	tui.DrawCursor(a.tuiManager, a.editor)
	a.tuiManager.Show()
}
