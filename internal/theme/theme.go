// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/quill/internal/logger"
)

// Style names the UI looks up.
const (
	StyleDefault           = "Default"
	StyleSelection         = "Selection"
	StyleStatusBar         = "StatusBar"
	StyleStatusBarModified = "StatusBar.modified"
	StyleStatusBarMessage  = "StatusBar.message"
)

// Theme maps style names to tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle resolves name, falling back to the part before the first dot,
// then to "Default", then to the terminal default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if base, _, found := strings.Cut(name, "."); found {
		if style, ok := t.Styles[base]; ok {
			logger.DebugTagf("theme", "%s: style %q not found, using %q", t.Name, name, base)
			return style
		}
	}

	if style, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.DebugTagf("theme", "%s: style %q not found, falling back to Default", t.Name, name)
		}
		return style
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// QuillDark is the built-in theme.
var QuillDark = newQuillDark()

func newQuillDark() *Theme {
	background := tcell.NewHexColor(0x2a2f38) // status bar
	foreground := tcell.NewHexColor(0xc5cdd9)
	yellow := tcell.NewHexColor(0xe5c07b)

	// Keep the terminal background behind the text
	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(foreground)
	bar := tcell.StyleDefault.Background(background).Foreground(foreground)

	return &Theme{
		Name:   "Quill Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:           base,
			StyleSelection:         base.Reverse(true),
			StyleStatusBar:         bar,
			StyleStatusBarModified: bar.Foreground(yellow),
			StyleStatusBarMessage:  bar.Bold(true),
		},
	}
}
