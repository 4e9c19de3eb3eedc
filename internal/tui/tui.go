// internal/tui/tui.go
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Styles used to draw the journal text.
type Styles struct {
	Default   tcell.Style
	Selection tcell.Style
}

// DefaultStyles uses the terminal's colours with a reversed selection.
func DefaultStyles() Styles {
	return Styles{
		Default:   tcell.StyleDefault,
		Selection: tcell.StyleDefault.Reverse(true),
	}
}

// TUI manages the terminal screen using tcell.
type TUI struct {
	screen tcell.Screen
	styles Styles
}

// New creates and initializes a TUI on the real terminal.
func New() (*TUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	return NewWithScreen(s)
}

// NewWithScreen initializes a TUI on s, e.g. a tcell.SimulationScreen.
func NewWithScreen(s tcell.Screen) (*TUI, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}
	styles := DefaultStyles()
	s.SetStyle(styles.Default)
	return &TUI{screen: s, styles: styles}, nil
}

// SetStyles replaces the drawing styles.
func (t *TUI) SetStyles(styles Styles) {
	t.styles = styles
	t.screen.SetStyle(styles.Default)
}

// Close finalizes the tcell screen.
func (t *TUI) Close() {
	if t.screen != nil {
		t.screen.Fini()
	}
}

// PollEvent retrieves the next event. It returns nil once the screen is finalized.
func (t *TUI) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// Clear clears the entire screen.
func (t *TUI) Clear() {
	t.screen.Clear()
}

// Show makes the changes visible.
func (t *TUI) Show() {
	t.screen.Show()
}

// Size returns the width and height of the terminal screen.
func (t *TUI) Size() (int, int) {
	return t.screen.Size()
}

// GetScreen provides direct access (use with caution).
func (t *TUI) GetScreen() tcell.Screen {
	return t.screen
}
