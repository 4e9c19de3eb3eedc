// Package clipboard holds the copy/paste register of the editor.
package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/bethropolis/quill/internal/logger"
)

// Manager keeps an internal register and, when enabled, mirrors it to the
// system clipboard. Reads prefer the system clipboard and fall back to the
// register when the system one is unavailable or empty.
type Manager struct {
	system   bool
	register string

	readAll  func() (string, error)
	writeAll func(string) error
}

// NewManager creates a clipboard manager. useSystem is ignored on platforms
// where no system clipboard tool is available.
func NewManager(useSystem bool) *Manager {
	if useSystem && clipboard.Unsupported {
		logger.Warnf("clipboard: system clipboard unsupported, using internal register")
		useSystem = false
	}
	return &Manager{
		system:   useSystem,
		readAll:  clipboard.ReadAll,
		writeAll: clipboard.WriteAll,
	}
}

// UsesSystem reports whether copies reach the system clipboard.
func (m *Manager) UsesSystem() bool {
	return m.system
}

// Copy stores text. It returns false for empty text, which leaves the register alone.
func (m *Manager) Copy(text string) bool {
	if text == "" {
		return false
	}
	m.register = text
	if m.system {
		if err := m.writeAll(text); err != nil {
			logger.Warnf("clipboard: system write failed: %v", err)
		}
	}
	logger.DebugTagf("clipboard", "copied %d bytes", len(text))
	return true
}

// Read returns the current clipboard content.
func (m *Manager) Read() string {
	if m.system {
		text, err := m.readAll()
		if err == nil && text != "" {
			return text
		}
		if err != nil {
			logger.DebugTagf("clipboard", "system read failed: %v", err)
		}
	}
	return m.register
}
