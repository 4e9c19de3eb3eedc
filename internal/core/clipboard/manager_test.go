package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newFakeSystem(m *Manager) *string {
	var system string
	m.system = true
	m.readAll = func() (string, error) { return system, nil }
	m.writeAll = func(s string) error { system = s; return nil }
	return &system
}

func TestManager_InternalRegister(t *testing.T) {
	m := NewManager(false)
	assert.False(t, m.UsesSystem())
	assert.Equal(t, "", m.Read())

	assert.True(t, m.Copy("hello"))
	assert.Equal(t, "hello", m.Read())

	assert.False(t, m.Copy(""), "empty copies are ignored")
	assert.Equal(t, "hello", m.Read())
}

func TestManager_SystemClipboard(t *testing.T) {
	m := NewManager(false)
	system := newFakeSystem(m)

	m.Copy("from quill")
	assert.Equal(t, "from quill", *system)

	*system = "from elsewhere"
	assert.Equal(t, "from elsewhere", m.Read(), "the system clipboard wins")
}

func TestManager_SystemFallback(t *testing.T) {
	m := NewManager(false)
	newFakeSystem(m)
	m.Copy("kept")

	m.readAll = func() (string, error) { return "", errors.New("no display") }
	m.writeAll = func(string) error { return errors.New("no display") }

	assert.Equal(t, "kept", m.Read())
	assert.True(t, m.Copy("again"))
	assert.Equal(t, "again", m.Read())
}
