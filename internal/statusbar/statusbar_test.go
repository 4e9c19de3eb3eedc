package statusbar

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/quill/internal/types"
)

func newScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return screen
}

// lineText returns row y of the screen with trailing blanks trimmed.
func lineText(screen tcell.SimulationScreen, y int) string {
	cells, width, _ := screen.GetContents()
	var sb strings.Builder
	for x := 0; x < width; x++ {
		for _, r := range cells[y*width+x].Runes {
			sb.WriteRune(r)
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestStatusBar_DefaultText(t *testing.T) {
	screen := newScreen(t, 80, 3)
	bar := New(DefaultConfig())
	bar.SetDayInfo("2024-05-01", true)
	bar.SetCursorInfo(types.Position{Line: 2, Col: 4})
	bar.SetHistoryInfo(3, 0)

	bar.Draw(screen, 80, 3)
	screen.Show()
	assert.Equal(t, "2024-05-01 [Modified] -- Ln 3, Col 5 -- undo 3 | redo -", lineText(screen, 2))
}

func TestStatusBar_NoDay(t *testing.T) {
	bar := New(DefaultConfig())
	assert.True(t, strings.HasPrefix(bar.getDefaultDisplayText(), "[No Day] -- Ln 1, Col 1"))
}

func TestStatusBar_TemporaryMessage(t *testing.T) {
	screen := newScreen(t, 40, 2)
	bar := New(DefaultConfig())
	bar.SetDayInfo("2024-05-01", false)

	bar.SetTemporaryMessage("copied %d bytes", 12)
	bar.Draw(screen, 40, 2)
	screen.Show()
	assert.Equal(t, "copied 12 bytes", lineText(screen, 1))

	bar.tempMessageTime = time.Now().Add(-time.Minute)
	bar.Draw(screen, 40, 2)
	screen.Show()
	assert.True(t, strings.HasPrefix(lineText(screen, 1), "2024-05-01 -- Ln 1"))
	assert.Empty(t, bar.tempMessage, "expired messages are dropped")
}

func TestStatusBar_Truncates(t *testing.T) {
	screen := newScreen(t, 10, 1)
	bar := New(DefaultConfig())
	bar.SetTemporaryMessage("a message that does not fit")
	bar.Draw(screen, 10, 1)
	screen.Show()
	assert.Equal(t, "a message", lineText(screen, 0))
}
