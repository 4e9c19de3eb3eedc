package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStyle_Fallbacks(t *testing.T) {
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)
	blue := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	th := &Theme{Name: "t", Styles: map[string]tcell.Style{
		StyleDefault:   red,
		StyleStatusBar: blue,
	}}

	assert.Equal(t, blue, th.GetStyle(StyleStatusBar))
	assert.Equal(t, blue, th.GetStyle(StyleStatusBarModified), "dotted names fall back to their base")
	assert.Equal(t, red, th.GetStyle(StyleSelection))

	empty := &Theme{Name: "empty", Styles: map[string]tcell.Style{}}
	assert.Equal(t, tcell.StyleDefault, empty.GetStyle(StyleSelection))
}

func TestQuillDark_HasUIStyles(t *testing.T) {
	for _, name := range []string{StyleDefault, StyleSelection, StyleStatusBar, StyleStatusBarModified, StyleStatusBarMessage} {
		_, ok := QuillDark.Styles[name]
		assert.True(t, ok, name)
	}
}

func TestParseColorString(t *testing.T) {
	tests := []struct {
		in      string
		want    tcell.Color
		wantErr bool
	}{
		{in: "#ff0000", want: tcell.NewHexColor(0xff0000)},
		{in: " #00FF00 ", want: tcell.NewHexColor(0x00ff00)},
		{in: "reset", want: tcell.ColorReset},
		{in: "Default", want: tcell.ColorDefault},
		{in: "navy", want: tcell.ColorNavy},
		{in: "#fff", wantErr: true},
		{in: "#gggggg", wantErr: true},
		{in: "not-a-colour", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseColorString(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadThemeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paper.toml")
	data := `
is_dark = false

[styles.Default]
fg = "#333333"
bg = "#fafafa"

[styles.Selection]
reverse = true

[styles.StatusBar]
bg = "navy"
bold = true

[styles.Broken]
fg = "#12"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	th, err := LoadThemeFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "paper", th.Name, "name defaults to the file name")
	assert.False(t, th.IsDark)

	base := tcell.StyleDefault.Foreground(tcell.NewHexColor(0x333333)).Background(tcell.NewHexColor(0xfafafa))
	assert.Equal(t, base, th.GetStyle(StyleDefault))
	assert.Equal(t, base.Reverse(true), th.GetStyle(StyleSelection))
	assert.Equal(t, base.Background(tcell.ColorNavy).Bold(true), th.GetStyle(StyleStatusBarMessage))

	_, ok := th.Styles["Broken"]
	assert.False(t, ok, "invalid styles are skipped")
}

func TestLoad(t *testing.T) {
	th, err := Load("")
	require.NoError(t, err)
	assert.Same(t, QuillDark, th)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
