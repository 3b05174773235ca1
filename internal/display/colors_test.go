package display

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorsDisabled(t *testing.T) {
	c, err := ParseColors(false, "", "", "")
	require.NoError(t, err)
	assert.False(t, c.Enabled)
}

func TestParseColorsFlagEnables(t *testing.T) {
	c, err := ParseColors(true, "", "", "")
	require.NoError(t, err)
	assert.True(t, c.Enabled)
	assert.Equal(t, tcell.ColorDefault, c.Bg)
	assert.Equal(t, tcell.ColorDefault, c.Fg)
	assert.False(t, c.HasText)
}

func TestParseColorsNamesImplyColorMode(t *testing.T) {
	c, err := ParseColors(false, "red", "white", "")
	require.NoError(t, err)
	assert.True(t, c.Enabled)
	assert.Equal(t, tcell.PaletteColor(1), c.Bg)
	assert.Equal(t, tcell.PaletteColor(7), c.Fg)
}

func TestParseColorsTextOnly(t *testing.T) {
	c, err := ParseColors(false, "", "", "green")
	require.NoError(t, err)
	assert.True(t, c.Enabled)
	assert.True(t, c.HasText)
	assert.Equal(t, tcell.PaletteColor(2), c.Text)
}

func TestParseColorsInvalidNames(t *testing.T) {
	tests := []struct {
		name          string
		bg, fg, text  string
		wantInMessage string
	}{
		{"bad background", "mauve", "", "", `--bg: unrecognized color name "mauve"`},
		{"bad foreground", "", "chartreuse", "", `--fg: unrecognized color name "chartreuse"`},
		{"bad text", "", "", "beige", `--text: unrecognized color name "beige"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseColors(true, tt.bg, tt.fg, tt.text)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantInMessage)
		})
	}
}
