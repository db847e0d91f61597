package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme_ColoursAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	seen := make(map[string]bool)
	for _, c := range []lipgloss.Color{theme.Primary, theme.Secondary, theme.Success, theme.Warning, theme.Error} {
		require.NotEmpty(t, string(c))
		assert.False(t, seen[string(c)], "duplicate colour: %s", c)
		seen[string(c)] = true
	}
}

func TestNewStyles_NilTheme(t *testing.T) {
	styles := NewStyles(nil)

	require.NotNil(t, styles)
	assert.Equal(t, DefaultTheme(), styles.Theme())
}

func TestStyles_AllStylesInitialised(t *testing.T) {
	styles := DefaultStyles()

	for name, style := range map[string]lipgloss.Style{
		"Title":        styles.Title,
		"Error":        styles.Error,
		"InputField":   styles.InputField,
		"StatusBar":    styles.StatusBar,
		"Tab":          styles.Tab,
		"ActiveTab":    styles.ActiveTab,
		"Label":        styles.Label,
		"FocusedLabel": styles.FocusedLabel,
		"ResultBox":    styles.ResultBox,
		"ResultValue":  styles.ResultValue,
		"Border":       styles.Border,
	} {
		t.Run(name, func(t *testing.T) {
			assert.NotEqual(t, lipgloss.Style{}, style)
			assert.NotEmpty(t, style.Render("22.9"))
		})
	}
}

func TestStyles_ActiveTabStandsOut(t *testing.T) {
	styles := DefaultStyles()

	assert.True(t, styles.ActiveTab.GetBold())
	assert.False(t, styles.Tab.GetBold())
	assert.Equal(t, styles.Label.GetWidth(), styles.FocusedLabel.GetWidth())
}
