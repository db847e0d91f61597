package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()
	require.NotNil(t, km)

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"quit", km.Quit, []string{"q", "ctrl+c"}},
		{"back", km.Back, []string{"esc"}},
		{"next tab", km.NextTab, []string{"tab"}},
		{"previous tab", km.PrevTab, []string{"shift+tab"}},
		{"jump tab", km.JumpTab, []string{"1", "2", "3"}},
		{"next field", km.Next, []string{"enter"}},
		{"submit", km.Submit, []string{"ctrl+s"}},
		{"reset", km.Reset, []string{"ctrl+r"}},
		{"toggle", km.Toggle, []string{"left", "right", " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keys, tt.binding.Keys())
			assert.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestKeyMap_HelpGroups(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.ShortHelp(), km.Quit)
	assert.Contains(t, km.FormHelp(), km.Submit)

	total := 0
	for _, group := range km.FullHelp() {
		total += len(group)
	}
	assert.Equal(t, 13, total)
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("ctrl+r", km.Reset))
	assert.True(t, Matches("2", km.JumpTab))
	assert.False(t, Matches("4", km.JumpTab))
	assert.False(t, Matches("enter", km.Quit))
}
