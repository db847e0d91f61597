package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUICmd_Exists(t *testing.T) {
	// Verify the tui command is registered
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == "tui" {
			found = true
			break
		}
	}
	assert.True(t, found, "tui command should be registered")
}

func TestTUICmd_ShortDescription(t *testing.T) {
	assert.Equal(t, "Launch the interactive terminal UI", tuiCmd.Short)
}

func TestTUICmd_LongDescription(t *testing.T) {
	assert.Contains(t, tuiCmd.Long, "interactive terminal user interface")
	assert.Contains(t, tuiCmd.Long, "Controls:")
}

func TestTUICmd_HelpOutput(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "", "tui", "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "interactive terminal user interface")
	assert.Contains(t, out, "Ctrl+S")
}

func TestTUICmd_RequiresCalculator(t *testing.T) {
	setupTestServices(t)
	SetServices(nil)

	err := runTUI(tuiCmd, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create TUI")
}

func TestMCPServeCmd_RequiresCalculator(t *testing.T) {
	setupTestServices(t)
	SetServices(nil)

	_, err := executeCommand(t, "", "mcp", "serve")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "calculator service is required")
}
