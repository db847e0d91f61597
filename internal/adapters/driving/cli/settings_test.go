package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/medcalc/internal/core/domain"
)

// Test helper functions in settings.go

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		maxVal     int
		defaultVal int
		expected   int
	}{
		{
			name:       "Empty input returns default",
			input:      "",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Valid choice within range",
			input:      "3",
			maxVal:     5,
			defaultVal: 1,
			expected:   3,
		},
		{
			name:       "Choice below minimum returns default",
			input:      "0",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Choice above maximum returns default",
			input:      "6",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Invalid input returns default",
			input:      "abc",
			maxVal:     5,
			defaultVal: 2,
			expected:   2,
		},
		{
			name:       "Negative number returns default",
			input:      "-1",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Whitespace returns default",
			input:      "   ",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Maximum value is valid",
			input:      "5",
			maxVal:     5,
			defaultVal: 1,
			expected:   5,
		},
		{
			name:       "Minimum value is valid",
			input:      "1",
			maxVal:     5,
			defaultVal: 3,
			expected:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseChoice(tt.input, tt.maxVal, tt.defaultVal)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSettingsShow(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "", "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "Default calculator: Body Mass Index (BMI)")
	assert.Contains(t, out, "Output: Text (human readable)")
	assert.Contains(t, out, "Textfile: (disabled)")
	assert.Contains(t, out, "Config file: :memory:")
}

func TestSettingsShow_AfterChanges(t *testing.T) {
	setupTestServices(t)
	require.NoError(t, settingsService.SetDefaultCalculator(domain.CalculatorBSA))
	require.NoError(t, settingsService.SetMetricsTextfile("/var/lib/node_exporter/medcalc.prom"))

	out, err := executeCommand(t, "", "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Default calculator: Body Surface Area (BSA)")
	assert.Contains(t, out, "Textfile: /var/lib/node_exporter/medcalc.prom")
}

func TestSettingsDefault(t *testing.T) {
	t.Run("with argument", func(t *testing.T) {
		store := setupTestServices(t)

		out, err := executeCommand(t, "", "settings", "default", "BMR")

		require.NoError(t, err)
		assert.Contains(t, out, "Default calculator set to: Basal Metabolic Rate (BMR)")
		assert.Equal(t, "bmr", store.GetString("display.default_calculator"))
	})

	t.Run("unknown calculator", func(t *testing.T) {
		setupTestServices(t)

		_, err := executeCommand(t, "", "settings", "default", "egfr")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnknownCalculator)
	})

	t.Run("interactive choice", func(t *testing.T) {
		setupTestServices(t)
		isInteractive = func() bool { return true }

		out, err := executeCommand(t, "3\n", "settings", "default")

		require.NoError(t, err)
		assert.Contains(t, out, "1. Body Mass Index (BMI)")
		assert.Contains(t, out, "Default calculator set to: Body Surface Area (BSA)")
	})

	t.Run("invalid interactive choice", func(t *testing.T) {
		setupTestServices(t)
		isInteractive = func() bool { return true }

		_, err := executeCommand(t, "9\n", "settings", "default")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid selection")
	})

	t.Run("no argument without a terminal", func(t *testing.T) {
		setupTestServices(t)

		_, err := executeCommand(t, "", "settings", "default")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "stdin is not a terminal")
	})
}

func TestSettingsOutput(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "", "settings", "output", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "Output format set to: JSON (machine readable)")

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.OutputJSON, settings.Display.Output)

	_, err = executeCommand(t, "", "settings", "output", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format: yaml")
}

func TestSettingsMetrics(t *testing.T) {
	store := setupTestServices(t)

	out, err := executeCommand(t, "", "settings", "metrics", "/tmp/medcalc.prom")
	require.NoError(t, err)
	assert.Contains(t, out, "Metrics will be written to: /tmp/medcalc.prom")
	assert.Equal(t, "/tmp/medcalc.prom", store.GetString("metrics.textfile"))

	out, err = executeCommand(t, "", "settings", "metrics", "off")
	require.NoError(t, err)
	assert.Contains(t, out, "Metrics export disabled.")
	assert.Empty(t, store.GetString("metrics.textfile"))
}
