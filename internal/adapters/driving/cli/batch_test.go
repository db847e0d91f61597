package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/medcalc/internal/batch"
)

const clinicSheet = `measurements:
  - name: alice
    weight_kg: 70
    height_cm: 175
    age_years: 30
    gender: male
  - name: bob
    weight_kg: 600
    height_cm: 181
    calculators: [bmi]
`

func writeSheet(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clinic.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestBatchCmd_Table(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "", "batch", writeSheet(t, clinicSheet))

	require.NoError(t, err)
	assert.Contains(t, out, "alice             BMI: 22.9 (Normal weight)")
	assert.Contains(t, out, "alice             BMR: 1649 kcal/day")
	assert.Contains(t, out, "alice             BSA: 1.84 m²")
	assert.Contains(t, out, "bob               BMI error: invalid input: weight_kg 600")
	assert.Contains(t, out, "4 results, 1 failed")
}

func TestBatchCmd_JSON(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "", "batch", "--json", writeSheet(t, clinicSheet))
	require.NoError(t, err)

	var report batch.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Rows, 4)
	assert.Equal(t, 1, report.Failed())
	assert.Equal(t, "bob", report.Rows[3].Name)
	assert.Nil(t, report.Rows[3].Result)
}

func TestBatchCmd_XLSX(t *testing.T) {
	setupTestServices(t)
	xlsxPath := filepath.Join(t.TempDir(), "results.xlsx")

	out, err := executeCommand(t, "", "batch", writeSheet(t, clinicSheet), "--xlsx", xlsxPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+xlsxPath)

	f, err := excelize.OpenFile(xlsxPath)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(batch.SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 5)
	assert.Equal(t, "alice", rows[1][0])
}

func TestBatchCmd_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		setupTestServices(t)

		_, err := executeCommand(t, "", "batch", filepath.Join(t.TempDir(), "nope.yaml"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "opening sheet")
	})

	t.Run("empty sheet", func(t *testing.T) {
		setupTestServices(t)

		_, err := executeCommand(t, "", "batch", writeSheet(t, "measurements: []\n"))

		assert.ErrorIs(t, err, batch.ErrEmptySheet)
	})

	t.Run("requires a path", func(t *testing.T) {
		setupTestServices(t)

		_, err := executeCommand(t, "", "batch")

		require.Error(t, err)
	})
}
