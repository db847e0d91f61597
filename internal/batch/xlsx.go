package batch

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet the report is written to.
const SheetName = "Results"

var xlsxHeader = []string{
	"Name", "Calculator", "Weight (kg)", "Height (cm)", "Age (years)", "Gender",
	"Value", "Unit", "Category", "Error",
}

// WriteXLSX writes the report as a single-sheet workbook.
func WriteXLSX(w io.Writer, report *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("deleting default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	errorStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FFC7CE"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("creating error style: %w", err)
	}

	for col, title := range xlsxHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(SheetName, cell, title); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(xlsxHeader))
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	for i, row := range report.Rows {
		line := i + 2
		cell, _ := excelize.CoordinatesToCellName(1, line)
		if err := f.SetSheetRow(SheetName, cell, rowValues(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", line, err)
		}
		if row.Error != "" {
			last, _ := excelize.CoordinatesToCellName(len(xlsxHeader), line)
			if err := f.SetCellStyle(SheetName, cell, last, errorStyle); err != nil {
				return fmt.Errorf("styling row %d: %w", line, err)
			}
		}
	}

	if err := f.SetColWidth(SheetName, "A", "A", 20); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}
	if err := f.SetColWidth(SheetName, "B", "I", 14); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}
	if err := f.SetColWidth(SheetName, "J", "J", 50); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// rowValues returns the cells of a row. Missing optional inputs are
// left blank rather than written as zero.
func rowValues(row Row) *[]any {
	m := row.Measurement
	values := []any{row.Name, row.Calculator.Label(), m.WeightKg, m.HeightCm, nil, nil, nil, nil, nil, nil}
	if m.AgeYears != 0 {
		values[4] = m.AgeYears
	}
	if m.Gender != "" {
		values[5] = m.Gender.String()
	}
	if row.Result != nil {
		values[6] = row.Result.Value
		values[7] = row.Result.Unit
		if row.Result.Category != "" {
			values[8] = string(row.Result.Category)
		}
	}
	if row.Error != "" {
		values[9] = row.Error
	}
	return &values
}
