package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/medcalc/internal/batch"
	"github.com/custodia-labs/medcalc/internal/core/domain"
)

var (
	batchXLSX string
	batchJSON bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <sheet.yaml>",
	Short: "Calculate every measurement in a YAML sheet",
	Long: `Run the calculators over a YAML sheet of measurements.

Each entry runs BMI and BSA, plus BMR when age or gender is given, unless
it lists its own calculators. Invalid entries are reported per row and do
not stop the run.

Sheet format:
  measurements:
    - name: alice
      weight_kg: 70
      height_cm: 175
      age_years: 30
      gender: female
    - name: bob
      weight_kg: 82
      height_cm: 181
      calculators: [bmi]

Examples:
  medcalc batch clinic.yaml
  medcalc batch clinic.yaml --xlsx results.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchXLSX, "xlsx", "", "also write the results to an XLSX workbook")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	if calculatorService == nil {
		return errors.New("calculator service not configured")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening sheet: %w", err)
	}
	defer f.Close()

	sheet, err := batch.ParseSheet(f)
	if err != nil {
		return err
	}

	report := batch.Run(calculatorService, sheet)

	if batchXLSX != "" {
		if err := writeWorkbook(batchXLSX, report); err != nil {
			return err
		}
	}

	if batchJSON || defaultOutput() == domain.OutputJSON {
		return printJSON(cmd, report)
	}

	outputBatchTable(cmd, report)
	if batchXLSX != "" {
		cmd.Printf("Wrote %s\n", batchXLSX)
	}
	return nil
}

func writeWorkbook(path string, report *batch.Report) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating workbook: %w", err)
	}
	if err := batch.WriteXLSX(out, report); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing workbook: %w", err)
	}
	return nil
}

func outputBatchTable(cmd *cobra.Command, report *batch.Report) {
	w := cmd.OutOrStdout()
	for _, row := range report.Rows {
		if row.Error != "" {
			fmt.Fprintf(w, "  %-16s  %s error: %s\n", row.Name, row.Calculator.Label(), row.Error)
			continue
		}
		fmt.Fprintf(w, "  %-16s  %s\n", row.Name, row.Result.Summary())
	}
	fmt.Fprintf(w, "\n%d results, %d failed\n", len(report.Rows), report.Failed())
}
