package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/medcalc/internal/core/domain"
)

// input describes how a measurement field is exposed on the command line.
type input struct {
	flag   string
	prompt string
	usage  string
}

var inputs = map[string]input{
	domain.FieldWeight: {flag: "weight", prompt: "Weight (kg)", usage: "body weight in kg (20-500)"},
	domain.FieldHeight: {flag: "height", prompt: "Height (cm)", usage: "height in cm (50-300)"},
	domain.FieldAge:    {flag: "age", prompt: "Age (years)", usage: "age in years (1-120)"},
	domain.FieldGender: {flag: "gender", prompt: "Gender (male/female) [male]", usage: "male or female"},
}

// isInteractive reports whether missing inputs can be prompted for.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var (
	bmiCmd = newCalculatorCmd(domain.CalculatorBMI, `Calculate body mass index from weight and height.

The result is rounded to one decimal and classified as Underweight (< 18.5),
Normal weight (< 25), Overweight (< 30) or Obese.

Examples:
  medcalc bmi --weight 70 --height 175
  medcalc bmi --weight 70 --height 175 --json`)

	bmrCmd = newCalculatorCmd(domain.CalculatorBMR, `Calculate basal metabolic rate with the Mifflin-St Jeor equation.

The result is in kcal/day, rounded to the nearest integer.

Examples:
  medcalc bmr --weight 70 --height 175 --age 30 --gender male`)

	bsaCmd = newCalculatorCmd(domain.CalculatorBSA, `Calculate body surface area with the Mosteller formula.

The result is in m², rounded to two decimals.

Examples:
  medcalc bsa --weight 70 --height 175`)
)

func init() {
	rootCmd.AddCommand(bmiCmd, bmrCmd, bsaCmd)
}

func newCalculatorCmd(calc domain.Calculator, long string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   calc.String(),
		Short: "Calculate " + calc.Title(),
		Long:  long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalculate(cmd, calc)
		},
	}

	for _, field := range calc.Fields() {
		in := inputs[field]
		if field == domain.FieldGender {
			cmd.Flags().String(in.flag, "", in.usage)
			continue
		}
		cmd.Flags().Float64(in.flag, 0, in.usage)
	}
	cmd.Flags().Bool("json", false, "output the result as JSON")

	return cmd
}

func runCalculate(cmd *cobra.Command, calc domain.Calculator) error {
	if calculatorService == nil {
		return errors.New("calculator service not configured")
	}

	m, err := readMeasurement(cmd, calc)
	if err != nil {
		return err
	}

	typed, result, err := calculate(calc, m)
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json") //nolint:errcheck // flag is always registered
	if asJSON || defaultOutput() == domain.OutputJSON {
		return printJSON(cmd, typed)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Summary())
	return nil
}

// calculate runs calc and returns its own result type, which is what JSON
// output prints ({"bmi","category"}, {"bmr"} or {"bsa"}), along with the
// display form.
func calculate(calc domain.Calculator, m domain.Measurement) (any, domain.Result, error) {
	switch calc {
	case domain.CalculatorBMI:
		r, err := calculatorService.BMI(m)
		return r, r.Result(), err
	case domain.CalculatorBMR:
		r, err := calculatorService.BMR(m)
		return r, r.Result(), err
	case domain.CalculatorBSA:
		r, err := calculatorService.BSA(m)
		return r, r.Result(), err
	default:
		result, err := calculatorService.Calculate(calc, m)
		return result, result, err
	}
}

// readMeasurement collects the calculator's fields from flags, prompting for
// missing ones when stdin is a terminal.
func readMeasurement(cmd *cobra.Command, calc domain.Calculator) (domain.Measurement, error) {
	var (
		m      domain.Measurement
		reader *bufio.Reader
	)

	for _, field := range calc.Fields() {
		in := inputs[field]

		var raw string
		switch {
		case cmd.Flags().Changed(in.flag):
			raw = cmd.Flags().Lookup(in.flag).Value.String()
		case isInteractive():
			if reader == nil {
				reader = bufio.NewReader(cmd.InOrStdin())
			}
			cmd.Printf("%s: ", in.prompt)
			raw = readLine(reader)
		default:
			return m, fmt.Errorf("missing required flag --%s", in.flag)
		}

		if err := setField(&m, field, raw); err != nil {
			return m, err
		}
	}

	return m, nil
}

func setField(m *domain.Measurement, field, raw string) error {
	if field == domain.FieldGender {
		if strings.TrimSpace(raw) == "" {
			m.Gender = domain.GenderMale
			return nil
		}
		g, err := domain.ParseGender(raw)
		if err != nil {
			return err
		}
		m.Gender = g
		return nil
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("%w: %s must be a number, got %q", domain.ErrInvalidInput, field, raw)
	}

	switch field {
	case domain.FieldWeight:
		m.WeightKg = v
	case domain.FieldHeight:
		m.HeightCm = v
	case domain.FieldAge:
		m.AgeYears = v
	}
	return nil
}

// defaultOutput returns the configured output format, text when unknown.
func defaultOutput() domain.OutputFormat {
	if settingsService == nil {
		return domain.OutputText
	}
	settings, err := settingsService.Get()
	if err != nil {
		return domain.OutputText
	}
	return settings.Display.Output
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n') //nolint:errcheck // EOF yields what was read
	return strings.TrimSpace(input)
}
