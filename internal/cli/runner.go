package cli

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"benchcalc/internal/adc"
	"benchcalc/internal/config"
	"benchcalc/internal/export"
	"benchcalc/internal/format"
	"benchcalc/internal/model"
)

// Runner executes calculations for the command line and prints the results.
type Runner struct {
	out      io.Writer
	settings config.Settings
	output   string // CSV report path; empty = no report
}

// NewRunner creates a runner that prints to out.
func NewRunner(out io.Writer, settings config.Settings, output string) *Runner {
	return &Runner{out: out, settings: settings, output: output}
}

// ConvertVoltage converts volts to an ADC code and prints the result.
// Out-of-range input is reported as defaulted, never as an error.
func (r *Runner) ConvertVoltage(volts float64) (model.Calculation, error) {
	calc := model.NewADCCalculation(volts, model.ModeCLI)

	if calc.Defaulted {
		log.Debug().
			Float64("input", calc.InputVolts).
			Float64("used", calc.UsedVolts).
			Msg("voltage outside converter range")
	}

	PrintCalculation(r.out, &calc, r.settings.Precision)
	return calc, r.save([]model.Calculation{calc})
}

// Frequency parses the component values and prints the oscillator frequency.
// A parse failure is returned as-is and nothing is printed.
func (r *Runner) Frequency(resText, capText string) (model.Calculation, error) {
	calc, err := model.NewRCCalculation(resText, capText, model.ModeCLI)
	if err != nil {
		log.Debug().Err(err).Msg("rc input rejected")
		return calc, err
	}

	PrintCalculation(r.out, &calc, r.settings.Precision)
	return calc, r.save([]model.Calculation{calc})
}

// Sweep prints a transfer table for points voltages from lo to hi.
func (r *Runner) Sweep(lo, hi float64, points int) ([]adc.Point, error) {
	pts, err := adc.Sweep(lo, hi, points)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(r.out, format.FormatSweepHeader())
	calcs := make([]model.Calculation, len(pts))
	for i, p := range pts {
		fmt.Fprintln(r.out, format.FormatSweepPoint(p, r.settings.Precision))
		calcs[i] = model.NewADCCalculation(p.Input, model.ModeCLI)
	}

	return pts, r.save(calcs)
}

// save writes the report when an output path was requested.
func (r *Runner) save(calcs []model.Calculation) error {
	if r.output == "" {
		return nil
	}

	txtPath, err := export.WriteReport(r.output, calcs, r.settings.Precision)
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	log.Info().Str("csv", r.output).Str("txt", txtPath).Int("rows", len(calcs)).Msg("report saved")
	return nil
}

// PrintCalculation formats and prints a calculation.
func PrintCalculation(w io.Writer, calc *model.Calculation, precision int) {
	fmt.Fprintln(w, format.FormatCalculation(calc, precision))
}
