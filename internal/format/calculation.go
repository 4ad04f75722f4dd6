package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"benchcalc/internal/adc"
	"benchcalc/internal/model"
)

// FormatNumber renders f with precision significant digits.
// A precision of -1 gives the shortest exact representation.
func FormatNumber(f float64, precision int) string {
	switch {
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'g', precision, 64)
}

// FormatFrequency renders f in hertz.
func FormatFrequency(f float64, precision int) string {
	return FormatNumber(f, precision) + " Hz"
}

// FormatCode renders a code in decimal, hex and binary.
func FormatCode(code int) string {
	return fmt.Sprintf("%d (0x%03X, 0b%010b)", code, code, code)
}

// FormatCalculation produces a human-readable block for a single calculation.
func FormatCalculation(c *model.Calculation, precision int) string {
	var b strings.Builder

	switch c.Kind {
	case model.KindADC:
		b.WriteString("=== ADC Conversion ===\n")
	case model.KindRC:
		b.WriteString("=== RC Oscillator ===\n")
	}
	b.WriteString(fmt.Sprintf("Timestamp:       %s\n", c.Timestamp.Format("2006-01-02 15:04:05")))

	switch c.Kind {
	case model.KindADC:
		if c.Error != "" {
			b.WriteString(fmt.Sprintf("Input:           %s\n", c.VoltsText))
			b.WriteString(fmt.Sprintf("\nError: %s\n", c.Error))
			b.WriteString("====================")
			return b.String()
		}
		b.WriteString(fmt.Sprintf("Input:           %s V\n", FormatNumber(c.InputVolts, precision)))
		if c.Defaulted {
			b.WriteString(fmt.Sprintf("Used:            %s V (input outside %.1f-%.1f V)\n",
				FormatNumber(c.UsedVolts, precision), adc.MinVolts, adc.MaxVolts))
		}
		b.WriteString(fmt.Sprintf("Code:            %s\n", FormatCode(c.Code)))

	case model.KindRC:
		if c.Error != "" {
			b.WriteString(fmt.Sprintf("Resistance:      %s\n", c.ResistanceText))
			b.WriteString(fmt.Sprintf("Capacitance:     %s\n", c.CapacitanceText))
			b.WriteString(fmt.Sprintf("\nError: %s\n", c.Error))
			b.WriteString("====================")
			return b.String()
		}
		b.WriteString(fmt.Sprintf("Resistance:      %s ohm\n", FormatNumber(c.Resistance, precision)))
		b.WriteString(fmt.Sprintf("Capacitance:     %s F\n", FormatNumber(c.Capacitance, precision)))
		b.WriteString(fmt.Sprintf("Time constant:   %s s\n", FormatNumber(c.TimeConstant, precision)))
		b.WriteString(fmt.Sprintf("Frequency:       %s\n", FormatFrequency(c.FrequencyHz, precision)))
	}

	b.WriteString("====================")
	return b.String()
}

// FormatSweepHeader returns a header line for transfer table output.
func FormatSweepHeader() string {
	return fmt.Sprintf("%10s %10s %6s %8s", "Input V", "Used V", "Code", "Status")
}

// FormatSweepPoint produces a single formatted transfer table line with
// voltages at precision significant digits.
func FormatSweepPoint(p adc.Point, precision int) string {
	status := "OK"
	if p.Defaulted {
		status = "DEFAULT"
	}
	return fmt.Sprintf("%10s %10s %6d %8s",
		FormatNumber(p.Input, precision), FormatNumber(p.Volts, precision), p.Code, status)
}
