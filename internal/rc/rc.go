// Package rc computes the oscillation frequency of an RC network.
package rc

import (
	"math"

	"benchcalc/internal/input"
)

// Field names reported in FormatError.
const (
	FieldResistance  = "resistance"
	FieldCapacitance = "capacitance"
)

// FormatError reports text that could not be parsed as a number.
type FormatError = input.FormatError

// Params are the component values of the network, in ohms and farads.
// Zero and negative values are accepted as-is.
type Params struct {
	Resistance  float64
	Capacitance float64
}

// ParseValue parses text entered for field. Surrounding whitespace is ignored.
func ParseValue(field, text string) (float64, error) {
	return input.ParseFloat(field, text)
}

// Parse parses both component values. Resistance is parsed first and the
// first failure is returned.
func Parse(resText, capText string) (Params, error) {
	r, err := ParseValue(FieldResistance, resText)
	if err != nil {
		return Params{}, err
	}
	c, err := ParseValue(FieldCapacitance, capText)
	if err != nil {
		return Params{}, err
	}
	return Params{Resistance: r, Capacitance: c}, nil
}

// TimeConstant returns R*C in seconds.
func TimeConstant(p Params) float64 {
	return p.Resistance * p.Capacitance
}

// Frequency returns 1 / (2*pi*R*C) in hertz. A zero product yields an
// infinite result; nothing is guarded.
func Frequency(p Params) float64 {
	return 1 / (2 * math.Pi * p.Resistance * p.Capacitance)
}

// Calculate parses the two text values and returns the frequency.
// On a parse failure the error is a *FormatError and the frequency is zero.
func Calculate(resText, capText string) (float64, error) {
	p, err := Parse(resText, capText)
	if err != nil {
		return 0, err
	}
	return Frequency(p), nil
}
