// Package adc converts analog voltages into 10-bit converter codes.
package adc

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Converter range and scale for a 5 V, 10-bit converter.
const (
	MinVolts     = 0.0
	MaxVolts     = 5.0
	DefaultVolts = 2.5

	// VoltsPerStep is the full-scale voltage divided over the code range.
	VoltsPerStep = 0.00488758553

	Resolution = 10
	MaxCode    = 1<<Resolution - 1
)

// FieldVoltage names the voltage in input errors.
const FieldVoltage = "voltage"

// Reading is the outcome of validating a voltage: either a ValidVoltage or
// a DefaultedVoltage.
type Reading interface {
	// Volts returns the voltage the converter uses.
	Volts() float64
	isReading()
}

// ValidVoltage is an input that was inside [MinVolts, MaxVolts].
type ValidVoltage struct {
	V float64
}

func (v ValidVoltage) Volts() float64 { return v.V }
func (ValidVoltage) isReading()       {}

// DefaultedVoltage replaces an out-of-range input with DefaultVolts.
// Input keeps the rejected value.
type DefaultedVoltage struct {
	Input float64
}

func (DefaultedVoltage) Volts() float64 { return DefaultVolts }
func (DefaultedVoltage) isReading()     {}

// Validate checks v against the inclusive converter range. NaN is out of range.
func Validate(v float64) Reading {
	if v >= MinVolts && v <= MaxVolts {
		return ValidVoltage{V: v}
	}
	return DefaultedVoltage{Input: v}
}

// Converter holds a validated voltage. It is immutable after construction.
type Converter struct {
	reading Reading
}

// NewConverter validates volts once and returns a converter for it.
func NewConverter(volts float64) *Converter {
	return &Converter{reading: Validate(volts)}
}

// Reading returns the validation outcome.
func (c *Converter) Reading() Reading {
	return c.reading
}

// Volts returns the voltage used for conversion.
func (c *Converter) Volts() float64 {
	return c.reading.Volts()
}

// Defaulted reports whether the input was replaced by DefaultVolts.
func (c *Converter) Defaulted() bool {
	_, ok := c.reading.(DefaultedVoltage)
	return ok
}

// Code returns the digital code, truncated toward zero.
func (c *Converter) Code() int {
	return int(c.reading.Volts() / VoltsPerStep)
}

// Point is a single row of a transfer table.
type Point struct {
	Input     float64
	Volts     float64
	Code      int
	Defaulted bool
}

// Sweep converts points evenly spaced voltages from lo to hi inclusive.
// Points outside the converter range are reported as defaulted.
func Sweep(lo, hi float64, points int) ([]Point, error) {
	if points < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 points, got %d", points)
	}
	if lo > hi {
		return nil, fmt.Errorf("sweep start %g is above end %g", lo, hi)
	}

	inputs := floats.Span(make([]float64, points), lo, hi)
	out := make([]Point, len(inputs))
	for i, v := range inputs {
		c := NewConverter(v)
		out[i] = Point{
			Input:     v,
			Volts:     c.Volts(),
			Code:      c.Code(),
			Defaulted: c.Defaulted(),
		}
	}
	return out, nil
}
