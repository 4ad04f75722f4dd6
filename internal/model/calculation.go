package model

import (
	"time"

	"github.com/rs/xid"

	"benchcalc/internal/adc"
	"benchcalc/internal/input"
	"benchcalc/internal/rc"
)

// Kind identifies which calculator produced a Calculation.
type Kind string

const (
	KindADC Kind = "adc"
	KindRC  Kind = "rc"
)

// Calculation modes.
const (
	ModeCLI = "CLI"
	ModeGUI = "GUI"
)

// Calculation holds the inputs and output of a single evaluation.
type Calculation struct {
	ID        string
	Timestamp time.Time
	Kind      Kind
	Mode      string // "CLI" or "GUI"

	// ADC
	VoltsText  string  // raw text, set only when entered as text
	InputVolts float64 // value as entered
	UsedVolts  float64 // value converted; DefaultVolts when Defaulted
	Code       int
	Defaulted  bool

	// RC
	ResistanceText  string // raw text as entered
	CapacitanceText string
	Resistance      float64
	Capacitance     float64
	TimeConstant    float64 // seconds
	FrequencyHz     float64

	Error string
}

// NewADCCalculation records the conversion of volts.
func NewADCCalculation(volts float64, mode string) Calculation {
	c := adc.NewConverter(volts)
	return Calculation{
		ID:         xid.New().String(),
		Timestamp:  time.Now(),
		Kind:       KindADC,
		Mode:       mode,
		InputVolts: volts,
		UsedVolts:  c.Volts(),
		Code:       c.Code(),
		Defaulted:  c.Defaulted(),
	}
}

// NewADCCalculationFromText records the conversion of entered text.
// A parse failure is kept in Error and leaves the numeric fields zero.
func NewADCCalculationFromText(text, mode string) (Calculation, error) {
	volts, err := input.ParseFloat(adc.FieldVoltage, text)
	if err != nil {
		return Calculation{
			ID:        xid.New().String(),
			Timestamp: time.Now(),
			Kind:      KindADC,
			Mode:      mode,
			VoltsText: text,
			Error:     err.Error(),
		}, err
	}

	calc := NewADCCalculation(volts, mode)
	calc.VoltsText = text
	return calc, nil
}

// NewRCCalculation records a frequency calculation from entered text.
// A parse failure is kept in Error and leaves the numeric fields zero.
func NewRCCalculation(resText, capText, mode string) (Calculation, error) {
	calc := Calculation{
		ID:              xid.New().String(),
		Timestamp:       time.Now(),
		Kind:            KindRC,
		Mode:            mode,
		ResistanceText:  resText,
		CapacitanceText: capText,
	}

	p, err := rc.Parse(resText, capText)
	if err != nil {
		calc.Error = err.Error()
		return calc, err
	}

	calc.Resistance = p.Resistance
	calc.Capacitance = p.Capacitance
	calc.TimeConstant = rc.TimeConstant(p)
	calc.FrequencyHz = rc.Frequency(p)
	return calc, nil
}

// Status returns "OK", "DEFAULTED", or the error string.
func (c *Calculation) Status() string {
	if c.Error != "" {
		return c.Error
	}
	if c.Defaulted {
		return "DEFAULTED"
	}
	return "OK"
}

// Failed reports whether the calculation produced no numeric output.
func (c *Calculation) Failed() bool {
	return c.Error != ""
}
