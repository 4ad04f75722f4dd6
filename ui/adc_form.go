package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"benchcalc/internal/adc"
	"benchcalc/internal/format"
	"benchcalc/internal/model"
)

// ADCForm holds the voltage entry and the converted code.
type ADCForm struct {
	voltsEntry  *widget.Entry
	codeField   *resultField
	statusLabel *widget.Label
	convertBtn  *widget.Button

	precision int
	onResult  func(model.Calculation)
	form      *fyne.Container
}

// NewADCForm creates the converter form. onResult receives each conversion,
// including failed ones; it may be nil.
func NewADCForm(precision int, onResult func(model.Calculation)) *ADCForm {
	af := &ADCForm{precision: precision, onResult: onResult}

	af.voltsEntry = widget.NewEntry()
	af.voltsEntry.SetPlaceHolder(fmt.Sprintf("%.1f - %.1f", adc.MinVolts, adc.MaxVolts))
	af.voltsEntry.OnSubmitted = func(string) { af.Convert() }

	af.codeField = newResultField(fmt.Sprintf("0 - %d", adc.MaxCode))
	af.statusLabel = widget.NewLabel("")
	af.statusLabel.Wrapping = fyne.TextWrapWord

	af.convertBtn = widget.NewButton("Convert", af.Convert)
	af.convertBtn.Importance = widget.HighImportance

	af.form = container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Voltage (V)", af.voltsEntry),
			widget.NewFormItem("Code", af.codeField),
		),
		container.NewHBox(af.convertBtn),
		af.statusLabel,
	)

	return af
}

// Container returns the form's Fyne container.
func (af *ADCForm) Container() *fyne.Container {
	return af.form
}

// Convert reads the voltage entry and shows the code. Text that is not a
// number is reported in the status label; an out-of-range voltage is
// converted as 2.5 V and the substitution is shown.
func (af *ADCForm) Convert() {
	calc, err := model.NewADCCalculationFromText(af.voltsEntry.Text, model.ModeGUI)
	switch {
	case err != nil:
		log.Debug().Err(err).Msg("voltage input rejected")
		af.codeField.SetText("")
		af.statusLabel.SetText(err.Error())
	case calc.Defaulted:
		log.Debug().Float64("input", calc.InputVolts).Msg("voltage outside converter range")
		af.codeField.SetText(format.FormatCode(calc.Code))
		af.statusLabel.SetText(fmt.Sprintf("%s V is outside %.1f-%.1f V; converted %s V instead",
			format.FormatNumber(calc.InputVolts, af.precision), adc.MinVolts, adc.MaxVolts,
			format.FormatNumber(calc.UsedVolts, af.precision)))
	default:
		af.codeField.SetText(format.FormatCode(calc.Code))
		af.statusLabel.SetText("")
	}

	if af.onResult != nil {
		af.onResult(calc)
	}
}
