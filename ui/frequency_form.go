package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"benchcalc/internal/format"
	"benchcalc/internal/model"
)

// FrequencyForm holds the RC oscillator entry fields and result.
type FrequencyForm struct {
	resistanceEntry  *widget.Entry
	capacitanceEntry *widget.Entry
	frequencyField   *resultField
	statusLabel      *widget.Label
	calcBtn          *widget.Button

	precision int
	onResult  func(model.Calculation)
	form      *fyne.Container
}

// NewFrequencyForm creates the RC form. onResult receives every calculation,
// including failed ones; it may be nil.
func NewFrequencyForm(precision int, onResult func(model.Calculation)) *FrequencyForm {
	ff := &FrequencyForm{precision: precision, onResult: onResult}

	ff.resistanceEntry = widget.NewEntry()
	ff.resistanceEntry.SetPlaceHolder("1000")
	ff.resistanceEntry.OnSubmitted = func(string) { ff.Calculate() }

	ff.capacitanceEntry = widget.NewEntry()
	ff.capacitanceEntry.SetPlaceHolder("0.000001")
	ff.capacitanceEntry.OnSubmitted = func(string) { ff.Calculate() }

	ff.frequencyField = newResultField("Hz")
	ff.statusLabel = widget.NewLabel("")
	ff.statusLabel.Wrapping = fyne.TextWrapWord

	ff.calcBtn = widget.NewButton("Calculate", ff.Calculate)
	ff.calcBtn.Importance = widget.HighImportance

	ff.form = container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Resistance (ohm)", ff.resistanceEntry),
			widget.NewFormItem("Capacitance (F)", ff.capacitanceEntry),
			widget.NewFormItem("Frequency (Hz)", ff.frequencyField),
		),
		container.NewHBox(ff.calcBtn),
		ff.statusLabel,
	)

	return ff
}

// Container returns the form's Fyne container.
func (ff *FrequencyForm) Container() *fyne.Container {
	return ff.form
}

// Calculate reads both entries and shows the frequency. A parse failure
// clears the frequency field and shows the error instead.
func (ff *FrequencyForm) Calculate() {
	calc, err := model.NewRCCalculation(ff.resistanceEntry.Text, ff.capacitanceEntry.Text, model.ModeGUI)
	if err != nil {
		log.Debug().Err(err).Msg("rc form input rejected")
		ff.frequencyField.SetText("")
		ff.statusLabel.SetText(err.Error())
	} else {
		ff.frequencyField.SetText(format.FormatNumber(calc.FrequencyHz, ff.precision))
		ff.statusLabel.SetText(fmt.Sprintf("Time constant: %s s", format.FormatNumber(calc.TimeConstant, ff.precision)))
	}

	if ff.onResult != nil {
		ff.onResult(calc)
	}
}
