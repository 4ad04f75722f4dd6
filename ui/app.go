package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"benchcalc/internal/config"
	"benchcalc/internal/model"
)

// BuildMainWindow creates and configures the main application window.
func BuildMainWindow(app fyne.App, settings config.Settings) fyne.Window {
	win := app.NewWindow("benchcalc")
	win.Resize(NewWindowSize())

	outputView := NewOutputView(settings.Precision)
	historyView := NewHistoryView(settings.Precision)
	reportList := NewReportList(settings.ReportDir)

	record := func(c model.Calculation) {
		historyView.AddCalculation(c)
		outputView.AppendCalculation(&c)
	}

	rcForm := NewFrequencyForm(settings.Precision, record)
	adcForm := NewADCForm(settings.Precision, record)
	controls := NewControls(win, settings.Precision, outputView, historyView, reportList)

	forms := container.NewAppTabs(
		container.NewTabItem("RC Oscillator", rcForm.Container()),
		container.NewTabItem("ADC", adcForm.Container()),
	)

	top := container.NewBorder(nil, controls.Container(), nil, nil, forms)

	bottom := container.NewAppTabs(
		container.NewTabItem("Log", outputView.Container()),
		container.NewTabItem("History", historyView.Container()),
		container.NewTabItem("Reports", reportList.Container()),
	)

	content := container.NewVSplit(top, bottom)
	content.SetOffset(MainSplitRatio)

	win.SetContent(content)
	return win
}
