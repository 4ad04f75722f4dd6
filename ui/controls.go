package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"benchcalc/internal/export"
	"benchcalc/internal/model"
)

// reportBaseName is the file name prefix for quick-saved reports.
const reportBaseName = "benchcalc"

// Controls manages the Save/Export/Clear buttons for the session history.
type Controls struct {
	win       fyne.Window
	precision int

	saveBtn   *widget.Button
	exportBtn *widget.Button
	clearBtn  *widget.Button

	outputView  *OutputView
	historyView *HistoryView
	reportList  *ReportList

	// saved maps a report path to the IDs of the calculations already in it.
	saved map[string]map[string]bool

	container *fyne.Container
}

// NewControls creates the control buttons wired to the given views.
func NewControls(win fyne.Window, precision int, ov *OutputView, hv *HistoryView, rl *ReportList) *Controls {
	c := &Controls{
		win:         win,
		precision:   precision,
		outputView:  ov,
		historyView: hv,
		reportList:  rl,
		saved:       make(map[string]map[string]bool),
	}

	c.saveBtn = widget.NewButton("Save Report", c.onSave)
	c.exportBtn = widget.NewButton("Export As...", c.onExport)
	c.clearBtn = widget.NewButton("Clear History", c.onClear)

	c.container = container.NewHBox(c.saveBtn, c.exportBtn, c.clearBtn)
	return c
}

// Container returns the controls container.
func (c *Controls) Container() *fyne.Container {
	return c.container
}

// QuickSavePath returns the dated report path under the report directory.
func (c *Controls) QuickSavePath(t time.Time) string {
	return export.BuildPath(filepath.Join(c.reportList.Dir(), reportBaseName), "", ".csv", t)
}

func (c *Controls) onSave() {
	c.saveTo(c.QuickSavePath(time.Now()))
}

func (c *Controls) onExport() {
	if len(c.historyView.Calculations()) == 0 {
		c.outputView.AppendLine("No calculations to export.")
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		c.exportTo(path)
	}, c.win)
	d.SetFileName(filepath.Base(c.QuickSavePath(time.Now())))
	d.SetFilter(storage.NewExtensionFileFilter([]string{".csv"}))
	d.Show()
}

// exportTo writes the whole session history to a file picked in the save
// dialog. The dialog truncates the file, so nothing in it counts as saved and
// a stale .txt twin is dropped.
func (c *Controls) exportTo(path string) {
	delete(c.saved, path)
	if err := os.Remove(export.TXTPath(path)); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", path).Msg("remove stale text report")
	}
	c.saveTo(path)
}

// saveTo appends the calculations not yet written to path and to its .txt twin.
func (c *Controls) saveTo(path string) {
	history := c.historyView.Calculations()
	if len(history) == 0 {
		c.outputView.AppendLine("No calculations to export.")
		return
	}

	done := c.saved[path]
	var calcs []model.Calculation
	for _, calc := range history {
		if !done[calc.ID] {
			calcs = append(calcs, calc)
		}
	}
	if len(calcs) == 0 {
		c.outputView.AppendLine(fmt.Sprintf("No new calculations to save to %s.", path))
		return
	}

	txtPath, err := export.WriteReport(path, calcs, c.precision)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("export report")
		c.outputView.AppendLine(fmt.Sprintf("Export error: %v", err))
		return
	}

	if done == nil {
		done = make(map[string]bool, len(calcs))
		c.saved[path] = done
	}
	for _, calc := range calcs {
		done[calc.ID] = true
	}

	log.Info().Str("csv", path).Str("txt", txtPath).Int("rows", len(calcs)).Msg("report saved")
	c.outputView.AppendLine(fmt.Sprintf("Exported %d calculations to %s and %s", len(calcs), path, txtPath))
	c.reportList.Refresh()
}

func (c *Controls) onClear() {
	c.historyView.Clear()
	c.outputView.Clear()
}
