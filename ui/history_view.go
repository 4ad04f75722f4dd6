package ui

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"benchcalc/internal/format"
	"benchcalc/internal/model"
)

var historyColumns = []string{"Time", "Kind", "Input", "Result", "Status"}

// HistoryView displays a table of this session's calculations.
type HistoryView struct {
	mu        sync.Mutex
	calcs     []model.Calculation
	precision int
	table     *widget.Table
}

// NewHistoryView creates a new history table view.
func NewHistoryView(precision int) *HistoryView {
	hv := &HistoryView{precision: precision}

	hv.table = widget.NewTable(
		hv.tableSize,
		hv.createCell,
		hv.updateCell,
	)

	hv.table.SetColumnWidth(0, 90)  // Time
	hv.table.SetColumnWidth(1, 50)  // Kind
	hv.table.SetColumnWidth(2, 200) // Input
	hv.table.SetColumnWidth(3, 160) // Result
	hv.table.SetColumnWidth(4, 220) // Status

	return hv
}

// Container returns the table widget.
func (hv *HistoryView) Container() *widget.Table {
	return hv.table
}

// AddCalculation appends a calculation to the history.
func (hv *HistoryView) AddCalculation(c model.Calculation) {
	hv.mu.Lock()
	hv.calcs = append(hv.calcs, c)
	hv.mu.Unlock()
	hv.table.Refresh()
}

// Calculations returns a copy of all stored calculations.
func (hv *HistoryView) Calculations() []model.Calculation {
	hv.mu.Lock()
	defer hv.mu.Unlock()
	out := make([]model.Calculation, len(hv.calcs))
	copy(out, hv.calcs)
	return out
}

// Clear removes all stored calculations.
func (hv *HistoryView) Clear() {
	hv.mu.Lock()
	hv.calcs = nil
	hv.mu.Unlock()
	hv.table.Refresh()
}

func (hv *HistoryView) tableSize() (rows int, cols int) {
	hv.mu.Lock()
	defer hv.mu.Unlock()
	return len(hv.calcs) + 1, len(historyColumns) // +1 for header
}

func (hv *HistoryView) createCell() fyne.CanvasObject {
	return widget.NewLabel("")
}

func (hv *HistoryView) updateCell(id widget.TableCellID, obj fyne.CanvasObject) {
	label := obj.(*widget.Label)

	if id.Row == 0 {
		label.TextStyle = fyne.TextStyle{Bold: true}
		label.SetText(historyColumns[id.Col])
		return
	}

	hv.mu.Lock()
	defer hv.mu.Unlock()

	idx := id.Row - 1
	if idx >= len(hv.calcs) {
		label.SetText("")
		return
	}

	label.TextStyle = fyne.TextStyle{}
	label.SetText(hv.cellText(&hv.calcs[idx], id.Col))
}

func (hv *HistoryView) cellText(c *model.Calculation, col int) string {
	switch col {
	case 0:
		return c.Timestamp.Format("15:04:05")
	case 1:
		return string(c.Kind)
	case 2:
		if c.Kind == model.KindADC {
			if c.Failed() {
				return c.VoltsText
			}
			return format.FormatNumber(c.InputVolts, hv.precision) + " V"
		}
		return fmt.Sprintf("R=%s C=%s", c.ResistanceText, c.CapacitanceText)
	case 3:
		if c.Failed() {
			return ""
		}
		if c.Kind == model.KindADC {
			return fmt.Sprintf("code %d", c.Code)
		}
		return format.FormatFrequency(c.FrequencyHz, hv.precision)
	case 4:
		return c.Status()
	}
	return ""
}
