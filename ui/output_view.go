package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"benchcalc/internal/format"
	"benchcalc/internal/model"
)

// OutputView displays a scrolling log of formatted calculations and messages.
type OutputView struct {
	text      *widget.Entry
	scrollBox *container.Scroll
	precision int
}

// NewOutputView creates a new scrollable output view.
func NewOutputView(precision int) *OutputView {
	ov := &OutputView{precision: precision}

	ov.text = widget.NewMultiLineEntry()
	ov.text.TextStyle = fyne.TextStyle{Monospace: true}
	ov.text.Wrapping = fyne.TextWrapOff
	ov.text.Disable() // read-only

	ov.scrollBox = container.NewVScroll(ov.text)
	ov.scrollBox.SetMinSize(NewOutputViewMinSize())

	return ov
}

// Container returns the output view's container.
func (ov *OutputView) Container() *container.Scroll {
	return ov.scrollBox
}

// AppendLine adds a line to the output view. Call from the UI goroutine.
func (ov *OutputView) AppendLine(line string) {
	current := ov.text.Text
	if current != "" {
		current += "\n"
	}
	ov.text.SetText(current + line)
	ov.scrollBox.ScrollToBottom()
}

// AppendCalculation adds the formatted block for c.
func (ov *OutputView) AppendCalculation(c *model.Calculation) {
	ov.AppendLine(format.FormatCalculation(c, ov.precision))
}

// Lines returns the current output split into lines.
func (ov *OutputView) Lines() []string {
	if ov.text.Text == "" {
		return nil
	}
	return strings.Split(ov.text.Text, "\n")
}

// Clear empties the output view.
func (ov *OutputView) Clear() {
	ov.text.SetText("")
}
