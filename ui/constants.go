package ui

import "fyne.io/fyne/v2"

// Window dimensions
const (
	WindowWidth  = 620
	WindowHeight = 560
)

// Split ratios
const (
	MainSplitRatio = 0.5 // 50% top (calculator forms), 50% bottom (log/history)
)

// OutputView dimensions
const (
	OutputViewMinWidth  = 200
	OutputViewMinHeight = 120
)

// Minimum width of a computed-value field.
const resultFieldMinWidth = 220

// NewWindowSize returns the default window size
func NewWindowSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}

// NewOutputViewMinSize returns the minimum size for the output view
func NewOutputViewMinSize() fyne.Size {
	return fyne.NewSize(OutputViewMinWidth, OutputViewMinHeight)
}
