package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"benchcalc/internal/cli"
	"benchcalc/internal/config"
	"benchcalc/ui"
)

func main() {
	// No subcommand = use GUI
	if err := cli.Execute(runGUI); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runGUI(settings config.Settings) error {
	a := app.NewWithID("com.benchcalc.gui")
	win := ui.BuildMainWindow(a, settings)
	win.ShowAndRun()
	return nil
}
