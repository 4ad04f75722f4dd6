package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benchcalc/internal/config"
)

func TestBuildMainWindow(t *testing.T) {
	a := test.NewTempApp(t)

	settings := config.DefaultSettings()
	settings.ReportDir = t.TempDir()

	win := BuildMainWindow(a, settings)
	require.NotNil(t, win)
	defer win.Close()

	assert.Equal(t, "benchcalc", win.Title())
	assert.NotNil(t, win.Content())
}
