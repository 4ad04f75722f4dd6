package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benchcalc/internal/model"
)

func TestADCForm_Convert(t *testing.T) {
	test.NewTempApp(t)

	var got []model.Calculation
	af := NewADCForm(7, func(c model.Calculation) { got = append(got, c) })

	af.voltsEntry.SetText("3.3")
	test.Tap(af.convertBtn)

	assert.Equal(t, "675 (0x2A3, 0b1010100011)", af.codeField.Text)
	assert.Empty(t, af.statusLabel.Text)
	require.Len(t, got, 1)
	assert.False(t, got[0].Defaulted)
}

func TestADCForm_OutOfRangeShowsSubstitution(t *testing.T) {
	test.NewTempApp(t)

	var got []model.Calculation
	af := NewADCForm(7, func(c model.Calculation) { got = append(got, c) })

	af.voltsEntry.SetText("9")
	af.Convert()

	assert.Equal(t, "511 (0x1FF, 0b0111111111)", af.codeField.Text)
	assert.Equal(t, "9 V is outside 0.0-5.0 V; converted 2.5 V instead", af.statusLabel.Text)
	require.Len(t, got, 1)
	assert.True(t, got[0].Defaulted)
}

func TestADCForm_Boundaries(t *testing.T) {
	test.NewTempApp(t)

	af := NewADCForm(7, nil)

	af.voltsEntry.SetText("0")
	af.Convert()
	assert.Equal(t, "0 (0x000, 0b0000000000)", af.codeField.Text)

	af.voltsEntry.SetText("5")
	af.Convert()
	assert.Equal(t, "1023 (0x3FF, 0b1111111111)", af.codeField.Text)
}

func TestADCForm_NotANumber(t *testing.T) {
	test.NewTempApp(t)

	var got []model.Calculation
	af := NewADCForm(7, func(c model.Calculation) { got = append(got, c) })

	af.voltsEntry.SetText("3.3")
	af.Convert()

	af.voltsEntry.SetText("three")
	af.Convert()

	assert.Empty(t, af.codeField.Text)
	assert.Equal(t, `voltage: "three" is not a number`, af.statusLabel.Text)
	require.Len(t, got, 2, "failed conversions are recorded too")
	assert.True(t, got[1].Failed())
	assert.Equal(t, "three", got[1].VoltsText)
}

func TestADCForm_Empty(t *testing.T) {
	test.NewTempApp(t)

	var got []model.Calculation
	af := NewADCForm(7, func(c model.Calculation) { got = append(got, c) })

	af.Convert()

	assert.Equal(t, "voltage: value is empty", af.statusLabel.Text)
	require.Len(t, got, 1)
	assert.Equal(t, "voltage: value is empty", got[0].Status())
}
