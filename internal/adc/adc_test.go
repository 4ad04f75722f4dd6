package adc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		in        float64
		wantVolts float64
		defaulted bool
	}{
		{"zero", 0.0, 0.0, false},
		{"full scale", 5.0, 5.0, false},
		{"midrange", 3.3, 3.3, false},
		{"just below zero", -0.001, DefaultVolts, true},
		{"just above full scale", 5.001, DefaultVolts, true},
		{"large negative", -12, DefaultVolts, true},
		{"positive infinity", math.Inf(1), DefaultVolts, true},
		{"negative infinity", math.Inf(-1), DefaultVolts, true},
		{"NaN", math.NaN(), DefaultVolts, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Validate(tt.in)
			assert.Equal(t, tt.wantVolts, r.Volts())

			_, isDefault := r.(DefaultedVoltage)
			assert.Equal(t, tt.defaulted, isDefault)
		})
	}
}

func TestValidate_DefaultedKeepsInput(t *testing.T) {
	r := Validate(7.5)
	d, ok := r.(DefaultedVoltage)
	require.True(t, ok, "expected DefaultedVoltage, got %T", r)
	assert.Equal(t, 7.5, d.Input)
	assert.Equal(t, 2.5, d.Volts())
}

func TestConverterCode_InRange(t *testing.T) {
	for _, v := range []float64{0, 0.001, 0.5, 1.0, 1.234, 2.5, 3.3, 4.99, 5.0} {
		c := NewConverter(v)
		want := int(math.Floor(v / VoltsPerStep))
		assert.Equal(t, want, c.Code(), "volts=%g", v)
		assert.GreaterOrEqual(t, c.Code(), 0)
		assert.LessOrEqual(t, c.Code(), MaxCode)
		assert.False(t, c.Defaulted())
	}
}

func TestConverterCode_Boundaries(t *testing.T) {
	assert.Equal(t, 0, NewConverter(0.0).Code())
	assert.Equal(t, 1023, NewConverter(5.0).Code())
}

func TestConverterCode_OutOfRange(t *testing.T) {
	for _, v := range []float64{-1, -0.0001, 5.0001, 10, 1e9, math.NaN(), math.Inf(1)} {
		c := NewConverter(v)
		assert.Equal(t, 511, c.Code(), "volts=%g", v)
		assert.True(t, c.Defaulted(), "volts=%g", v)
		assert.Equal(t, DefaultVolts, c.Volts())
	}
}

func TestConverterCode_Known(t *testing.T) {
	tests := []struct {
		volts float64
		want  int
	}{
		{0.5, 102},
		{1.0, 204},
		{2.5, 511},
		{3.3, 675},
		{4.0, 818},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NewConverter(tt.volts).Code(), "volts=%g", tt.volts)
	}
}

func TestSweep(t *testing.T) {
	pts, err := Sweep(0, 5, 11)
	require.NoError(t, err)
	require.Len(t, pts, 11)

	assert.Equal(t, 0, pts[0].Code)
	assert.Equal(t, 102, pts[1].Code)
	assert.Equal(t, 511, pts[5].Code)
	assert.Equal(t, 1023, pts[10].Code)
	for _, p := range pts {
		assert.False(t, p.Defaulted, "input=%g", p.Input)
	}
}

func TestSweep_OutOfRangePointsDefaulted(t *testing.T) {
	pts, err := Sweep(-1, 6, 8)
	require.NoError(t, err)
	require.Len(t, pts, 8)

	assert.True(t, pts[0].Defaulted)
	assert.Equal(t, 511, pts[0].Code)
	assert.True(t, pts[7].Defaulted)
	assert.Equal(t, -1.0, pts[0].Input)
	assert.Equal(t, DefaultVolts, pts[0].Volts)
}

func TestSweep_Errors(t *testing.T) {
	_, err := Sweep(0, 5, 1)
	assert.Error(t, err)

	_, err = Sweep(5, 0, 11)
	assert.Error(t, err)
}
