package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDiameterField_DefaultDomain(t *testing.T) {
	f, err := NewDiameterField(DefaultFieldDomain())
	require.NoError(t, err)

	c, r := f.Dims()
	assert.Equal(t, 100, c)
	assert.Equal(t, 50, r)

	rows, cols := f.Diameters.Dims()
	assert.Equal(t, 50, rows)
	assert.Equal(t, 100, cols)

	assert.InDelta(t, 0.01, f.X(0), 1e-12)
	assert.InDelta(t, 1.0, f.X(c-1), 1e-12)
	assert.InDelta(t, 0.1, f.Y(0), 1e-12)
	assert.InDelta(t, 5.0, f.Y(r-1), 1e-12)

	assert.True(t, f.Finite())
	assert.InDelta(t, 0.0505, f.Min(), 1e-4)
	assert.InDelta(t, 3.568, f.Max(), 1e-3)
}

func TestNewDiameterField_EvenSpacing(t *testing.T) {
	f, err := NewDiameterField(DefaultFieldDomain())
	require.NoError(t, err)

	step := (1.0 - 0.01) / 99
	for i := 1; i < len(f.FlowRates); i++ {
		assert.InDelta(t, step, f.FlowRates[i]-f.FlowRates[i-1], 1e-12)
	}

	step = (5.0 - 0.1) / 49
	for i := 1; i < len(f.Velocities); i++ {
		assert.InDelta(t, step, f.Velocities[i]-f.Velocities[i-1], 1e-12)
	}
}

func TestNewDiameterField_CellsMatchFormula(t *testing.T) {
	f, err := NewDiameterField(DefaultFieldDomain())
	require.NoError(t, err)

	c, r := f.Dims()
	for j := 0; j < r; j += 7 {
		for i := 0; i < c; i += 11 {
			d, err := PipeDiameter(f.X(i), f.Y(j))
			require.NoError(t, err)
			assert.InEpsilon(t, float64(d), f.Z(i, j), 1e-12)
		}
	}
}

func TestDiameterField_Rows(t *testing.T) {
	f, err := NewDiameterField(FieldDomain{
		FlowMin: 1, FlowMax: 2, FlowSamples: 3,
		VelocityMin: 1, VelocityMax: 4, VelocitySamples: 2,
	})
	require.NoError(t, err)

	rows := f.Rows()
	require.Len(t, rows, 2)
	require.Len(t, rows[0], 3)
	assert.InDelta(t, math.Sqrt(4/math.Pi), rows[0][0], 1e-12)
	assert.InDelta(t, math.Sqrt(8/(4*math.Pi)), rows[1][2], 1e-12)
}

func TestFieldDomain_Validate(t *testing.T) {
	valid := DefaultFieldDomain()
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(d *FieldDomain)
	}{
		{name: "zero flow min", mutate: func(d *FieldDomain) { d.FlowMin = 0 }},
		{name: "negative velocity min", mutate: func(d *FieldDomain) { d.VelocityMin = -1 }},
		{name: "flow bounds inverted", mutate: func(d *FieldDomain) { d.FlowMin, d.FlowMax = 2, 1 }},
		{name: "velocity bounds equal", mutate: func(d *FieldDomain) { d.VelocityMax = d.VelocityMin }},
		{name: "single flow sample", mutate: func(d *FieldDomain) { d.FlowSamples = 1 }},
		{name: "no velocity samples", mutate: func(d *FieldDomain) { d.VelocitySamples = 0 }},
		{name: "NaN bound", mutate: func(d *FieldDomain) { d.FlowMax = math.NaN() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DefaultFieldDomain()
			tt.mutate(&d)
			assert.ErrorIs(t, d.Validate(), ErrInvalidFieldDomain)

			_, err := NewDiameterField(d)
			assert.ErrorIs(t, err, ErrInvalidFieldDomain)
		})
	}
}

func TestFieldDomain_Key(t *testing.T) {
	a := DefaultFieldDomain()
	b := DefaultFieldDomain()
	assert.Equal(t, a.Key(), b.Key())

	b.FlowSamples = 200
	assert.NotEqual(t, a.Key(), b.Key())
}
