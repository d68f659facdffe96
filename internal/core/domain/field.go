package domain

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// FieldDomain bounds the flow-rate × velocity grid the diameter field is
// sampled over.
type FieldDomain struct {
	FlowMin         float64 `json:"flow_min"`
	FlowMax         float64 `json:"flow_max"`
	FlowSamples     int     `json:"flow_samples"`
	VelocityMin     float64 `json:"velocity_min"`
	VelocityMax     float64 `json:"velocity_max"`
	VelocitySamples int     `json:"velocity_samples"`
}

// DefaultFieldDomain is the reference surface: 100 flow rates in
// [0.01, 1.0] m³/s and 50 velocities in [0.1, 5.0] m/s.
func DefaultFieldDomain() FieldDomain {
	return FieldDomain{
		FlowMin:         0.01,
		FlowMax:         1.0,
		FlowSamples:     100,
		VelocityMin:     0.1,
		VelocityMax:     5.0,
		VelocitySamples: 50,
	}
}

// Validate checks that every grid point lies inside the formula's domain.
func (d FieldDomain) Validate() error {
	switch {
	case !isPositive(d.FlowMin) || !isPositive(d.FlowMax):
		return fmt.Errorf("%w: flow bounds must be positive", ErrInvalidFieldDomain)
	case !isPositive(d.VelocityMin) || !isPositive(d.VelocityMax):
		return fmt.Errorf("%w: velocity bounds must be positive", ErrInvalidFieldDomain)
	case d.FlowMin >= d.FlowMax:
		return fmt.Errorf("%w: flow_min must be below flow_max", ErrInvalidFieldDomain)
	case d.VelocityMin >= d.VelocityMax:
		return fmt.Errorf("%w: velocity_min must be below velocity_max", ErrInvalidFieldDomain)
	case d.FlowSamples < 2 || d.VelocitySamples < 2:
		return fmt.Errorf("%w: at least 2 samples per axis", ErrInvalidFieldDomain)
	}
	return nil
}

// Key identifies the domain for caching rendered output.
func (d FieldDomain) Key() string {
	return fmt.Sprintf("q%g-%g-%d:v%g-%g-%d",
		d.FlowMin, d.FlowMax, d.FlowSamples,
		d.VelocityMin, d.VelocityMax, d.VelocitySamples)
}

// DiameterField holds diameters sampled over a FieldDomain. Diameters has one
// row per velocity sample and one column per flow-rate sample.
type DiameterField struct {
	FlowRates  []float64
	Velocities []float64
	Diameters  *mat.Dense
}

// NewDiameterField evaluates the diameter formula over the Cartesian product
// of the domain's sample axes.
func NewDiameterField(d FieldDomain) (*DiameterField, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	flows := floats.Span(make([]float64, d.FlowSamples), d.FlowMin, d.FlowMax)
	vels := floats.Span(make([]float64, d.VelocitySamples), d.VelocityMin, d.VelocityMax)

	grid := mat.NewDense(len(vels), len(flows), nil)
	grid.Apply(func(r, c int, _ float64) float64 {
		return diameter(flows[c], vels[r])
	}, grid)

	return &DiameterField{
		FlowRates:  flows,
		Velocities: vels,
		Diameters:  grid,
	}, nil
}

// Dims returns the grid dimensions as (columns, rows).
func (f *DiameterField) Dims() (c, r int) {
	return len(f.FlowRates), len(f.Velocities)
}

// X returns the flow rate of column c.
func (f *DiameterField) X(c int) float64 { return f.FlowRates[c] }

// Y returns the velocity of row r.
func (f *DiameterField) Y(r int) float64 { return f.Velocities[r] }

// Z returns the diameter at column c, row r.
func (f *DiameterField) Z(c, r int) float64 { return f.Diameters.At(r, c) }

func (f *DiameterField) Min() float64 { return mat.Min(f.Diameters) }

func (f *DiameterField) Max() float64 { return mat.Max(f.Diameters) }

// Rows copies the grid into nested slices, one per velocity sample.
func (f *DiameterField) Rows() [][]float64 {
	rows := make([][]float64, len(f.Velocities))
	for r := range rows {
		rows[r] = mat.Row(nil, r, f.Diameters)
	}
	return rows
}

// Finite reports whether every cell is a finite, positive number.
func (f *DiameterField) Finite() bool {
	rows, cols := f.Diameters.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := f.Diameters.At(r, c)
			if !(v > 0) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}
