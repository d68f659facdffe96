package domain

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/unit"
)

// FlowRate returns Q as a dimensional value in cubic metres per second.
func FlowRate(q float64) *unit.Unit {
	return unit.New(q, unit.Dimensions{unit.LengthDim: 3, unit.TimeDim: -1})
}

// Velocity returns v as a dimensional value in metres per second.
func Velocity(v float64) *unit.Unit {
	return unit.New(v, unit.Dimensions{unit.LengthDim: 1, unit.TimeDim: -1})
}

// Sizing is the outcome of one diameter calculation.
type Sizing struct {
	FlowRate float64     `json:"flow_rate"`
	Velocity float64     `json:"velocity"`
	Diameter unit.Length `json:"diameter"`
}

// Message renders the result line shown to the user.
func (s *Sizing) Message() string {
	return fmt.Sprintf("The recommended pipe diameter is: **%.2f meters**", float64(s.Diameter))
}

// Rounded returns the diameter rounded to two decimal places.
func (s *Sizing) Rounded() float64 {
	return math.Round(float64(s.Diameter)*100) / 100
}

// ValidateInputs reports ErrInvalidInput unless both values are finite and
// strictly positive.
func ValidateInputs(flowRate, velocity float64) error {
	if !isPositive(flowRate) {
		return fmt.Errorf("%w: flow_rate=%g", ErrInvalidInput, flowRate)
	}
	if !isPositive(velocity) {
		return fmt.Errorf("%w: velocity=%g", ErrInvalidInput, velocity)
	}
	return nil
}

// PipeDiameter returns d = sqrt(4Q/(πv)) in metres.
//
// The quotient is carried through gonum/unit so that a flow rate divided by a
// velocity is checked to be an area before the square root is taken.
func PipeDiameter(flowRate, velocity float64) (unit.Length, error) {
	if err := ValidateInputs(flowRate, velocity); err != nil {
		return 0, err
	}

	var area unit.Area
	if err := area.From(FlowRate(flowRate).Mul(unit.Dimless(4 / math.Pi)).Div(Velocity(velocity))); err != nil {
		return 0, fmt.Errorf("pipe diameter: %w", err)
	}

	return unit.Length(math.Sqrt(float64(area))), nil
}

// diameter is the unchecked form of PipeDiameter used for grid evaluation,
// where the domain has already been validated.
func diameter(flowRate, velocity float64) float64 {
	return math.Sqrt(4 * flowRate / (math.Pi * velocity))
}

func isPositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
