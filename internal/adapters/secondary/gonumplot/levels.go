package gonumplot

import "math"

// defaultBins is the target band count for a filled contour.
const defaultBins = 8

var niceSteps = []float64{1, 2, 2.5, 5, 10}

// contourLevels picks evenly spaced band boundaries on "nice" numbers that
// enclose [min, max]. It returns at least two boundaries.
func contourLevels(min, max float64, bins int) []float64 {
	if bins < 1 {
		bins = defaultBins
	}
	if !(max > min) {
		return []float64{min, min + 1}
	}

	raw := (max - min) / float64(bins)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	step := niceSteps[len(niceSteps)-1] * mag
	for _, s := range niceSteps {
		if s*mag >= raw {
			step = s * mag
			break
		}
	}

	lo := math.Floor(min/step) * step
	hi := math.Ceil(max/step) * step
	n := int(math.Round((hi-lo)/step)) + 1
	if n < 2 {
		n = 2
	}

	levels := make([]float64, n)
	for i := range levels {
		// Rounding keeps labels such as 0.30000000000000004 out of the bar.
		levels[i] = roundTo(lo+float64(i)*step, step)
	}
	return levels
}

// interior returns the levels strictly between min and max.
func interior(levels []float64, min, max float64) []float64 {
	var out []float64
	for _, l := range levels {
		if l > min && l < max {
			out = append(out, l)
		}
	}
	return out
}

func roundTo(v, step float64) float64 {
	digits := math.Max(0, -math.Floor(math.Log10(step))+2)
	p := math.Pow(10, digits)
	return math.Round(v*p) / p
}
