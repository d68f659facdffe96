package gonumplot

import (
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot/palette"
)

// viridis anchors, sampled at nine evenly spaced points.
var viridis = []color.NRGBA{
	{0x44, 0x01, 0x54, 0xff},
	{0x47, 0x2d, 0x7b, 0xff},
	{0x3b, 0x52, 0x8b, 0xff},
	{0x2c, 0x72, 0x8e, 0xff},
	{0x21, 0x91, 0x8c, 0xff},
	{0x28, 0xae, 0x80, 0xff},
	{0x5e, 0xc9, 0x62, 0xff},
	{0xad, 0xdc, 0x30, 0xff},
	{0xfd, 0xe7, 0x25, 0xff},
}

// viridisAt interpolates the anchors at t in [0, 1].
func viridisAt(t float64, alpha float64) color.Color {
	t = math.Max(0, math.Min(1, t))
	pos := t * float64(len(viridis)-1)
	i := int(pos)
	if i >= len(viridis)-1 {
		i = len(viridis) - 2
	}
	f := pos - float64(i)
	a, b := viridis[i], viridis[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + f*(float64(y)-float64(x))))
	}
	return color.NRGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: uint8(math.Round(alpha * 255)),
	}
}

type colors []color.Color

func (c colors) Colors() []color.Color { return c }

// bandedColorMap maps a value to the flat color of the band it falls in, so
// the color bar shows the same discrete steps as the filled contour.
type bandedColorMap struct {
	levels []float64
	alpha  float64
}

var _ palette.ColorMap = (*bandedColorMap)(nil)

func newBandedColorMap(levels []float64) *bandedColorMap {
	return &bandedColorMap{levels: levels, alpha: 1}
}

func (m *bandedColorMap) bands() int { return len(m.levels) - 1 }

// band returns the index of the band containing v. Values on an interior
// boundary belong to the upper band, the top boundary to the last band.
func (m *bandedColorMap) band(v float64) int {
	i := sort.SearchFloat64s(m.levels, v)
	if i < len(m.levels) && m.levels[i] == v {
		i++
	}
	i--
	if i < 0 {
		i = 0
	}
	if n := m.bands(); i >= n {
		i = n - 1
	}
	return i
}

func (m *bandedColorMap) bandColor(i int) color.Color {
	n := m.bands()
	if n <= 1 {
		return viridisAt(0, m.alpha)
	}
	return viridisAt(float64(i)/float64(n-1), m.alpha)
}

func (m *bandedColorMap) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < m.Min():
		return nil, palette.ErrUnderflow
	case v > m.Max():
		return nil, palette.ErrOverflow
	}
	return m.bandColor(m.band(v)), nil
}

func (m *bandedColorMap) Min() float64 { return m.levels[0] }

func (m *bandedColorMap) Max() float64 { return m.levels[len(m.levels)-1] }

func (m *bandedColorMap) SetMin(v float64) { m.levels[0] = v }

func (m *bandedColorMap) SetMax(v float64) { m.levels[len(m.levels)-1] = v }

func (m *bandedColorMap) Alpha() float64 { return m.alpha }

func (m *bandedColorMap) SetAlpha(a float64) {
	if a < 0 || a > 1 {
		panic("gonumplot: alpha out of range")
	}
	m.alpha = a
}

// Palette returns one color per band when n is zero or matches the band
// count, and an even sampling of the bands otherwise.
func (m *bandedColorMap) Palette(n int) palette.Palette {
	bands := m.bands()
	if n <= 0 {
		n = bands
	}
	out := make(colors, n)
	for i := range out {
		b := i
		if n != bands && n > 1 {
			b = int(math.Round(float64(i) * float64(bands-1) / float64(n-1)))
		}
		out[i] = m.bandColor(b)
	}
	return out
}
