package gonumplot

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"pipe-sizing-service/internal/core/domain"
	ports "pipe-sizing-service/internal/core/ports/output"
)

const (
	Title         = "Pipe Diameter vs. Flow Rate and Velocity"
	XLabel        = "Flow Rate (m³/s)"
	YLabel        = "Velocity (m/s)"
	ColorBarLabel = "Pipe Diameter (m)"
)

const (
	defaultWidthInches  = 10
	defaultHeightInches = 6
	defaultDPI          = 96
)

var (
	colorBarWidth = 1.2 * vg.Inch
	contourLine   = color.NRGBA{A: 0x60}
)

// bandGrid reports the band index of each cell instead of its diameter, so a
// heat map over it draws flat-colored contour bands.
type bandGrid struct {
	plotter.GridXYZ
	cm *bandedColorMap
}

func (g bandGrid) Z(c, r int) float64 {
	return float64(g.cm.band(g.GridXYZ.Z(c, r)))
}

type renderer struct {
	bins int
}

// NewRenderer creates a contour renderer backed by gonum/plot
func NewRenderer() ports.FieldRenderer {
	return &renderer{bins: defaultBins}
}

func (r *renderer) RenderPNG(ctx context.Context, field *domain.DiameterField, opts ports.RenderOptions, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if field == nil {
		return fmt.Errorf("render: nil field")
	}

	opts = withDefaults(opts)
	width := vg.Length(opts.WidthInches) * vg.Inch
	height := vg.Length(opts.HeightInches) * vg.Inch

	min, max := field.Min(), field.Max()
	levels := contourLevels(min, max, r.bins)
	cm := newBandedColorMap(levels)

	p := plot.New()
	p.Title.Text = Title
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel

	bands := cm.bands()
	hm := plotter.NewHeatMap(bandGrid{GridXYZ: field, cm: cm}, cm.Palette(bands))
	hm.Min = 0
	hm.Max = math.Max(1, float64(bands-1))
	p.Add(hm)

	if lines := interior(levels, min, max); len(lines) > 1 {
		ct := plotter.NewContour(field, lines, colors{contourLine})
		ct.LineStyles = []draw.LineStyle{{Color: contourLine, Width: vg.Points(0.5)}}
		p.Add(ct)
	}

	bar := plot.New()
	bar.Add(&plotter.ColorBar{ColorMap: cm, Vertical: true, Colors: 4 * bands})
	bar.HideX()
	bar.X.Padding = 0
	bar.Y.Padding = 0
	bar.Y.Label.Text = ColorBarLabel
	bar.Y.Tick.Marker = levelTicks(levels)

	img := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(opts.DPI))
	dc := draw.New(img)

	p.Draw(draw.Crop(dc, 0, -colorBarWidth, 0, 0))

	// Line the bar up with the plot area rather than the title and axis label.
	titleHeight := p.Title.TextStyle.Height(p.Title.Text) + p.Title.Padding
	bar.Draw(draw.Crop(dc, width-colorBarWidth+vg.Points(8), 0, 0.55*vg.Inch, -titleHeight))

	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func withDefaults(opts ports.RenderOptions) ports.RenderOptions {
	if opts.WidthInches <= 0 {
		opts.WidthInches = defaultWidthInches
	}
	if opts.HeightInches <= 0 {
		opts.HeightInches = defaultHeightInches
	}
	if opts.DPI <= 0 {
		opts.DPI = defaultDPI
	}
	return opts
}

func levelTicks(levels []float64) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(levels))
	for i, l := range levels {
		ticks[i] = plot.Tick{Value: l, Label: strconv.FormatFloat(l, 'g', -1, 64)}
	}
	return ticks
}
