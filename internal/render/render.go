// Package render lays out synthesized sampling scenarios as a grid of
// gonum/plot subplots and exports the figure as a PNG image.
package render

import (
	"fmt"
	"math"
	"strconv"

	sampling "github.com/tphakala/go-sampling-chart"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Render draws one subplot per scenario into a cfg.Rows x cfg.Cols grid and
// writes the figure as PNG to path, replacing any existing file.
//
// Each subplot shows the continuous trace as a translucent line, the sampled
// trace as markers joined by straight segments, guide lines at fixed time and
// amplitude intervals, and an annotation with the scenario parameters.
//
// The parent directory of path must exist. On failure nothing is left at
// path. All errors wrap ErrRender.
func Render(scenarios []*sampling.Scenario, cfg GridConfig, path string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if len(scenarios) != cfg.Rows*cfg.Cols {
		return fmt.Errorf("%w: %d scenarios do not fill a %dx%d grid", ErrRender, len(scenarios), cfg.Rows, cfg.Cols)
	}

	plots := make([][]*plot.Plot, cfg.Rows)
	for r := range cfg.Rows {
		plots[r] = make([]*plot.Plot, cfg.Cols)
		for c := range cfg.Cols {
			sc := scenarios[r*cfg.Cols+c]
			if sc == nil {
				return fmt.Errorf("%w: scenario %d is nil", ErrRender, r*cfg.Cols+c)
			}

			p, err := newSubplot(sc, cfg)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", ErrRender, sc.Params.Name, err)
			}
			plots[r][c] = p
		}
	}

	img, err := drawGrid(plots, cfg)
	if err != nil {
		return err
	}

	return writeFileAtomic(path, vgimg.PngCanvas{Canvas: img})
}

// drawGrid rasterizes the aligned plots. The plotting backend signals some
// failures by panicking; those are returned as ErrRender.
func drawGrid(plots [][]*plot.Plot, cfg GridConfig) (img *vgimg.Canvas, err error) {
	defer func() {
		if r := recover(); r != nil {
			img, err = nil, fmt.Errorf("%w: backend: %v", ErrRender, r)
		}
	}()

	img = vgimg.NewWith(vgimg.UseWH(cfg.Width, cfg.Height), vgimg.UseDPI(cfg.DPI))
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows:      cfg.Rows,
		Cols:      cfg.Cols,
		PadX:      tilePad,
		PadY:      tilePad,
		PadTop:    tilePad,
		PadBottom: tilePad,
		PadLeft:   tilePad,
		PadRight:  tilePad,
	}

	canvases := plot.Align(plots, tiles, dc)
	for r := range plots {
		for c := range plots[r] {
			plots[r][c].Draw(canvases[r][c])
		}
	}

	return img, nil
}

func newSubplot(sc *sampling.Scenario, cfg GridConfig) (*plot.Plot, error) {
	p := plot.New()

	p.Title.Text = sc.Params.DisplayTitle()
	p.Title.TextStyle.Font.Size = titleFontSize
	p.X.Label.Text = timeAxisLabel
	p.Y.Label.Text = amplitudeAxisLabel
	p.X.Label.TextStyle.Font.Size = axisLabelFontSize
	p.Y.Label.TextStyle.Font.Size = axisLabelFontSize
	p.X.Tick.Label.Font.Size = tickFontSize
	p.Y.Tick.Label.Font.Size = tickFontSize

	p.X.Min, p.X.Max = 0, sc.Duration
	p.Y.Min, p.Y.Max = -cfg.AmplitudeRange, cfg.AmplitudeRange
	p.X.Tick.Marker = guideTicks(0, sc.Duration, cfg.TimeGuide)
	p.Y.Tick.Marker = guideTicks(-cfg.AmplitudeRange, cfg.AmplitudeRange, cfg.AmplitudeGuide)

	grid := plotter.NewGrid()
	grid.Vertical = draw.LineStyle{Color: guideColor, Width: guideWidth}
	grid.Horizontal = draw.LineStyle{Color: guideColor, Width: guideWidth}

	continuous, err := plotter.NewLine(xys(sc.Continuous.Times, sc.Continuous.Amplitudes))
	if err != nil {
		return nil, fmt.Errorf("continuous trace: %w", err)
	}
	continuous.Color = continuousColor
	continuous.Width = continuousWidth

	line, points, err := plotter.NewLinePoints(xys(sc.Sampled.Times, sc.Sampled.Amplitudes))
	if err != nil {
		return nil, fmt.Errorf("sampled trace: %w", err)
	}
	line.Color = sampleLineColor
	line.Width = sampleLineWidth
	points.GlyphStyle = draw.GlyphStyle{
		Color:  sampleDotColor,
		Radius: sampleMarkerRadius,
		Shape:  draw.CircleGlyph{},
	}

	labels, err := annotationLabel(sc, cfg)
	if err != nil {
		return nil, fmt.Errorf("annotation: %w", err)
	}

	p.Add(grid, continuous, line, points, newBoxedLabels(labels))
	return p, nil
}

// annotationLabel places the scenario summary inside the top-right corner.
// The caller draws it boxed so the traces stay behind the text.
func annotationLabel(sc *sampling.Scenario, cfg GridConfig) (*plotter.Labels, error) {
	x := sc.Duration * (1 - annotationInset)
	y := cfg.AmplitudeRange * (1 - annotationInset)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: x, Y: y}},
		Labels: []string{Annotation(sc.Params)},
	})
	if err != nil {
		return nil, err
	}

	for i := range labels.TextStyle {
		labels.TextStyle[i].Color = annotationColor
		labels.TextStyle[i].Font.Size = annotationFontSize
		labels.TextStyle[i].XAlign = draw.XRight
		labels.TextStyle[i].YAlign = draw.YTop
	}
	return labels, nil
}

// guideTicks returns labelled ticks at every multiple of step within
// [lo, hi]. Labelled ticks are major ticks, so plotter.Grid draws a guide
// line at each one. When the range would need more than maxGuideLines ticks,
// step is widened by a whole factor so the guides still span the axis.
func guideTicks(lo, hi, step float64) plot.ConstantTicks {
	if lines := (hi-lo)/step + 1; lines > maxGuideLines {
		step *= math.Ceil(lines / maxGuideLines)
	}

	start := math.Ceil(lo/step-guideEpsilon) * step
	n := int(math.Floor((hi-start)/step+guideEpsilon)) + 1

	ticks := make(plot.ConstantTicks, 0, max(n, 0))
	for i := range n {
		v := math.Round((start+float64(i)*step)*tickLabelPrecision) / tickLabelPrecision
		if v == 0 {
			v = 0 // drop the sign of -0
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64)})
	}
	return ticks
}

func xys(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}
