package render

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// boxedLabels draws each label over a filled, outlined rectangle so traces
// passing underneath do not obscure the text.
type boxedLabels struct {
	labels  *plotter.Labels
	fill    color.Color
	border  draw.LineStyle
	padding vg.Length
}

var _ plot.Plotter = (*boxedLabels)(nil)

func newBoxedLabels(labels *plotter.Labels) *boxedLabels {
	return &boxedLabels{
		labels:  labels,
		fill:    annotationFill,
		border:  draw.LineStyle{Color: annotationBorder, Width: annotationBorderWidth},
		padding: annotationPadding,
	}
}

// Plot implements plot.Plotter.
func (b *boxedLabels) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for i, label := range b.labels.Labels {
		pt := vg.Point{X: trX(b.labels.XYs[i].X), Y: trY(b.labels.XYs[i].Y)}
		if !c.Contains(pt) {
			continue
		}

		r := b.frame(b.labels.TextStyle[i], label, pt.Add(b.labels.Offset))
		outline := []vg.Point{
			r.Min,
			{X: r.Max.X, Y: r.Min.Y},
			r.Max,
			{X: r.Min.X, Y: r.Max.Y},
			r.Min,
		}
		c.FillPolygon(b.fill, outline)
		c.StrokeLines(b.border, outline)
	}

	b.labels.Plot(c, plt)
}

// DataRange implements plot.DataRanger.
func (b *boxedLabels) DataRange() (xmin, xmax, ymin, ymax float64) {
	return b.labels.DataRange()
}

// frame returns the padded bounds of txt drawn with sty at pt.
func (b *boxedLabels) frame(sty text.Style, txt string, pt vg.Point) vg.Rectangle {
	r := sty.Rectangle(txt)
	pad := vg.Point{X: b.padding, Y: b.padding}
	return vg.Rectangle{
		Min: r.Min.Add(pt).Sub(pad),
		Max: r.Max.Add(pt).Add(pad),
	}
}
