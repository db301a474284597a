package render

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Layout defaults: a 2x2 grid, 12x8 inches at 100 DPI (1200x800 pixels).
const (
	defaultRows   = 2
	defaultCols   = 2
	defaultWidth  = 12 * vg.Inch
	defaultHeight = 8 * vg.Inch
	defaultDPI    = 100

	// MaxPixels is the largest supported image side in pixels.
	MaxPixels = 16384
)

// Guide line spacing
const (
	defaultTimeGuide      = 0.25 // seconds between vertical guides
	defaultAmplitudeGuide = 0.5  // amplitude between horizontal guides
	defaultAmplitudeRange = 1.2  // Y axis spans [-range, range]

	// maxGuideLines bounds the tick count per axis; longer axes get a
	// wider guide interval.
	maxGuideLines = 200

	// tickLabelPrecision rounds tick values before formatting.
	tickLabelPrecision = 1e6

	// guideEpsilon absorbs rounding when a bound is an exact multiple of the step.
	guideEpsilon = 1e-9
)

// Axis labels
const (
	timeAxisLabel      = "Time (s)"
	amplitudeAxisLabel = "Amplitude"
)

// Styling
var (
	continuousColor  = color.NRGBA{R: 170, G: 170, B: 170, A: 128}
	sampleLineColor  = color.NRGBA{R: 31, G: 119, B: 180, A: 255}
	sampleDotColor   = color.NRGBA{R: 255, G: 0, B: 0, A: 178}
	guideColor       = color.Gray{Y: 220}
	annotationColor  = color.Gray{Y: 51}
	annotationBorder = color.Gray{Y: 51}
	annotationFill   = color.White
)

const (
	continuousWidth    = vg.Length(1.5)
	sampleLineWidth    = vg.Length(1)
	sampleMarkerRadius = vg.Length(2)
	guideWidth         = vg.Length(0.5)

	titleFontSize      = vg.Length(11)
	axisLabelFontSize  = vg.Length(9)
	tickFontSize       = vg.Length(7)
	annotationFontSize = vg.Length(8)

	// annotationInset places the annotation just inside the top-right corner,
	// as a fraction of the axis span.
	annotationInset = 0.02

	annotationPadding     = vg.Length(3)
	annotationBorderWidth = vg.Length(0.75)

	tilePad = 4 * vg.Millimeter
)

// File permissions of the exported image.
const outputFileMode = 0o644
