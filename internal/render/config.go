package render

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/plot/vg"
)

// ErrRender indicates the chart could not be laid out, rasterized or written.
var ErrRender = errors.New("render failed")

// GridConfig describes the figure layout.
type GridConfig struct {
	// Rows and Cols define the subplot grid. Scenarios fill it row-major.
	Rows, Cols int

	// Width and Height are the figure size.
	Width, Height vg.Length

	// DPI sets the raster resolution.
	DPI int

	// TimeGuide is the spacing of vertical guide lines in seconds.
	TimeGuide float64

	// AmplitudeGuide is the spacing of horizontal guide lines.
	AmplitudeGuide float64

	// AmplitudeRange fixes the Y axis to [-AmplitudeRange, AmplitudeRange].
	AmplitudeRange float64
}

// DefaultGridConfig returns a 2x2 grid at 1200x800 pixels.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		Rows:           defaultRows,
		Cols:           defaultCols,
		Width:          defaultWidth,
		Height:         defaultHeight,
		DPI:            defaultDPI,
		TimeGuide:      defaultTimeGuide,
		AmplitudeGuide: defaultAmplitudeGuide,
		AmplitudeRange: defaultAmplitudeRange,
	}
}

// PixelSize returns the raster size in pixels.
func (c GridConfig) PixelSize() (w, h int) {
	dpi := vg.Length(c.DPI)
	return int(c.Width/vg.Inch*dpi + 0.5), int(c.Height/vg.Inch*dpi + 0.5)
}

// Validate checks that the layout can be rendered.
func (c GridConfig) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("%w: grid must have at least one row and column: %dx%d", ErrRender, c.Rows, c.Cols)
	}

	if c.Width <= 0 || c.Height <= 0 || c.DPI <= 0 {
		return fmt.Errorf("%w: size and DPI must be positive", ErrRender)
	}

	w, h := c.PixelSize()
	if w < 1 || h < 1 || w > MaxPixels || h > MaxPixels {
		return fmt.Errorf("%w: unsupported output size %dx%d pixels (max %d)", ErrRender, w, h, MaxPixels)
	}

	if !validGuide(c.TimeGuide) || !validGuide(c.AmplitudeGuide) || !validGuide(c.AmplitudeRange) {
		return fmt.Errorf("%w: guide spacing and amplitude range must be positive and finite", ErrRender)
	}

	return nil
}

func validGuide(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
