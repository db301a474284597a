package render

import (
	"fmt"
	"strings"

	sampling "github.com/tphakala/go-sampling-chart"
)

// Annotation returns the per-scenario summary drawn in the corner of each
// subplot: signal frequency, sampling rate, bit depth and Nyquist ratio.
func Annotation(p sampling.SignalParams) string {
	lines := []string{
		fmt.Sprintf("Signal: %.1f Hz", p.SignalFreq),
		fmt.Sprintf("Sampling: %d Hz", p.SamplingRate),
		fmt.Sprintf("Bit Depth: %d-bit", p.BitDepth),
		fmt.Sprintf("Nyquist Ratio: %.2f", p.NyquistRatio()),
	}
	return strings.Join(lines, "\n")
}
