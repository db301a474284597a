package sampling

import (
	"github.com/go-audio/audio"
)

// ContinuousTrace is the densely evaluated reference curve over [0, duration].
type ContinuousTrace struct {
	// Times holds strictly increasing instants in seconds. The first is 0 and
	// the last equals the synthesis duration.
	Times []float64

	// Amplitudes holds the closed-form value at each instant.
	Amplitudes []float64
}

// Len returns the number of points.
func (c *ContinuousTrace) Len() int { return len(c.Times) }

// Step returns the spacing between consecutive instants.
func (c *ContinuousTrace) Step() float64 {
	if len(c.Times) < minTracePoints {
		return 0
	}
	return c.Times[1] - c.Times[0]
}

// SampledTrace holds the discrete samples taken at k/SamplingRate for all
// instants in [0, duration), quantized to BitDepth bits.
type SampledTrace struct {
	// Times holds the sampling instants k/SamplingRate.
	Times []float64

	// Exact holds the closed-form value before quantization.
	Exact []float64

	// Amplitudes holds the quantized values. Every entry lies on the level grid.
	Amplitudes []float64

	// Levels holds the level index of each sample, in [0, 2^BitDepth-1].
	Levels []int

	SamplingRate int
	BitDepth     int
}

// Len returns the number of samples.
func (s *SampledTrace) Len() int { return len(s.Times) }

// Step returns the sampling interval in seconds.
func (s *SampledTrace) Step() float64 {
	return 1 / float64(s.SamplingRate)
}

// PCM returns the quantized samples as signed mono PCM codes.
// Level 0 maps to -2^(BitDepth-1). The returned buffer does not share
// memory with the trace.
func (s *SampledTrace) PCM() *audio.IntBuffer {
	offset := (MaxLevel(s.BitDepth) + 1) / int(halfDivisor)
	data := make([]int, len(s.Levels))
	for i, level := range s.Levels {
		data[i] = level - offset
	}

	return &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  s.SamplingRate,
		},
		Data:           data,
		SourceBitDepth: s.BitDepth,
	}
}

// Scenario bundles one parameter set with its two traces.
// Scenarios are built by Synthesize and are not modified afterwards.
type Scenario struct {
	Params     SignalParams
	Duration   float64
	Continuous ContinuousTrace
	Sampled    SampledTrace
}
