package sampling

import (
	"math"

	"github.com/tphakala/go-sampling-chart/internal/simdops"
	"gonum.org/v1/gonum/floats"
)

// Reconstruct returns the value of the line-connected sample trace at t,
// interpolating linearly between neighbouring samples. This is the curve
// drawn through the sample markers. Outside [0, last sample time] the nearest
// edge sample is returned.
func (s *SampledTrace) Reconstruct(t float64) float64 {
	n := len(s.Amplitudes)
	if n == 0 {
		return 0
	}

	pos := t * float64(s.SamplingRate)
	if pos <= 0 {
		return s.Amplitudes[0]
	}
	k := int(math.Floor(pos))
	if k >= n-1 {
		return s.Amplitudes[n-1]
	}

	frac := pos - float64(k)
	return s.Amplitudes[k] + frac*(s.Amplitudes[k+1]-s.Amplitudes[k])
}

// residualWindow returns the continuous amplitudes and the reconstruction at
// every continuous instant up to the last sample time.
func (sc *Scenario) residualWindow() (reference, reconstructed []float64) {
	if sc.Sampled.Len() == 0 {
		return nil, nil
	}
	last := sc.Sampled.Times[sc.Sampled.Len()-1]

	for i, t := range sc.Continuous.Times {
		if t > last {
			break
		}
		reference = append(reference, sc.Continuous.Amplitudes[i])
		reconstructed = append(reconstructed, sc.Sampled.Reconstruct(t))
	}
	return reference, reconstructed
}

// TrackingError returns the mean absolute difference between the
// reconstructed sample trace and the continuous trace. Small values mean the
// samples follow the signal; large values mean the samples describe a
// different (aliased) waveform.
func (sc *Scenario) TrackingError() float64 {
	reference, reconstructed := sc.residualWindow()
	if len(reference) == 0 {
		return 0
	}
	return floats.Distance(reference, reconstructed, 1) / float64(len(reference))
}

// RMSError returns the root-mean-square difference between the reconstructed
// sample trace and the continuous trace.
func (sc *Scenario) RMSError() float64 {
	reference, reconstructed := sc.residualWindow()
	if len(reference) == 0 {
		return 0
	}

	floats.Sub(reconstructed, reference)
	return math.Sqrt(simdops.MeanSquare(reconstructed))
}

// QuantizationError returns the largest absolute difference between a
// quantized sample and its exact value.
func (s *SampledTrace) QuantizationError() float64 {
	if len(s.Exact) == 0 {
		return 0
	}
	return floats.Distance(s.Amplitudes, s.Exact, math.Inf(1))
}

// MeanAmplitude returns the mean of the quantized samples.
func (s *SampledTrace) MeanAmplitude() float64 {
	return simdops.Mean(s.Amplitudes)
}

// DistinctLevels returns how many different quantization levels the trace uses.
func (s *SampledTrace) DistinctLevels() int {
	seen := make(map[int]struct{}, len(s.Levels))
	for _, l := range s.Levels {
		seen[l] = struct{}{}
	}
	return len(seen)
}
