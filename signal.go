package sampling

import (
	"math"
)

// DecayingSine evaluates exp(-decayRate*t) * sin(2*pi*freq*t).
// Both traces call it so sampled values are exact evaluations, never
// interpolations of the continuous curve.
func DecayingSine(t, freq, decayRate float64) float64 {
	return math.Exp(-decayRate*t) * math.Sin(2*math.Pi*freq*t)
}

// MaxLevel returns the highest level index for a bit depth, 2^bitDepth - 1.
func MaxLevel(bitDepth int) int {
	return int(math.Exp2(float64(bitDepth))) - 1
}

// LevelValue maps a level index back to its amplitude in [-1, 1].
func LevelValue(level, bitDepth int) float64 {
	maxLevel := math.Exp2(float64(bitDepth)) - 1
	return float64(level)/maxLevel*halfDivisor - 1
}

// Quantize maps a to the nearest of 2^bitDepth evenly spaced levels over
// [-1, 1] and returns the level index with its amplitude. Input outside
// [-1, 1] is clamped first. Ties round half away from zero (math.Round).
// bitDepth must be in 1-32.
func Quantize(a float64, bitDepth int) (level int, value float64) {
	maxLevel := math.Exp2(float64(bitDepth)) - 1
	a = max(-1, min(1, a))

	idx := math.Round((a + 1) / halfDivisor * maxLevel)
	return int(idx), idx/maxLevel*halfDivisor - 1
}

// ContinuousResolution returns the continuous-trace point density, in points
// per second, used for a given sampling rate. Rates too high to oversample
// without overflow saturate at math.MaxInt.
func ContinuousResolution(samplingRate int) int {
	if samplingRate > math.MaxInt/OversampleFactor {
		return math.MaxInt
	}
	return max(FineResolution, OversampleFactor*samplingRate)
}

// sampleCount returns the number of instants k/rate that fall in [0, duration).
// rate*duration must not exceed maxTracePoints; checkTraceSize enforces this.
func sampleCount(samplingRate int, duration float64) int {
	rate := float64(samplingRate)
	n := int(math.Ceil(duration * rate))
	for n > 0 && float64(n-1)/rate >= duration {
		n--
	}
	for float64(n)/rate < duration {
		n++
	}
	return n
}
