package sampling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackingErrorHiResolution(t *testing.T) {
	for _, duration := range []float64{1.0, DefaultDuration} {
		sc := mustSynthesize(t, RateHiResolution, 16, duration)
		assert.Less(t, sc.TrackingError(), 0.01, "duration=%v", duration)
		assert.Less(t, sc.RMSError(), 0.01, "duration=%v", duration)
	}
}

func TestTrackingErrorSevereAliasing(t *testing.T) {
	for _, duration := range []float64{1.0, DefaultDuration} {
		sc := mustSynthesize(t, RateSevereAliasing, 16, duration)
		assert.Greater(t, sc.TrackingError(), 0.3, "duration=%v", duration)
	}
}

func TestTrackingErrorDecreasesWithRate(t *testing.T) {
	scenarios, err := SynthesizeDefaults(1.0)
	require.NoError(t, err)

	// Near Nyquist is already far better than the aliased cases.
	assert.Greater(t, scenarios[0].TrackingError(), scenarios[2].TrackingError())
	assert.Greater(t, scenarios[1].TrackingError(), scenarios[2].TrackingError())
	assert.Greater(t, scenarios[2].TrackingError(), scenarios[3].TrackingError())
}

func TestRMSErrorNotBelowMeanError(t *testing.T) {
	for _, rate := range []int{8, 12, 24, 240} {
		sc := mustSynthesize(t, rate, 16, 1.0)
		assert.GreaterOrEqual(t, sc.RMSError(), sc.TrackingError(), "rate=%d", rate)
	}
}

func TestReconstruct(t *testing.T) {
	st := SampledTrace{
		Times:        []float64{0, 0.5, 1},
		Amplitudes:   []float64{0, 1, -1},
		SamplingRate: 2,
		BitDepth:     16,
	}

	assert.InDelta(t, 0.0, st.Reconstruct(-1), 0)
	assert.InDelta(t, 0.0, st.Reconstruct(0), 0)
	assert.InDelta(t, 0.5, st.Reconstruct(0.25), 1e-12)
	assert.InDelta(t, 1.0, st.Reconstruct(0.5), 1e-12)
	assert.InDelta(t, 0.0, st.Reconstruct(0.75), 1e-12)
	assert.InDelta(t, -1.0, st.Reconstruct(1), 0)
	assert.InDelta(t, -1.0, st.Reconstruct(5), 0)

	assert.InDelta(t, 0.0, (&SampledTrace{SamplingRate: 2}).Reconstruct(1), 0)
}

func TestReconstructPassesThroughSamples(t *testing.T) {
	sc := mustSynthesize(t, RateNearNyquist, 16, 1.0)
	for k, ts := range sc.Sampled.Times {
		assert.InDelta(t, sc.Sampled.Amplitudes[k], sc.Sampled.Reconstruct(ts), 1e-12)
	}
}

func TestQuantizationError(t *testing.T) {
	for _, bits := range []int{4, 8, 16} {
		sc := mustSynthesize(t, RateHiResolution, bits, 1.0)
		bound := 1 / float64(MaxLevel(bits))
		got := sc.Sampled.QuantizationError()
		assert.LessOrEqual(t, got, bound, "bits=%d", bits)
		assert.Greater(t, got, 0.0, "bits=%d", bits)
	}
}

func TestDistinctLevels(t *testing.T) {
	// 10 Hz at 8 Hz lands on sin(k*pi/2): levels for 0, +peak and -peak.
	sc := mustSynthesize(t, RateSevereAliasing, 2, 1.0)
	assert.LessOrEqual(t, sc.Sampled.DistinctLevels(), 4)
	assert.GreaterOrEqual(t, sc.Sampled.DistinctLevels(), 2)

	hi := mustSynthesize(t, RateHiResolution, 16, 1.0)
	assert.Greater(t, hi.Sampled.DistinctLevels(), 100)
}

func TestMeanAmplitude(t *testing.T) {
	st := SampledTrace{Amplitudes: []float64{-1, 0, 1, 0.5}}
	assert.InDelta(t, 0.125, st.MeanAmplitude(), 1e-12)
	assert.Zero(t, (&SampledTrace{}).MeanAmplitude())
}
