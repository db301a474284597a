package sampling

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-sampling-chart/internal/testutil"
)

func mustSynthesize(t *testing.T, rate, bitDepth int, duration float64) *Scenario {
	t.Helper()
	sc, err := Synthesize(SignalParams{
		Name:         "test",
		SignalFreq:   DefaultSignalFreq,
		SamplingRate: rate,
		BitDepth:     bitDepth,
	}, duration)
	require.NoError(t, err)
	return sc
}

func TestSynthesizeSevereAliasingCounts(t *testing.T) {
	sc := mustSynthesize(t, 8, 16, 1.0)

	assert.Equal(t, 8, sc.Sampled.Len())
	assert.Equal(t, FineResolution*1+1, sc.Continuous.Len())

	for k, ts := range sc.Sampled.Times {
		assert.InDelta(t, float64(k)/8, ts, 0)
	}
}

func TestSynthesizeContinuousSpan(t *testing.T) {
	for _, tc := range []struct {
		rate     int
		duration float64
	}{
		{8, 1.0},
		{240, 2.0},
		{24, 0.37},
		{12, 1e-3},
		{1000, 0.5},
	} {
		sc := mustSynthesize(t, tc.rate, 16, tc.duration)
		times := sc.Continuous.Times

		require.GreaterOrEqual(t, len(times), 2)
		assert.InDelta(t, 0.0, times[0], 0)
		assert.InDelta(t, tc.duration, times[len(times)-1], 0)
		testutil.AssertStrictlyIncreasing(t, times)
		testutil.AssertUniformSpacing(t, times, sc.Continuous.Step(), testutil.TimeTolerance)
		testutil.AssertNoNaNOrInf(t, sc.Continuous.Amplitudes)
		testutil.AssertAllInRange(t, sc.Continuous.Amplitudes, -1, 1)

		// The reference curve is always finer than the sampling grid.
		assert.Less(t, sc.Continuous.Step(), sc.Sampled.Step(), "rate=%d", tc.rate)
	}
}

func TestSynthesizeContinuousMatchesClosedForm(t *testing.T) {
	sc := mustSynthesize(t, 24, 16, 1.0)
	for i, ts := range sc.Continuous.Times {
		want := DecayingSine(ts, DefaultSignalFreq, DecayRate)
		if !assert.InDelta(t, want, sc.Continuous.Amplitudes[i], testutil.DefaultTolerance) {
			return
		}
	}
}

func TestSynthesizeSamplesOnLevelGrid(t *testing.T) {
	for _, bits := range []int{1, 3, 8, 16, 24, 32} {
		sc := mustSynthesize(t, 240, bits, 1.0)
		st := sc.Sampled
		maxLevel := MaxLevel(bits)

		for k := range st.Len() {
			level := st.Levels[k]
			require.GreaterOrEqual(t, level, 0)
			require.LessOrEqual(t, level, maxLevel)
			require.Equal(t, LevelValue(level, bits), st.Amplitudes[k], "bits=%d k=%d", bits, k)

			// Exact value is a direct evaluation, not an interpolation.
			exact := DecayingSine(st.Times[k], DefaultSignalFreq, DecayRate)
			require.Equal(t, exact, st.Exact[k])

			// No neighbouring level is closer.
			dist := math.Abs(st.Amplitudes[k] - exact)
			if level > 0 {
				assert.LessOrEqual(t, dist, math.Abs(LevelValue(level-1, bits)-exact))
			}
			if level < maxLevel {
				assert.LessOrEqual(t, dist, math.Abs(LevelValue(level+1, bits)-exact))
			}
		}
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	params := DefaultScenarios()[1]

	a, err := Synthesize(params, DefaultDuration)
	require.NoError(t, err)
	b, err := Synthesize(params, DefaultDuration)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotSame(t, &a.Sampled.Amplitudes[0], &b.Sampled.Amplitudes[0])
}

func TestSynthesizeInvalidParameters(t *testing.T) {
	base := SignalParams{Name: "x", SignalFreq: 10, SamplingRate: 8, BitDepth: 16}

	tests := []struct {
		name     string
		params   SignalParams
		duration float64
	}{
		{"zero frequency", SignalParams{SignalFreq: 0, SamplingRate: 8, BitDepth: 16}, 1},
		{"negative rate", SignalParams{SignalFreq: 10, SamplingRate: -5, BitDepth: 16}, 1},
		{"zero bit depth", SignalParams{SignalFreq: 10, SamplingRate: 8, BitDepth: 0}, 1},
		{"bit depth 33", SignalParams{SignalFreq: 10, SamplingRate: 8, BitDepth: 33}, 1},
		{"zero duration", base, 0},
		{"negative duration", base, -1},
		{"NaN duration", base, math.NaN()},
		{"infinite duration", base, math.Inf(1)},
		{"huge duration", base, 1e20},
		{"duration past trace limit", base, float64(maxTracePoints)/FineResolution + 1},
		{"huge sampling rate", SignalParams{SignalFreq: 10, SamplingRate: math.MaxInt, BitDepth: 16}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := Synthesize(tt.params, tt.duration)
			assert.Nil(t, sc)
			assert.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestSynthesizeLongestAcceptedDuration(t *testing.T) {
	duration := float64(maxTracePoints-1) / FineResolution
	sc := mustSynthesize(t, RateSevereAliasing, DefaultBitDepth, duration)

	assert.Equal(t, maxTracePoints, sc.Continuous.Len())
	assert.Greater(t, sc.Continuous.Len(), sc.Sampled.Len())
	assert.InDelta(t, duration, sc.Continuous.Times[sc.Continuous.Len()-1], 0)
}

func TestSynthesizeAll(t *testing.T) {
	scenarios, err := SynthesizeDefaults(1.0)
	require.NoError(t, err)
	require.Len(t, scenarios, 4)

	wantSamples := []int{8, 12, 24, 240}
	for i, sc := range scenarios {
		assert.Equal(t, wantSamples[i], sc.Sampled.Len(), sc.Params.Name)
		assert.InDelta(t, 1.0, sc.Duration, 0)
	}

	params := DefaultScenarios()
	params[2].BitDepth = 0
	_, err = SynthesizeAll(params, 1.0)
	require.ErrorIs(t, err, ErrInvalidParameter)
	assert.Contains(t, err.Error(), NameNearNyquist)
}

func TestSampledPCM(t *testing.T) {
	sc := mustSynthesize(t, 24, 8, 1.0)
	buf := sc.Sampled.PCM()

	require.NotNil(t, buf.Format)
	assert.Equal(t, 1, buf.Format.NumChannels)
	assert.Equal(t, 24, buf.Format.SampleRate)
	assert.Equal(t, 8, buf.SourceBitDepth)
	require.Len(t, buf.Data, sc.Sampled.Len())

	for i, code := range buf.Data {
		assert.GreaterOrEqual(t, code, -128)
		assert.LessOrEqual(t, code, 127)
		assert.Equal(t, sc.Sampled.Levels[i]-128, code)
	}

	// The buffer is a copy.
	buf.Data[0] = 99
	assert.NotEqual(t, 99, sc.Sampled.Levels[0]-128)
}
