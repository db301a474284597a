package sampling

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Synthesize evaluates params over [0, duration] and returns the continuous
// reference trace together with the sampled, quantized trace.
//
// Sampling below the Nyquist rate is valid input; it is what the aliasing
// scenarios exist to show. A duration too long for either trace to fit in
// 2^22 points is rejected with ErrInvalidParameter. Synthesize is pure:
// identical inputs produce bit-identical output.
func Synthesize(params SignalParams, duration float64) (*Scenario, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := validateDuration(duration); err != nil {
		return nil, err
	}
	if err := checkTraceSize(params, duration); err != nil {
		return nil, err
	}

	return &Scenario{
		Params:     params,
		Duration:   duration,
		Continuous: synthesizeContinuous(params, duration),
		Sampled:    synthesizeSampled(params, duration),
	}, nil
}

// SynthesizeAll synthesizes each parameter set in order over the same duration.
// It stops at the first invalid set.
func SynthesizeAll(params []SignalParams, duration float64) ([]*Scenario, error) {
	scenarios := make([]*Scenario, 0, len(params))
	for i, p := range params {
		sc, err := Synthesize(p, duration)
		if err != nil {
			return nil, fmt.Errorf("scenario %d (%s): %w", i, p.Name, err)
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}

// checkTraceSize rejects durations whose traces would exceed maxTracePoints.
// The continuous trace is always the longer one, but both are checked so the
// sample count never overflows int.
func checkTraceSize(params SignalParams, duration float64) error {
	continuous := math.Round(float64(ContinuousResolution(params.SamplingRate))*duration) + 1
	sampled := float64(params.SamplingRate) * duration
	if continuous > maxTracePoints || sampled > maxTracePoints {
		return fmt.Errorf("%w: duration %v s at %d Hz needs more than %d trace points",
			ErrInvalidParameter, duration, params.SamplingRate, maxTracePoints)
	}
	return nil
}

func synthesizeContinuous(params SignalParams, duration float64) ContinuousTrace {
	resolution := float64(ContinuousResolution(params.SamplingRate))
	n := max(minTracePoints, int(math.Round(resolution*duration))+1)

	times := floats.Span(make([]float64, n), 0, duration)
	// Span accumulates rounding in the last step; pin the endpoint.
	times[n-1] = duration

	amplitudes := make([]float64, n)
	for i, t := range times {
		amplitudes[i] = DecayingSine(t, params.SignalFreq, DecayRate)
	}

	return ContinuousTrace{Times: times, Amplitudes: amplitudes}
}

func synthesizeSampled(params SignalParams, duration float64) SampledTrace {
	n := sampleCount(params.SamplingRate, duration)
	rate := float64(params.SamplingRate)

	st := SampledTrace{
		Times:        make([]float64, n),
		Exact:        make([]float64, n),
		Amplitudes:   make([]float64, n),
		Levels:       make([]int, n),
		SamplingRate: params.SamplingRate,
		BitDepth:     params.BitDepth,
	}

	for k := range n {
		t := float64(k) / rate
		exact := DecayingSine(t, params.SignalFreq, DecayRate)
		level, value := Quantize(exact, params.BitDepth)

		st.Times[k] = t
		st.Exact[k] = exact
		st.Amplitudes[k] = value
		st.Levels[k] = level
	}

	return st
}
