// Package sampling models how a continuous tone turns into digital audio
// samples, for a side-by-side comparison of sampling rates.
//
// Each scenario is a [SignalParams] value. [Synthesize] evaluates a decaying
// sine, exp(-0.5t)·sin(2πft), twice: densely over [0, duration] as the
// continuous reference, and at every instant k/rate in [0, duration) as the
// sampled trace, which is then quantized to 2^BitDepth levels over [-1, 1].
//
// # Quick Start
//
//	scenarios, err := sampling.SynthesizeDefaults(sampling.DefaultDuration)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, sc := range scenarios {
//	    fmt.Printf("%s: %.3f\n", sc.Params.Name, sc.TrackingError())
//	}
//
// # Sampling Convention
//
// The continuous trace includes both endpoints, with
// max(1000, 20·rate) points per second so that it is always finer than the
// sampling grid. The sampled trace is half-open: an instant equal to the
// duration is not sampled, so one second at 8 Hz yields exactly 8 samples.
//
// # Quantization
//
// [Quantize] maps an amplitude a to level round((a+1)/2·(2^b-1)) and back to
// level/(2^b-1)·2-1. Ties round half away from zero. The error never exceeds
// 1/(2^b-1).
//
// # Aliasing
//
// Rates below twice the signal frequency are valid input. [Scenario.TrackingError]
// quantifies how far the line through the samples strays from the continuous
// signal: well under 0.01 at 240 Hz and above 0.3 at 8 Hz for the default
// 10 Hz tone.
package sampling
