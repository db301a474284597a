package sampling

// Display names of the default scenarios, in grid order.
const (
	NameSevereAliasing = "Severe Aliasing"
	NameAliasing       = "Aliasing"
	NameNearNyquist    = "Near Nyquist"
	NameHiResolution   = "Hi Resolution"
)

// DefaultScenarios returns the four fixed comparison scenarios in grid order
// (row-major): a 10 Hz tone at 16 bits sampled at 8, 12, 24 and 240 Hz.
// The first two sample below the Nyquist rate.
func DefaultScenarios() []SignalParams {
	return []SignalParams{
		newDefault(NameSevereAliasing, RateSevereAliasing),
		newDefault(NameAliasing, RateAliasing),
		newDefault(NameNearNyquist, RateNearNyquist),
		newDefault(NameHiResolution, RateHiResolution),
	}
}

func newDefault(name string, rate int) SignalParams {
	return SignalParams{
		Name:         name,
		Title:        name,
		SignalFreq:   DefaultSignalFreq,
		SamplingRate: rate,
		BitDepth:     DefaultBitDepth,
	}
}

// SynthesizeDefaults synthesizes DefaultScenarios over duration.
func SynthesizeDefaults(duration float64) ([]*Scenario, error) {
	return SynthesizeAll(DefaultScenarios(), duration)
}
