package sampling

import (
	"errors"
	"fmt"
	"math"
)

// Common errors returned by the signal model.
var (
	// ErrInvalidParameter indicates a signal parameter or duration outside its
	// documented range.
	ErrInvalidParameter = errors.New("invalid signal parameter")
)

// SignalParams describes one sampling scenario.
// Values are immutable once constructed; pass them by value.
type SignalParams struct {
	// Name is a short display label, e.g. "Severe Aliasing".
	Name string

	// Title is the static subplot title supplied by the caller.
	// When empty, renderers fall back to Name.
	Title string

	// SignalFreq is the input tone frequency in Hz. Must be > 0.
	SignalFreq float64

	// SamplingRate is the number of samples per second. Must be > 0.
	SamplingRate int

	// BitDepth is the number of quantization bits (1-32).
	BitDepth int
}

// NewSignalParams creates validated scenario parameters.
func NewSignalParams(name string, signalFreq float64, samplingRate, bitDepth int) (SignalParams, error) {
	p := SignalParams{
		Name:         name,
		Title:        name,
		SignalFreq:   signalFreq,
		SamplingRate: samplingRate,
		BitDepth:     bitDepth,
	}
	if err := p.Validate(); err != nil {
		return SignalParams{}, err
	}
	return p, nil
}

// Validate checks that the parameters are within range.
func (p SignalParams) Validate() error {
	if !(p.SignalFreq > 0) || math.IsInf(p.SignalFreq, 0) {
		return fmt.Errorf("%w: signal frequency must be positive and finite: %v", ErrInvalidParameter, p.SignalFreq)
	}

	if p.SamplingRate <= 0 {
		return fmt.Errorf("%w: sampling rate must be positive: %d", ErrInvalidParameter, p.SamplingRate)
	}

	if p.BitDepth < minBitDepth || p.BitDepth > maxBitDepth {
		return fmt.Errorf("%w: bit depth must be %d-%d bits: %d", ErrInvalidParameter, minBitDepth, maxBitDepth, p.BitDepth)
	}

	return nil
}

// NyquistRatio returns SamplingRate / (2 * SignalFreq).
// Values below 1 mean the signal is sampled under its Nyquist rate.
func (p SignalParams) NyquistRatio() float64 {
	return float64(p.SamplingRate) / (halfDivisor * p.SignalFreq)
}

// Aliased reports whether the sampling rate is below twice the signal frequency.
func (p SignalParams) Aliased() bool {
	return p.NyquistRatio() < 1
}

// DisplayTitle returns Title, or Name when no title was given.
func (p SignalParams) DisplayTitle() string {
	if p.Title != "" {
		return p.Title
	}
	return p.Name
}

func validateDuration(duration float64) error {
	if !(duration > 0) || math.IsInf(duration, 0) {
		return fmt.Errorf("%w: duration must be positive and finite: %v", ErrInvalidParameter, duration)
	}
	return nil
}
