package sampling

// Signal model constants
const (
	// DecayRate is the exponential decay applied to every scenario so only
	// frequency, rate and depth vary across the comparison.
	DecayRate = 0.5

	// FineResolution is the minimum number of continuous-trace points per second.
	FineResolution = 1000

	// OversampleFactor keeps the continuous trace finer than the sampling grid
	// when the sampling rate approaches FineResolution.
	OversampleFactor = 20
)

// Trace length limits
const (
	// minTracePoints is the smallest continuous trace: both endpoints.
	minTracePoints = 2

	// maxTracePoints bounds either trace so a long duration or a high
	// sampling rate is rejected instead of exhausting memory.
	maxTracePoints = 1 << 22
)

// Bit depth limits
const (
	minBitDepth = 1
	maxBitDepth = 32
)

// Default scenario parameters
const (
	// DefaultDuration is the plotted time span in seconds.
	DefaultDuration = 2.0

	// DefaultSignalFreq is the input tone frequency in Hz.
	DefaultSignalFreq = 10.0

	// DefaultBitDepth is the quantization depth shared by all default scenarios.
	DefaultBitDepth = 16
)

// Sampling rates used by the default scenarios, in Hz.
const (
	RateSevereAliasing = 8
	RateAliasing       = 12
	RateNearNyquist    = 24
	RateHiResolution   = 240
)

// Common division constants
const (
	halfDivisor = 2.0 // Division by 2
)
