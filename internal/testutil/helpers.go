// Package testutil provides reusable test helpers for trace and chart tests.
package testutil

import (
	"bytes"
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-12
	TimeTolerance    = 1e-9
)

// pngSignature is the 8-byte magic number at the start of every PNG file.
var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertStrictlyIncreasing verifies that every element is greater than the one before.
func AssertStrictlyIncreasing(t *testing.T, s []float64) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return assert.Fail(t, "not strictly increasing",
				"s[%d]=%g <= s[%d]=%g", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertUniformSpacing verifies that consecutive elements differ by step within tolerance.
func AssertUniformSpacing(t *testing.T, s []float64, step, tolerance float64) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if !assert.InDelta(t, step, s[i]-s[i-1], tolerance, "spacing at index %d", i) {
			return false
		}
	}
	return true
}

// AssertPNGFile verifies that path exists, is non-empty and starts with the PNG signature.
func AssertPNGFile(t *testing.T, path string) bool {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	if !assert.Greater(t, len(data), len(pngSignature), "file %s too small", path) {
		return false
	}
	return assert.True(t, bytes.HasPrefix(data, pngSignature), "file %s has no PNG signature", path)
}
