// SPDX-License-Identifier: EPL-2.0

package pcm8

import (
	"github.com/samber/lo"
)

// Span is the top of the 8-bit output range.
const Span = 0xFF

// Range returns the smallest and largest sample. Both are 0 for an empty
// buffer.
func Range(samples []int16) (lo16, hi16 int16) {
	return lo.Min(samples), lo.Max(samples)
}

// Requantize stretches samples over [0, 255] so that the quietest sample
// becomes 0 and the loudest 255:
//
//	out = floor((s - min) * 255 / (max - min))
//
// A buffer where every sample is equal has no range to stretch and maps
// to all zeros.
func Requantize(samples []int16) []uint8 {
	out := make([]uint8, len(samples))

	low, high := Range(samples)
	width := int(high) - int(low)
	if width == 0 {
		return out
	}

	for i, s := range samples {
		out[i] = uint8((int(s) - int(low)) * Span / width)
	}

	return out
}

// Expand maps 8-bit unsigned samples back onto the signed 16-bit range.
func Expand(samples []uint8) []int16 {
	return lo.Map(samples, func(u uint8, _ int) int16 {
		return int16((int(u) - 0x80) << 8)
	})
}
