// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"

	"github.com/ik5/wavembed/utils"
)

// lowPassAlpha is the coefficient of the one-pole filter applied before
// downsampling.
const lowPassAlpha = 0.5

// Resample converts mono samples from srcRate to dstRate with Catmull-Rom
// cubic interpolation. When downsampling, the input first goes through a
// one-pole low-pass filter to reduce aliasing.
func Resample(mono []float32, srcRate, dstRate int) ([]float32, error) {
	if srcRate <= 0 || dstRate <= 0 {
		return nil, ErrInvalidRate
	}
	if len(mono) == 0 {
		return nil, nil
	}
	if srcRate == dstRate {
		out := make([]float32, len(mono))
		copy(out, mono)
		return out, nil
	}

	ratio := float64(srcRate) / float64(dstRate)
	in := mono
	if ratio > 1 {
		in = lowPass(mono, lowPassAlpha)
	}

	last := len(in) - 1
	at := func(i int) float32 {
		return in[min(max(i, 0), last)]
	}

	count := int(math.Floor(float64(last)/ratio)) + 1
	out := make([]float32, count)

	for i := range count {
		pos := float64(i) * ratio
		k := int(pos)
		x := float32(pos - float64(k))
		out[i] = utils.CubicInterpolate(at(k-1), at(k), at(k+1), at(k+2), x)
	}

	return out, nil
}

// lowPass runs y[n] = a*x[n] + (1-a)*y[n-1], seeded with the first sample.
func lowPass(in []float32, a float32) []float32 {
	out := make([]float32, len(in))
	prev := in[0]
	for i, x := range in {
		prev = a*x + (1-a)*prev
		out[i] = prev
	}
	return out
}
