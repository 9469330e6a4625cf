// SPDX-License-Identifier: EPL-2.0

package audio

// Downmix averages interleaved frames into one channel. A trailing
// partial frame is dropped. Mono input is returned as is.
func Downmix(interleaved []float32, channels int) ([]float32, error) {
	if channels < 1 {
		return nil, ErrInvalidChannels
	}
	if channels == 1 {
		return interleaved, nil
	}

	frames := len(interleaved) / channels
	out := make([]float32, frames)
	inv := float32(1) / float32(channels)

	if channels == 2 {
		for f := range frames {
			out[f] = (interleaved[2*f] + interleaved[2*f+1]) * 0.5
		}
		return out, nil
	}

	for f := range frames {
		var sum float32
		base := f * channels
		for c := range channels {
			sum += interleaved[base+c]
		}
		out[f] = sum * inv
	}

	return out, nil
}
