// SPDX-License-Identifier: EPL-2.0

package pdm

// Bits unpacks the first n bits of words, sample order first.
func Bits(words []uint16, n int) []bool {
	n = min(n, len(words)*WordBits)
	out := make([]bool, n)
	for i := range n {
		out[i] = words[i/WordBits]>>(i%WordBits)&1 == 1
	}
	return out
}

// Demodulate rebuilds n signed samples from a bitstream with a moving
// average of window bits, the same low-pass a speaker and RC filter
// apply on the board.
func Demodulate(words []uint16, n, window int) ([]int16, error) {
	if window <= 0 {
		return nil, ErrInvalidWindow
	}

	bits := Bits(words, n)
	out := make([]int16, len(bits))

	ones := 0
	for i, b := range bits {
		if b {
			ones++
		}
		if i >= window && bits[i-window] {
			ones--
		}

		span := min(i+1, window)
		u := ones * FullScale / span
		out[i] = int16(u - SignBias)
	}

	return out, nil
}
