// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"
)

// Extract reads the data chunk that follows h as little-endian signed
// samples, one per BlockAlign bytes. A trailing partial block, if the
// data size is not a multiple of BlockAlign, is left unread.
func Extract(r io.Reader, h *Header) ([]int16, error) {
	width := int(h.BlockAlign)
	if width < 1 || width > 2 {
		return nil, fmt.Errorf("%w: block align %d", ErrUnsupportedWavLayout, width)
	}

	count := h.NumSamples()
	samples := make([]int16, count)
	block := make([]byte, width)

	for i := range count {
		n, err := io.ReadFull(r, block)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, &TruncatedDataError{Block: i, Want: width, Got: n}
		}
		if err != nil {
			return nil, fmt.Errorf("reading block %d: %w", i, err)
		}
		samples[i] = int16(signExtend(block))
	}

	return samples, nil
}

// signExtend decodes b as a little-endian two's complement integer.
func signExtend(b []byte) int64 {
	var u uint64
	for i := len(b) - 1; i >= 0; i-- {
		u = u<<8 | uint64(b[i])
	}
	shift := 64 - 8*uint(len(b))
	return int64(u<<shift) >> shift
}
