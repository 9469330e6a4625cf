// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ReadAll drains src into a single interleaved slice. bufSize is the
// number of values requested per read and is rounded down to whole
// frames.
func ReadAll(src Source, bufSize int) ([]float32, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, ErrInvalidChannels
	}

	bufSize -= bufSize % channels
	if bufSize <= 0 {
		bufSize = channels * 1024
	}

	buf := make([]float32, bufSize)
	var out []float32

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}

		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
		if n == 0 {
			// A source that returns nothing without an error is treated as done.
			return out, nil
		}
	}
}

// Seekable returns r as an io.ReadSeeker, buffering it in memory when r
// cannot seek. The go-audio decoders need to seek.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}
	return bytes.NewReader(data), nil
}
