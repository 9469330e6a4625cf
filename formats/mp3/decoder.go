// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/wavembed/audio"
	"github.com/ik5/wavembed/utils"
)

var ErrNotMP3File = errors.New("not an MP3 stream")

// go-mp3 always decodes to interleaved stereo 16-bit little-endian.
const (
	channels       = 2
	bytesPerSample = 2
)

// mp3Reader is the part of gomp3.Decoder the source reads from.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	// bytes of a sample split across two decoder reads
	pending []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	size := len(dst) * bytesPerSample
	if cap(s.buf) < size {
		s.buf = make([]byte, size)
	}

	var err error
	for len(s.pending) < bytesPerSample && err == nil {
		var n int
		n, err = s.dec.Read(s.buf[:size-len(s.pending)])
		if n == 0 && err == nil {
			break
		}
		s.pending = append(s.pending, s.buf[:n]...)
	}

	samples := len(s.pending) / bytesPerSample
	for i := range samples {
		dst[i] = utils.Int16ToFloat32(int16(binary.LittleEndian.Uint16(s.pending[i*2:])))
	}
	s.pending = append(s.pending[:0], s.pending[samples*bytesPerSample:]...)

	if samples == 0 && err == nil {
		return 0, io.EOF
	}
	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
