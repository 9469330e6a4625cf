// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	goaudio "github.com/go-audio/audio"
)

// PCMReader is the part of the go-audio wav and aiff decoders a
// PCMSource needs.
type PCMReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// PCMSource adapts a go-audio integer PCM decoder to Source.
type PCMSource struct {
	dec        PCMReader
	sampleRate int
	channels   int
	scale      float32
	offset     int
	intBuf     *goaudio.IntBuffer
}

// NewPCMSource wraps dec. bitDepth is used to normalize integer samples.
func NewPCMSource(dec PCMReader, sampleRate, channels, bitDepth int) *PCMSource {
	return &PCMSource{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		scale:      fullScale(bitDepth),
	}
}

// NewUnsignedPCMSource is NewPCMSource for decoders that return samples
// biased to unsigned, such as 8-bit WAV from go-audio/wav, which yields
// 0..255 with silence at 128.
func NewUnsignedPCMSource(dec PCMReader, sampleRate, channels, bitDepth int) *PCMSource {
	s := NewPCMSource(dec, sampleRate, channels, bitDepth)
	s.offset = int(s.scale)
	return s
}

func fullScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

func (s *PCMSource) SampleRate() int { return s.sampleRate }
func (s *PCMSource) Channels() int   { return s.channels }
func (s *PCMSource) Close() error    { return nil }

func (s *PCMSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data: make([]int, len(dst)),
			Format: &goaudio.Format{
				NumChannels: s.channels,
				SampleRate:  s.sampleRate,
			},
		}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	for i := range n {
		dst[i] = float32(s.intBuf.Data[i]-s.offset) / s.scale
	}

	if n < len(dst) && err == nil {
		return n, io.EOF
	}
	return n, err
}
