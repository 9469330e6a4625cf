// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/wavembed/audio"
)

var (
	ErrNotAiffFile           = errors.New("not an AIFF file")
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := audio.Seekable(r)
	if err != nil {
		return nil, err
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()
	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	return newSource(dec, format.SampleRate, format.NumChannels, int(dec.BitDepth))
}

func newSource(dec audio.PCMReader, sampleRate, channels, bitDepth int) (audio.Source, error) {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d bits per sample", ErrUnsupportedAiffLayout, bitDepth)
	}

	if channels < 1 || sampleRate < 1 {
		return nil, fmt.Errorf("%w: %d channels at %d Hz", ErrUnsupportedAiffLayout, channels, sampleRate)
	}

	return audio.NewPCMSource(dec, sampleRate, channels, bitDepth), nil
}
