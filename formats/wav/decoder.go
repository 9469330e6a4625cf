// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/wavembed/audio"
)

// Decoder opens any integer PCM WAV file as an audio.Source, whatever its
// rate, channel count or bit depth. It feeds the prepare stage; the
// strict profile check lives in Parse.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := audio.Seekable(r)
	if err != nil {
		return nil, err
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM {
		return nil, fmt.Errorf("%w: audio format %d", ErrUnsupportedWavLayout, dec.WavAudioFormat)
	}

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d bits per sample", ErrUnsupportedWavLayout, dec.BitDepth)
	}

	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, fmt.Errorf("%w: %d channels at %d Hz", ErrUnsupportedWavLayout, dec.NumChans, dec.SampleRate)
	}

	rate, chans, depth := int(dec.SampleRate), int(dec.NumChans), int(dec.BitDepth)
	if depth == 8 {
		// 8-bit WAV samples are unsigned.
		return audio.NewUnsignedPCMSource(dec, rate, chans, depth), nil
	}
	return audio.NewPCMSource(dec, rate, chans, depth), nil
}
