// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// WritePreview writes samples as a plain mono 16-bit WAV for listening to
// what the firmware will play back. Unlike WriteWAV16 the header is
// derived by go-audio, so its ByteRate is always rate*2.
func WritePreview(ws io.WriteSeeker, sampleRate int, samples []int16) error {
	enc := gowav.NewEncoder(ws, sampleRate, 16, 1, formatPCM)

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing preview samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing preview: %w", err)
	}

	return nil
}
