// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/wavembed/audio"
)

// mockAiffReader serves canned integer PCM the way aiff.Decoder does.
type mockAiffReader struct {
	samples []int
}

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if len(m.samples) == 0 {
		return 0, io.EOF
	}
	n := copy(buf.Data, m.samples)
	m.samples = m.samples[n:]
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for name, data := range map[string][]byte{
		"garbage": []byte("This is not AIFF data"),
		"empty":   {},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(data))
			if !errors.Is(err, ErrNotAiffFile) {
				t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
			}
		})
	}
}

func TestNewSource_Layout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rate     int
		channels int
		depth    int
		wantErr  bool
	}{
		{"16-bit stereo", 44100, 2, 16, false},
		{"8-bit mono", 8000, 1, 8, false},
		{"24-bit", 48000, 2, 24, false},
		{"12-bit", 8000, 1, 12, true},
		{"no channels", 8000, 0, 16, true},
		{"no rate", 0, 1, 16, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := newSource(&mockAiffReader{}, tt.rate, tt.channels, tt.depth)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedAiffLayout) {
					t.Errorf("newSource() error = %v, want ErrUnsupportedAiffLayout", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("newSource() error = %v", err)
			}
			if src.SampleRate() != tt.rate || src.Channels() != tt.channels {
				t.Errorf("source = %d Hz x%d, want %d Hz x%d",
					src.SampleRate(), src.Channels(), tt.rate, tt.channels)
			}
		})
	}
}

func TestNewSource_ReadAll(t *testing.T) {
	t.Parallel()

	src, err := newSource(&mockAiffReader{samples: []int{0, 16384, -16384, -32768}}, 8000, 1, 16)
	if err != nil {
		t.Fatalf("newSource() error = %v", err)
	}

	got, err := audio.ReadAll(src, 3)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	want := []float32{0, 0.5, -0.5, -1}
	if len(got) != len(want) {
		t.Fatalf("ReadAll() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}
