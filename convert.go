// SPDX-License-Identifier: EPL-2.0

package wavembed

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ik5/wavembed/export/carray"
	"github.com/ik5/wavembed/export/wavetext"
	"github.com/ik5/wavembed/formats/wav"
	"github.com/ik5/wavembed/pcm8"
	"github.com/ik5/wavembed/pdm"
)

var (
	ErrUnknownMode   = errors.New("unknown output mode")
	ErrInvalidWindow = errors.New("preview window must be positive")
)

// Mode selects the encoding applied to the extracted samples.
type Mode int

const (
	ModePDM Mode = iota
	ModePCM8
)

// DefaultPreviewWindow is the moving-average length, in bits, used to
// rebuild PCM from a PDM stream.
const DefaultPreviewWindow = 16

func (m Mode) String() string {
	switch m {
	case ModePDM:
		return "pdm"
	case ModePCM8:
		return "pcm8"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Profile is the default header profile for m. PDM input carries
// ByteRate 32000, PCM8 input the computed 16000.
func (m Mode) Profile() wav.Profile {
	if m == ModePDM {
		return wav.PDMProfile()
	}
	return wav.DefaultProfile()
}

// ParseMode accepts the names printed by Mode.String, in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "pdm":
		return ModePDM, nil
	case "pcm8", "pcm":
		return ModePCM8, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

type Options struct {
	Mode Mode
	// Profile is the header layout to enforce; the zero value means
	// Mode.Profile.
	Profile wav.Profile

	// OnField is called for every header field accepted by the parser.
	OnField func(wav.FieldValue)

	// PreviewWindow is the PDM demodulation window; zero means
	// DefaultPreviewWindow.
	PreviewWindow int
}

// Result is a finished conversion. Words is set for ModePDM and Bytes for
// ModePCM8.
type Result struct {
	Mode    Mode
	Header  *wav.Header
	Samples []int16
	Words   []uint16
	Bytes   []uint8

	window int
}

// Convert parses a profile WAV from r, extracts its samples and encodes
// them in opts.Mode. It stops at the first error.
func Convert(r io.Reader, opts Options) (*Result, error) {
	switch opts.Mode {
	case ModePDM, ModePCM8:
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, opts.Mode)
	}

	profile := opts.Profile
	if profile == (wav.Profile{}) {
		profile = opts.Mode.Profile()
	}

	window := opts.PreviewWindow
	if window == 0 {
		window = DefaultPreviewWindow
	}
	if window < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWindow, window)
	}

	h, err := wav.Parser{Profile: profile, OnField: opts.OnField}.Parse(r)
	if err != nil {
		return nil, err
	}

	samples, err := wav.Extract(r, h)
	if err != nil {
		return nil, err
	}

	res := &Result{Mode: opts.Mode, Header: h, Samples: samples, window: window}

	switch opts.Mode {
	case ModePDM:
		if res.Words, err = pdm.Modulate(samples); err != nil {
			return nil, fmt.Errorf("pdm: %w", err)
		}
	case ModePCM8:
		res.Bytes = pcm8.Requantize(samples)
	}

	return res, nil
}

// Preview rebuilds 16-bit PCM from the encoded output, at the header
// sample rate, so the result can be listened to.
func (r *Result) Preview() []int16 {
	if r.Mode == ModePCM8 {
		return pcm8.Expand(r.Bytes)
	}

	// The window is checked in Convert.
	out, _ := pdm.Demodulate(r.Words, len(r.Samples), r.window)
	return out
}

// Decl is the preset array declaration for the result's mode.
func (r *Result) Decl(name, sizeName string) carray.Decl {
	if r.Mode == ModePCM8 {
		return carray.PCM(name, sizeName)
	}
	return carray.PDM(name, sizeName)
}

// WriteArray writes the encoded output as a C array.
func (r *Result) WriteArray(w io.Writer, decl carray.Decl) error {
	if r.Mode == ModePCM8 {
		return carray.Write(w, decl, r.Bytes)
	}
	return carray.Write(w, decl, r.Words)
}

// WriteWaveText writes the text waveform of the output. PDM output is
// drawn from its demodulated preview.
func (r *Result) WriteWaveText(w io.Writer) error {
	if r.Mode == ModePCM8 {
		return wavetext.Write(w, r.Bytes)
	}
	return wavetext.Write(w, pcm8.Requantize(r.Preview()))
}
