// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"
)

// Header is a parsed and validated profile header.
type Header struct {
	ChunkID       string
	ChunkSize     uint32
	Format        string
	Subchunk1ID   string
	Subchunk1Size uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Subchunk2ID   string
	Subchunk2Size uint32

	fields []FieldValue
}

// Fields returns the fields in the order they were read.
func (h *Header) Fields() []FieldValue { return h.fields }

// NumSamples is the number of whole blocks in the data chunk.
func (h *Header) NumSamples() int {
	if h.BlockAlign == 0 {
		return 0
	}
	return int(h.Subchunk2Size / uint32(h.BlockAlign))
}

func (h *Header) set(f FieldValue) {
	h.fields = append(h.fields, f)

	v := f.Value
	switch f.Spec.Name {
	case FieldChunkID:
		h.ChunkID = v.Text
	case FieldChunkSize:
		h.ChunkSize = uint32(v.Uint)
	case FieldFormat:
		h.Format = v.Text
	case FieldSubchunk1ID:
		h.Subchunk1ID = v.Text
	case FieldSubchunk1Size:
		h.Subchunk1Size = uint32(v.Uint)
	case FieldAudioFormat:
		h.AudioFormat = uint16(v.Uint)
	case FieldNumChannels:
		h.NumChannels = uint16(v.Uint)
	case FieldSampleRate:
		h.SampleRate = uint32(v.Uint)
	case FieldByteRate:
		h.ByteRate = uint32(v.Uint)
	case FieldBlockAlign:
		h.BlockAlign = uint16(v.Uint)
	case FieldBitsPerSample:
		h.BitsPerSample = uint16(v.Uint)
	case FieldSubchunk2ID:
		h.Subchunk2ID = v.Text
	case FieldSubchunk2Size:
		h.Subchunk2Size = uint32(v.Uint)
	}
}

// Parser reads a WAV header field by field and checks it against Profile.
type Parser struct {
	Profile Profile

	// OnField, when set, is called after each field is read and validated.
	OnField func(FieldValue)
}

// Parse reads the header groups in order. It stops at the first field
// that fails to decode or differs from the profile; no further bytes are
// consumed after that field.
func (p Parser) Parse(r io.Reader) (*Header, error) {
	h := &Header{}

	for _, group := range p.Profile.Groups() {
		for _, spec := range group {
			fv, err := ReadField(r, spec)
			if err != nil {
				return nil, err
			}

			if spec.Validated() && !fv.Value.Equal(spec.Expected) {
				return nil, &HeaderMismatchError{
					Field:    spec.Name,
					Expected: spec.Expected,
					Found:    fv.Value,
				}
			}

			h.set(fv)
			if p.OnField != nil {
				p.OnField(fv)
			}
		}
	}

	return h, nil
}

// Parse is shorthand for Parser{Profile: profile}.Parse(r).
func Parse(r io.Reader, profile Profile) (*Header, error) {
	return Parser{Profile: profile}.Parse(r)
}
