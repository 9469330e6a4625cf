// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteWAV16 writes samples as a WAV file laid out exactly as profile
// describes, so that Parse with the same profile accepts it. The ByteRate
// stamped in the header is profile.ByteRate as given.
func WriteWAV16(w io.Writer, profile Profile, samples []int16) error {
	dataSize := uint32(len(samples) * 2)

	header, err := EncodeHeader(profile, dataSize)
	if err != nil {
		return err
	}

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	const chunkSize = 8192
	buf := make([]byte, min(len(samples), chunkSize)*2)

	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]
		out := buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(out[j*2:], uint16(s))
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// EncodeHeader renders the profile header for a data chunk of dataSize
// bytes. Fields without an expected value carry the RIFF and data sizes.
func EncodeHeader(profile Profile, dataSize uint32) ([]byte, error) {
	fields := profile.Fields()
	header := make([]byte, 0, profile.HeaderSize())

	for _, f := range fields {
		v := f.Expected
		switch f.Name {
		case FieldChunkSize:
			v = Uint(uint64(profile.HeaderSize()-8) + uint64(dataSize))
		case FieldSubchunk2Size:
			v = Uint(uint64(dataSize))
		}

		switch f.Endian {
		case BigEndian:
			if len(v.Text) != f.Size {
				return nil, fmt.Errorf("%w: tag %q for %s", ErrUnsupportedWavLayout, v.Text, f.Name)
			}
			header = append(header, v.Text...)
		case LittleEndian:
			for i := range f.Size {
				header = append(header, byte(v.Uint>>(8*i)))
			}
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownEndianness, f.Name)
		}
	}

	return header, nil
}
