// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
)

// WAV describes a canonical 44-byte header. Every field can be set to an
// off-profile value to exercise validation.
type WAV struct {
	ChunkID       string
	ChunkSize     uint32 // 0 means 36 + data size
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
	Subchunk2Size uint32 // 0 means the payload length
}

// ProfileWAV returns the mono 16-bit 8 kHz header with the given ByteRate.
func ProfileWAV(byteRate uint32) WAV {
	return WAV{
		ChunkID:       "RIFF",
		Format:        "WAVE",
		Subchunk1ID:   "fmt ",
		Subchunk1Size: 16,
		AudioFormat:   1,
		NumChannels:   1,
		SampleRate:    8000,
		ByteRate:      byteRate,
		BlockAlign:    2,
		BitsPerSample: 16,
		Subchunk2ID:   "data",
	}
}

// Header renders only the header for a payload of dataSize bytes.
func (w WAV) Header(dataSize int) []byte {
	buf := new(bytes.Buffer)

	chunkSize := w.ChunkSize
	if chunkSize == 0 {
		chunkSize = 36 + uint32(dataSize)
	}
	sub2 := w.Subchunk2Size
	if sub2 == 0 {
		sub2 = uint32(dataSize)
	}

	buf.WriteString(w.ChunkID)
	binary.Write(buf, binary.LittleEndian, chunkSize)
	buf.WriteString(w.Format)
	buf.WriteString(w.Subchunk1ID)
	binary.Write(buf, binary.LittleEndian, w.Subchunk1Size)
	binary.Write(buf, binary.LittleEndian, w.AudioFormat)
	binary.Write(buf, binary.LittleEndian, w.NumChannels)
	binary.Write(buf, binary.LittleEndian, w.SampleRate)
	binary.Write(buf, binary.LittleEndian, w.ByteRate)
	binary.Write(buf, binary.LittleEndian, w.BlockAlign)
	binary.Write(buf, binary.LittleEndian, w.BitsPerSample)
	buf.WriteString(w.Subchunk2ID)
	binary.Write(buf, binary.LittleEndian, sub2)

	return buf.Bytes()
}

// Bytes renders the header followed by samples as 16-bit little endian.
func (w WAV) Bytes(samples []int16) []byte {
	buf := bytes.NewBuffer(w.Header(len(samples) * 2))
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}
	return buf.Bytes()
}
