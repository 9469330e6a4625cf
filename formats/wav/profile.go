// SPDX-License-Identifier: EPL-2.0

package wav

// Header field names, in file order.
const (
	FieldChunkID       = "ChunkID"
	FieldChunkSize     = "ChunkSize"
	FieldFormat        = "Format"
	FieldSubchunk1ID   = "Subchunk1ID"
	FieldSubchunk1Size = "Subchunk1Size"
	FieldAudioFormat   = "AudioFormat"
	FieldNumChannels   = "NumChannels"
	FieldSampleRate    = "SampleRate"
	FieldByteRate      = "ByteRate"
	FieldBlockAlign    = "BlockAlign"
	FieldBitsPerSample = "BitsPerSample"
	FieldSubchunk2ID   = "Subchunk2ID"
	FieldSubchunk2Size = "Subchunk2Size"
)

const (
	tagRIFF = "RIFF"
	tagWAVE = "WAVE"
	tagFmt  = "fmt "
	tagData = "data"

	pcmFmtChunkSize = 16
	formatPCM       = 1
)

// Profile is the exact WAV layout the parser accepts.
//
// ByteRate is set on its own rather than derived from the other fields:
// some target clocks expect a value that is not
// SampleRate*NumChannels*BitsPerSample/8.
type Profile struct {
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// DefaultProfile is mono 16-bit PCM at 8 kHz with the computed ByteRate
// of 16000. 8-bit PCM output is converted from files in this profile.
func DefaultProfile() Profile {
	return Profile{
		AudioFormat:   formatPCM,
		NumChannels:   1,
		SampleRate:    8000,
		ByteRate:      16000,
		BlockAlign:    2,
		BitsPerSample: 16,
	}
}

// PDMProfile is DefaultProfile with ByteRate 32000, the value PDM
// source files carry for the board's playback clock.
func PDMProfile() Profile {
	return Profile{
		AudioFormat:   formatPCM,
		NumChannels:   1,
		SampleRate:    8000,
		ByteRate:      32000,
		BlockAlign:    2,
		BitsPerSample: 16,
	}
}

// Groups returns the header, fmt and data field groups in read order.
func (p Profile) Groups() [][]FieldSpec {
	header := []FieldSpec{
		{Name: FieldChunkID, Size: 4, Endian: BigEndian, Expected: Text(tagRIFF)},
		{Name: FieldChunkSize, Size: 4, Endian: LittleEndian},
		{Name: FieldFormat, Size: 4, Endian: BigEndian, Expected: Text(tagWAVE)},
	}

	fmtSub := []FieldSpec{
		{Name: FieldSubchunk1ID, Size: 4, Endian: BigEndian, Expected: Text(tagFmt)},
		{Name: FieldSubchunk1Size, Size: 4, Endian: LittleEndian, Expected: Uint(pcmFmtChunkSize)},
		{Name: FieldAudioFormat, Size: 2, Endian: LittleEndian, Expected: Uint(uint64(p.AudioFormat))},
		{Name: FieldNumChannels, Size: 2, Endian: LittleEndian, Expected: Uint(uint64(p.NumChannels))},
		{Name: FieldSampleRate, Size: 4, Endian: LittleEndian, Expected: Uint(uint64(p.SampleRate))},
		{Name: FieldByteRate, Size: 4, Endian: LittleEndian, Expected: Uint(uint64(p.ByteRate))},
		{Name: FieldBlockAlign, Size: 2, Endian: LittleEndian, Expected: Uint(uint64(p.BlockAlign))},
		{Name: FieldBitsPerSample, Size: 2, Endian: LittleEndian, Expected: Uint(uint64(p.BitsPerSample))},
	}

	dataSub := []FieldSpec{
		{Name: FieldSubchunk2ID, Size: 4, Endian: BigEndian, Expected: Text(tagData)},
		{Name: FieldSubchunk2Size, Size: 4, Endian: LittleEndian},
	}

	return [][]FieldSpec{header, fmtSub, dataSub}
}

// Fields returns every field spec in read order.
func (p Profile) Fields() []FieldSpec {
	var out []FieldSpec
	for _, g := range p.Groups() {
		out = append(out, g...)
	}
	return out
}

// HeaderSize is the number of bytes the profile header occupies.
func (p Profile) HeaderSize() int {
	n := 0
	for _, f := range p.Fields() {
		n += f.Size
	}
	return n
}
