// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes the fixed WAV profile that firmware
// conversion accepts, and decodes arbitrary PCM WAV input for the
// prepare stage.
//
// # Profile parsing
//
// Parse reads the 13 header fields one at a time. Tags are read as text,
// integers as little endian. Each field is compared against the Profile
// as soon as it is read, and parsing stops at the first mismatch:
//
//	h, err := wav.Parse(f, wav.DefaultProfile())
//	var mismatch *wav.HeaderMismatchError
//	if errors.As(err, &mismatch) {
//	    fmt.Println(mismatch.Diagnostic())
//	}
//	samples, err := wav.Extract(f, h)
//
// The default profile is mono, 16-bit, 8000 Hz PCM with a ByteRate of
// 16000. PDMProfile is the same layout with a ByteRate of 32000, the
// value the PDM player is clocked against. ByteRate is a separate
// setting and is never derived from the other fields.
//
// # Errors
//
//   - *DecodeError (ErrDecode): short read or a tag that is not UTF-8
//   - *HeaderMismatchError (ErrHeaderMismatch): field differs from the profile
//   - *TruncatedDataError (ErrTruncatedData): data chunk shorter than declared
//
// # Writing
//
// WriteWAV16 writes a file in a given profile, including its ByteRate.
// WritePreview writes an ordinary WAV through go-audio for listening.
//
// # Generic decoding
//
// Decoder wraps github.com/go-audio/wav and returns an audio.Source for
// any integer PCM WAV file. It does not enforce the profile.
package wav
