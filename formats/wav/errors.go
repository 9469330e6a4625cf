// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
)

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrUnknownEndianness    = errors.New("unknown endianness")

	// ErrDecode is matched by every *DecodeError.
	ErrDecode = errors.New("field decode failed")
	// ErrHeaderMismatch is matched by every *HeaderMismatchError.
	ErrHeaderMismatch = errors.New("header field mismatch")
	// ErrTruncatedData is matched by every *TruncatedDataError.
	ErrTruncatedData = errors.New("sample data truncated")
)

// DecodeError reports a field whose bytes could not be read or decoded.
type DecodeError struct {
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("decode: %v", e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// HeaderMismatchError reports the first header field that differs from
// the profile being enforced.
type HeaderMismatchError struct {
	Field    string
	Expected Value
	Found    Value
}

func (e *HeaderMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %s, found %s", e.Field, e.Expected, e.Found)
}

func (e *HeaderMismatchError) Is(target error) bool { return target == ErrHeaderMismatch }

// Diagnostic renders the mismatch the way it is shown to the user.
func (e *HeaderMismatchError) Diagnostic() string {
	return fmt.Sprintf("%s: mismatch!\n\tExpected: %s\n\tFound: %s", e.Field, e.Expected, e.Found)
}

// TruncatedDataError reports a data chunk that ended before the size
// declared by Subchunk2Size.
type TruncatedDataError struct {
	Block int // zero based index of the short block
	Want  int // bytes expected for the block
	Got   int // bytes actually read
}

func (e *TruncatedDataError) Error() string {
	return fmt.Sprintf("sample data truncated at block %d: read %d of %d bytes", e.Block, e.Got, e.Want)
}

func (e *TruncatedDataError) Is(target error) bool { return target == ErrTruncatedData }
