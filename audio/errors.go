// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidRate       = errors.New("sample rate must be positive")
	ErrInvalidChannels   = errors.New("channel count must be positive")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// UnsupportedFormatError is returned by Registry.Lookup.
type UnsupportedFormatError struct {
	Format string
	Known  []string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format %q (known: %s)", e.Format, strings.Join(e.Known, ", "))
}

func (e *UnsupportedFormatError) Is(target error) bool { return target == ErrUnsupportedFormat }
