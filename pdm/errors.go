// SPDX-License-Identifier: EPL-2.0

package pdm

import (
	"errors"
	"fmt"
)

var (
	// ErrSampleRange is matched by every *RangeError.
	ErrSampleRange   = errors.New("sample out of range")
	ErrInvalidWindow = errors.New("window must be positive")
)

// RangeError reports an unsigned-domain sample outside [0, FullScale].
type RangeError struct {
	Index int
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("sample %d out of range: %#x", e.Index, e.Value)
}

func (e *RangeError) Is(target error) bool { return target == ErrSampleRange }
