// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"
)

// Endianness selects how a header field is decoded. Big endian fields
// are ASCII tags read as text, little endian fields are unsigned integers.
type Endianness uint8

const (
	BigEndian Endianness = iota + 1
	LittleEndian
)

func (e Endianness) String() string {
	switch e {
	case BigEndian:
		return "big"
	case LittleEndian:
		return "little"
	default:
		return "unknown"
	}
}

// Kind tells which member of a Value is set.
type Kind uint8

const (
	KindNone Kind = iota
	KindText
	KindUint
)

// Value is a decoded header field.
type Value struct {
	Kind Kind
	Text string
	Uint uint64
}

// Text returns a text value.
func Text(s string) Value { return Value{Kind: KindText, Text: s} }

// Uint returns an unsigned integer value.
func Uint(n uint64) Value { return Value{Kind: KindUint, Uint: n} }

// IsZero reports whether v carries no value.
func (v Value) IsZero() bool { return v.Kind == KindNone }

// Equal compares kind and content. Text never equals an integer.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindText:
		return v.Text == o.Text
	case KindUint:
		return v.Uint == o.Uint
	default:
		return true
	}
}

func (v Value) String() string {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindUint:
		return strconv.FormatUint(v.Uint, 10)
	default:
		return ""
	}
}

// FieldSpec describes one fixed-size header field. A zero Expected
// means the field is read but not validated.
type FieldSpec struct {
	Name     string
	Size     int
	Endian   Endianness
	Expected Value
}

// Validated reports whether the field has an expected value.
func (s FieldSpec) Validated() bool { return !s.Expected.IsZero() }

// FieldValue is a field as read from the stream.
type FieldValue struct {
	Spec  FieldSpec
	Raw   []byte
	Value Value
}

func (f FieldValue) String() string {
	return f.Spec.Name + ": " + f.Value.String()
}

// Decode turns a byte span into a Value according to e.
func Decode(b []byte, e Endianness) (Value, error) {
	switch e {
	case BigEndian:
		if !utf8.Valid(b) {
			return Value{}, &DecodeError{Err: fmt.Errorf("invalid UTF-8 in % x", b)}
		}
		return Text(string(b)), nil
	case LittleEndian:
		if len(b) == 0 || len(b) > 8 {
			return Value{}, &DecodeError{Err: fmt.Errorf("cannot decode %d byte integer", len(b))}
		}
		var n uint64
		for i := len(b) - 1; i >= 0; i-- {
			n = n<<8 | uint64(b[i])
		}
		return Uint(n), nil
	default:
		return Value{}, &DecodeError{Err: fmt.Errorf("%w: %d", ErrUnknownEndianness, e)}
	}
}

// ReadField reads exactly spec.Size bytes from r and decodes them.
// Expected values are not checked here.
func ReadField(r io.Reader, spec FieldSpec) (FieldValue, error) {
	raw := make([]byte, spec.Size)
	if _, err := io.ReadFull(r, raw); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return FieldValue{}, &DecodeError{Field: spec.Name, Err: err}
	}

	v, err := Decode(raw, spec.Endian)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.Field = spec.Name
		}
		return FieldValue{}, err
	}

	return FieldValue{Spec: spec, Raw: raw, Value: v}, nil
}
