// SPDX-License-Identifier: EPL-2.0

// Package carray writes numeric sequences as C array literals for
// inclusion in a firmware build.
package carray

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/samber/lo"
)

var ErrInvalidDecl = errors.New("invalid array declaration")

// Unsigned is the set of element types that can be exported.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32
}

// Decl names the array and its length constant.
type Decl struct {
	Name     string
	SizeName string
	ElemType string
	PerLine  int
}

// PDM is the declaration for packed 16-bit PDM words.
func PDM(name, sizeName string) Decl {
	return Decl{Name: name, SizeName: sizeName, ElemType: "unsigned int", PerLine: 8}
}

// PCM is the declaration for 8-bit PCM samples.
func PCM(name, sizeName string) Decl {
	return Decl{Name: name, SizeName: sizeName, ElemType: "unsigned char", PerLine: 16}
}

func (d Decl) validate() error {
	switch {
	case d.Name == "" || d.SizeName == "":
		return fmt.Errorf("%w: empty name", ErrInvalidDecl)
	case d.ElemType == "":
		return fmt.Errorf("%w: empty element type", ErrInvalidDecl)
	case d.PerLine <= 0:
		return fmt.Errorf("%w: %d values per line", ErrInvalidDecl, d.PerLine)
	}
	return nil
}

// Write emits the size constant and the array. Every value is followed
// by ", ", and a 0 sentinel closes the array so firmware can walk it
// without the size:
//
//	const unsigned int wav_data_size=3;
//	const unsigned char wav_data[]={
//	0x0, 0x7f, 0xff,
//	0};
func Write[T Unsigned](w io.Writer, decl Decl, values []T) error {
	if err := decl.validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "const unsigned int %s=%d;\n", decl.SizeName, len(values))
	fmt.Fprintf(bw, "const %s %s[]={\n", decl.ElemType, decl.Name)

	var num []byte
	for _, line := range lo.Chunk(values, decl.PerLine) {
		for _, v := range line {
			num = strconv.AppendUint(num[:0], uint64(v), 16)
			bw.WriteString("0x")
			bw.Write(num)
			bw.WriteString(", ")
		}
		bw.WriteByte('\n')
	}

	bw.WriteString("0};\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing array %s: %w", decl.Name, err)
	}
	return nil
}
