// SPDX-License-Identifier: EPL-2.0

// Package wavetext renders 8-bit samples as a sideways text waveform,
// one line per sample, for eyeballing a conversion without a scope.
package wavetext

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Columns is the width of the plot area, in spaces, around the marker.
const Columns = 128

// Write emits one line per sample: the sample in hex, sample/2 spaces,
// a '*' marker, then Columns-sample/2 spaces. Both counts are truncated,
// so the trailing run is one short for odd samples.
func Write(w io.Writer, samples []uint8) error {
	bw := bufio.NewWriter(w)
	pad := strings.Repeat(" ", Columns)

	var num []byte
	for _, s := range samples {
		left := int(s) / 2
		right := Columns - (int(s)+1)/2

		num = strconv.AppendUint(num[:0], uint64(s), 16)
		bw.WriteString("0x")
		bw.Write(num)
		bw.WriteString(pad[:left])
		bw.WriteByte('*')
		bw.WriteString(pad[:right])
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing wave dump: %w", err)
	}
	return nil
}
