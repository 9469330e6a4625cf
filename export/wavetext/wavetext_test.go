// SPDX-License-Identifier: EPL-2.0

package wavetext

import (
	"bytes"
	"strings"
	"testing"
)

func TestWrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sample uint8
		prefix string
		left   int
	}{
		{sample: 0x00, prefix: "0x0", left: 0},
		{sample: 0x7f, prefix: "0x7f", left: 63},
		{sample: 0x80, prefix: "0x80", left: 64},
		{sample: 0xff, prefix: "0xff", left: 127},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			t.Parallel()

			buf := new(bytes.Buffer)
			if err := Write(buf, []uint8{tt.sample}); err != nil {
				t.Fatalf("Write() error = %v", err)
			}

			line, ok := strings.CutSuffix(buf.String(), "\n")
			if !ok {
				t.Fatalf("line %q is not newline terminated", buf.String())
			}

			rest, ok := strings.CutPrefix(line, tt.prefix)
			if !ok {
				t.Fatalf("line %q does not start with %q", line, tt.prefix)
			}

			if got := strings.IndexByte(rest, '*'); got != tt.left {
				t.Errorf("marker at column %d, want %d", got, tt.left)
			}
			if want := Columns + 1 - int(tt.sample)%2; len(rest) != want {
				t.Errorf("plot width = %d, want %d", len(rest), want)
			}
			if strings.Trim(rest, " *") != "" || strings.Count(rest, "*") != 1 {
				t.Errorf("plot %q has unexpected characters", rest)
			}
		})
	}
}

func TestWrite_LinePerSample(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := Write(buf, []uint8{1, 2, 3, 4, 5}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if got := strings.Count(buf.String(), "\n"); got != 5 {
		t.Errorf("lines = %d, want 5", got)
	}
}

func TestWrite_Empty(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := Write(buf, nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Write(nil) wrote %q", buf.String())
	}
}
