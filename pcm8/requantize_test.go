// SPDX-License-Identifier: EPL-2.0

package pcm8

import (
	"math"
	"slices"
	"testing"
)

func TestRequantize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []int16
		want []uint8
	}{
		{"floor of half step", []int16{-100, 0, 100}, []uint8{0, 127, 255}},
		{"full int16 range", []int16{math.MinInt16, 0, math.MaxInt16}, []uint8{0, 127, 255}},
		{"two values", []int16{5, 6, 5}, []uint8{0, 255, 0}},
		{"positive only", []int16{1000, 2000, 1500}, []uint8{0, 255, 127}},
		{"silence", []int16{0, 0, 0, 0}, []uint8{0, 0, 0, 0}},
		{"dc offset", []int16{-42, -42}, []uint8{0, 0}},
		{"single sample", []int16{1234}, []uint8{0}},
		{"empty", nil, []uint8{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Requantize(tt.in)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Requantize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRequantize_EndpointsAndMonotonic(t *testing.T) {
	t.Parallel()

	seed := uint32(7)
	in := make([]int16, 5000)
	for i := range in {
		seed = seed*1103515245 + 12345
		in[i] = int16(seed >> 16)
	}

	out := Requantize(in)

	if slices.Min(out) != 0 || slices.Max(out) != Span {
		t.Fatalf("output range = [%d, %d], want [0, 255]", slices.Min(out), slices.Max(out))
	}

	order := make([]int, len(in))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int { return int(in[a]) - int(in[b]) })
	for k := 1; k < len(order); k++ {
		if out[order[k]] < out[order[k-1]] {
			t.Fatalf("not monotonic: %d -> %d but %d -> %d",
				in[order[k-1]], out[order[k-1]], in[order[k]], out[order[k]])
		}
	}
}

func TestRange(t *testing.T) {
	t.Parallel()

	low, high := Range([]int16{3, -7, 12, 0})
	if low != -7 || high != 12 {
		t.Errorf("Range() = %d, %d, want -7, 12", low, high)
	}

	low, high = Range(nil)
	if low != 0 || high != 0 {
		t.Errorf("Range(nil) = %d, %d, want 0, 0", low, high)
	}
}

func TestExpand(t *testing.T) {
	t.Parallel()

	got := Expand([]uint8{0, 0x80, 0xFF})
	want := []int16{math.MinInt16, 0, 0x7F00}
	if !slices.Equal(got, want) {
		t.Errorf("Expand() = %v, want %v", got, want)
	}
}

func BenchmarkRequantize(b *testing.B) {
	in := make([]int16, 8000)
	for i := range in {
		in[i] = int16(20000 * math.Sin(float64(i)*0.05))
	}

	b.ReportAllocs()

	for b.Loop() {
		_ = Requantize(in)
	}
}
