// SPDX-License-Identifier: EPL-2.0

package pdm

import (
	"errors"
	"math"
	"math/bits"
	"testing"
)

func constant(n int, s int16) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = s
	}
	return out
}

func TestUnsigned_Bijection(t *testing.T) {
	t.Parallel()

	seen := make([]bool, FullScale+1)
	for s := math.MinInt16; s <= math.MaxInt16; s++ {
		u := Unsigned(int16(s))
		if u < 0 || u > FullScale {
			t.Fatalf("Unsigned(%d) = %d outside [0, %d]", s, u, FullScale)
		}
		if seen[u] {
			t.Fatalf("Unsigned(%d) = %d hit twice", s, u)
		}
		seen[u] = true
	}
}

func TestStep_ErrorStaysBounded(t *testing.T) {
	t.Parallel()

	var m Modulator
	seed := uint32(1)
	for i := range 100000 {
		seed = seed*1664525 + 1013904223
		u := int(seed>>16) & FullScale
		if i%7 == 0 {
			u = FullScale
		}

		if _, err := m.Step(u); err != nil {
			t.Fatalf("Step(%d) error = %v", u, err)
		}
		st := m.State()
		if st.Error < 0 || st.Error > FullScale {
			t.Fatalf("step %d: error %d outside [0, %d]", i, st.Error, FullScale)
		}
		if st.Bits < 0 || st.Bits >= WordBits {
			t.Fatalf("step %d: bits %d outside [0, %d)", i, st.Bits, WordBits)
		}
	}
}

func TestStep_Sequence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		u         int
		wantBit   bool
		wantError int
	}{
		{0x8000, false, 0x8000},
		{0x8000, true, 0x0001},
		{0xFFFF, true, 0x0001},
		{0x0000, false, 0x0001},
		{0xFFFE, false, 0xFFFF},
		{0x0001, true, 0x0001},
	}

	var m Modulator
	for i, tt := range tests {
		bit, err := m.Step(tt.u)
		if err != nil {
			t.Fatalf("Step(%#x) error = %v", tt.u, err)
		}
		if bit != tt.wantBit {
			t.Errorf("step %d: bit = %v, want %v", i, bit, tt.wantBit)
		}
		if got := m.State().Error; got != tt.wantError {
			t.Errorf("step %d: error = %#x, want %#x", i, got, tt.wantError)
		}
	}

	// Bits 0, 1, 1, 0, 0, 1 end up in bit 10 through bit 15.
	if got, want := m.State().Word, uint16(0b100110<<10); got != want {
		t.Errorf("word = %#016b, want %#016b", got, want)
	}
}

func TestStep_RangeError(t *testing.T) {
	t.Parallel()

	for _, u := range []int{-1, FullScale + 1, 1 << 20} {
		var m Modulator
		_, _ = m.Step(5)

		_, err := m.Step(u)

		var re *RangeError
		if !errors.As(err, &re) {
			t.Fatalf("Step(%d) error = %v, want *RangeError", u, err)
		}
		if !errors.Is(err, ErrSampleRange) {
			t.Error("RangeError does not match ErrSampleRange")
		}
		if re.Index != 1 || re.Value != u {
			t.Errorf("RangeError = %+v, want index 1 value %d", re, u)
		}
		if st := m.State(); st.Bits != 1 || st.Error != 5 {
			t.Errorf("state changed by a rejected sample: %+v", st)
		}
	}
}

func TestModulate_FullScale(t *testing.T) {
	t.Parallel()

	// The first sample only fills the error up to FullScale, which is not
	// above the threshold; every sample after that emits a 1.
	words, err := Modulate(constant(64, math.MaxInt16))
	if err != nil {
		t.Fatalf("Modulate() error = %v", err)
	}
	if len(words) != 4 {
		t.Fatalf("len(words) = %d, want 4", len(words))
	}
	if words[0] != 0xFFFE {
		t.Errorf("words[0] = %#04x, want 0xfffe", words[0])
	}
	for i, w := range words[1:] {
		if w != 0xFFFF {
			t.Errorf("words[%d] = %#04x, want 0xffff", i+1, w)
		}
	}
}

func TestModulate_Silence(t *testing.T) {
	t.Parallel()

	words, err := Modulate(constant(40, math.MinInt16))
	if err != nil {
		t.Fatalf("Modulate() error = %v", err)
	}
	if len(words) != 3 {
		t.Fatalf("len(words) = %d, want 3", len(words))
	}
	for i, w := range words {
		if w != 0 {
			t.Errorf("words[%d] = %#04x, want 0", i, w)
		}
	}
}

func TestModulate_MidScaleAlternates(t *testing.T) {
	t.Parallel()

	// u = 0x8000 is just over half scale: bits alternate 0, 1, 0, 1...
	words, err := Modulate(constant(16, 0))
	if err != nil {
		t.Fatalf("Modulate() error = %v", err)
	}
	if len(words) != 1 || words[0] != 0xAAAA {
		t.Errorf("Modulate() = %#04x, want [0xaaaa]", words)
	}
}

func TestModulate_WordPacking(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		samples   int
		wantWords int
		lastShift int
	}{
		{"empty", 0, 0, 0},
		{"one sample", 1, 1, 15},
		{"exactly one word", 16, 1, 0},
		{"one word and one sample", 17, 2, 15},
		{"two words less one", 31, 2, 1},
		{"three words", 48, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			words, err := Modulate(constant(tt.samples, math.MaxInt16))
			if err != nil {
				t.Fatalf("Modulate() error = %v", err)
			}
			if len(words) != tt.wantWords {
				t.Fatalf("len(words) = %d, want %d", len(words), tt.wantWords)
			}
			if tt.wantWords == 0 {
				return
			}

			// Everything above the contributed bits must be clear.
			last := words[len(words)-1]
			if tt.lastShift > 0 && last>>(WordBits-tt.lastShift) != 0 {
				t.Errorf("last word %#016b has bits above position %d", last, WordBits-tt.lastShift)
			}
		})
	}
}

func TestModulate_PartialWordShift(t *testing.T) {
	t.Parallel()

	// 17 samples: 16 fill the first word, the 17th is emitted as a 1 and
	// shifted down by 15 places into bit 0.
	words, err := Modulate(constant(17, math.MaxInt16))
	if err != nil {
		t.Fatalf("Modulate() error = %v", err)
	}
	if len(words) != 2 || words[1] != 0x0001 {
		t.Errorf("Modulate() = %#04x, want second word 0x0001", words)
	}
}

func TestModulate_DensityTracksAmplitude(t *testing.T) {
	t.Parallel()

	for _, level := range []int16{-32768, -24576, -16384, -8192, 0, 8192, 16384, 24576, 32767} {
		const n = 16 * 256

		words, err := Modulate(constant(n, level))
		if err != nil {
			t.Fatalf("Modulate() error = %v", err)
		}

		ones := 0
		for _, w := range words {
			ones += bits.OnesCount16(w)
		}

		got := float64(ones) / n
		want := float64(Unsigned(level)) / FullScale
		if math.Abs(got-want) > 2.0/n {
			t.Errorf("level %d: density %.5f, want %.5f", level, got, want)
		}
	}
}

func TestModulate_DensityFollowsTone(t *testing.T) {
	t.Parallel()

	// 250 Hz at 8 kHz: 32 samples per period, two words per period.
	const periods = 64
	samples := make([]int16, 32*periods)
	for i := range samples {
		samples[i] = int16(30000 * math.Sin(2*math.Pi*float64(i)/32))
	}

	words, err := Modulate(samples)
	if err != nil {
		t.Fatalf("Modulate() error = %v", err)
	}

	// Compare every 16-sample window's density with its mean amplitude.
	for w, word := range words {
		var sum float64
		for _, s := range samples[w*16 : w*16+16] {
			sum += float64(Unsigned(s))
		}
		want := sum / 16 / FullScale
		got := float64(bits.OnesCount16(word)) / 16
		if math.Abs(got-want) > 2.0/16 {
			t.Errorf("word %d: density %.3f, mean amplitude %.3f", w, got, want)
		}
	}
}

func TestModulator_Streaming(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 1000)
	for i := range samples {
		samples[i] = int16(i*97 - 30000)
	}

	whole, err := Modulate(samples)
	if err != nil {
		t.Fatalf("Modulate() error = %v", err)
	}

	m := NewModulator(0)
	for i := 0; i < len(samples); i += 37 {
		if err := m.Write(samples[i:min(i+37, len(samples))]); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}
	parts := m.Flush()

	if len(parts) != len(whole) {
		t.Fatalf("streamed %d words, whole %d", len(parts), len(whole))
	}
	for i := range whole {
		if parts[i] != whole[i] {
			t.Fatalf("word %d: streamed %#04x, whole %#04x", i, parts[i], whole[i])
		}
	}
}

func BenchmarkModulate(b *testing.B) {
	samples := make([]int16, 8000)
	for i := range samples {
		samples[i] = int16(20000 * math.Sin(float64(i)*0.1))
	}

	b.ReportAllocs()

	for b.Loop() {
		_, _ = Modulate(samples)
	}
}
