// SPDX-License-Identifier: EPL-2.0

package pdm

const (
	// FullScale is the largest unsigned-domain sample and the amount taken
	// off the running error for every 1 bit.
	FullScale = 0xFFFF
	// SignBias moves a signed 16-bit sample into [0, FullScale].
	SignBias = 0x8000
	// WordBits is the number of samples packed into one output word.
	WordBits = 16
)

// Unsigned maps a signed sample into the unsigned domain.
func Unsigned(s int16) int {
	return int(s) + SignBias
}

// State is the modulator state between two samples.
type State struct {
	// Error is the accumulated error. It stays within [0, FullScale]
	// after every step.
	Error int
	// Word is the output word being filled from the top bit down.
	Word uint16
	// Bits is how many samples Word holds, 0..15.
	Bits int
}

// Modulator is a first order delta-sigma encoder. The zero value is
// ready to use.
type Modulator struct {
	state State
	words []uint16
	n     int
}

// NewModulator returns a modulator with room for samples inputs.
func NewModulator(samples int) *Modulator {
	return &Modulator{words: make([]uint16, 0, (samples+WordBits-1)/WordBits)}
}

// State returns the current state.
func (m *Modulator) State() State { return m.state }

// Step feeds one unsigned-domain sample and reports the bit it produced.
func (m *Modulator) Step(u int) (bool, error) {
	if u < 0 || u > FullScale {
		return false, &RangeError{Index: m.n, Value: u}
	}
	m.n++

	s := &m.state
	s.Error += u
	s.Word >>= 1

	bit := s.Error > FullScale
	if bit {
		s.Word |= 1 << (WordBits - 1)
		s.Error -= FullScale
	}

	s.Bits++
	if s.Bits == WordBits {
		m.words = append(m.words, s.Word)
		s.Word = 0
		s.Bits = 0
	}

	return bit, nil
}

// Write feeds signed samples.
func (m *Modulator) Write(samples []int16) error {
	for _, s := range samples {
		if _, err := m.Step(Unsigned(s)); err != nil {
			return err
		}
	}
	return nil
}

// Flush appends a partly filled word, shifted down so its first sample
// sits in bit 0, and returns every word produced so far. The error is
// kept; only the word is reset.
func (m *Modulator) Flush() []uint16 {
	s := &m.state
	if s.Bits > 0 {
		m.words = append(m.words, s.Word>>(WordBits-s.Bits))
		s.Word = 0
		s.Bits = 0
	}
	return m.words
}

// Modulate encodes samples with a fresh modulator. Bit k of each word
// holds sample k of its group of 16.
func Modulate(samples []int16) ([]uint16, error) {
	m := NewModulator(len(samples))
	if err := m.Write(samples); err != nil {
		return nil, err
	}
	return m.Flush(), nil
}
