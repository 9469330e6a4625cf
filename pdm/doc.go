// SPDX-License-Identifier: EPL-2.0

// Package pdm encodes 16-bit PCM as a single-bit pulse density stream
// with a first order delta-sigma modulator.
//
// Each signed sample is biased into [0, 0xFFFF] and added to a running
// error. When the error goes above 0xFFFF a 1 is emitted and exactly
// 0xFFFF is taken off; otherwise a 0 is emitted. Over any window the share
// of 1 bits follows the mean amplitude of the input. The carried error
// pushes quantization noise up out of the audible band.
//
// Bits are packed 16 to a uint16, first sample in bit 0. A final partial
// word is shifted down so its first sample also sits in bit 0.
//
//	words, err := pdm.Modulate(samples)
//
// Demodulate turns a stream back into PCM with a moving average, for
// previewing what the board will sound like.
package pdm
