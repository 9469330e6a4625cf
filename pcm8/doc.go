// SPDX-License-Identifier: EPL-2.0

// Package pcm8 turns signed 16-bit PCM into volume-normalized 8-bit
// unsigned PCM for PWM playback.
//
// Requantize makes two passes. The first finds the minimum and maximum
// sample. The second rescales linearly so the minimum becomes 0 and the
// maximum 255, rounding down. Quiet recordings are stretched to the full
// PWM duty range on the way.
package pcm8
