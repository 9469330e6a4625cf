// SPDX-License-Identifier: EPL-2.0

// Package audio holds the decode side of the prepare stage: the Source
// and Decoder interfaces, an extension keyed Registry, and the buffer
// operations that turn any decoded input into mono samples at the
// profile rate.
//
// Samples are float32 in [-1.0, 1.0]. A typical pass:
//
//	all, err := audio.ReadAll(src, 4096)
//	mono, err := audio.Downmix(all, src.Channels())
//	out, err := audio.Resample(mono, src.SampleRate(), 8000)
//
// Resample uses Catmull-Rom cubic interpolation and a one-pole low-pass
// filter when downsampling. The whole input is held in memory; inputs
// for firmware playback are seconds long, not hours.
//
// PCMSource adapts the go-audio wav and aiff decoders to Source.
package audio
