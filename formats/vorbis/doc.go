// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis input for the prepare stage using
// github.com/jfreymuth/oggvorbis.
//
// The decoder already produces float32 samples in [-1,1], so the Source
// hands them through unchanged, interleaved, at the stream's own rate and
// channel count.
package vorbis
