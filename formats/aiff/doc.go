// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF input for the prepare stage using
// github.com/go-audio/aiff.
//
// Integer PCM at 8, 16, 24 or 32 bits is accepted at any rate and channel
// count. Samples are normalized to [-1,1] by audio.PCMSource.
package aiff
