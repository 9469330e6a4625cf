// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 input for the prepare stage.
//
// Decoding is done by github.com/hajimehoshi/go-mp3, which always yields
// interleaved stereo 16-bit PCM. The Source returned by Decoder reports
// two channels and the stream's own sample rate; audio.Downmix and
// audio.Resample bring it to the profile.
//
//	f, _ := os.Open("voice.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	samples, err := wavembed.Prepare(src, wav.DefaultProfile())
package mp3
