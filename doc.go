// SPDX-License-Identifier: EPL-2.0

// Package wavembed turns short WAV clips into C arrays that firmware can
// play back from flash.
//
// The input must match a fixed profile, by default mono 16-bit PCM at
// 8 kHz with a ByteRate of 16000. The header is read field by field and
// checked against the profile, then the samples are encoded either as a
// pulse density bitstream (for a pin driven through an RC filter) or as
// unsigned 8-bit PCM (for a DAC or PWM).
//
//	f, _ := os.Open("clip.wav")
//	res, err := wavembed.Convert(f, wavembed.Options{
//	    Mode:    wavembed.ModePDM,
//	    Profile: wav.DefaultProfile(),
//	})
//	if err != nil {
//	    return err
//	}
//	err = res.WriteArray(out, res.Decl("wav_data", "wav_data_size"))
//
// # Preparing input
//
// Files in other layouts are brought to the profile with Prepare and
// wav.WriteWAV16. Any decoder from the formats packages can feed it:
//
//	src, _ := mp3.Decoder{}.Decode(f)
//	defer src.Close()
//	samples, err := wavembed.Prepare(src, wav.DefaultProfile())
//	err = wav.WriteWAV16(out, wav.DefaultProfile(), samples)
//
// # Previewing
//
// Result.Preview rebuilds 16-bit PCM from the encoded output. For PDM it
// applies a moving average the way the board's low-pass does, so the
// preview is close to what the speaker will play.
package wavembed
