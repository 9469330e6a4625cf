// SPDX-License-Identifier: EPL-2.0

package wavembed

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/ik5/wavembed/audio"
	"github.com/ik5/wavembed/formats/wav"
	"github.com/ik5/wavembed/utils"
)

var ErrUnsupportedProfile = errors.New("prepare only produces mono 16-bit profiles")

// readChunkFrames is how many frames Prepare asks the source for at once.
const readChunkFrames = 4096

// Prepare reads all of src and brings it to profile: mono, at the profile
// sample rate, as 16-bit samples. The caller still owns src and closes
// it.
func Prepare(src audio.Source, profile wav.Profile) ([]int16, error) {
	if profile.NumChannels != 1 || profile.BitsPerSample != 16 || profile.BlockAlign != 2 {
		return nil, fmt.Errorf("%w: %d channels, %d bits, block align %d", ErrUnsupportedProfile,
			profile.NumChannels, profile.BitsPerSample, profile.BlockAlign)
	}

	interleaved, err := audio.ReadAll(src, src.Channels()*readChunkFrames)
	if err != nil {
		return nil, err
	}

	mono, err := audio.Downmix(interleaved, src.Channels())
	if err != nil {
		return nil, err
	}

	out, err := audio.Resample(mono, src.SampleRate(), int(profile.SampleRate))
	if err != nil {
		return nil, fmt.Errorf("resampling %d Hz to %d Hz: %w", src.SampleRate(), profile.SampleRate, err)
	}

	return lo.Map(out, func(x float32, _ int) int16 {
		return utils.Float32ToInt16(x)
	}), nil
}
