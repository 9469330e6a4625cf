// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ik5/wavembed/formats/wav"
)

const (
	ModePDM  = "pdm"
	ModePCM8 = "pcm8"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Profile struct {
		SampleRate    uint32 `yaml:"sample_rate"`
		Channels      uint16 `yaml:"channels"`
		BitsPerSample uint16 `yaml:"bits_per_sample"`
		BlockAlign    uint16 `yaml:"block_align"`
		ByteRate      uint32 `yaml:"byte_rate"` // 0 selects the default for output.mode
	} `yaml:"profile"`

	Output struct {
		Mode       string `yaml:"mode"`
		ArrayName  string `yaml:"array_name"`
		SizeName   string `yaml:"size_name"`
		PDMPerLine int    `yaml:"pdm_per_line"`
		PCMPerLine int    `yaml:"pcm_per_line"`
		WaveDump   string `yaml:"wave_dump"`
	} `yaml:"output"`

	Preview struct {
		Window int `yaml:"window"`
	} `yaml:"preview"`
}

// Default matches wav.DefaultProfile and the array names firmware
// includes expect. ByteRate is left to the mode: wav.PDMProfile for pdm,
// wav.DefaultProfile for pcm8.
func Default() Config {
	var c Config

	p := wav.DefaultProfile()
	c.Profile.SampleRate = p.SampleRate
	c.Profile.Channels = p.NumChannels
	c.Profile.BitsPerSample = p.BitsPerSample
	c.Profile.BlockAlign = p.BlockAlign

	c.Output.Mode = ModePDM
	c.Output.ArrayName = "wav_data"
	c.Output.SizeName = "wav_data_size"
	c.Output.PDMPerLine = 8
	c.Output.PCMPerLine = 16

	c.Preview.Window = 16

	return c
}

// Load reads path over Default. Keys missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c Config) Validate() error {
	switch {
	case c.Profile.SampleRate == 0:
		return fmt.Errorf("%w: profile.sample_rate must be positive", ErrInvalidConfig)
	case c.Profile.Channels == 0:
		return fmt.Errorf("%w: profile.channels must be positive", ErrInvalidConfig)
	case c.Profile.BlockAlign < 1 || c.Profile.BlockAlign > 2:
		return fmt.Errorf("%w: profile.block_align %d, want 1 or 2", ErrInvalidConfig, c.Profile.BlockAlign)
	case c.Profile.BitsPerSample == 0 || c.Profile.BitsPerSample > 8*c.Profile.BlockAlign:
		return fmt.Errorf("%w: profile.bits_per_sample %d does not fit block_align %d",
			ErrInvalidConfig, c.Profile.BitsPerSample, c.Profile.BlockAlign)
	case c.Output.Mode != ModePDM && c.Output.Mode != ModePCM8:
		return fmt.Errorf("%w: output.mode %q, want %q or %q", ErrInvalidConfig, c.Output.Mode, ModePDM, ModePCM8)
	case c.Output.ArrayName == "" || c.Output.SizeName == "":
		return fmt.Errorf("%w: output.array_name and output.size_name are required", ErrInvalidConfig)
	case c.Output.PDMPerLine <= 0 || c.Output.PCMPerLine <= 0:
		return fmt.Errorf("%w: per_line values must be positive", ErrInvalidConfig)
	case c.Preview.Window <= 0:
		return fmt.Errorf("%w: preview.window must be positive", ErrInvalidConfig)
	}
	return nil
}

// WavProfile is the header layout the converter enforces.
func (c Config) WavProfile() wav.Profile {
	p := wav.DefaultProfile()
	if c.Output.Mode == ModePDM {
		p = wav.PDMProfile()
	}
	p.SampleRate = c.Profile.SampleRate
	p.NumChannels = c.Profile.Channels
	p.BitsPerSample = c.Profile.BitsPerSample
	p.BlockAlign = c.Profile.BlockAlign
	if c.Profile.ByteRate != 0 {
		p.ByteRate = c.Profile.ByteRate
	}
	return p
}
