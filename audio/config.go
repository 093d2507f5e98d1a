package audio

import "github.com/lixenwraith/vi-invaders/constants"

// Config holds audio output settings
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0 - 1.0
	SampleRate   int
}

// DefaultConfig returns audio enabled at default volume
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		SampleRate:   constants.DefaultSampleRate,
	}
}

// normalize clamps volume and replaces an invalid sample rate
func (c Config) normalize() Config {
	if c.MasterVolume < 0 {
		c.MasterVolume = 0
	}
	if c.MasterVolume > 1 {
		c.MasterVolume = 1
	}
	if c.SampleRate <= 0 {
		c.SampleRate = constants.DefaultSampleRate
	}
	return c
}
