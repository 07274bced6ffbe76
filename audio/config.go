package audio

import "github.com/lixenwraith/roadrush/constants"

// SoundType represents different sound effects
type SoundType int

const (
	SoundCrash  SoundType = iota // Car struck an obstacle
	SoundWhoosh                  // Boost activation
	soundTypeCount
)

// AudioConfig holds volume and device settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes [soundTypeCount]float64
	SampleRate    int
}

// DefaultAudioConfig returns the stock mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: [soundTypeCount]float64{
			SoundCrash:  1.0,
			SoundWhoosh: 0.6,
		},
		SampleRate: constants.AudioSampleRate,
	}
}

// Volume returns the effective linear volume of a sound type
func (c *AudioConfig) Volume(t SoundType) float64 {
	if t < 0 || t >= soundTypeCount {
		return 0
	}
	return c.EffectVolumes[t] * c.MasterVolume
}
