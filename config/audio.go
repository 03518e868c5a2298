package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundSpawn
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// Tone is a synthesized sine chime
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// SoundConfig maps sound IDs to the tones they play
type SoundConfig struct {
	Tones             map[SoundID]Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.5,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundSpawn: {Freq: 880, Duration: 60 * time.Millisecond},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundSpawn: 0.6,
		},
	}
}
