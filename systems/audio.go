package systems

import (
	"log"
	"sync"

	"github.com/automoto/spiralstar/assets"
	"github.com/automoto/spiralstar/components"
	cfg "github.com/automoto/spiralstar/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalAudioEnabled bool
	globalSFXVolume    = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

// EnableAudio creates the audio context and synthesizes every tone. Without it queued
// sounds are dropped silently.
func EnableAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
		for id := range cfg.Sound.Tones {
			if err := globalAudioLoader.PreloadSFX(id); err != nil {
				log.Printf("Warning: Could not preload sound: %v", err)
			}
		}
		globalAudioEnabled = true
	})
}

// SetSFXVolume sets the volume of every following sound effect, 0 mutes
func SetSFXVolume(v float64) {
	globalSFXVolume = v
}

// QueueSFX asks for a sound effect to be played at the end of the tick
func QueueSFX(ecs *ecs.ECS, id cfg.SoundID) {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	audioData.PendingSFX = append(audioData.PendingSFX, id)
}

// UpdateAudio plays and clears the queued sound effects
func UpdateAudio(ecs *ecs.ECS) {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if globalAudioEnabled {
		for _, id := range audioData.PendingSFX {
			playSFX(id)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(id cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}
	player, err := globalAudioLoader.LoadSFX(id)
	if err != nil {
		return
	}
	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
}
