package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	cfg "github.com/automoto/spiralstar/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Bytes per stereo frame of 16-bit PCM, the format ebiten players read
const frameBytes = 4

// AudioLoader synthesizes tones and caches their PCM bytes
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX synthesizes a sound effect and caches it without creating a player
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}
	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return fmt.Errorf("no tone for sound %d", id)
	}
	pcm, err := SynthesizeTone(l.context.SampleRate(), tone)
	if err != nil {
		return fmt.Errorf("synthesize sound %d: %w", id, err)
	}
	l.sfxCache[id] = pcm
	return nil
}

// LoadSFX returns a new player for a sound effect each time
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[id]))
}

// SynthesizeTone renders a sine tone as 16-bit little-endian stereo PCM. The last
// quarter fades out linearly so the chime does not click.
func SynthesizeTone(sampleRate int, tone cfg.Tone) ([]byte, error) {
	sr := beep.SampleRate(sampleRate)
	sine, err := generators.SineTone(sr, tone.Freq)
	if err != nil {
		return nil, err
	}

	n := sr.N(tone.Duration)
	samples := make([][2]float64, n)
	filled, _ := beep.Take(n, sine).Stream(samples)
	samples = samples[:filled]

	fadeFrom := len(samples) * 3 / 4
	fadeLen := len(samples) - fadeFrom
	out := make([]byte, len(samples)*frameBytes)
	for i, s := range samples {
		gain := 1.0
		if i >= fadeFrom && fadeLen > 0 {
			gain = float64(len(samples)-i) / float64(fadeLen)
		}
		binary.LittleEndian.PutUint16(out[i*frameBytes:], uint16(toInt16(s[0]*gain)))
		binary.LittleEndian.PutUint16(out[i*frameBytes+2:], uint16(toInt16(s[1]*gain)))
	}
	return out, nil
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
