package term

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const chimeSampleRate = beep.SampleRate(44100)

// Chime plays a short tone whenever a cluster is spawned by hand
type Chime struct {
	freq     float64
	duration time.Duration
}

// NewChime initializes the speaker. Callers treat failure as non-fatal and run silent.
func NewChime(freq float64, duration time.Duration) (*Chime, error) {
	if err := speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Chime{freq: freq, duration: duration}, nil
}

func (c *Chime) Play() {
	sine, err := generators.SineTone(chimeSampleRate, c.freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(chimeSampleRate.N(c.duration), sine))
}
