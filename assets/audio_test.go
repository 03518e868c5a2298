package assets

import (
	"encoding/binary"
	"testing"
	"time"

	cfg "github.com/automoto/spiralstar/config"
)

func TestSynthesizeToneLength(t *testing.T) {
	pcm, err := SynthesizeTone(44100, cfg.Tone{Freq: 440, Duration: 100 * time.Millisecond})
	if err != nil {
		t.Fatalf("SynthesizeTone: %v", err)
	}
	if want := 4410 * frameBytes; len(pcm) != want {
		t.Errorf("len = %d, want %d", len(pcm), want)
	}
}

func TestSynthesizeToneFadesOut(t *testing.T) {
	pcm, err := SynthesizeTone(8000, cfg.Tone{Freq: 1000, Duration: 50 * time.Millisecond})
	if err != nil {
		t.Fatal(err)
	}

	peak := func(from, to int) int {
		m := 0
		for i := from; i < to; i++ {
			v := int(int16(binary.LittleEndian.Uint16(pcm[i*frameBytes:])))
			if v < 0 {
				v = -v
			}
			m = max(m, v)
		}
		return m
	}

	frames := len(pcm) / frameBytes
	head := peak(0, frames/2)
	tail := peak(frames-8, frames)
	if head < 20000 {
		t.Errorf("tone body peak = %d, want a loud tone", head)
	}
	if tail >= head/2 {
		t.Errorf("tail peak %d should be well below body peak %d", tail, head)
	}
}

func TestSynthesizeToneRejectsBadFrequency(t *testing.T) {
	// a tone at or above the Nyquist rate cannot be generated
	if _, err := SynthesizeTone(8000, cfg.Tone{Freq: 8000, Duration: time.Millisecond}); err == nil {
		t.Error("expected an error")
	}
}

func TestToInt16Clamps(t *testing.T) {
	if got := toInt16(2); got != 32767 {
		t.Errorf("toInt16(2) = %d", got)
	}
	if got := toInt16(-2); got != -32767 {
		t.Errorf("toInt16(-2) = %d", got)
	}
}
