package ui

import (
	"PongSolo/core"
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

type Tone struct {
	Freq     float64
	Duration time.Duration
}

var tones = map[core.EventKind]Tone{
	core.EventWallBounce: {Freq: 440, Duration: 30 * time.Millisecond},
	core.EventPaddleHit:  {Freq: 880, Duration: 50 * time.Millisecond},
	core.EventGoal:       {Freq: 220, Duration: 250 * time.Millisecond},
	core.EventMatchOver:  {Freq: 660, Duration: 500 * time.Millisecond},
}

func ToneFor(kind core.EventKind) (Tone, bool) {
	t, ok := tones[kind]
	return t, ok
}

// Sound plays short sine tones for game events through the system speaker.
type Sound struct {
	enabled    bool
	sampleRate beep.SampleRate
}

// NewSound opens the speaker when enabled. On error the returned Sound is
// still usable and stays silent.
func NewSound(enabled bool) (*Sound, error) {
	s := &Sound{sampleRate: beep.SampleRate(44100)}
	if !enabled {
		return s, nil
	}
	if err := speaker.Init(s.sampleRate, s.sampleRate.N(time.Second/10)); err != nil {
		return s, fmt.Errorf("init speaker: %w", err)
	}
	s.enabled = true
	return s, nil
}

func (s *Sound) Enabled() bool {
	return s.enabled
}

func (s *Sound) Play(ev core.Event) {
	if !s.enabled {
		return
	}
	tone, ok := ToneFor(ev.Kind)
	if !ok {
		return
	}
	sine, err := generators.SineTone(s.sampleRate, tone.Freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(s.sampleRate.N(tone.Duration), sine))
}

func (s *Sound) Close() {
	if s.enabled {
		speaker.Close()
		s.enabled = false
	}
}
