// Package audio plays short procedural tone cues for simulation events.
// Audio is strictly decorative: a failed speaker leaves the game silent,
// never broken.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Cue identifies one of the fixed tone cues
type Cue int

const (
	CueModeChange Cue = iota
	CueArrival
	CueRiver
)

// cueShape is the frequency and length of each cue's sine burst
var cueShapes = map[Cue]struct {
	freq     int
	duration time.Duration
}{
	CueModeChange: {freq: 660, duration: 40 * time.Millisecond},
	CueArrival:    {freq: 880, duration: 120 * time.Millisecond},
	CueRiver:      {freq: 220, duration: 200 * time.Millisecond},
}

// Cues owns the speaker. A nil *Cues plays nothing, so callers never
// guard.
type Cues struct {
	rate  beep.SampleRate
	ready bool
}

// NewCues initializes the speaker. Initialization failure is silent
// mode, not an error.
func NewCues(enabled bool) *Cues {
	c := &Cues{rate: beep.SampleRate(44100)}
	if !enabled {
		return c
	}
	if err := speaker.Init(c.rate, c.rate.N(time.Second/10)); err != nil {
		return c
	}
	c.ready = true
	return c
}

// Play queues one cue asynchronously; it never blocks the tick
func (c *Cues) Play(cue Cue) {
	if c == nil || !c.ready {
		return
	}

	shape, ok := cueShapes[cue]
	if !ok {
		return
	}
	tone, err := generators.SineTone(c.rate, float64(shape.freq))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(c.rate.N(shape.duration), tone))
}
