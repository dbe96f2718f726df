package audio

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// TestCueShapesStreamable verifies each cue's tone generates finite,
// in-range samples without a live speaker
func TestCueShapesStreamable(t *testing.T) {
	rate := beep.SampleRate(44100)

	for cue, shape := range cueShapes {
		tone, err := generators.SineTone(rate, float64(shape.freq))
		if err != nil {
			t.Fatalf("cue %d: %v", cue, err)
		}

		buf := make([][2]float64, rate.N(shape.duration))
		n, ok := beep.Take(len(buf), tone).Stream(buf)
		if !ok || n != len(buf) {
			t.Errorf("cue %d: streamed %d of %d samples", cue, n, len(buf))
		}
		for i, sample := range buf[:n] {
			if sample[0] < -1 || sample[0] > 1 || sample[1] < -1 || sample[1] > 1 {
				t.Fatalf("cue %d: sample %d out of range: %v", cue, i, sample)
			}
		}
	}
}

// TestDisabledCuesAreSilent verifies the nil and disabled paths are
// safe to call
func TestDisabledCuesAreSilent(t *testing.T) {
	var nilCues *Cues
	nilCues.Play(CueArrival)

	disabled := NewCues(false)
	if disabled.ready {
		t.Error("disabled cues reported ready")
	}
	disabled.Play(CueRiver)
	disabled.Play(Cue(99))
}
