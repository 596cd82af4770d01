// Package tuning defines how pitches are mapped onto real frequencies.
//
// Pitch intervals and frequency intervals are separate algebras; a Tuning is
// the only bridge between them. No tuning is provided here.
package tuning

import (
	"github.com/but80/musical/musical/frequency"
	"github.com/but80/musical/musical/pitch"
)

// Tuning maps an absolute pitch to the frequency it sounds at.
type Tuning interface {
	Frequency(p pitch.StandardPitch) (frequency.Frequency, error)
}

// Func adapts an ordinary function to a Tuning.
type Func func(p pitch.StandardPitch) (frequency.Frequency, error)

func (f Func) Frequency(p pitch.StandardPitch) (frequency.Frequency, error) {
	return f(p)
}

// Interval returns the frequency ratio t assigns between two pitches.
func Interval(t Tuning, from, to pitch.Pitch) (frequency.FrequencyRatio, error) {
	f1, err := t.Frequency(from.ToStandardPitch())
	if err != nil {
		return 0, err
	}
	f2, err := t.Frequency(to.ToStandardPitch())
	if err != nil {
		return 0, err
	}
	return frequency.RatioBetween(f1, f2), nil
}
