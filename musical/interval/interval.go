// Package interval implements pitch intervals of 12-tone equal temperament
// in three interchangeable forms: raw semitone counts, simple intervals
// (number and quality within one octave) and compound intervals (simple
// part, octave span and direction).
package interval

import (
	"github.com/pkg/errors"
)

// PitchInterval is an interval on a pitch.
//
// The set of implementations is closed: SemitoneInterval, SimpleInterval and
// CompoundInterval. Every type switch over a PitchInterval handles all three
// and panics on anything else.
type PitchInterval interface {
	// ToSemitoneInterval returns the size of the interval in semitones.
	// For a CompoundInterval this is the magnitude; see SignedSemitones.
	ToSemitoneInterval() SemitoneInterval
	ToCompoundInterval() CompoundInterval
	isPitchInterval()
}

// SignedSemitones returns the size of i in semitones with the direction of a
// CompoundInterval applied as a sign. Arithmetic on every interval type
// combines operands through this value.
func SignedSemitones(i PitchInterval) SemitoneInterval {
	switch v := i.(type) {
	case SemitoneInterval:
		return v
	case SimpleInterval:
		return v.ToSemitoneInterval()
	case CompoundInterval:
		return v.SignedSemitones()
	}
	panic(unknownInterval(i))
}

func unknownInterval(i PitchInterval) error {
	return errors.Errorf("unknown pitch interval type %T", i)
}

// floorMod returns n mod m in [0, m) for m > 0.
func floorMod(n, m int64) int64 {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}
