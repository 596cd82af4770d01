package interval

import "fmt"

// SemitoneInterval is an interval expressed in semitones.
//
// The exact frequency spacing of semitones is determined by the tuning.
type SemitoneInterval int64

const semitonesPerOctave = 12

func (s SemitoneInterval) isPitchInterval() {}

func (s SemitoneInterval) Plus(that PitchInterval) SemitoneInterval {
	return s + SignedSemitones(that)
}

func (s SemitoneInterval) Minus(that PitchInterval) SemitoneInterval {
	return s - SignedSemitones(that)
}

func (s SemitoneInterval) Neg() SemitoneInterval {
	return -s
}

func (s SemitoneInterval) ToSemitoneInterval() SemitoneInterval {
	return s
}

// ToCompoundInterval splits s into whole octaves and a remainder in [0, 11],
// carrying the sign of s as the direction.
func (s SemitoneInterval) ToCompoundInterval() CompoundInterval {
	direction := Direction_Up
	n := uint64(s)
	if s < 0 {
		direction = Direction_Down
		// two's complement negation keeps MinInt64 exact as an unsigned magnitude
		n = -n
	}
	return CompoundInterval{
		SimplePart: simpleFromSemitones(SemitoneInterval(n % semitonesPerOctave)),
		OctaveSpan: uint(n / semitonesPerOctave),
		Direction:  direction,
	}
}

func (s SemitoneInterval) String() string {
	return fmt.Sprintf("%dst", int64(s))
}
