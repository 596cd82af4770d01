package interval

import (
	"encoding/json"
	"fmt"
)

type Direction int

const (
	Direction_Up Direction = iota
	Direction_Down
)

func (d Direction) Neg() Direction {
	if d == Direction_Up {
		return Direction_Down
	}
	return Direction_Up
}

// Sign returns 1 for Direction_Up and -1 for Direction_Down.
func (d Direction) Sign() int64 {
	if d == Direction_Down {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	switch d {
	case Direction_Up:
		return "UP"
	case Direction_Down:
		return "DOWN"
	}
	return "undefined"
}

func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// CompoundInterval is an interval expressed as a simple part, a number of
// whole octaves and a direction.
//
// Values built by normalization keep SimplePart within [0, 11] semitones.
// A directly constructed PerfectOctave part is kept as is.
type CompoundInterval struct {
	SimplePart SimpleInterval `json:"simple_part"`
	OctaveSpan uint           `json:"octave_span"`
	Direction  Direction      `json:"direction"`
}

func (c CompoundInterval) isPitchInterval() {}

func (c CompoundInterval) Plus(that PitchInterval) CompoundInterval {
	return (c.SignedSemitones() + SignedSemitones(that)).ToCompoundInterval()
}

func (c CompoundInterval) Minus(that PitchInterval) CompoundInterval {
	return (c.SignedSemitones() - SignedSemitones(that)).ToCompoundInterval()
}

// Neg flips the direction only.
func (c CompoundInterval) Neg() CompoundInterval {
	c.Direction = c.Direction.Neg()
	return c
}

// ToSemitoneInterval returns the magnitude of c; the direction is not applied.
func (c CompoundInterval) ToSemitoneInterval() SemitoneInterval {
	return c.SimplePart.ToSemitoneInterval() + SemitoneInterval(semitonesPerOctave*int64(c.OctaveSpan))
}

// SignedSemitones returns the magnitude of c negated when it points down.
func (c CompoundInterval) SignedSemitones() SemitoneInterval {
	return SemitoneInterval(c.Direction.Sign()) * c.ToSemitoneInterval()
}

func (c CompoundInterval) ToCompoundInterval() CompoundInterval {
	return c
}

func (c CompoundInterval) String() string {
	s := c.SimplePart.String()
	if 0 < c.OctaveSpan {
		s += fmt.Sprintf("+%doct", c.OctaveSpan)
	}
	if c.Direction == Direction_Down {
		s = "-" + s
	}
	return s
}
