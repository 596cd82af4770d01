package interval

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// SimpleInterval is an interval of one octave or less, named by number and quality.
//
// It is unsigned, so negation yields the complementary interval within the octave.
type SimpleInterval int

const (
	PerfectUnison SimpleInterval = iota
	MinorSecond
	MajorSecond
	MinorThird
	MajorThird
	PerfectFourth
	AugmentedFourth
	DiminishedFifth
	PerfectFifth
	MinorSixth
	MajorSixth
	MinorSeventh
	MajorSeventh
	PerfectOctave
)

type simpleIntervalDef struct {
	number    int
	quality   Quality
	semitones SemitoneInterval
}

var simpleIntervalDefs = [...]simpleIntervalDef{
	PerfectUnison:   {1, Quality_Perfect, 0},
	MinorSecond:     {2, Quality_Minor, 1},
	MajorSecond:     {2, Quality_Major, 2},
	MinorThird:      {3, Quality_Minor, 3},
	MajorThird:      {3, Quality_Major, 4},
	PerfectFourth:   {4, Quality_Perfect, 5},
	AugmentedFourth: {4, Quality_Augmented, 6},
	DiminishedFifth: {5, Quality_Diminished, 6},
	PerfectFifth:    {5, Quality_Perfect, 7},
	MinorSixth:      {6, Quality_Minor, 8},
	MajorSixth:      {6, Quality_Major, 9},
	MinorSeventh:    {7, Quality_Minor, 10},
	MajorSeventh:    {7, Quality_Major, 11},
	PerfectOctave:   {8, Quality_Perfect, 12},
}

// SimpleIntervals lists every SimpleInterval in ascending semitone order.
func SimpleIntervals() []SimpleInterval {
	result := make([]SimpleInterval, len(simpleIntervalDefs))
	for i := range simpleIntervalDefs {
		result[i] = SimpleInterval(i)
	}
	return result
}

func (s SimpleInterval) def() simpleIntervalDef {
	if s < 0 || int(s) >= len(simpleIntervalDefs) {
		panic(errors.Errorf("invalid simple interval: %d", int(s)))
	}
	return simpleIntervalDefs[s]
}

func (s SimpleInterval) isPitchInterval() {}

func (s SimpleInterval) Number() int {
	return s.def().number
}

func (s SimpleInterval) Quality() Quality {
	return s.def().quality
}

func (s SimpleInterval) Plus(that PitchInterval) SimpleInterval {
	return simpleFromSemitones(s.ToSemitoneInterval() + SignedSemitones(that))
}

func (s SimpleInterval) Minus(that PitchInterval) SimpleInterval {
	return simpleFromSemitones(s.ToSemitoneInterval() - SignedSemitones(that))
}

// Neg returns the complement of s within the octave (PerfectUnison minus s).
// This is not a signed negation: a SimpleInterval carries no direction.
func (s SimpleInterval) Neg() SimpleInterval {
	return PerfectUnison.Minus(s)
}

func (s SimpleInterval) ToSemitoneInterval() SemitoneInterval {
	return s.def().semitones
}

func (s SimpleInterval) ToCompoundInterval() CompoundInterval {
	return CompoundInterval{SimplePart: s, OctaveSpan: 0, Direction: Direction_Up}
}

func (s SimpleInterval) String() string {
	d := s.def()
	return fmt.Sprintf("%s%d", d.quality.Abbreviation(), d.number)
}

func (s SimpleInterval) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// SimpleFrom reduces any interval into a SimpleInterval.
//
// A SimpleInterval is returned unchanged. Otherwise the signed semitone size is
// taken modulo 12, except that exactly 12 semitones stays a PerfectOctave.
// Six semitones always resolve to DiminishedFifth.
func SimpleFrom(i PitchInterval) SimpleInterval {
	switch v := i.(type) {
	case SimpleInterval:
		return v
	case SemitoneInterval:
		return simpleFromSemitones(v)
	case CompoundInterval:
		return simpleFromSemitones(v.SignedSemitones())
	}
	panic(unknownInterval(i))
}

func simpleFromSemitones(s SemitoneInterval) SimpleInterval {
	if s == semitonesPerOctave {
		return PerfectOctave
	}
	switch floorMod(int64(s), semitonesPerOctave) {
	case 0:
		return PerfectUnison
	case 1:
		return MinorSecond
	case 2:
		return MajorSecond
	case 3:
		return MinorThird
	case 4:
		return MajorThird
	case 5:
		return PerfectFourth
	case 6:
		return DiminishedFifth
	case 7:
		return PerfectFifth
	case 8:
		return MinorSixth
	case 9:
		return MajorSixth
	case 10:
		return MinorSeventh
	case 11:
		return MajorSeventh
	}
	// floorMod keeps the remainder in [0, 11]
	panic(errors.Errorf("failed to convert %v to a simple interval", s))
}

var ErrInvalidIntervalNotation = errors.New("invalid interval notation")

// ParseSimpleInterval parses names such as "P5", "m3" or "A4".
func ParseSimpleInterval(s string) (SimpleInterval, error) {
	for _, si := range SimpleIntervals() {
		if si.String() == s {
			return si, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidIntervalNotation, "%q", s)
}
