package pitch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/but80/musical/musical/interval"
	"github.com/pkg/errors"
)

// NamedPitch is a pitch in scientific pitch notation, where octave 4 starts at middle C.
type NamedPitch struct {
	Name       PitchName  `json:"name"`
	Accidental Accidental `json:"accidental"`
	Octave     int        `json:"octave"`
}

var (
	NamedConcertA = NamedPitch{Name: PitchName_A, Accidental: Accidental_Natural, Octave: 4}
	NamedMiddleC  = NamedPitch{Name: PitchName_C, Accidental: Accidental_Natural, Octave: 4}
)

const middleCOctave = 4

func (p NamedPitch) isPitch() {}

func (p NamedPitch) ToStandardPitch() StandardPitch {
	semitones := MiddleC.IntervalFromA4 +
		interval.SemitoneInterval(p.Name.Offset()) +
		interval.SemitoneInterval(12*int64(p.Octave-middleCOctave)) +
		interval.SemitoneInterval(p.Accidental.Offset())
	return StandardPitch{IntervalFromA4: semitones}
}

// Plus returns a StandardPitch: the spelling of the result depends on a key,
// which a SpellingResolver supplies.
func (p NamedPitch) Plus(i interval.PitchInterval) StandardPitch {
	return p.ToStandardPitch().Plus(i)
}

func (p NamedPitch) Minus(i interval.PitchInterval) StandardPitch {
	return p.ToStandardPitch().Minus(i)
}

// MinusPitch returns the interval from that to p, normalized to a CompoundInterval.
func (p NamedPitch) MinusPitch(that Pitch) interval.CompoundInterval {
	return p.ToStandardPitch().MinusPitch(that).ToCompoundInterval()
}

func (p NamedPitch) String() string {
	return fmt.Sprintf("%s%s%d", p.Name, p.Accidental, p.Octave)
}

var ErrInvalidPitchNotation = errors.New("invalid pitch notation")

// ParseNamedPitch parses scientific pitch notation such as "A4", "c#5", "Bb-1" or "Fx3".
func ParseNamedPitch(s string) (NamedPitch, error) {
	var p NamedPitch
	if len(s) < 2 {
		return p, errors.Wrapf(ErrInvalidPitchNotation, "%q is too short", s)
	}
	i := strings.IndexByte("CDEFGAB", strings.ToUpper(s[:1])[0])
	if i < 0 {
		return p, errors.Wrapf(ErrInvalidPitchNotation, "%q has no letter name", s)
	}
	p.Name = PitchName(i)
	rest := s[1:]
	switch {
	case strings.HasPrefix(rest, "##"):
		p.Accidental, rest = Accidental_DoubleSharp, rest[2:]
	case strings.HasPrefix(rest, "x"):
		p.Accidental, rest = Accidental_DoubleSharp, rest[1:]
	case strings.HasPrefix(rest, "#"):
		p.Accidental, rest = Accidental_Sharp, rest[1:]
	case strings.HasPrefix(rest, "bb"):
		p.Accidental, rest = Accidental_DoubleFlat, rest[2:]
	case strings.HasPrefix(rest, "b"):
		p.Accidental, rest = Accidental_Flat, rest[1:]
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return p, errors.Wrapf(ErrInvalidPitchNotation, "%q has no octave number", s)
	}
	p.Octave = octave
	return p, nil
}

// Key is a key signature: the accidental it applies to each letter name.
type Key interface {
	Accidental(name PitchName) Accidental
}

// SpellingResolver spells the result of moving a named pitch by an interval
// in the context of a key. No resolver is provided by this package.
type SpellingResolver interface {
	Spell(p NamedPitch, i interval.PitchInterval, k Key) (NamedPitch, error)
}
