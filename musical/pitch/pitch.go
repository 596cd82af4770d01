// Package pitch anchors intervals to absolute pitches, either as a semitone
// offset from concert A (A4) or in scientific pitch notation.
package pitch

import (
	"fmt"

	"github.com/but80/musical/musical/interval"
)

// Pitch is an absolute pitch. Implemented by StandardPitch and NamedPitch only.
type Pitch interface {
	ToStandardPitch() StandardPitch
	isPitch()
}

// StandardPitch is a pitch represented as an interval to the reference pitch of A4.
//
// A4 is chosen since this is the modern concert reference pitch.
type StandardPitch struct {
	IntervalFromA4 interval.SemitoneInterval `json:"interval_from_a4"`
}

var (
	ConcertA = StandardPitch{IntervalFromA4: 0}
	MiddleC  = StandardPitch{IntervalFromA4: -9}
)

// NewStandardPitch returns the pitch i away from A4; a downward compound interval lands below it.
func NewStandardPitch(i interval.PitchInterval) StandardPitch {
	return StandardPitch{IntervalFromA4: interval.SignedSemitones(i)}
}

func (p StandardPitch) isPitch() {}

func (p StandardPitch) ToStandardPitch() StandardPitch {
	return p
}

func (p StandardPitch) Plus(i interval.PitchInterval) StandardPitch {
	return StandardPitch{IntervalFromA4: p.IntervalFromA4.Plus(i)}
}

func (p StandardPitch) Minus(i interval.PitchInterval) StandardPitch {
	return StandardPitch{IntervalFromA4: p.IntervalFromA4.Minus(i)}
}

// MinusPitch returns the interval from that up to p.
func (p StandardPitch) MinusPitch(that Pitch) interval.SemitoneInterval {
	return p.IntervalFromA4 - that.ToStandardPitch().IntervalFromA4
}

func (p StandardPitch) String() string {
	if p.IntervalFromA4 == 0 {
		return "A4"
	}
	return fmt.Sprintf("A4%+dst", int64(p.IntervalFromA4))
}
