package pitch

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// PitchName is one of the seven natural letter names.
type PitchName int

const (
	PitchName_C PitchName = iota
	PitchName_D
	PitchName_E
	PitchName_F
	PitchName_G
	PitchName_A
	PitchName_B
)

var pitchNameOffsets = [...]int64{0, 2, 4, 5, 7, 9, 11}

var pitchNameLetters = [...]string{"C", "D", "E", "F", "G", "A", "B"}

func (n PitchName) valid() bool {
	return 0 <= n && int(n) < len(pitchNameLetters)
}

// Offset returns the semitones from C up to n within the same octave.
func (n PitchName) Offset() int64 {
	if !n.valid() {
		panic(errors.Errorf("invalid pitch name: %d", int(n)))
	}
	return pitchNameOffsets[n]
}

func (n PitchName) String() string {
	if !n.valid() {
		return "undefined"
	}
	return pitchNameLetters[n]
}

func (n PitchName) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

// Accidental shifts a letter name by its value in semitones.
type Accidental int

const (
	Accidental_DoubleFlat  Accidental = -2
	Accidental_Flat        Accidental = -1
	Accidental_Natural     Accidental = 0
	Accidental_Sharp       Accidental = 1
	Accidental_DoubleSharp Accidental = 2
)

func (a Accidental) Offset() int64 {
	return int64(a)
}

func (a Accidental) String() string {
	switch a {
	case Accidental_DoubleFlat:
		return "bb"
	case Accidental_Flat:
		return "b"
	case Accidental_Natural:
		return ""
	case Accidental_Sharp:
		return "#"
	case Accidental_DoubleSharp:
		return "##"
	}
	return "undefined"
}

func (a Accidental) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}
