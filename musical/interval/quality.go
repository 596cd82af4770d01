package interval

import (
	"encoding/json"
)

type Quality int

const (
	Quality_Perfect Quality = iota
	Quality_Minor
	Quality_Major
	Quality_Diminished
	Quality_Augmented
)

func (q Quality) String() string {
	switch q {
	case Quality_Perfect:
		return "Perfect"
	case Quality_Minor:
		return "Minor"
	case Quality_Major:
		return "Major"
	case Quality_Diminished:
		return "Diminished"
	case Quality_Augmented:
		return "Augmented"
	}
	return "undefined"
}

// Abbreviation returns the one-letter prefix used in interval names ("P", "m", "M", "d", "A").
func (q Quality) Abbreviation() string {
	switch q {
	case Quality_Perfect:
		return "P"
	case Quality_Minor:
		return "m"
	case Quality_Major:
		return "M"
	case Quality_Diminished:
		return "d"
	case Quality_Augmented:
		return "A"
	}
	return "?"
}

func (q Quality) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.String())
}
