// Package frequency relates intervals to real frequencies, as opposed to
// pitches on a scale (which are affected by tuning).
package frequency

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

var ErrNonPositiveFrequency = errors.New("frequency must be a positive number")

// Frequency is a concrete frequency of physical oscillation, measured in Hertz.
type Frequency struct {
	hertz float64
}

// Standard is the modern concert pitch, A4 = 440 Hz.
var Standard = MustFrequency(440.0)

func NewFrequency(hertz float64) (Frequency, error) {
	if !(0.0 < hertz) {
		return Frequency{}, errors.Wrapf(ErrNonPositiveFrequency, "%v was given", hertz)
	}
	return Frequency{hertz: hertz}, nil
}

func MustFrequency(hertz float64) Frequency {
	f, err := NewFrequency(hertz)
	if err != nil {
		panic(err)
	}
	return f
}

func (f Frequency) Hertz() float64 {
	return f.hertz
}

// Transpose moves f by i. It fails when i has a non-positive ratio.
func (f Frequency) Transpose(i Interval) (Frequency, error) {
	t, err := NewFrequency(f.hertz * float64(i.ToFrequencyRatio()))
	if err != nil {
		return Frequency{}, errors.Wrapf(err, "transposing %s by %s", f, i)
	}
	return t, nil
}

// RatioBetween returns the ratio that transposes from to to.
func RatioBetween(from, to Frequency) FrequencyRatio {
	return FrequencyRatio(to.hertz / from.hertz)
}

func (f Frequency) String() string {
	return fmt.Sprintf("%.2fHz", f.hertz)
}

func (f Frequency) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.hertz)
}
