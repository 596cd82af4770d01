package frequency

import (
	"fmt"
	"math"
)

// Cent is a frequency interval of exactly 1/1200 of an octave.
type Cent int64

const (
	CentUnison Cent = 0
	CentZero        = CentUnison
	CentOctave Cent = 1200
)

func (c Cent) isFrequencyInterval() {}

func (c Cent) Plus(that Interval) Cent {
	return c + asCents(that)
}

func (c Cent) Minus(that Interval) Cent {
	return c - asCents(that)
}

func (c Cent) Neg() Cent {
	return -c
}

func (c Cent) ToCents() Cent {
	return c
}

func (c Cent) ToFrequencyRatio() FrequencyRatio {
	return FrequencyRatio(math.Pow(2.0, float64(c)/float64(CentOctave)))
}

func (c Cent) String() string {
	return fmt.Sprintf("%dc", int64(c))
}
