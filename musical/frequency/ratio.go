package frequency

import (
	"fmt"
	"math"
)

// FrequencyRatio is an interval defined as the multiplicative factor between
// two frequencies. It forms a group with Plus as multiplication.
type FrequencyRatio float64

const (
	RatioUnison FrequencyRatio = 1.0
	RatioOctave FrequencyRatio = 2.0
)

func (r FrequencyRatio) isFrequencyInterval() {}

func (r FrequencyRatio) Plus(that Interval) FrequencyRatio {
	return r * asRatio(that)
}

func (r FrequencyRatio) Minus(that Interval) FrequencyRatio {
	return r / asRatio(that)
}

func (r FrequencyRatio) Neg() FrequencyRatio {
	return 1.0 / r
}

// ToCents rounds to the nearest whole cent, halves away from zero.
func (r FrequencyRatio) ToCents() Cent {
	return Cent(math.Round(float64(CentOctave) * math.Log2(float64(r))))
}

func (r FrequencyRatio) ToFrequencyRatio() FrequencyRatio {
	return r
}

func (r FrequencyRatio) String() string {
	return fmt.Sprintf("%g:1", float64(r))
}
