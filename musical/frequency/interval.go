package frequency

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Interval is an interval between two frequencies, implemented by
// FrequencyRatio and Cent only.
//
// Binary operations convert their argument into the receiver's type.
type Interval interface {
	fmt.Stringer
	ToCents() Cent
	ToFrequencyRatio() FrequencyRatio
	isFrequencyInterval()
}

func asRatio(i Interval) FrequencyRatio {
	switch v := i.(type) {
	case FrequencyRatio:
		return v
	case Cent:
		return v.ToFrequencyRatio()
	}
	panic(unknownInterval(i))
}

func asCents(i Interval) Cent {
	switch v := i.(type) {
	case Cent:
		return v
	case FrequencyRatio:
		return v.ToCents()
	}
	panic(unknownInterval(i))
}

func unknownInterval(i Interval) error {
	return errors.Errorf("unknown frequency interval type %T", i)
}

var ErrInvalidIntervalNotation = errors.New("invalid frequency interval notation")

// ParseInterval parses a cent value such as "702c", or a ratio written as a
// decimal ("1.5") or a fraction ("3/2").
func ParseInterval(s string) (Interval, error) {
	if strings.HasSuffix(s, "c") {
		n, err := strconv.ParseInt(strings.TrimSuffix(s, "c"), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidIntervalNotation, "%q", s)
		}
		return Cent(n), nil
	}
	if i := strings.IndexByte(s, '/'); 0 <= i {
		num, err1 := strconv.ParseFloat(s[:i], 64)
		den, err2 := strconv.ParseFloat(s[i+1:], 64)
		if err1 != nil || err2 != nil || den == 0 {
			return nil, errors.Wrapf(ErrInvalidIntervalNotation, "%q", s)
		}
		return parsedRatio(s, num/den)
	}
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidIntervalNotation, "%q", s)
	}
	return parsedRatio(s, r)
}

// parsedRatio rejects ratios that are not finite and positive.
func parsedRatio(s string, r float64) (Interval, error) {
	if !(0 < r) || math.IsInf(r, 1) {
		return nil, errors.Wrapf(ErrInvalidIntervalNotation, "%q is not a positive ratio", s)
	}
	return FrequencyRatio(r), nil
}
