package frequency

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomRatio(r *rand.Rand) FrequencyRatio {
	return FrequencyRatio(0.01 + 4*r.Float64())
}

func randomCent(r *rand.Rand) Cent {
	return Cent(r.Int63n(24000) - 12000)
}

func TestFrequency(t *testing.T) {
	assert.Equal(t, 440.0, Standard.Hertz())

	f, err := NewFrequency(183.92)
	require.NoError(t, err)
	assert.Equal(t, 183.92, f.Hertz())

	for _, hz := range []float64{-0.5, -2.0, 0.0, math.NaN()} {
		_, err := NewFrequency(hz)
		assert.Equal(t, ErrNonPositiveFrequency, errors.Cause(err), "%v", hz)
	}
	assert.Panics(t, func() { MustFrequency(0) })
}

func TestFrequencyTranspose(t *testing.T) {
	up, err := Standard.Transpose(RatioOctave)
	require.NoError(t, err)
	assert.Equal(t, 880.0, up.Hertz())

	down, err := Standard.Transpose(CentOctave.Neg())
	require.NoError(t, err)
	assert.InDelta(t, 220.0, down.Hertz(), 1e-9)

	_, err = Standard.Transpose(FrequencyRatio(-1))
	assert.Equal(t, ErrNonPositiveFrequency, errors.Cause(err))
}

func TestRatioBetween(t *testing.T) {
	assert.Equal(t, FrequencyRatio(1.5), RatioBetween(Standard, MustFrequency(660)))
	assert.Equal(t, FrequencyRatio(0.5), RatioBetween(Standard, MustFrequency(220)))
}

func TestFrequencyRatioPlus(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		a, b, c := randomRatio(r), randomRatio(r), randomRatio(r)
		assert.InEpsilon(t, float64(a)*float64(b), float64(a.Plus(b)), 1e-15)
		assert.InEpsilon(t, float64(a.Plus(b).Plus(c)), float64(a.Plus(b.Plus(c))), 1e-12)
		assert.Equal(t, a, a.Plus(RatioUnison))
		assert.Equal(t, a, RatioUnison.Plus(a))
		assert.Equal(t, a.Plus(b), b.Plus(a))
	}
	assert.Equal(t, FrequencyRatio(4.0), RatioOctave.Plus(CentOctave))
}

func TestFrequencyRatioMinus(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		a, b := randomRatio(r), randomRatio(r)
		assert.InEpsilon(t, float64(a)/float64(b), float64(a.Minus(b)), 1e-15)
	}
	assert.Equal(t, FrequencyRatio(2.0), FrequencyRatio(3.0).Minus(FrequencyRatio(1.5)))
	assert.Equal(t, FrequencyRatio(1.0), RatioOctave.Minus(CentOctave))
}

func TestFrequencyRatioNeg(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		a := randomRatio(r)
		assert.InEpsilon(t, float64(RatioUnison), float64(a.Plus(a.Neg())), 1e-9)
	}
	assert.Equal(t, FrequencyRatio(0.5), RatioOctave.Neg())
}

func TestFrequencyRatioToCents(t *testing.T) {
	assert.Equal(t, CentUnison, RatioUnison.ToCents())
	assert.Equal(t, CentOctave, RatioOctave.ToCents())
	assert.Equal(t, Cent(702), FrequencyRatio(3.0/2.0).ToCents())
	assert.Equal(t, Cent(-498), FrequencyRatio(3.0/4.0).ToCents())
	assert.Equal(t, Cent(-1200), FrequencyRatio(0.5).ToCents())
}

func TestFrequencyRatioRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 1000; i++ {
		a := randomRatio(r)
		assert.Equal(t, a, a.ToFrequencyRatio())
		// half a cent of rounding is at most 2^(1/2400) - 1
		assert.InEpsilon(t, float64(a), float64(a.ToCents().ToFrequencyRatio()), 3e-4)
	}
}

func TestCentArithmetic(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 1000; i++ {
		a, b, c := randomCent(r), randomCent(r), randomCent(r)
		assert.Equal(t, a+b, a.Plus(b))
		assert.Equal(t, a-b, a.Minus(b))
		assert.Equal(t, a.Plus(b).Plus(c), a.Plus(b.Plus(c)))
		assert.Equal(t, a, a.Plus(CentUnison))
		assert.Equal(t, a, CentZero.Plus(a))
		assert.Equal(t, CentUnison, a.Plus(a.Neg()))
		assert.Equal(t, a, a.ToCents())
	}
	assert.Equal(t, Cent(1404), Cent(702).Plus(FrequencyRatio(1.5)))
	assert.Equal(t, CentZero, Cent(702).Minus(FrequencyRatio(0.75)).Minus(RatioOctave))
}

func TestCentToFrequencyRatio(t *testing.T) {
	assert.Equal(t, RatioUnison, CentUnison.ToFrequencyRatio())
	assert.Equal(t, RatioOctave, CentOctave.ToFrequencyRatio())
	assert.InDelta(t, 1.5, float64(Cent(702).ToFrequencyRatio()), 1e-4)
	assert.InDelta(t, 0.75, float64(Cent(-498).ToFrequencyRatio()), 1e-4)
}

func TestParseInterval(t *testing.T) {
	cases := map[string]Interval{
		"702c":  Cent(702),
		"-498c": Cent(-498),
		"3/2":   FrequencyRatio(1.5),
		"0.75":  FrequencyRatio(0.75),
		"2":     RatioOctave,
	}
	for s, want := range cases {
		got, err := ParseInterval(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}
	for _, s := range []string{"", "c", "abc", "3/0", "1.5cc", "x/2", "0", "-1", "0/5", "-3/2", "NaN", "Inf"} {
		_, err := ParseInterval(s)
		assert.Equal(t, ErrInvalidIntervalNotation, errors.Cause(err), "%q", s)
	}
}

func TestIntervalString(t *testing.T) {
	assert.Equal(t, "702c", Cent(702).String())
	assert.Equal(t, "1.5:1", FrequencyRatio(1.5).String())
	assert.Equal(t, "440.00Hz", Standard.String())
}
