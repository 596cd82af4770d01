package subcmd

import (
	"fmt"
	"strconv"

	"github.com/but80/musical/musical/interval"
	"github.com/but80/musical/musical/log"
	"github.com/urfave/cli"
)

type intervalResult struct {
	Semitones interval.SemitoneInterval `json:"semitones"`
	Simple    interval.SimpleInterval   `json:"simple"`
	Compound  interval.CompoundInterval `json:"compound"`
}

func (r intervalResult) String() string {
	return fmt.Sprintf("%s = %s (simple: %s)", r.Semitones, r.Compound, r.Simple)
}

func parsePitchInterval(s string) (interval.PitchInterval, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return interval.SemitoneInterval(n), nil
	}
	return interval.ParseSimpleInterval(s)
}

var Interval = cli.Command{
	Name:      "interval",
	Aliases:   []string{"i"},
	Usage:     "Sums intervals and shows them as semitone, simple and compound intervals",
	ArgsUsage: "<semitones|P5|m3...>...",
	Flags:     flags(),
	Action: func(ctx *cli.Context) error {
		if err := setup(ctx, 1); err != nil {
			return err
		}
		var sum interval.SemitoneInterval
		log.Debugf("summing %d interval(s)", ctx.NArg())
		log.Enter()
		for _, arg := range ctx.Args() {
			i, err := parsePitchInterval(arg)
			if err != nil {
				log.Leave()
				return cli.NewExitError(err, 1)
			}
			log.Debugf("%s + %s", sum, i)
			sum = sum.Plus(i)
		}
		log.Leave()
		return output(ctx, intervalResult{
			Semitones: sum,
			Simple:    interval.SimpleFrom(sum),
			Compound:  sum.ToCompoundInterval(),
		})
	},
}
