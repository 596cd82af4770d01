package subcmd

import (
	"fmt"

	"github.com/but80/musical/musical/frequency"
	"github.com/but80/musical/musical/log"
	"github.com/urfave/cli"
)

type freqResult struct {
	Reference frequency.Frequency      `json:"reference"`
	Ratio     frequency.FrequencyRatio `json:"ratio"`
	Result    frequency.Frequency      `json:"result"`
}

func (r freqResult) String() string {
	return fmt.Sprintf("%s * %s = %s", r.Reference, r.Ratio, r.Result)
}

var Freq = cli.Command{
	Name:      "freq",
	Aliases:   []string{"f"},
	Usage:     "Transposes a reference frequency by a ratio or a number of cents",
	ArgsUsage: "<ratio|3/2|702c>...",
	Flags: flags(
		cli.Float64Flag{
			Name:  "reference, r",
			Usage: `Reference frequency in Hz`,
			Value: frequency.Standard.Hertz(),
		},
	),
	Action: func(ctx *cli.Context) error {
		if err := setup(ctx, 1); err != nil {
			return err
		}
		ref, err := frequency.NewFrequency(ctx.Float64("reference"))
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		ratio := frequency.RatioUnison
		log.Debugf("stacking %d interval(s) on %s", ctx.NArg(), ref)
		log.Enter()
		for _, arg := range ctx.Args() {
			i, err := frequency.ParseInterval(arg)
			if err != nil {
				log.Leave()
				return cli.NewExitError(err, 1)
			}
			log.Debugf("%s + %s", ratio, i)
			ratio = ratio.Plus(i)
		}
		log.Leave()
		result, err := ref.Transpose(ratio)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		return output(ctx, freqResult{Reference: ref, Ratio: ratio, Result: result})
	},
}
