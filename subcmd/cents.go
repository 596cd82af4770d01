package subcmd

import (
	"fmt"

	"github.com/but80/musical/musical/frequency"
	"github.com/but80/musical/musical/log"
	"github.com/urfave/cli"
)

type centsResult struct {
	Cents frequency.Cent           `json:"cents"`
	Ratio frequency.FrequencyRatio `json:"ratio"`
}

func (r centsResult) String() string {
	return fmt.Sprintf("%s = %s", r.Ratio, r.Cents)
}

var Cents = cli.Command{
	Name:      "cents",
	Aliases:   []string{"c"},
	Usage:     "Converts between frequency ratios and cents",
	ArgsUsage: "<ratio|3/2|702c>",
	Flags:     flags(),
	Action: func(ctx *cli.Context) error {
		if err := setup(ctx, 1); err != nil {
			return err
		}
		i, err := frequency.ParseInterval(ctx.Args().First())
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		log.Debugf("parsed %s", i)
		result := centsResult{Cents: i.ToCents(), Ratio: i.ToFrequencyRatio()}
		if _, ok := i.(frequency.FrequencyRatio); ok {
			log.Infof("rounded to the nearest cent")
		}
		return output(ctx, result)
	},
}
