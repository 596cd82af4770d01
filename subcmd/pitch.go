package subcmd

import (
	"fmt"

	"github.com/but80/musical/musical/interval"
	"github.com/but80/musical/musical/log"
	"github.com/but80/musical/musical/pitch"
	"github.com/urfave/cli"
)

type pitchResult struct {
	Pitch    pitch.NamedPitch    `json:"pitch"`
	Standard pitch.StandardPitch `json:"standard"`
}

func (r pitchResult) String() string {
	return fmt.Sprintf("%s = %s", r.Pitch, r.Standard)
}

type pitchIntervalResult struct {
	From     pitch.NamedPitch          `json:"from"`
	To       pitch.NamedPitch          `json:"to"`
	Interval interval.CompoundInterval `json:"interval"`
}

func (r pitchIntervalResult) String() string {
	return fmt.Sprintf("%s -> %s = %s", r.From, r.To, r.Interval)
}

var Pitch = cli.Command{
	Name:      "pitch",
	Aliases:   []string{"p"},
	Usage:     "Shows the offset of a pitch from A4, or the interval between two pitches",
	ArgsUsage: "<pitch> [<pitch>]",
	Flags:     flags(),
	Action: func(ctx *cli.Context) error {
		if err := setup(ctx, 1); err != nil {
			return err
		}
		args := ctx.Args()
		from, err := pitch.ParseNamedPitch(args[0])
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		log.Debugf("%s: %+v", args[0], from)
		if len(args) < 2 {
			return output(ctx, pitchResult{Pitch: from, Standard: from.ToStandardPitch()})
		}
		if 2 < len(args) {
			log.Warnf("ignoring extra arguments: %v", args[2:])
		}
		to, err := pitch.ParseNamedPitch(args[1])
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		log.Debugf("%s: %+v", args[1], to)
		return output(ctx, pitchIntervalResult{From: from, To: to, Interval: to.MinusPitch(from)})
	},
}
