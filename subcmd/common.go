package subcmd

import (
	"encoding/json"
	"fmt"

	"github.com/but80/musical/musical/log"
	"github.com/urfave/cli"
)

var commonFlags = []cli.Flag{
	cli.BoolFlag{
		Name:  "json, j",
		Usage: `Output in JSON format`,
	},
	cli.BoolFlag{
		Name:  "debug, d",
		Usage: `Show debug messages`,
	},
	cli.BoolFlag{
		Name:  "quiet, q",
		Usage: `Suppress information messages`,
	},
	cli.BoolFlag{
		Name:  "silent, Q",
		Usage: `Do not output any messages`,
	},
}

func flags(extra ...cli.Flag) []cli.Flag {
	return append(extra, commonFlags...)
}

func setup(ctx *cli.Context, minArgs int) error {
	log.SetLevel(ctx.Bool("debug"), ctx.Bool("quiet"), ctx.Bool("silent"))
	if ctx.NArg() < minArgs {
		cli.ShowCommandHelp(ctx, ctx.Command.Name)
		return cli.NewExitError(fmt.Sprintf("%s needs at least %d argument(s)", ctx.Command.Name, minArgs), 1)
	}
	return nil
}

func output(ctx *cli.Context, data fmt.Stringer) error {
	if ctx.Bool("json") {
		j, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		fmt.Fprintln(ctx.App.Writer, string(j))
	} else {
		fmt.Fprintln(ctx.App.Writer, data.String())
	}
	return nil
}
