package main

import (
	"os"

	"github.com/but80/musical/subcmd"
	"github.com/urfave/cli"
)

var version string

func init() {
	if version == "" {
		version = "unknown"
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "musical"
	app.Version = version
	app.Usage = "Converts and combines pitches and intervals of 12-tone equal temperament"
	app.Authors = []cli.Author{
		{
			Name:  "but80",
			Email: "mersenne.sister@gmail.com",
		},
	}
	app.HelpName = "musical"

	app.Commands = []cli.Command{
		subcmd.Interval,
		subcmd.Pitch,
		subcmd.Cents,
		subcmd.Freq,
	}

	app.Action = func(ctx *cli.Context) error {
		cli.ShowAppHelp(ctx)
		return nil
	}
	return app
}

func main() {
	newApp().Run(os.Args)
}
