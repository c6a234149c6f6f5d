package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/hop/internal/trace"
)

var scanCmd = &cli.Command{
	Name:  "scan",
	Usage: "Print every candidate directory the current options produce",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "rel",
			Usage: "Print root-relative paths instead of absolute ones",
		},
	},
	Action: scanCommand,
}

func scanCommand(c *cli.Context) error {
	log := trace.FromEnv(c.Bool("verbose"))

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	entries, err := candidates(c, cfg, log)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if c.Bool("rel") {
			fmt.Fprintln(c.App.Writer, e.Rel)
		} else {
			fmt.Fprintln(c.App.Writer, e.Path)
		}
	}
	return nil
}
