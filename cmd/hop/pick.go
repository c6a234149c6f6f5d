package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/hop/internal/picker"
	"github.com/standardbeagle/hop/internal/trace"
)

var pickCmd = &cli.Command{
	Name:      "pick",
	Usage:     "Choose a directory with an external interactive picker",
	ArgsUsage: "[needle]",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "full-path",
			Usage: "Rank pre-filter against root-relative paths",
		},
	},
	Action: pickCommand,
}

// pickCommand hands the candidate list to an external picker (fzf by
// default). A needle argument pre-ranks the list so the picker opens with
// the engine's best guesses on top; with no needle the picker gets the raw
// scan order.
func pickCommand(c *cli.Context) error {
	needle := c.Args().First()
	log := trace.FromEnv(c.Bool("verbose"))

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	choices, err := rankedChoices(c, cfg, needle, c.Bool("full-path"), log)
	if err != nil {
		return err
	}
	if len(choices) == 0 {
		return cli.Exit(fmt.Sprintf("no match for %q", needle), 1)
	}

	lines := make([]string, len(choices))
	for i, ch := range choices {
		lines[i] = ch.path
	}

	p := picker.Picker{Command: cfg.Picker.Command, Args: cfg.Picker.Args}
	selection, err := p.Pick(c.Context, lines)
	if err != nil {
		if errors.Is(err, picker.ErrCancelled) {
			return cli.Exit("", 130)
		}
		return err
	}

	fmt.Fprintln(c.App.Writer, selection)
	return nil
}
