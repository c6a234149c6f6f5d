package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/hop/internal/shell"
)

var initCmd = &cli.Command{
	Name:      "init",
	Usage:     "Print shell integration (eval \"$(hop init bash)\")",
	ArgsUsage: "<bash|zsh|fish>",
	Action:    initCommand,
}

func initCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("usage: hop init <bash|zsh|fish>")
	}
	snippet, err := shell.Init(c.Args().First())
	if err != nil {
		return err
	}
	fmt.Fprint(c.App.Writer, snippet)
	return nil
}
