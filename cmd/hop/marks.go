package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/hop/internal/trace"
)

var markCmd = &cli.Command{
	Name:      "mark",
	Usage:     "Bookmark a directory under a name (default: the current directory)",
	ArgsUsage: "<name> [path]",
	Action:    markCommand,
}

var unmarkCmd = &cli.Command{
	Name:      "unmark",
	Usage:     "Remove a bookmark",
	ArgsUsage: "<name>",
	Action:    unmarkCommand,
}

var marksCmd = &cli.Command{
	Name:   "marks",
	Usage:  "List all bookmarks",
	Action: marksCommand,
}

func markCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("usage: hop mark <name> [path]")
	}
	name := c.Args().Get(0)

	path := c.Args().Get(1)
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolve current directory: %w", err)
		}
		path = wd
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %q: %w", path, err)
	}
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		return fmt.Errorf("%q is not a directory", abs)
	}

	store, ok := bookmarkStore(trace.FromEnv(c.Bool("verbose")))
	if !ok {
		return errors.New("bookmark storage unavailable")
	}
	if err := store.Set(name, abs); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s -> %s\n", name, abs)
	return nil
}

func unmarkCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("usage: hop unmark <name>")
	}
	store, ok := bookmarkStore(trace.FromEnv(c.Bool("verbose")))
	if !ok {
		return errors.New("bookmark storage unavailable")
	}
	return store.Delete(c.Args().First())
}

func marksCommand(c *cli.Context) error {
	store, ok := bookmarkStore(trace.FromEnv(c.Bool("verbose")))
	if !ok {
		return errors.New("bookmark storage unavailable")
	}
	all, err := store.All()
	if err != nil {
		return err
	}

	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(c.App.Writer, "%s\t%s\n", name, all[name])
	}
	return nil
}
