package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/hop/internal/bookmark"
	"github.com/standardbeagle/hop/internal/config"
	"github.com/standardbeagle/hop/internal/daemon"
	"github.com/standardbeagle/hop/internal/fuzzy"
	"github.com/standardbeagle/hop/internal/jump"
	"github.com/standardbeagle/hop/internal/scan"
	"github.com/standardbeagle/hop/internal/suggest"
	"github.com/standardbeagle/hop/internal/trace"
)

var queryCmd = &cli.Command{
	Name:      "query",
	Aliases:   []string{"q"},
	Usage:     "Print the best-matching directory for a needle",
	ArgsUsage: "<needle>",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "all",
			Aliases: []string{"a"},
			Usage:   "Print every match, best first, instead of only the best",
		},
		&cli.IntFlag{
			Name:    "limit",
			Aliases: []string{"n"},
			Usage:   "Max matches to print with --all (0 = no limit)",
		},
		&cli.BoolFlag{
			Name:  "scores",
			Usage: "Prefix each line with its match score",
		},
		&cli.BoolFlag{
			Name:  "full-path",
			Usage: "Match against the root-relative path instead of the directory name",
		},
	},
	Action: queryCommand,
}

// choice is the command-level view of a ranked candidate, shared between
// the daemon and direct-scan paths.
type choice struct {
	path    string
	needleV string // the haystack that matched, for tracing
	score   float64
}

func queryCommand(c *cli.Context) error {
	needle := strings.Join(c.Args().Slice(), " ")
	log := trace.FromEnv(c.Bool("verbose"))

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	store, haveStore := bookmarkStore(log)

	// An exact bookmark name wins outright; no scan needed.
	if haveStore && needle != "" && !c.Bool("all") {
		if path, ok, err := store.Resolve(needle); err != nil {
			return err
		} else if ok {
			log.Tracef("bookmark %q -> %s", needle, path)
			fmt.Fprintln(c.App.Writer, path)
			return nil
		}
	}

	fullPath := c.Bool("full-path")
	choices, err := rankedChoices(c, cfg, needle, fullPath, log)
	if err != nil {
		return err
	}

	if haveStore {
		choices = mergeBookmarks(choices, store, needle, fullPath)
	}

	traceTop(log, needle, choices)

	if len(choices) == 0 {
		return noMatch(c, cfg, store, haveStore, needle, log)
	}

	limit := len(choices)
	if !c.Bool("all") {
		limit = 1
	} else if n := c.Int("limit"); n > 0 && n < limit {
		limit = n
	}
	for _, ch := range choices[:limit] {
		if c.Bool("scores") {
			fmt.Fprintf(c.App.Writer, "%.3f\t%s\n", ch.score, ch.path)
		} else {
			fmt.Fprintln(c.App.Writer, ch.path)
		}
	}
	return nil
}

// rankedChoices asks a running daemon first and falls back to a direct
// scan-and-rank. Daemon failures are traced, never fatal.
func rankedChoices(c *cli.Context, cfg *config.Config, needle string, fullPath bool, log trace.Logger) ([]choice, error) {
	if sock, err := daemon.SocketPath(); err == nil && daemon.Available(sock) {
		resp, err := daemon.Query(sock, daemon.Request{Needle: needle, FullPath: fullPath})
		if err == nil {
			log.Tracef("daemon answered with %d choices", len(resp))
			out := make([]choice, len(resp))
			for i, ch := range resp {
				out[i] = choice{path: ch.Path, needleV: ch.Name, score: ch.Score}
			}
			return out, nil
		}
		log.Tracef("daemon query failed, scanning directly: %v", err)
	}

	entries, err := candidates(c, cfg, log)
	if err != nil {
		return nil, err
	}
	results := jump.Rank(needle, entries, fullPath)
	out := make([]choice, len(results))
	for i, r := range results {
		hay := r.Entry.Name
		if fullPath {
			hay = r.Entry.Rel
		}
		out[i] = choice{path: r.Entry.Path, needleV: hay, score: r.Score}
	}
	return out, nil
}

// mergeBookmarks ranks bookmark names through the same engine and merges
// them into the candidate choices by score.
func mergeBookmarks(choices []choice, store bookmark.Store, needle string, fullPath bool) []choice {
	all, err := store.All()
	if err != nil || len(all) == 0 {
		return choices
	}

	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]scan.Entry, len(names))
	for i, name := range names {
		entries[i] = scan.Entry{Path: all[name], Name: name, Rel: name}
	}
	for _, r := range jump.Rank(needle, entries, fullPath) {
		choices = append(choices, choice{path: r.Entry.Path, needleV: r.Entry.Name, score: r.Score})
	}

	// Stable: on equal scores, scan candidates stay ahead of bookmarks.
	sort.SliceStable(choices, func(a, b int) bool {
		return choices[a].score > choices[b].score
	})
	return choices
}

// traceTop logs the top choices with their backtracked match positions.
// This is the diagnostics hook: invoked by the command, never by the engine.
func traceTop(log trace.Logger, needle string, choices []choice) {
	const topN = 5
	for i, ch := range choices {
		if i >= topN {
			break
		}
		log.Tracef("%d. %s score=%.3f positions=%v",
			i+1, ch.path, ch.score, fuzzy.Positions(needle, ch.needleV))
	}
}

func noMatch(c *cli.Context, cfg *config.Config, store bookmark.Store, haveStore bool, needle string, log trace.Logger) error {
	msg := fmt.Sprintf("no match for %q", needle)

	if cfg.Suggest.Enabled {
		pool := suggestionPool(c, cfg, store, haveStore, log)
		if near, ok := suggest.Nearest(needle, pool, cfg.Suggest.Threshold); ok {
			msg += fmt.Sprintf(" (did you mean %q?)", near)
		}
	}
	return cli.Exit(msg, 1)
}

func suggestionPool(c *cli.Context, cfg *config.Config, store bookmark.Store, haveStore bool, log trace.Logger) []string {
	var pool []string
	if entries, err := candidates(c, cfg, log); err == nil {
		for _, e := range entries {
			pool = append(pool, e.Name)
		}
	}
	if haveStore {
		if names, err := store.Names(); err == nil {
			pool = append(pool, names...)
		}
	}
	return pool
}

func bookmarkStore(log trace.Logger) (bookmark.Store, bool) {
	path, err := bookmark.DefaultPath()
	if err != nil {
		log.Tracef("bookmarks unavailable: %v", err)
		return bookmark.Store{}, false
	}
	return bookmark.Store{Path: path}, true
}
