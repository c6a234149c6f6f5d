package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/hop/internal/config"
	"github.com/standardbeagle/hop/internal/scan"
	"github.com/standardbeagle/hop/internal/trace"
	"github.com/standardbeagle/hop/internal/version"
)

func main() {
	app := &cli.App{
		Name:                   "hop",
		Usage:                  "Fuzzy directory jumper",
		Version:                version.Version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path (default: ./.hop.kdl, then the user config dir)",
			},
			&cli.StringSliceFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "Search root (repeatable, overrides config)",
			},
			&cli.IntFlag{
				Name:  "max-depth",
				Usage: "Levels below each root to scan (0 = unbounded)",
			},
			&cli.BoolFlag{
				Name:  "hidden",
				Usage: "Descend into dot-directories",
			},
			&cli.StringSliceFlag{
				Name:    "exclude",
				Aliases: []string{"e"},
				Usage:   "Exclude directories matching glob (repeatable, e.g. --exclude '**/node_modules')",
			},
			&cli.BoolFlag{
				Name:  "no-cache",
				Usage: "Skip the scan cache and walk the filesystem",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Trace ranking decisions to stderr",
			},
		},
		Commands: []*cli.Command{
			queryCmd,
			scanCmd,
			pickCmd,
			markCmd,
			unmarkCmd,
			marksCmd,
			initCmd,
			serveCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "hop: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads configuration and applies CLI flag overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if roots := c.StringSlice("root"); len(roots) > 0 {
		expanded := make([]string, len(roots))
		for i, r := range roots {
			expanded[i] = config.ExpandHome(r)
		}
		cfg.Search.Roots = expanded
	}
	if c.IsSet("max-depth") {
		cfg.Search.MaxDepth = c.Int("max-depth")
	}
	if c.Bool("hidden") {
		cfg.Search.Hidden = true
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Search.Exclude = append(cfg.Search.Exclude, excludes...)
	}
	return cfg, nil
}

func scanOptions(cfg *config.Config) scan.Options {
	return scan.Options{
		Roots:            cfg.Search.Roots,
		MaxDepth:         cfg.Search.MaxDepth,
		Hidden:           cfg.Search.Hidden,
		FollowSymlinks:   cfg.Search.FollowSymlinks,
		Exclude:          cfg.Search.Exclude,
		RespectGitignore: cfg.Search.RespectGitignore,
	}
}

// candidates returns the scan entries for the current options, using the
// scan cache when allowed. Cache failures degrade to a fresh walk.
func candidates(c *cli.Context, cfg *config.Config, log trace.Logger) ([]scan.Entry, error) {
	opts := scanOptions(cfg)

	var cache scan.Cache
	if !c.Bool("no-cache") && cfg.Search.CacheTTLSec > 0 {
		if dir, err := scan.DefaultCacheDir(); err == nil {
			cache = scan.Cache{
				Dir: dir,
				TTL: time.Duration(cfg.Search.CacheTTLSec) * time.Second,
			}
		}
	}

	if entries, ok := cache.Load(opts); ok {
		log.Tracef("scan cache hit: %d candidates", len(entries))
		return entries, nil
	}

	start := time.Now()
	entries, err := scan.Scan(c.Context, opts)
	if err != nil {
		return nil, err
	}
	log.Tracef("scanned %d candidates in %s", len(entries), time.Since(start))

	if err := cache.Store(opts, entries); err != nil {
		log.Tracef("scan cache store failed: %v", err)
	}
	return entries, nil
}
