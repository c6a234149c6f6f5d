// Package config loads hop's KDL configuration.
//
// Configuration is looked up at ./.hop.kdl, then $XDG_CONFIG_HOME/hop/config.kdl
// (falling back to ~/.config). A missing file yields defaults; a malformed
// file is an error. CLI flags override whatever was loaded.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

type Config struct {
	Search  Search
	Picker  Picker
	Suggest Suggest
}

type Search struct {
	Roots            []string
	MaxDepth         int // levels below each root; 0 = unbounded
	Hidden           bool
	FollowSymlinks   bool
	Exclude          []string
	RespectGitignore bool
	CacheTTLSec      int // 0 disables the scan cache
}

type Picker struct {
	Command string
	Args    []string
}

type Suggest struct {
	Enabled   bool
	Threshold float64 // Jaro-Winkler similarity floor for "did you mean"
}

// Default returns the configuration used when no file is present: scan the
// home directory four levels deep, skip dependency and VCS trees, keep scan
// results warm for five minutes.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		Search: Search{
			Roots:            []string{home},
			MaxDepth:         4,
			Exclude:          []string{"**/node_modules", "**/vendor"},
			RespectGitignore: true,
			CacheTTLSec:      300,
		},
		Picker: Picker{
			Command: "fzf",
		},
		Suggest: Suggest{
			Enabled:   true,
			Threshold: 0.75,
		},
	}
}

// Load reads configuration from path. An empty path searches the standard
// locations and falls back to defaults when nothing is found; an explicit
// path that cannot be read is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = discover()
		if path == "" {
			return Default(), nil
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if explicit {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return Default(), nil
	}

	cfg, err := parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// discover returns the first config file that exists, or "".
func discover() string {
	if _, err := os.Stat(".hop.kdl"); err == nil {
		return ".hop.kdl"
	}
	if dir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(dir, "hop", "config.kdl")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Validate rejects configurations the rest of the tool cannot work with.
func (c *Config) Validate() error {
	if len(c.Search.Roots) == 0 {
		return fmt.Errorf("search must name at least one root")
	}
	if c.Search.MaxDepth < 0 {
		return fmt.Errorf("max_depth must be >= 0, got %d", c.Search.MaxDepth)
	}
	if c.Suggest.Threshold < 0 || c.Suggest.Threshold > 1 {
		return fmt.Errorf("suggest threshold must be within [0, 1], got %v", c.Suggest.Threshold)
	}
	if c.Picker.Command == "" {
		return fmt.Errorf("picker command must not be empty")
	}
	return nil
}

func parse(content string) (*Config, error) {
	cfg := Default()

	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return nil, err
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "search":
			var roots, exclude []string
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "root":
					roots = append(roots, collectStringArgs(cn)...)
				case "exclude":
					exclude = append(exclude, collectStringArgs(cn)...)
				case "max_depth":
					if v, ok := firstIntArg(cn); ok {
						cfg.Search.MaxDepth = v
					}
				case "hidden":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Search.Hidden = b
					}
				case "follow_symlinks":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Search.FollowSymlinks = b
					}
				case "respect_gitignore":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Search.RespectGitignore = b
					}
				case "cache_ttl_sec":
					if v, ok := firstIntArg(cn); ok {
						cfg.Search.CacheTTLSec = v
					}
				}
			}
			if len(roots) > 0 {
				cfg.Search.Roots = expandAll(roots)
			}
			if len(exclude) > 0 {
				cfg.Search.Exclude = exclude
			}
		case "picker":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "command":
					if s, ok := firstStringArg(cn); ok {
						cfg.Picker.Command = s
					}
				case "args":
					cfg.Picker.Args = collectStringArgs(cn)
				}
			}
		case "suggest":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "enabled":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Suggest.Enabled = b
					}
				case "threshold":
					if f, ok := firstFloatArg(cn); ok {
						cfg.Suggest.Threshold = f
					}
				}
			}
		}
		// Unknown top-level nodes are ignored so configs stay forward
		// compatible.
	}

	return cfg, nil
}

// ExpandHome resolves a leading "~/" against the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

func expandAll(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = ExpandHome(p)
	}
	return out
}

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}

func firstFloatArg(n *document.Node) (float64, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// collectStringArgs gathers string values from a node's arguments, or from
// its children when the block form is used:
//
//	exclude "**/node_modules" "**/vendor"
//	exclude { "**/node_modules"; "**/vendor" }
func collectStringArgs(n *document.Node) []string {
	if n == nil {
		return nil
	}
	out := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		if s, ok := a.Value.(string); ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 && len(n.Children) > 0 {
		for _, child := range n.Children {
			if s, ok := firstStringArg(child); ok {
				out = append(out, s)
			} else if child.Name != nil {
				if s, ok := child.Name.Value.(string); ok {
					out = append(out, s)
				}
			}
		}
	}
	return out
}
