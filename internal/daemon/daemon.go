// Package daemon keeps the candidate list warm for interactive callers.
//
// `hop serve` scans once, watches every root with fsnotify, and answers
// ranking queries over a unix socket. Clients that find no socket simply
// scan directly; the daemon is an optimization, never a requirement. A
// client that issues a new query before reading an old reply just discards
// the stale one — last-write-wins, no cancellation protocol.
package daemon

import (
	"os"
	"path/filepath"
)

// Request is one ranking query. Requests and responses are single
// newline-delimited JSON values per connection.
type Request struct {
	Needle   string `json:"needle"`
	Limit    int    `json:"limit,omitempty"`
	FullPath bool   `json:"full_path,omitempty"`
}

// Choice is one ranked candidate in a Response.
type Choice struct {
	Path  string  `json:"path"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Response carries the ranked choices, best first.
type Response struct {
	Choices []Choice `json:"choices"`
	Err     string   `json:"error,omitempty"`
}

// SocketPath returns where the daemon listens: the user runtime dir when
// the platform has one, otherwise the user cache dir.
func SocketPath() (string, error) {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, "hop.sock"), nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "hop", "hop.sock"), nil
}
