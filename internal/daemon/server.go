package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/standardbeagle/hop/internal/jump"
	"github.com/standardbeagle/hop/internal/scan"
	"github.com/standardbeagle/hop/internal/trace"
)

// DefaultDebounce batches filesystem event bursts (a git checkout touches
// hundreds of directories) into one rescan.
const DefaultDebounce = 500 * time.Millisecond

// Server owns the warm candidate list and the socket.
type Server struct {
	opts     scan.Options
	debounce time.Duration
	log      trace.Logger

	mu      sync.RWMutex
	entries []scan.Entry
}

// NewServer returns an unstarted server. log must not be nil; use trace.Nop.
func NewServer(opts scan.Options, log trace.Logger) *Server {
	return &Server{
		opts:     opts,
		debounce: DefaultDebounce,
		log:      log,
	}
}

// Run scans, listens on socketPath, and serves until ctx is cancelled. The
// socket is removed on the way out.
func (s *Server) Run(ctx context.Context, socketPath string) error {
	entries, err := scan.Scan(ctx, s.opts)
	if err != nil {
		return fmt.Errorf("initial scan: %w", err)
	}
	s.setEntries(entries)

	if err := os.MkdirAll(filepath.Dir(socketPath), 0o755); err != nil {
		return fmt.Errorf("create socket dir: %w", err)
	}
	// A previous daemon may have died without cleanup.
	_ = os.Remove(socketPath)

	ln, err := net.Listen("unix", socketPath)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", socketPath, err)
	}
	defer os.Remove(socketPath)
	defer ln.Close()

	s.log.Tracef("daemon listening on %s with %d candidates", socketPath, len(entries))

	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := s.watch(watchCtx); err != nil {
			s.log.Tracef("watcher stopped: %v", err)
		}
	}()

	acceptDone := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case <-ctx.Done():
		case <-acceptDone:
		}
		ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			if errors.Is(err, net.ErrClosed) {
				break
			}
			s.log.Tracef("accept: %v", err)
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.handle(conn)
		}()
	}

	close(acceptDone)
	stopWatch()
	wg.Wait()
	return nil
}

func (s *Server) handle(conn net.Conn) {
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(10 * time.Second))

	var req Request
	if err := json.NewDecoder(conn).Decode(&req); err != nil {
		_ = json.NewEncoder(conn).Encode(Response{Err: "bad request: " + err.Error()})
		return
	}

	results := jump.Rank(req.Needle, s.snapshot(), req.FullPath)
	if req.Limit > 0 && len(results) > req.Limit {
		results = results[:req.Limit]
	}

	resp := Response{Choices: make([]Choice, len(results))}
	for i, r := range results {
		resp.Choices[i] = Choice{Path: r.Entry.Path, Name: r.Entry.Name, Score: r.Score}
	}
	if err := json.NewEncoder(conn).Encode(resp); err != nil {
		s.log.Tracef("write response: %v", err)
	}
}

// watch rescans after debounced directory-shape events under any root.
func (s *Server) watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	s.addWatches(watcher)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(s.debounce)
				timerC = timer.C
			} else {
				timer.Reset(s.debounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.log.Tracef("watch error: %v", err)

		case <-timerC:
			timer = nil
			timerC = nil
			s.rescan(ctx, watcher)
		}
	}
}

func (s *Server) rescan(ctx context.Context, watcher *fsnotify.Watcher) {
	start := time.Now()
	entries, err := scan.Scan(ctx, s.opts)
	if err != nil {
		s.log.Tracef("rescan failed: %v", err)
		return
	}
	s.setEntries(entries)
	s.addWatches(watcher)
	s.log.Tracef("rescan: %d candidates in %s", len(entries), time.Since(start))
}

// addWatches registers every root and every known candidate directory.
// fsnotify has no recursive mode, so new directories get picked up on the
// rescan their parent's event triggers.
func (s *Server) addWatches(watcher *fsnotify.Watcher) {
	for _, root := range s.opts.Roots {
		if err := watcher.Add(root); err != nil {
			s.log.Tracef("watch %s: %v", root, err)
		}
	}
	for _, e := range s.snapshot() {
		// Re-adding an existing watch is a no-op; removed dirs error and
		// are skipped.
		_ = watcher.Add(e.Path)
	}
}

func (s *Server) setEntries(entries []scan.Entry) {
	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()
}

func (s *Server) snapshot() []scan.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries
}
