package daemon

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"time"
)

// Query asks a running daemon to rank its candidates. Callers should treat
// any error as "no daemon" and fall back to a direct scan.
func Query(socketPath string, req Request) ([]Choice, error) {
	conn, err := net.DialTimeout("unix", socketPath, time.Second)
	if err != nil {
		return nil, fmt.Errorf("dial daemon: %w", err)
	}
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(5 * time.Second))

	if err := json.NewEncoder(conn).Encode(req); err != nil {
		return nil, fmt.Errorf("send query: %w", err)
	}

	var resp Response
	if err := json.NewDecoder(conn).Decode(&resp); err != nil {
		return nil, fmt.Errorf("read reply: %w", err)
	}
	if resp.Err != "" {
		return nil, errors.New(resp.Err)
	}
	return resp.Choices, nil
}

// Available reports whether a daemon socket exists at socketPath. It does
// not guarantee the daemon answers; Query errors still need handling.
func Available(socketPath string) bool {
	conn, err := net.DialTimeout("unix", socketPath, 100*time.Millisecond)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
