// Package picker orchestrates an external interactive fuzzy picker such as
// fzf.
//
// The picker is a separate process, not an embedded UI: hop feeds it the
// candidate list on stdin and reads the selection from stdout, so any
// line-oriented picker works. The fuzzy engine is bypassed for this flow
// except when the caller pre-ranks the input.
package picker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrCancelled reports that the user dismissed the picker without choosing.
var ErrCancelled = errors.New("selection cancelled")

// Picker describes the external command to run.
type Picker struct {
	Command string
	Args    []string
}

// Pick runs the picker over candidates and returns the selected line.
// A missing binary, a cancelled selection, and an empty selection are all
// plain errors; nothing here panics or kills the caller.
func (p Picker) Pick(ctx context.Context, candidates []string) (string, error) {
	if p.Command == "" {
		return "", errors.New("no picker command configured")
	}
	if len(candidates) == 0 {
		return "", errors.New("nothing to pick from")
	}

	if _, err := exec.LookPath(p.Command); err != nil {
		return "", fmt.Errorf("picker %q not found in PATH: %w", p.Command, err)
	}

	cmd := exec.CommandContext(ctx, p.Command, p.Args...)
	cmd.Stdin = strings.NewReader(strings.Join(candidates, "\n") + "\n")
	// Interactive pickers draw on the terminal; stderr stays attached.
	cmd.Stderr = os.Stderr

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// fzf and friends exit non-zero on ESC / ctrl-c.
			return "", ErrCancelled
		}
		return "", fmt.Errorf("run picker %q: %w", p.Command, err)
	}

	selection := strings.TrimRight(out.String(), "\n")
	if selection == "" {
		return "", ErrCancelled
	}
	return selection, nil
}
