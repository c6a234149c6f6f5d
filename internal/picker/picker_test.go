package picker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickFirstLine(t *testing.T) {
	// head -n1 behaves like a picker that always takes the top candidate.
	p := Picker{Command: "head", Args: []string{"-n1"}}

	got, err := p.Pick(context.Background(), []string{"/srv/alpha", "/srv/beta"})
	require.NoError(t, err)
	assert.Equal(t, "/srv/alpha", got)
}

func TestPickCancelled(t *testing.T) {
	p := Picker{Command: "false"}

	_, err := p.Pick(context.Background(), []string{"/srv/alpha"})
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestPickEmptySelection(t *testing.T) {
	p := Picker{Command: "true"}

	_, err := p.Pick(context.Background(), []string{"/srv/alpha"})
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestPickMissingBinary(t *testing.T) {
	p := Picker{Command: "hop-test-no-such-picker"}

	_, err := p.Pick(context.Background(), []string{"/srv/alpha"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCancelled)
}

func TestPickNoCommand(t *testing.T) {
	var p Picker
	_, err := p.Pick(context.Background(), []string{"/srv/alpha"})
	assert.Error(t, err)
}

func TestPickNoCandidates(t *testing.T) {
	p := Picker{Command: "cat"}
	_, err := p.Pick(context.Background(), nil)
	assert.Error(t, err)
}
