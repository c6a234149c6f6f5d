package trace

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterFormatsLines(t *testing.T) {
	var buf bytes.Buffer
	log := Writer(&buf)

	log.Tracef("ranked %d candidates", 3)
	log.Tracef("best: %s", "/srv/work")

	assert.Equal(t, "[trace] ranked 3 candidates\n[trace] best: /srv/work\n", buf.String())
}

func TestWriterConcurrent(t *testing.T) {
	var buf bytes.Buffer
	log := Writer(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			log.Tracef("line")
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestNopIsSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop.Tracef("ignored %v", struct{}{})
	})
}

func TestFromEnv(t *testing.T) {
	t.Setenv("HOP_DEBUG", "")
	assert.Equal(t, Nop, FromEnv(false))
	assert.NotEqual(t, Nop, FromEnv(true))

	t.Setenv("HOP_DEBUG", "1")
	assert.NotEqual(t, Nop, FromEnv(false))
}
