//go:build unix

package stderr

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestCaptureForwardsToLogger(t *testing.T) {
	var out syncBuffer
	logger := zerolog.New(&out)

	if err := Start(logger); err != nil {
		t.Skipf("stderr capture unavailable: %v", err)
	}
	_, _ = os.Stderr.WriteString("ALSA lib pcm.c: underrun occurred\n\n")
	Stop()

	got := out.String()
	if !strings.Contains(got, "underrun occurred") {
		t.Errorf("log output = %q, want captured line", got)
	}
	if !strings.Contains(got, `"component":"stderr"`) {
		t.Errorf("log output = %q, want component field", got)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("blank lines should be dropped, got %q", got)
	}
}

func TestStopWithoutStart(t *testing.T) {
	Stop()
}
