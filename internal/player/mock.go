package player

import (
	"time"

	"github.com/cockroachdb/errors"
)

// PlayCall records one Play invocation on the Mock.
type PlayCall struct {
	Path  string
	Start time.Duration
}

// Mock is a test double for Engine driven by a virtual clock: reported
// position only moves when Advance is called.
type Mock struct {
	state   State
	loaded  string
	busy    bool
	start   time.Duration
	elapsed time.Duration
	level   float64

	lengths  map[string]time.Duration
	loadErrs map[string]error
	playErr  error

	loadCalls []string
	playCalls []PlayCall
	closed    bool
}

// NewMock creates a new mock engine for testing.
func NewMock() *Mock {
	return &Mock{
		state:    Stopped,
		level:    1,
		lengths:  make(map[string]time.Duration),
		loadErrs: make(map[string]error),
	}
}

func (m *Mock) Load(path string) error {
	m.loadCalls = append(m.loadCalls, path)
	m.Stop()
	if err := m.loadErrs[path]; err != nil {
		m.loaded = ""
		return err
	}
	m.loaded = path
	return nil
}

func (m *Mock) Play(start time.Duration) error {
	if m.loaded == "" {
		return ErrNotLoaded
	}
	if m.playErr != nil {
		return m.playErr
	}
	m.playCalls = append(m.playCalls, PlayCall{Path: m.loaded, Start: start})
	m.state = Playing
	m.busy = true
	m.start = start
	m.elapsed = 0
	return nil
}

func (m *Mock) Pause() {
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Unpause() {
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) Stop() {
	m.state = Stopped
	m.busy = false
	m.elapsed = 0
}

func (m *Mock) SetVolume(level float64) { m.level = clampLevel(level) }

func (m *Mock) Position() time.Duration {
	if m.state == Stopped {
		return 0
	}
	return m.elapsed
}

func (m *Mock) Busy() bool { return m.busy }

func (m *Mock) Close() error {
	m.Stop()
	m.closed = true
	return nil
}

// Test helpers

// Advance moves the virtual clock forward while playing. When the loaded
// track has a registered length, reaching it ends the stream.
func (m *Mock) Advance(d time.Duration) {
	if m.state != Playing || !m.busy {
		return
	}
	m.elapsed += d
	if length, ok := m.lengths[m.loaded]; ok && m.start+m.elapsed >= length {
		m.elapsed = max(length-m.start, 0)
		m.busy = false
	}
}

// StreamPosition returns the simulated position within the loaded stream.
func (m *Mock) StreamPosition() time.Duration {
	return m.start + m.elapsed
}

// SimulateFinished ends the current stream as if it reached its last sample.
func (m *Mock) SimulateFinished() { m.busy = false }

func (m *Mock) SetLength(path string, d time.Duration) { m.lengths[path] = d }

func (m *Mock) SetLoadError(path string, err error) { m.loadErrs[path] = err }

func (m *Mock) SetPlayError(err error) { m.playErr = err }

func (m *Mock) State() State { return m.state }

func (m *Mock) Loaded() string { return m.loaded }

func (m *Mock) Level() float64 { return m.level }

func (m *Mock) LoadCalls() []string { return m.loadCalls }

func (m *Mock) PlayCalls() []PlayCall { return m.playCalls }

func (m *Mock) Closed() bool { return m.closed }

// LastPlay returns the most recent Play call.
func (m *Mock) LastPlay() (PlayCall, error) {
	if len(m.playCalls) == 0 {
		return PlayCall{}, errors.New("no play calls")
	}
	return m.playCalls[len(m.playCalls)-1], nil
}
