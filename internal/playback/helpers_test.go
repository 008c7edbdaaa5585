package playback

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/llehouerou/ripple/internal/player"
	"github.com/llehouerou/ripple/internal/playlist"
	"github.com/llehouerou/ripple/internal/tags"
)

var errNoDuration = errors.New("no duration")

// stubDurations returns fixed durations by path and fails for unknown paths.
type stubDurations map[string]time.Duration

func (s stubDurations) Duration(path string) (time.Duration, error) {
	d, ok := s[path]
	if !ok {
		return 0, errNoDuration
	}
	return d, nil
}

// titleSource prefixes the path to build a title.
var titleSource = tags.SourceFunc(func(path string) (*tags.Metadata, error) {
	return &tags.Metadata{Title: "title:" + path, Artist: "artist", Album: "album", Year: "2001"}, nil
})

type fixture struct {
	engine *player.Mock
	pl     *playlist.Playlist
	c      *Controller
}

func newFixture(t *testing.T, durations stubDurations, paths ...string) *fixture {
	t.Helper()
	engine := player.NewMock()
	for p, d := range durations {
		engine.SetLength(p, d)
	}
	pl := playlist.New()
	pl.Add(paths...)
	c := New(engine, pl,
		WithDurationReader(durations),
		WithMetadataSource(titleSource),
	)
	return &fixture{engine: engine, pl: pl, c: c}
}

// playFor advances the virtual clock by d and runs one tick.
func (f *fixture) playFor(d time.Duration) TickResult {
	f.engine.Advance(d)
	return f.c.Tick()
}

// absoluteMock reports an absolute position skewed from the mock stream.
type absoluteMock struct {
	*player.Mock
	skew time.Duration
}

func (a *absoluteMock) AbsolutePosition() time.Duration {
	return a.StreamPosition() + a.skew
}

func sec(n int) time.Duration { return time.Duration(n) * time.Second }
