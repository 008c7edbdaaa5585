package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/ripple/internal/config"
	"github.com/llehouerou/ripple/internal/icons"
	"github.com/llehouerou/ripple/internal/playback"
	"github.com/llehouerou/ripple/internal/player"
	"github.com/llehouerou/ripple/internal/playlist"
	"github.com/llehouerou/ripple/internal/tags"
)

func init() {
	icons.Init(string(icons.StyleNone))
}

var testSource = tags.SourceFunc(func(path string) (*tags.Metadata, error) {
	return &tags.Metadata{Title: "title:" + path, Artist: "artist", Album: "album"}, nil
})

var testDurations = tags.DurationFunc(func(string) (time.Duration, error) {
	return 3 * time.Minute, nil
})

type fakeBroadcaster struct {
	tracks, states int
	seeks          []time.Duration
}

func (f *fakeBroadcaster) TrackChanged()            { f.tracks++ }
func (f *fakeBroadcaster) StateChanged()            { f.states++ }
func (f *fakeBroadcaster) Seeked(pos time.Duration) { f.seeks = append(f.seeks, pos) }

type fakeAnnouncer struct {
	announced []playback.Track
}

func (f *fakeAnnouncer) Announce(t playback.Track) error {
	f.announced = append(f.announced, t)
	return nil
}

type harness struct {
	t        *testing.T
	m        Model
	engine   *player.Mock
	pl       *playlist.Playlist
	mpris    *fakeBroadcaster
	notifier *fakeAnnouncer
}

func newHarness(t *testing.T, paths ...string) *harness {
	t.Helper()
	cfg := config.Default()
	cfg.DefaultFolder = t.TempDir()

	engine := player.NewMock()
	pl := playlist.New()
	pl.Add(paths...)
	ctrl := playback.New(engine, pl,
		playback.WithMetadataSource(testSource),
		playback.WithDurationReader(testDurations),
		playback.WithVolume(cfg.Volume),
	)

	h := &harness{t: t, engine: engine, pl: pl, mpris: &fakeBroadcaster{}, notifier: &fakeAnnouncer{}}
	h.m = New(cfg, ctrl, pl, WithMPRIS(h.mpris), WithNotifier(h.notifier))
	h.send(tea.WindowSizeMsg{Width: 100, Height: 30})
	return h
}

// send runs msg through Update and returns the resulting command.
func (h *harness) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	next, cmd := h.m.Update(msg)
	m, ok := next.(Model)
	require.True(h.t, ok)
	h.m = m
	return cmd
}

func (h *harness) key(k string) tea.Cmd {
	h.t.Helper()
	return h.send(keyMsg(k))
}

// drain feeds n pending controller events back into the model.
func (h *harness) drain(n int) []tea.Msg {
	h.t.Helper()
	msgs := make([]tea.Msg, 0, n)
	for range n {
		msg := h.m.WatchServiceEvents()()
		msgs = append(msgs, msg)
		h.send(msg)
	}
	return msgs
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "shift+right":
		return tea.KeyMsg{Type: tea.KeyShiftRight}
	case "shift+left":
		return tea.KeyMsg{Type: tea.KeyShiftLeft}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// msgOf runs cmd and returns its message.
func msgOf(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}
