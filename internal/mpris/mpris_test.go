//go:build linux

package mpris

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/ripple/internal/playback"
)

type recorder struct {
	cmds []Command
}

func (r *recorder) dispatch(c Command) { r.cmds = append(r.cmds, c) }

func newPlayerAdapter(st playback.Status) (*playerAdapter, *recorder) {
	rec := &recorder{}
	return &playerAdapter{
		status:   func() playback.Status { return st },
		dispatch: rec.dispatch,
	}, rec
}

func TestCommandsAreDispatched(t *testing.T) {
	p, rec := newPlayerAdapter(playback.Status{})

	require.NoError(t, p.PlayPause())
	require.NoError(t, p.Play())
	require.NoError(t, p.Pause())
	require.NoError(t, p.Stop())
	require.NoError(t, p.Next())
	require.NoError(t, p.Previous())
	require.NoError(t, p.Seek(types.Microseconds(2_000_000)))
	require.NoError(t, p.SetPosition("", types.Microseconds(30_000_000)))
	require.NoError(t, p.SetVolume(0.25))

	assert.Equal(t, []Command{
		{Action: ActionPlayPause},
		{Action: ActionPlay},
		{Action: ActionPause},
		{Action: ActionStop},
		{Action: ActionNext},
		{Action: ActionPrevious},
		{Action: ActionSeek, Offset: 2 * time.Second},
		{Action: ActionSetPosition, Position: 30 * time.Second},
		{Action: ActionSetVolume, Volume: 0.25},
	}, rec.cmds)
}

func TestPlaybackStatus(t *testing.T) {
	tests := []struct {
		state playback.State
		want  types.PlaybackStatus
	}{
		{playback.StateStopped, types.PlaybackStatusStopped},
		{playback.StatePlaying, types.PlaybackStatusPlaying},
		{playback.StatePaused, types.PlaybackStatusPaused},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			p, _ := newPlayerAdapter(playback.Status{State: tt.state})
			got, err := p.PlaybackStatus()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMetadata_NothingLoaded(t *testing.T) {
	p, _ := newPlayerAdapter(playback.Status{})
	meta, err := p.Metadata()
	require.NoError(t, err)
	assert.Equal(t, types.Metadata{}, meta)
}

func TestMetadata_LoadedTrack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.mp3")
	cover := filepath.Join(dir, "cover.jpg")
	require.NoError(t, os.WriteFile(cover, []byte{0xFF, 0xD8, 0xFF}, 0o600))

	p, _ := newPlayerAdapter(playback.Status{
		State:    playback.StatePlaying,
		Len:      1,
		Track:    &playback.Track{Path: path, Title: "Song A", Artist: "Artist A", Album: "Album A"},
		Duration: 90 * time.Second,
	})

	meta, err := p.Metadata()
	require.NoError(t, err)
	assert.Equal(t, dbus.ObjectPath(trackID(path)), meta.TrackId)
	assert.Equal(t, "Song A", meta.Title)
	assert.Equal(t, []string{"Artist A"}, meta.Artist)
	assert.Equal(t, "Album A", meta.Album)
	assert.Equal(t, types.Microseconds(90_000_000), meta.Length)
	assert.Equal(t, "file://"+cover, meta.ArtUrl)
}

func TestQueries(t *testing.T) {
	p, _ := newPlayerAdapter(playback.Status{
		Len:      2,
		Track:    &playback.Track{Path: "/a.mp3"},
		Position: 1500 * time.Millisecond,
		Duration: time.Minute,
		Volume:   0.6,
	})

	pos, _ := p.Position()
	assert.Equal(t, int64(1_500_000), pos)
	vol, _ := p.Volume()
	assert.InDelta(t, 0.6, vol, 1e-9)
	canNext, _ := p.CanGoNext()
	assert.True(t, canNext)
	canSeek, _ := p.CanSeek()
	assert.True(t, canSeek)
}

func TestQueries_EmptyPlaylist(t *testing.T) {
	p, _ := newPlayerAdapter(playback.Status{})

	canPlay, _ := p.CanPlay()
	assert.False(t, canPlay)
	canSeek, _ := p.CanSeek()
	assert.False(t, canSeek)
}
