package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvents_TrackChange(t *testing.T) {
	f := newFixture(t, nil, "a.mp3", "b.mp3")
	sub := f.c.Subscribe()

	require.NoError(t, f.c.Select(0))
	require.NoError(t, f.c.Next())

	first := <-sub.TrackChanged
	assert.Nil(t, first.Previous)
	assert.Equal(t, -1, first.PreviousIndex)
	assert.Equal(t, "a.mp3", first.Current.Path)

	second := <-sub.TrackChanged
	require.NotNil(t, second.Previous)
	assert.Equal(t, "a.mp3", second.Previous.Path)
	assert.Equal(t, "b.mp3", second.Current.Path)
	assert.Equal(t, 1, second.Index)
	assert.Equal(t, "title:b.mp3", second.Current.Title)
}

func TestEvents_StateChange(t *testing.T) {
	f := newFixture(t, nil, "a.mp3")
	sub := f.c.Subscribe()

	require.NoError(t, f.c.PlayPause())
	require.NoError(t, f.c.PlayPause())
	f.c.Stop()

	assert.Equal(t, StateChange{Previous: StateStopped, Current: StatePlaying}, <-sub.StateChanged)
	assert.Equal(t, StateChange{Previous: StatePlaying, Current: StatePaused}, <-sub.StateChanged)
	assert.Equal(t, StateChange{Previous: StatePaused, Current: StateStopped}, <-sub.StateChanged)
}

func TestEvents_SeekEmitsPositionNotTrack(t *testing.T) {
	f := newFixture(t, stubDurations{"a.mp3": sec(100)}, "a.mp3")
	require.NoError(t, f.c.Select(0))
	sub := f.c.Subscribe()

	require.NoError(t, f.c.Seek(sec(42)))

	assert.Equal(t, PositionChange{Position: sec(42)}, <-sub.PositionChanged)
	select {
	case <-sub.TrackChanged:
		t.Fatal("seek must not emit a track change")
	default:
	}
}

func TestSubscription_DropsWhenFull(t *testing.T) {
	s := newSubscription()
	for range eventBuffer + 5 {
		s.sendPosition(0)
	}
	assert.Len(t, s.PositionChanged, eventBuffer)
}
