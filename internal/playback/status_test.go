package playback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{-time.Second, "0:00"},
		{999 * time.Millisecond, "0:00"},
		{sec(65), "1:05"},
		{sec(68), "1:08"},
		{sec(150), "2:30"},
		{sec(200), "3:20"},
		{sec(3600), "60:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTime(tt.in), tt.in.String())
	}
}

func TestStatus_Snapshot(t *testing.T) {
	f := newFixture(t, stubDurations{"a.mp3": sec(90)}, "a.mp3", "b.mp3")

	st := f.c.Status()
	assert.Equal(t, StateStopped, st.State)
	assert.Nil(t, st.Track)
	assert.Equal(t, 2, st.Len)

	require.NoError(t, f.c.Select(0))
	f.playFor(sec(4))

	st = f.c.Status()
	assert.Equal(t, StatePlaying, st.State)
	require.NotNil(t, st.Track)
	assert.Equal(t, "a.mp3", st.Track.Path)
	assert.Equal(t, sec(4), st.Position)
	assert.Equal(t, sec(90), st.Duration)
}

func TestStatus_RefreshSeesNewTracks(t *testing.T) {
	f := newFixture(t, nil, "a.mp3")
	f.pl.Add("b.mp3", "c.mp3")

	assert.Equal(t, 1, f.c.Status().Len)
	f.c.Refresh()
	assert.Equal(t, 3, f.c.Status().Len)
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateStopped, "Stopped"},
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{State(99), "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.state.String())
	}
	assert.True(t, StatePaused.IsActive())
	assert.False(t, StateStopped.IsActive())
}
