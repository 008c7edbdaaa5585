package errmsg

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		err  error
		want string
	}{
		{"nil error", OpPlaybackStart, nil, ""},
		{"playback", OpPlaybackStart, errors.New("no audio device"), "Failed to start playback: no audio device"},
		{"seek", OpPlaybackSeek, errors.New("stream closed"), "Failed to seek: stream closed"},
		{
			"keeps the whole chain",
			OpPlaylistAdd,
			errors.Wrap(errors.New("permission denied"), "stat /music"),
			"Failed to add files: stat /music: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.op, tt.err))
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name    string
		op      Op
		subject string
		err     error
		want    string
	}{
		{"nil error", OpPlaybackLoad, "song.mp3", nil, ""},
		{"no subject", OpPlaybackLoad, "", errors.New("bad header"), "Failed to load track: bad header"},
		{"with subject", OpPlaybackLoad, "song.mp3", errors.New("bad header"), "Failed to load track 'song.mp3': bad header"},
		{
			"drops wrap prefixes",
			OpPlaybackLoad,
			"song.mp3",
			errors.Wrap(errors.Wrap(errors.New("bad header"), "decode song.mp3"), "load song.mp3"),
			"Failed to load track 'song.mp3': bad header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatWith(tt.op, tt.subject, tt.err))
		})
	}
}
