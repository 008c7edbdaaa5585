package playback

import (
	"time"

	"github.com/llehouerou/ripple/internal/tags"
)

// Track is a snapshot of the loaded track with its resolved metadata.
// It is a copy, not a reference to playlist.Track.
type Track struct {
	Index    int
	Path     string
	Title    string
	Artist   string
	Album    string
	Year     string
	Duration time.Duration
}

// NowPlaying is what the UI displays for the loaded track.
type NowPlaying struct {
	Track
	Picture     []byte
	PictureMIME string
}

func newNowPlaying(index int, path string, info tags.Info, d time.Duration) NowPlaying {
	return NowPlaying{
		Track: Track{
			Index:    index,
			Path:     path,
			Title:    info.Title,
			Artist:   info.Artist,
			Album:    info.Album,
			Year:     info.Year,
			Duration: d,
		},
		Picture:     info.Picture,
		PictureMIME: info.PictureMIME,
	}
}
