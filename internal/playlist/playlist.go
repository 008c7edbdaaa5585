// Package playlist holds the ordered list of tracks and the playback cursor.
package playlist

import (
	"os"
	"path/filepath"
)

// Track references one audio file in the playlist.
type Track struct {
	Path string // file path for playback
	Name string // display name: base name of Path
	Size int64  // file size in bytes, 0 if unknown
}

// NewTrack builds a Track for path.
func NewTrack(path string) Track {
	t := Track{Path: path, Name: filepath.Base(path)}
	if fi, err := os.Stat(path); err == nil {
		t.Size = fi.Size()
	}
	return t
}

// Playlist is an ordered, append-only list of tracks with a cursor.
// The cursor is a valid index whenever the playlist is non-empty.
type Playlist struct {
	tracks  []Track
	current int
}

// New creates an empty playlist.
func New() *Playlist {
	return &Playlist{
		tracks: make([]Track, 0),
	}
}

// Add appends a track for each path, in order.
func (p *Playlist) Add(paths ...string) {
	for _, path := range paths {
		p.tracks = append(p.tracks, NewTrack(path))
	}
}

// Tracks returns a copy of all tracks.
func (p *Playlist) Tracks() []Track {
	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// Track returns the track at index, or nil if out of bounds.
func (p *Playlist) Track(index int) *Track {
	if index < 0 || index >= len(p.tracks) {
		return nil
	}
	return &p.tracks[index]
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// IsEmpty returns true if the playlist has no tracks.
func (p *Playlist) IsEmpty() bool {
	return len(p.tracks) == 0
}
