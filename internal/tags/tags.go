// Package tags reads display metadata and durations from audio files.
package tags

import "github.com/cockroachdb/errors"

// File extensions recognised by the tags package.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtWAV  = ".wav"
	ExtOGG  = ".ogg"
)

// ErrNoTags is returned by a Source when the file carries no tags it understands.
var ErrNoTags = errors.New("no tags found")

// Metadata is the structured record a Source extracts. Any field may be empty.
type Metadata struct {
	Title       string
	Artist      string
	Album       string
	Year        string
	Picture     []byte
	PictureMIME string
}

// IsEmpty reports whether no field was populated.
func (m *Metadata) IsEmpty() bool {
	return m.Title == "" && m.Artist == "" && m.Album == "" && m.Year == "" && len(m.Picture) == 0
}

// merge fills fields of m left empty from other.
func (m *Metadata) merge(other *Metadata) {
	if m.Title == "" {
		m.Title = other.Title
	}
	if m.Artist == "" {
		m.Artist = other.Artist
	}
	if m.Album == "" {
		m.Album = other.Album
	}
	if m.Year == "" {
		m.Year = other.Year
	}
	if len(m.Picture) == 0 {
		m.Picture = other.Picture
		m.PictureMIME = other.PictureMIME
	}
}
