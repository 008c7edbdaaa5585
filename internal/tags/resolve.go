package tags

import (
	"path/filepath"

	"github.com/rs/zerolog"
)

// Placeholders shown when a field is missing from a file's tags.
const (
	UnknownArtist = "Unknown Artist"
	UnknownAlbum  = "Unknown Album"
)

// Info is what the player displays for the current track. Title, Artist and
// Album are never empty; Year may be. A nil Picture means the placeholder image.
type Info struct {
	Title       string
	Artist      string
	Album       string
	Year        string
	Picture     []byte
	PictureMIME string
}

// HasPicture reports whether Info carries image data.
func (i Info) HasPicture() bool { return len(i.Picture) > 0 }

// Resolver turns a file path into displayable Info. It never fails: any
// source error falls back to the file's base name and placeholders.
type Resolver struct {
	source    Source
	folderArt bool
	logger    zerolog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithSource replaces the default tag source.
func WithSource(s Source) ResolverOption {
	return func(r *Resolver) { r.source = s }
}

// WithFolderArt enables the cover.jpg style lookup when a file has no embedded picture.
func WithFolderArt(enabled bool) ResolverOption {
	return func(r *Resolver) { r.folderArt = enabled }
}

// WithLogger sets the logger used to report read failures.
func WithLogger(l zerolog.Logger) ResolverOption {
	return func(r *Resolver) { r.logger = l }
}

// NewResolver creates a Resolver using DefaultSource.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		source:    DefaultSource(),
		folderArt: true,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve reads metadata for path and applies fallbacks.
func (r *Resolver) Resolve(path string) Info {
	info := Info{
		Title:  filepath.Base(path),
		Artist: UnknownArtist,
		Album:  UnknownAlbum,
	}

	md, err := r.source.Read(path)
	if err != nil {
		r.logger.Debug().Err(err).Str("path", path).Msg("metadata unavailable")
		md = &Metadata{}
	}

	if md.Title != "" {
		info.Title = md.Title
	}
	if md.Artist != "" {
		info.Artist = md.Artist
	}
	if md.Album != "" {
		info.Album = md.Album
	}
	info.Year = md.Year

	switch {
	case len(md.Picture) > 0:
		info.Picture = md.Picture
		info.PictureMIME = md.PictureMIME
	case r.folderArt:
		info.Picture, info.PictureMIME = FolderArt(filepath.Dir(path))
	}
	return info
}
