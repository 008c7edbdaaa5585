package tags

import (
	"github.com/cockroachdb/errors"
)

// Source extracts metadata from a file.
type Source interface {
	Read(path string) (*Metadata, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(path string) (*Metadata, error)

// Read calls f(path).
func (f SourceFunc) Read(path string) (*Metadata, error) { return f(path) }

// Chain queries sources in order. The first successful record wins; fields
// it leaves empty are filled from later sources that also succeed.
type Chain []Source

// Read implements Source.
func (c Chain) Read(path string) (*Metadata, error) {
	var (
		result *Metadata
		errs   error
	)
	for _, src := range c {
		md, err := src.Read(path)
		if err != nil {
			errs = errors.CombineErrors(errs, err)
			continue
		}
		if result == nil {
			result = md
			continue
		}
		result.merge(md)
	}
	if result == nil {
		if errs == nil {
			errs = ErrNoTags
		}
		return nil, errs
	}
	return result, nil
}

// DefaultSource reads ID3v2 frames first, then falls back to the generic
// reader for other tag formats (ID3v1, ID3v2.2, Vorbis comments, MP4).
func DefaultSource() Source {
	return Chain{ID3Source{}, GenericSource{}}
}
