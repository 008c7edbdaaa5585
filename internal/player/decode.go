package player

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/wav"

	"github.com/llehouerou/ripple/internal/tags"
)

// Supported reports whether the engine can decode path, judging by extension.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case tags.ExtMP3, tags.ExtFLAC, tags.ExtWAV, tags.ExtOGG:
		return true
	}
	return false
}

func decode(rc io.ReadSeekCloser, path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
		err      error
	)
	switch ext {
	case tags.ExtMP3:
		streamer, format, err = decodeGoMP3(rc)
	case tags.ExtFLAC:
		// Some taggers prepend an ID3v2 tag to FLAC files.
		if err := tags.SkipID3v2(rc); err != nil {
			return nil, beep.Format{}, errors.Wrap(err, "skip id3v2 header")
		}
		streamer, format, err = flac.Decode(rc)
	case tags.ExtWAV:
		streamer, format, err = wav.Decode(rc)
	case tags.ExtOGG:
		streamer, format, err = decodeVorbis(rc)
	default:
		return nil, beep.Format{}, errors.Wrapf(ErrUnsupportedFormat, "%q", ext)
	}
	if err != nil {
		return nil, beep.Format{}, errors.Wrapf(err, "decode %s", filepath.Base(path))
	}
	return streamer, format, nil
}
