package tags

import (
	"github.com/bogem/id3v2/v2"
	"github.com/cockroachdb/errors"
)

type field int

const (
	fieldTitle field = iota
	fieldArtist
	fieldAlbum
	fieldYear
)

// frameTable lists the frame IDs consulted for each field, in priority order.
// ID3v2.4 and v2.3 name the recording date differently.
var frameTable = map[field][]string{
	fieldTitle:  {"TIT2"},
	fieldArtist: {"TPE1", "TPE2"},
	fieldAlbum:  {"TALB"},
	fieldYear:   {"TDRC", "TYER", "TDOR", "TORY"},
}

// pictureFrame is the attached-picture frame. Several may exist, keyed by
// description; the front cover is preferred.
const (
	pictureFrame      = "APIC"
	frontCoverPicType = 3
)

// ID3Source reads ID3v2.3/v2.4 frames with bogem/id3v2.
type ID3Source struct{}

// Read implements Source.
func (ID3Source) Read(path string) (*Metadata, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, errors.Wrapf(err, "id3v2: open %s", path)
	}
	defer tag.Close()

	if !tag.HasFrames() {
		return nil, ErrNoTags
	}

	md := &Metadata{
		Title:  lookupText(tag, fieldTitle),
		Artist: lookupText(tag, fieldArtist),
		Album:  lookupText(tag, fieldAlbum),
		Year:   normalizeYear(lookupText(tag, fieldYear)),
	}
	if pic := lookupPicture(tag); pic != nil {
		md.Picture = pic.Picture
		md.PictureMIME = pic.MimeType
	}
	return md, nil
}

func lookupText(tag *id3v2.Tag, f field) string {
	for _, id := range frameTable[f] {
		if v := textFrame(tag, id); v != "" {
			return v
		}
	}
	return ""
}

func textFrame(tag *id3v2.Tag, id string) string {
	frames := tag.GetFrames(id)
	if len(frames) == 0 {
		return ""
	}
	if tf, ok := frames[0].(id3v2.TextFrame); ok {
		return tf.Text
	}
	return ""
}

func lookupPicture(tag *id3v2.Tag) *id3v2.PictureFrame {
	var first *id3v2.PictureFrame
	for _, frame := range tag.GetFrames(pictureFrame) {
		pic, ok := frame.(id3v2.PictureFrame)
		if !ok || len(pic.Picture) == 0 {
			continue
		}
		if pic.PictureType == frontCoverPicType {
			return &pic
		}
		if first == nil {
			first = &pic
		}
	}
	return first
}

// normalizeYear trims a recording timestamp (YYYY-MM-DDTHH...) to its year.
func normalizeYear(s string) string {
	if len(s) > 4 {
		return s[:4]
	}
	return s
}
