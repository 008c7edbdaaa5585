package tags

import (
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/dhowden/tag"
)

// GenericSource reads any format dhowden/tag understands.
type GenericSource struct{}

// Read implements Source.
func (GenericSource) Read(path string) (*Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		if errors.Is(err, tag.ErrNoTagsFound) {
			return nil, ErrNoTags
		}
		return nil, errors.Wrapf(err, "read tags %s", path)
	}

	md := &Metadata{
		Title:  m.Title(),
		Artist: m.Artist(),
		Album:  m.Album(),
	}
	if md.Artist == "" {
		md.Artist = m.AlbumArtist()
	}
	if y := m.Year(); y > 0 {
		md.Year = strconv.Itoa(y)
	}
	if pic := m.Picture(); pic != nil && len(pic.Data) > 0 {
		md.Picture = pic.Data
		md.PictureMIME = pic.MIMEType
	}
	return md, nil
}
