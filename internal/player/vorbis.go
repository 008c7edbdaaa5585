package player

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/jfreymuth/vorbis"

	"github.com/llehouerou/ripple/internal/ogg"
)

// vorbisHeaders is the identification, comment and setup packet count.
const vorbisHeaders = 3

// vorbisStream adapts jfreymuth/vorbis over an Ogg container to
// beep.StreamSeekCloser. Samples are decoded a page at a time so the page
// granule position anchors the sample position after a seek.
type vorbisStream struct {
	src       io.ReadSeekCloser
	pages     *ogg.Reader
	dec       *vorbis.Decoder
	channels  int
	rate      int
	dataStart int64
	total     int

	buf []float32 // interleaved samples not yet streamed
	pos int       // sample position of buf[0]

	// After a seek: the next decoded page sets pos from its granule, then
	// samples before target are dropped.
	anchor  bool
	target  int
	discard int

	err error
}

func decodeVorbis(rc io.ReadSeekCloser) (beep.StreamSeekCloser, beep.Format, error) {
	pages := ogg.NewReader(rc)
	s := &vorbisStream{src: rc, pages: pages, dec: &vorbis.Decoder{}}

	var headers int
	for headers < vorbisHeaders {
		page, err := pages.ReadPage()
		if err != nil {
			return nil, beep.Format{}, errors.Wrap(err, "vorbis headers")
		}
		for _, pkt := range page.Packets {
			if headers < vorbisHeaders {
				if headers == 0 {
					id, err := ogg.ParseVorbisID(pkt)
					if err != nil {
						return nil, beep.Format{}, err
					}
					s.channels, s.rate = id.Channels, id.SampleRate
				}
				if err := s.dec.ReadHeader(pkt); err != nil {
					return nil, beep.Format{}, errors.Wrap(err, "vorbis header")
				}
				headers++
				continue
			}
			s.decodePacket(pkt)
		}
	}

	var err error
	if s.dataStart, err = pages.Offset(); err != nil {
		return nil, beep.Format{}, errors.Wrap(err, "vorbis data offset")
	}
	last, err := ogg.LastGranule(rc)
	if err != nil {
		return nil, beep.Format{}, err
	}
	s.total = int(last)
	if _, err := rc.Seek(s.dataStart, io.SeekStart); err != nil {
		return nil, beep.Format{}, errors.Wrap(err, "vorbis rewind")
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(s.rate),
		NumChannels: min(s.channels, 2),
		Precision:   2,
	}
	return s, format, nil
}

func (s *vorbisStream) decodePacket(pkt []byte) {
	out, err := s.dec.Decode(pkt)
	if err != nil {
		return // corrupt packet, skip it
	}
	s.buf = append(s.buf, out...)
}

// fill decodes the next page into buf.
func (s *vorbisStream) fill() error {
	page, err := s.pages.ReadPage()
	if err != nil {
		return err
	}
	for _, pkt := range page.Packets {
		s.decodePacket(pkt)
	}
	if len(page.Packets) == 0 || page.GranulePos < 0 {
		return nil
	}

	frames := len(s.buf) / s.channels
	if s.anchor {
		s.anchor = false
		s.pos = int(page.GranulePos) - frames
		s.discard = max(s.target-s.pos, 0)
	}
	// The last page's granule trims padding from the final packet.
	if page.EOS() {
		if keep := int(page.GranulePos) - s.pos; keep >= 0 && keep < frames {
			s.buf = s.buf[:keep*s.channels]
		}
	}
	return nil
}

func (s *vorbisStream) Stream(samples [][2]float64) (n int, ok bool) {
	if s.err != nil {
		return 0, false
	}
	for n < len(samples) {
		if len(s.buf) < s.channels {
			s.buf = s.buf[:0]
			if err := s.fill(); err != nil {
				if !errors.Is(err, io.EOF) {
					s.err = err
				}
				return n, n > 0
			}
			continue
		}
		if s.discard > 0 {
			k := min(s.discard, len(s.buf)/s.channels)
			s.buf = s.buf[k*s.channels:]
			s.discard -= k
			s.pos += k
			continue
		}
		right := 0
		if s.channels > 1 {
			right = 1
		}
		samples[n][0] = float64(s.buf[0])
		samples[n][1] = float64(s.buf[right])
		s.buf = s.buf[s.channels:]
		s.pos++
		n++
	}
	return n, true
}

func (s *vorbisStream) Err() error { return s.err }

func (s *vorbisStream) Len() int { return s.total }

func (s *vorbisStream) Position() int { return s.pos + s.discard }

// Seek restarts decoding at the page before p and drops samples up to p.
func (s *vorbisStream) Seek(p int) error {
	p = min(max(p, 0), s.Len())
	off, err := s.pages.PageBefore(s.dataStart, int64(p))
	if err != nil {
		return errors.Wrapf(err, "vorbis seek to sample %d", p)
	}
	if err := s.pages.Seek(off); err != nil {
		return err
	}
	s.dec.Clear()
	s.buf = s.buf[:0]
	s.err = nil
	if off == s.dataStart {
		s.anchor = false
		s.pos = 0
		s.discard = p
	} else {
		s.anchor = true
		s.target = p
		s.discard = 0
		s.pos = p
	}
	return nil
}

func (s *vorbisStream) Close() error { return s.src.Close() }
