package ogg

import (
	"io"

	"github.com/cockroachdb/errors"
)

// Page is a page header and the packets that end on it. A packet spanning
// several pages is returned once, with the page it ends on.
type Page struct {
	PageHeader
	Packets [][]byte
}

// Reader joins page segments into packets.
type Reader struct {
	rs      io.ReadSeeker
	pending []byte
	// drop is set after a seek: the first packet tail is incomplete.
	drop bool
}

// NewReader returns a Reader positioned wherever rs currently is.
func NewReader(rs io.ReadSeeker) *Reader {
	return &Reader{rs: rs}
}

// ReadPage reads the next page. It returns io.EOF at the end of the stream.
func (r *Reader) ReadPage() (*Page, error) {
	h, err := ReadPageHeader(r.rs)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, io.EOF
		}
		return nil, err
	}
	body := make([]byte, h.BodySize())
	if _, err := io.ReadFull(r.rs, body); err != nil {
		return nil, errors.Wrap(err, "ogg: page body")
	}

	if !h.Continued() {
		r.pending = nil
		r.drop = false
	}
	page := &Page{PageHeader: *h}
	off := 0
	for _, seg := range h.Segments {
		r.pending = append(r.pending, body[off:off+int(seg)]...)
		off += int(seg)
		if seg == 255 {
			continue
		}
		if r.drop {
			r.drop = false
		} else {
			page.Packets = append(page.Packets, r.pending)
		}
		r.pending = nil
	}
	return page, nil
}

// Offset returns the byte offset of the next page.
func (r *Reader) Offset() (int64, error) {
	return r.rs.Seek(0, io.SeekCurrent)
}

// Seek moves to the page starting at offset and forgets any partial packet.
func (r *Reader) Seek(offset int64) error {
	if _, err := r.rs.Seek(offset, io.SeekStart); err != nil {
		return errors.Wrap(err, "ogg: seek")
	}
	r.pending = nil
	r.drop = true
	return nil
}

// PageBefore scans page headers from start and returns the offset of the last
// page whose granule position is known and below target. It returns start when
// no such page exists. The reader is left at an unspecified offset.
func (r *Reader) PageBefore(start, target int64) (int64, error) {
	if _, err := r.rs.Seek(start, io.SeekStart); err != nil {
		return 0, errors.Wrap(err, "ogg: seek")
	}
	found := start
	off := start
	for {
		h, err := ReadPageHeader(r.rs)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return found, nil
			}
			return 0, err
		}
		if h.GranulePos >= target {
			return found, nil
		}
		if h.GranulePos >= 0 {
			found = off
		}
		next, err := r.rs.Seek(int64(h.BodySize()), io.SeekCurrent)
		if err != nil {
			return 0, errors.Wrap(err, "ogg: skip body")
		}
		off = next
	}
}
