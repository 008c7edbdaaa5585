// Package ogg reads pages and packets from a single logical Ogg bitstream.
package ogg

import (
	"encoding/binary"
	"io"

	"github.com/cockroachdb/errors"
)

var (
	ErrCapturePattern = errors.New("ogg: invalid capture pattern")
	ErrVersion        = errors.New("ogg: unsupported version")
	ErrNoGranule      = errors.New("ogg: no granule position found")
)

// Header type flags.
const (
	FlagContinued = 0x01
	FlagBOS       = 0x02
	FlagEOS       = 0x04
)

const (
	capturePattern = "OggS"
	headerSize     = 27
)

// PageHeader is the fixed part of an Ogg page plus its segment table.
// GranulePos is -1 on pages where no packet ends.
type PageHeader struct {
	Flags      byte
	GranulePos int64
	Serial     uint32
	Sequence   uint32
	Segments   []byte
}

// Continued reports whether the page starts with the tail of a packet.
func (h *PageHeader) Continued() bool { return h.Flags&FlagContinued != 0 }

// EOS reports whether this is the last page of the stream.
func (h *PageHeader) EOS() bool { return h.Flags&FlagEOS != 0 }

// BodySize is the sum of the segment lengths.
func (h *PageHeader) BodySize() int {
	n := 0
	for _, s := range h.Segments {
		n += int(s)
	}
	return n
}

// ReadPageHeader reads a page header and its segment table from r.
func ReadPageHeader(r io.Reader) (*PageHeader, error) {
	var buf [headerSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	if string(buf[:4]) != capturePattern {
		return nil, ErrCapturePattern
	}
	if buf[4] != 0 {
		return nil, ErrVersion
	}

	h := &PageHeader{
		Flags:      buf[5],
		GranulePos: int64(binary.LittleEndian.Uint64(buf[6:14])),
		Serial:     binary.LittleEndian.Uint32(buf[14:18]),
		Sequence:   binary.LittleEndian.Uint32(buf[18:22]),
	}
	// buf[22:26] is the CRC, not checked.
	if n := int(buf[26]); n > 0 {
		h.Segments = make([]byte, n)
		if _, err := io.ReadFull(r, h.Segments); err != nil {
			return nil, errors.Wrap(err, "ogg: segment table")
		}
	}
	return h, nil
}

// LastGranule returns the granule position of the last page in rs, found by
// scanning the final 64KB backwards for a page header.
func LastGranule(rs io.ReadSeeker) (int64, error) {
	size, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, errors.Wrap(err, "ogg: seek end")
	}
	window := min(int64(64<<10), size)
	if _, err := rs.Seek(-window, io.SeekEnd); err != nil {
		return 0, errors.Wrap(err, "ogg: seek tail")
	}
	buf := make([]byte, window)
	if _, err := io.ReadFull(rs, buf); err != nil {
		return 0, errors.Wrap(err, "ogg: read tail")
	}

	for i := len(buf) - headerSize; i >= 0; i-- {
		if string(buf[i:i+4]) != capturePattern || buf[i+4] != 0 {
			continue
		}
		g := int64(binary.LittleEndian.Uint64(buf[i+6 : i+14]))
		if g >= 0 {
			return g, nil
		}
	}
	return 0, ErrNoGranule
}
