package ogg

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
)

var ErrNotVorbis = errors.New("vorbis: invalid identification header")

// VorbisID is the content of a Vorbis identification header.
type VorbisID struct {
	Channels   int
	SampleRate int
}

// ParseVorbisID decodes the first packet of a Vorbis stream:
// type 0x01, "vorbis", a zero version, channels and a little-endian rate.
func ParseVorbisID(packet []byte) (VorbisID, error) {
	if len(packet) < 16 || packet[0] != 0x01 || string(packet[1:7]) != "vorbis" {
		return VorbisID{}, ErrNotVorbis
	}
	if binary.LittleEndian.Uint32(packet[7:11]) != 0 {
		return VorbisID{}, errors.Wrap(ErrNotVorbis, "version")
	}
	id := VorbisID{
		Channels:   int(packet[11]),
		SampleRate: int(binary.LittleEndian.Uint32(packet[12:16])),
	}
	if id.Channels == 0 || id.SampleRate == 0 {
		return VorbisID{}, errors.Wrap(ErrNotVorbis, "zero channels or rate")
	}
	return id, nil
}

// ReadVorbisID reads the identification header from the first page of r.
func ReadVorbisID(r *Reader) (VorbisID, error) {
	page, err := r.ReadPage()
	if err != nil {
		return VorbisID{}, errors.Wrap(err, "ogg: first page")
	}
	if len(page.Packets) == 0 {
		return VorbisID{}, errors.Wrap(ErrNotVorbis, "empty first page")
	}
	return ParseVorbisID(page.Packets[0])
}
