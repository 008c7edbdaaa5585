package player

import (
	"encoding/binary"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/llehouerou/go-mp3"
)

// mp3Frame is one stereo sample of 16-bit little-endian PCM, as go-mp3
// always produces it.
const mp3Frame = 4

// mp3Stream adapts go-mp3 to beep.StreamSeekCloser. Unlike beep's own mp3
// package it seeks by sample, which a tracked seek relies on.
type mp3Stream struct {
	dec *mp3.Decoder
	src io.Closer
	buf []byte
	err error
}

func decodeGoMP3(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	dec, err := mp3.NewDecoder(rc)
	if err != nil {
		return nil, beep.Format{}, errors.Wrap(err, "mp3 header")
	}
	rate := dec.SampleRate()
	if rate <= 0 {
		return nil, beep.Format{}, errors.Newf("mp3: invalid sample rate %d", rate)
	}
	format := beep.Format{SampleRate: beep.SampleRate(rate), NumChannels: 2, Precision: 2}
	return &mp3Stream{dec: dec, src: rc}, format, nil
}

func (s *mp3Stream) Stream(samples [][2]float64) (int, bool) {
	if s.err != nil || len(samples) == 0 {
		return 0, false
	}
	want := len(samples) * mp3Frame
	if cap(s.buf) < want {
		s.buf = make([]byte, want)
	}
	got, err := io.ReadFull(s.dec, s.buf[:want])
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		s.err = err
		return 0, false
	}
	n := got / mp3Frame
	for i := range n {
		samples[i][0] = pcm16(s.buf[i*mp3Frame:])
		samples[i][1] = pcm16(s.buf[i*mp3Frame+2:])
	}
	return n, n > 0
}

// pcm16 converts a little-endian signed 16-bit sample to [-1, 1).
func pcm16(b []byte) float64 {
	return float64(int16(binary.LittleEndian.Uint16(b))) / 32768 //nolint:gosec // reinterpreting PCM bits
}

func (s *mp3Stream) Err() error { return s.err }

func (s *mp3Stream) Len() int { return int(max(s.dec.SampleCount(), 0)) }

func (s *mp3Stream) Position() int { return int(s.dec.SamplePosition()) }

// Seek moves to sample p, clamped to the stream, and clears a previous
// read error.
func (s *mp3Stream) Seek(p int) error {
	p = min(max(p, 0), s.Len())
	if err := s.dec.SeekToSample(int64(p)); err != nil {
		return errors.Wrapf(err, "mp3 seek to sample %d", p)
	}
	s.err = nil
	return nil
}

func (s *mp3Stream) Close() error { return s.src.Close() }
