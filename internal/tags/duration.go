package tags

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	goflac "github.com/go-flac/go-flac"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/wav"
	"github.com/llehouerou/go-mp3"

	"github.com/llehouerou/ripple/internal/ogg"
)

// ErrUnsupportedFormat is returned for extensions ReadDuration does not handle.
var ErrUnsupportedFormat = errors.New("unsupported format")

// DurationReader reports the total length of an audio file.
type DurationReader interface {
	Duration(path string) (time.Duration, error)
}

// DurationFunc adapts a function to DurationReader.
type DurationFunc func(path string) (time.Duration, error)

// Duration calls f(path).
func (f DurationFunc) Duration(path string) (time.Duration, error) { return f(path) }

// FileDurations reads durations from the audio stream headers.
var FileDurations DurationReader = DurationFunc(ReadDuration)

// ReadDuration returns the length of the file at path without fully decoding it.
func ReadDuration(path string) (time.Duration, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ExtMP3:
		return readMP3Duration(path)
	case ExtFLAC:
		return readFLACDuration(path)
	case ExtWAV:
		return readWAVDuration(path)
	case ExtOGG:
		return readOGGDuration(path)
	}
	return 0, errors.Wrapf(ErrUnsupportedFormat, "%q", ext)
}

func readMP3Duration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		return 0, errors.Wrap(err, "mp3")
	}

	sampleRate := decoder.SampleRate()
	if sampleRate == 0 {
		return 0, errors.New("mp3: invalid sample rate")
	}
	sampleCount := max(decoder.SampleCount(), 0)
	return samplesToDuration(int64(sampleCount), sampleRate), nil
}

// readFLACDuration parses the STREAMINFO block, falling back to beep's decoder
// for files go-flac rejects (such as those with a prepended ID3v2 tag).
func readFLACDuration(path string) (time.Duration, error) {
	file, err := goflac.ParseFile(path)
	if err != nil {
		return readFLACWithBeep(path)
	}
	for _, meta := range file.Meta {
		if meta.Type != goflac.StreamInfo || len(meta.Data) < 18 {
			continue
		}
		if d, ok := streamInfoDuration(meta.Data); ok {
			return d, nil
		}
	}
	return readFLACWithBeep(path)
}

// streamInfoDuration decodes the 20-bit sample rate and 36-bit sample count.
func streamInfoDuration(data []byte) (time.Duration, bool) {
	sampleRate := int(data[10])<<12 | int(data[11])<<4 | int(data[12])>>4
	if sampleRate == 0 {
		return 0, false
	}
	totalSamples := int64(data[13]&0x0F)<<32 | int64(data[14])<<24 |
		int64(data[15])<<16 | int64(data[16])<<8 | int64(data[17])
	return samplesToDuration(totalSamples, sampleRate), true
}

func readFLACWithBeep(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	if err := SkipID3v2(f); err != nil {
		return 0, err
	}
	streamer, format, err := flac.Decode(f)
	if err != nil {
		return 0, errors.Wrap(err, "flac")
	}
	defer streamer.Close()
	return format.SampleRate.D(streamer.Len()), nil
}

func readWAVDuration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return 0, errors.Wrap(err, "wav")
	}
	defer streamer.Close()
	return format.SampleRate.D(streamer.Len()), nil
}

// readOGGDuration divides the last page's granule position by the rate in
// the Vorbis identification header.
func readOGGDuration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	id, err := ogg.ReadVorbisID(ogg.NewReader(f))
	if err != nil {
		return 0, err
	}
	last, err := ogg.LastGranule(f)
	if err != nil {
		return 0, err
	}
	return samplesToDuration(last, id.SampleRate), nil
}

func samplesToDuration(samples int64, sampleRate int) time.Duration {
	return time.Duration(float64(samples) / float64(sampleRate) * float64(time.Second))
}

// SkipID3v2 positions r after a leading ID3v2 tag, including its footer
// when the header flags one. Without a tag r is rewound to the start.
func SkipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return errors.Wrap(err, "read header")
	}
	if n < 10 || string(header[:3]) != "ID3" {
		_, err := r.Seek(0, io.SeekStart)
		return errors.Wrap(err, "rewind")
	}
	size := int64(header[6]&0x7f)<<21 | int64(header[7]&0x7f)<<14 |
		int64(header[8]&0x7f)<<7 | int64(header[9]&0x7f)
	if header[5]&0x10 != 0 {
		size += 10
	}
	_, err = r.Seek(10+size, io.SeekStart)
	return errors.Wrap(err, "skip id3v2")
}
