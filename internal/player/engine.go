package player

import (
	"time"

	"github.com/cockroachdb/errors"
)

var (
	// ErrUnsupportedFormat is returned by Load for files the engine cannot decode.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	// ErrNotLoaded is returned by Play when no track has been loaded.
	ErrNotLoaded = errors.New("no track loaded")
)

// Engine is the audio engine contract the transport drives.
//
// Position reports the time elapsed since the most recent Play call, not the
// position within the stream. A Play(start) with a non-zero start therefore
// restarts the reported position at zero.
type Engine interface {
	Load(path string) error
	Play(start time.Duration) error
	Pause()
	Unpause()
	Stop()
	SetVolume(level float64)
	Position() time.Duration
	Busy() bool
	Close() error
}

// AbsolutePositioner is implemented by engines that can also report the true
// position within the loaded stream.
type AbsolutePositioner interface {
	AbsolutePosition() time.Duration
}

// Verify implementations at compile time.
var (
	_ Engine             = (*Player)(nil)
	_ AbsolutePositioner = (*Player)(nil)
	_ Engine             = (*Mock)(nil)
)
