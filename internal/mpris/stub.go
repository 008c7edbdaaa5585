//go:build !linux

package mpris

import (
	"time"

	"github.com/rs/zerolog"
)

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(_ StatusFunc, _ Dispatcher, _ zerolog.Logger) (*Adapter, error) {
	return &Adapter{}, nil
}

// TrackChanged is a no-op on non-Linux platforms.
func (a *Adapter) TrackChanged() {}

// StateChanged is a no-op on non-Linux platforms.
func (a *Adapter) StateChanged() {}

// Seeked is a no-op on non-Linux platforms.
func (a *Adapter) Seeked(time.Duration) {}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error { return nil }
