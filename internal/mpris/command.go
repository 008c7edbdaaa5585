// Package mpris exposes the player on the session bus as an MPRIS
// MediaPlayer2 service.
package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/llehouerou/ripple/internal/playback"
)

// Action is a transport request received over D-Bus.
type Action int

const (
	ActionPlayPause Action = iota
	ActionPlay
	ActionPause
	ActionStop
	ActionNext
	ActionPrevious
	ActionSeek        // relative, by Offset
	ActionSetPosition // absolute, to Position
	ActionSetVolume
)

// Command is delivered to the UI loop, which owns the controller. D-Bus
// handlers never call the controller directly.
type Command struct {
	Action   Action
	Offset   time.Duration
	Position time.Duration
	Volume   float64
}

// Dispatcher forwards commands to the UI loop, e.g. tea.Program.Send.
type Dispatcher func(Command)

// StatusFunc returns the latest playback snapshot.
type StatusFunc func() playback.Status

// Name is the bus name suffix: org.mpris.MediaPlayer2.<Name>.
const Name = "ripple"

func trackID(path string) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
