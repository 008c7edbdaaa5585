package playback

import (
	"time"

	"github.com/llehouerou/ripple/internal/errmsg"
)

// StateChange is emitted when the transport state changes.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is emitted when playback starts on a track.
//
// Emitted by PlayPause from Stopped, Next, Previous, Select and the natural
// end-of-track advance. Not emitted by Seek, which restarts the same track.
type TrackChange struct {
	Previous      *Track
	Current       *Track
	PreviousIndex int
	Index         int
}

// PositionChange is emitted when a seek occurs.
type PositionChange struct {
	Position time.Duration
}

// ErrorEvent is emitted when the engine rejects a load or play.
type ErrorEvent struct {
	Operation errmsg.Op
	Path      string
	Err       error
}
