package app

import "github.com/llehouerou/ripple/internal/playback"

// TickMsg drives the position tracker.
type TickMsg struct {
	Gen int
}

// ScrubReleaseMsg ends a keyboard scrub once no key was pressed for the
// release delay.
type ScrubReleaseMsg struct {
	Version int
}

// StateChangedMsg carries a controller state change.
type StateChangedMsg struct {
	playback.StateChange
}

// TrackChangedMsg carries a controller track change.
type TrackChangedMsg struct {
	playback.TrackChange
}

// PositionChangedMsg carries a seek.
type PositionChangedMsg struct {
	playback.PositionChange
}

// ServiceErrorMsg carries a failed load or play.
type ServiceErrorMsg struct {
	playback.ErrorEvent
}

// ServiceClosedMsg is sent once the subscription is closed.
type ServiceClosedMsg struct{}

// FilesCollectedMsg carries the playable files found under the paths the
// user added.
type FilesCollectedMsg struct {
	Paths []string
	Err   error
}
