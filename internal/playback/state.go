package playback

// State is the transport state shown to the user.
type State int

const (
	StateStopped State = iota
	StatePlaying
	StatePaused
)

var stateNames = [...]string{
	StateStopped: "Stopped",
	StatePlaying: "Playing",
	StatePaused:  "Paused",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// IsActive reports whether a track is held by the engine, playing or paused.
func (s State) IsActive() bool {
	return s == StatePlaying || s == StatePaused
}
