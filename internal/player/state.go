package player

// State represents the engine's output state.
//
//	┌──────────┐  Play   ┌──────────┐
//	│  Stopped │ ───────▶│  Playing │
//	└──────────┘         └──────────┘
//	     ▲                 │      ▲
//	     │ Stop / end      │Pause │ Unpause
//	     │                 ▼      │
//	     │               ┌──────────┐
//	     └───────────────│  Paused  │
//	                     └──────────┘
//
// Load never changes the state of a stopped engine; it only replaces the
// stream that the next Play will start.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a stream is playing or paused.
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}
