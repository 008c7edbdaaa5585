package playback

import (
	"sync"
	"time"
)

// eventBuffer is the per-channel backlog a subscriber may fall behind by
// before events are dropped.
const eventBuffer = 16

// Subscription delivers controller events. Done is closed by Controller.Close.
type Subscription struct {
	StateChanged    <-chan StateChange
	TrackChanged    <-chan TrackChange
	PositionChanged <-chan PositionChange
	Error           <-chan ErrorEvent
	Done            <-chan struct{}

	state    chan StateChange
	track    chan TrackChange
	position chan PositionChange
	errs     chan ErrorEvent
	done     chan struct{}
	once     sync.Once
}

func newSubscription() *Subscription {
	s := &Subscription{
		state:    make(chan StateChange, eventBuffer),
		track:    make(chan TrackChange, eventBuffer),
		position: make(chan PositionChange, eventBuffer),
		errs:     make(chan ErrorEvent, eventBuffer),
		done:     make(chan struct{}),
	}
	s.StateChanged, s.TrackChanged, s.PositionChanged = s.state, s.track, s.position
	s.Error, s.Done = s.errs, s.done
	return s
}

func (s *Subscription) close() { s.once.Do(func() { close(s.done) }) }

func (s *Subscription) sendState(e StateChange)      { offer(s.state, e) }
func (s *Subscription) sendTrack(e TrackChange)      { offer(s.track, e) }
func (s *Subscription) sendError(e ErrorEvent)       { offer(s.errs, e) }
func (s *Subscription) sendPosition(d time.Duration) { offer(s.position, PositionChange{Position: d}) }

// offer sends v without blocking the controller.
func offer[T any](ch chan<- T, v T) {
	select {
	case ch <- v:
	default:
	}
}
