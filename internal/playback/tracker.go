package playback

import (
	"time"

	"github.com/llehouerou/ripple/internal/player"
)

// TickResult reports what a tick did.
type TickResult struct {
	// Advanced is set when the engine finished the track and the next one was started.
	Advanced bool
	// Position is the displayed elapsed time after the tick.
	Position time.Duration
	// Err is the error from starting the next track, if any.
	Err error
}

// Tick is the position tracker, called once per tick period while Ticking.
//
// An engine that stops being busy while Playing has reached the end of the
// track, which advances to the next entry. While the slider is scrubbed the
// display is left alone. Otherwise the display follows the engine, through
// the tracked-seek accumulator when a seek happened on this track.
func (c *Controller) Tick() TickResult {
	if c.state != StatePlaying {
		return TickResult{Position: c.display}
	}
	if !c.engine.Busy() {
		c.logger.Debug().Str("path", c.now.Path).Msg("track finished")
		err := c.Next()
		return TickResult{Advanced: true, Position: c.display, Err: err}
	}
	if c.scrubbing {
		return TickResult{Position: c.display}
	}
	c.refresh()
	c.maybeResync()
	c.publish()
	return TickResult{Position: c.display}
}

// refresh reconciles the displayed position with the engine.
func (c *Controller) refresh() {
	sample := c.engine.Position()
	if !c.tracked {
		c.display = sample
		c.position = sample
		return
	}
	if elapsed := sample - c.lastSample; elapsed > 0 {
		c.trackedPos += elapsed
		c.lastSample = sample
	}
	c.display = c.trackedPos
}

// maybeResync replaces the tracked accumulator with the engine's absolute
// stream position every resyncEvery ticks, when the engine can report it.
func (c *Controller) maybeResync() {
	if !c.tracked || c.resyncEvery == 0 {
		return
	}
	abs, ok := c.engine.(player.AbsolutePositioner)
	if !ok {
		return
	}
	c.sinceResync++
	if c.sinceResync < c.resyncEvery {
		return
	}
	c.sinceResync = 0
	c.trackedPos = abs.AbsolutePosition()
	c.lastSample = c.engine.Position()
	c.display = c.trackedPos
}

// Ticking reports whether the tick should be scheduled.
func (c *Controller) Ticking() bool {
	return c.state == StatePlaying
}
