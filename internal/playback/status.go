package playback

import (
	"fmt"
	"time"
)

// Status is an immutable snapshot of the transport, published after every
// change so that other goroutines can read it without touching the controller.
type Status struct {
	State    State
	Index    int
	Len      int
	Track    *Track
	Position time.Duration
	Duration time.Duration
	Volume   float64
}

func (c *Controller) publish() {
	st := &Status{
		State:    c.state,
		Index:    c.playlist.CurrentIndex(),
		Len:      c.playlist.Len(),
		Position: c.display,
		Duration: c.duration,
		Volume:   c.volume,
	}
	if c.loaded {
		t := c.now.Track
		st.Track = &t
	}
	c.status.Store(st)
}

// Status returns the latest published snapshot.
func (c *Controller) Status() Status {
	return *c.status.Load()
}

// Refresh republishes the snapshot, e.g. after tracks were added to the playlist.
func (c *Controller) Refresh() { c.publish() }

// State returns the transport state.
func (c *Controller) State() State { return c.state }

// Position returns the displayed elapsed time.
func (c *Controller) Position() time.Duration { return c.display }

// Duration returns the loaded track's duration, or 0 if unknown.
func (c *Controller) Duration() time.Duration { return c.duration }

// Index returns the playlist cursor.
func (c *Controller) Index() int { return c.playlist.CurrentIndex() }

// Volume returns the level last sent to the engine.
func (c *Controller) Volume() float64 { return c.volume }

// Loaded reports whether a track has been loaded into the engine.
func (c *Controller) Loaded() bool { return c.loaded }

// NowPlaying returns the loaded track's display record. ok is false when
// nothing has been loaded.
func (c *Controller) NowPlaying() (np NowPlaying, ok bool) {
	return c.now, c.loaded
}

// Scrubbing reports whether a slider drag is in progress.
func (c *Controller) Scrubbing() bool { return c.scrubbing }

// ScrubTarget returns the slider preview position.
func (c *Controller) ScrubTarget() time.Duration { return c.scrubTarget }

// Tracked reports whether the display is in tracked-seek mode.
func (c *Controller) Tracked() bool { return c.tracked }

// CurrentTime formats the displayed elapsed time.
func (c *Controller) CurrentTime() string { return FormatTime(c.display) }

// TotalTime formats the track duration.
func (c *Controller) TotalTime() string { return FormatTime(c.duration) }

// FormatTime formats d as m:ss, truncating fractional seconds.
func FormatTime(d time.Duration) string {
	secs := max(int(d/time.Second), 0)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
