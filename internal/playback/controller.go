// Package playback implements the transport controller and position tracker
// that drive the audio engine from UI intents.
package playback

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/llehouerou/ripple/internal/errmsg"
	"github.com/llehouerou/ripple/internal/player"
	"github.com/llehouerou/ripple/internal/playlist"
	"github.com/llehouerou/ripple/internal/tags"
)

// Controller owns the playlist cursor and the playback session, and is the
// only caller of the engine. Its methods must be called from a single
// goroutine (the UI event loop); Status and Subscribe are safe from any.
type Controller struct {
	engine    player.Engine
	playlist  *playlist.Playlist
	resolver  *tags.Resolver
	source    tags.Source
	durations tags.DurationReader
	logger    zerolog.Logger

	state    State
	loaded   bool
	now      NowPlaying
	position time.Duration
	display  time.Duration
	duration time.Duration
	volume   float64

	// Tracked-seek mode. The engine restarts its reported position at zero
	// on every Play, so after a seek the display accumulates deltas on top
	// of the seek target.
	tracked     bool
	trackedPos  time.Duration
	lastSample  time.Duration
	resyncEvery int
	sinceResync int

	scrubbing   bool
	scrubTarget time.Duration

	subsMu sync.Mutex
	subs   []*Subscription
	status atomic.Pointer[Status]
}

// New creates a controller driving engine over pl.
func New(engine player.Engine, pl *playlist.Playlist, opts ...Option) *Controller {
	c := &Controller{
		engine:      engine,
		playlist:    pl,
		durations:   tags.FileDurations,
		logger:      zerolog.Nop(),
		resyncEvery: DefaultResyncEvery,
		volume:      1,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.resolver == nil {
		ropts := []tags.ResolverOption{tags.WithLogger(c.logger)}
		if c.source != nil {
			ropts = append(ropts, tags.WithSource(c.source))
		}
		c.resolver = tags.NewResolver(ropts...)
	}
	c.engine.SetVolume(c.volume)
	c.publish()
	return c
}

// PlayPause toggles between Playing and Paused. From Stopped it loads the
// cursor track and starts it. No-op on an empty playlist.
func (c *Controller) PlayPause() error {
	if c.playlist.IsEmpty() {
		return nil
	}
	switch c.state {
	case StatePlaying:
		c.pause()
		return nil
	case StatePaused:
		c.engine.Unpause()
		c.setState(StatePlaying)
		return nil
	default:
		return c.playIndex(c.playlist.CurrentIndex(), c.position)
	}
}

func (c *Controller) pause() {
	c.refresh()
	c.position = c.display
	c.engine.Pause()
	c.setState(StatePaused)
}

// Stop halts the engine and rewinds to zero. The loaded track stays current.
func (c *Controller) Stop() {
	if !c.loaded && c.state == StateStopped {
		return
	}
	c.engine.Stop()
	c.position = 0
	c.display = 0
	c.scrubbing = false
	c.clearTracking()
	c.setState(StateStopped)
}

// Next advances the cursor with wraparound and plays from the start.
func (c *Controller) Next() error {
	t := c.playlist.Next()
	if t == nil {
		return nil
	}
	return c.playIndex(c.playlist.CurrentIndex(), 0)
}

// Previous retreats the cursor with wraparound and plays from the start.
func (c *Controller) Previous() error {
	t := c.playlist.Previous()
	if t == nil {
		return nil
	}
	return c.playIndex(c.playlist.CurrentIndex(), 0)
}

// Select jumps to index and plays it from the start. Out-of-range indices are ignored.
func (c *Controller) Select(index int) error {
	if !c.playlist.SetCurrent(index) {
		return nil
	}
	return c.playIndex(index, 0)
}

// Seek restarts the loaded track at target and enters tracked-seek mode.
// The target is clamped to the track duration when it is known.
func (c *Controller) Seek(target time.Duration) error {
	if !c.loaded {
		return nil
	}
	target = c.clampPosition(target)
	path := c.now.Path

	c.engine.Stop()
	if err := c.engine.Load(path); err != nil {
		return c.fail(errmsg.OpPlaybackSeek, path, errors.Wrapf(err, "reload %s", path))
	}
	if err := c.engine.Play(target); err != nil {
		return c.fail(errmsg.OpPlaybackSeek, path, errors.Wrap(err, "play"))
	}

	c.position = target
	c.display = target
	c.tracked = true
	c.trackedPos = target
	c.lastSample = c.engine.Position()
	c.sinceResync = 0
	c.scrubbing = false

	c.logger.Debug().Dur("target", target).Msg("seek")
	c.forEachSub(func(s *Subscription) { s.sendPosition(target) })
	c.setState(StatePlaying)
	return nil
}

// SetVolume forwards level, clamped to [0, 1], to the engine.
func (c *Controller) SetVolume(level float64) {
	c.volume = clampVolume(level)
	c.engine.SetVolume(c.volume)
	c.publish()
}

// BeginScrub starts a drag of the position slider. Ticks stop updating the
// display until EndScrub.
func (c *Controller) BeginScrub() {
	if c.scrubbing {
		return
	}
	if c.engine.Busy() {
		c.refresh()
		c.position = c.display
	}
	c.scrubbing = true
	c.scrubTarget = c.display
}

// ScrubTo moves the slider preview. It begins a scrub if none is active.
func (c *Controller) ScrubTo(target time.Duration) {
	if !c.scrubbing {
		c.BeginScrub()
	}
	c.scrubTarget = c.clampPosition(target)
}

// EndScrub releases the slider and seeks to the preview, provided a track
// with a known duration is loaded.
func (c *Controller) EndScrub() error {
	if !c.scrubbing {
		return nil
	}
	c.scrubbing = false
	if !c.loaded || c.duration <= 0 {
		return nil
	}
	return c.Seek(c.scrubTarget)
}

// Close closes all subscriptions and the engine.
func (c *Controller) Close() error {
	c.subsMu.Lock()
	for _, sub := range c.subs {
		sub.close()
	}
	c.subs = nil
	c.subsMu.Unlock()
	return c.engine.Close()
}

// Subscribe creates a new event subscription.
func (c *Controller) Subscribe() *Subscription {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	sub := newSubscription()
	c.subs = append(c.subs, sub)
	return sub
}

// playIndex loads the playlist entry at index and starts it at start.
func (c *Controller) playIndex(index int, start time.Duration) error {
	t := c.playlist.Track(index)
	if t == nil {
		return nil
	}

	var prev *Track
	prevIndex := -1
	if c.loaded {
		p := c.now.Track
		prev = &p
		prevIndex = p.Index
	}

	c.clearTracking()
	c.scrubbing = false

	if err := c.engine.Load(t.Path); err != nil {
		c.loaded = false
		c.duration = 0
		c.now = NowPlaying{}
		return c.fail(errmsg.OpPlaybackLoad, t.Path, errors.Wrapf(err, "load %s", t.Name))
	}

	c.loaded = true
	c.duration = c.readDuration(t.Path)
	c.now = newNowPlaying(index, t.Path, c.resolver.Resolve(t.Path), c.duration)
	c.position = start
	c.display = start

	if err := c.engine.Play(start); err != nil {
		return c.fail(errmsg.OpPlaybackStart, t.Path, errors.Wrap(err, "play"))
	}

	c.logger.Info().Str("path", t.Path).Int("index", index).Msg("playing")
	cur := c.now.Track
	c.forEachSub(func(s *Subscription) {
		s.sendTrack(TrackChange{Previous: prev, Current: &cur, PreviousIndex: prevIndex, Index: index})
	})
	c.setState(StatePlaying)
	return nil
}

func (c *Controller) readDuration(path string) time.Duration {
	d, err := c.durations.Duration(path)
	if err != nil {
		c.logger.Debug().Err(err).Str("path", path).Msg("duration unavailable")
		return 0
	}
	return max(d, 0)
}

// fail logs and broadcasts err, leaves the transport stopped and returns err.
func (c *Controller) fail(op errmsg.Op, path string, err error) error {
	c.logger.Error().Err(err).Str("op", string(op)).Str("path", path).Msg("playback failed")
	c.engine.Stop()
	c.position = 0
	c.display = 0
	c.clearTracking()
	c.forEachSub(func(s *Subscription) { s.sendError(ErrorEvent{Operation: op, Path: path, Err: err}) })
	c.setState(StateStopped)
	return err
}

func (c *Controller) clearTracking() {
	c.tracked = false
	c.trackedPos = 0
	c.lastSample = 0
	c.sinceResync = 0
}

func (c *Controller) setState(s State) {
	prev := c.state
	c.state = s
	if prev != s {
		c.logger.Debug().Stringer("from", prev).Stringer("to", s).Msg("state change")
		c.forEachSub(func(sub *Subscription) { sub.sendState(StateChange{Previous: prev, Current: s}) })
	}
	c.publish()
}

func (c *Controller) forEachSub(fn func(*Subscription)) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	for _, sub := range c.subs {
		fn(sub)
	}
}

func (c *Controller) clampPosition(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	if c.duration > 0 && d > c.duration {
		return c.duration
	}
	return d
}

func clampVolume(level float64) float64 {
	return min(max(level, 0), 1)
}
