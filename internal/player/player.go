// Package player implements the audio engine on top of beep.
package player

import (
	"os"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/rs/zerolog"
)

var (
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// Player is the beep-backed Engine. It holds at most one loaded stream.
type Player struct {
	state    State
	path     string
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume

	level    float64
	startPos int // stream sample position at the most recent Play

	busy       atomic.Bool
	generation atomic.Uint64

	logger zerolog.Logger
}

// New creates a stopped player with full volume.
func New(logger zerolog.Logger) *Player {
	return &Player{
		state:  Stopped,
		level:  1,
		logger: logger.With().Str("component", "player").Logger(),
	}
}

// Load opens and decodes path, replacing any previously loaded stream.
// Playback does not start until Play is called.
func (p *Player) Load(path string) error {
	p.Stop()
	p.release()

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}

	streamer, format, err := decode(f, path)
	if err != nil {
		f.Close()
		return err
	}

	if !speakerInitialized {
		speakerSampleRate = format.SampleRate
		err = speaker.Init(speakerSampleRate, speakerSampleRate.N(time.Second/10))
		if err != nil {
			streamer.Close()
			f.Close()
			return errors.Wrap(err, "init speaker")
		}
		speakerInitialized = true
	}

	p.path = path
	p.file = f
	p.streamer = streamer
	p.format = format
	p.startPos = 0

	p.logger.Debug().
		Str("path", path).
		Int("sample_rate", int(format.SampleRate)).
		Dur("length", format.SampleRate.D(streamer.Len())).
		Msg("loaded")
	return nil
}

// Play starts the loaded stream at start. Any output already running is
// discarded, and the reported Position restarts at zero.
func (p *Player) Play(start time.Duration) error {
	if p.streamer == nil {
		return ErrNotLoaded
	}
	p.halt()

	pos := min(max(p.format.SampleRate.N(start), 0), p.streamer.Len())
	speaker.Lock()
	err := p.streamer.Seek(pos)
	speaker.Unlock()
	if err != nil {
		return errors.Wrapf(err, "seek to %s", start)
	}
	p.startPos = pos

	// Resample if the track's sample rate differs from the speaker's
	var s beep.Streamer = p.streamer
	if p.format.SampleRate != speakerSampleRate {
		s = beep.Resample(4, p.format.SampleRate, speakerSampleRate, p.streamer)
	}
	p.ctrl = &beep.Ctrl{Streamer: s, Paused: false}
	p.volume = &effects.Volume{Streamer: p.ctrl, Base: 2}
	p.applyVolume()

	gen := p.generation.Add(1)
	p.busy.Store(true)
	p.state = Playing

	speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
		// A stale callback from a cleared stream must not flag the new one.
		if p.generation.Load() == gen {
			p.busy.Store(false)
		}
	})))
	return nil
}

// Pause pauses output without discarding the stream.
func (p *Player) Pause() {
	if p.state != Playing || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// Unpause resumes paused output.
func (p *Player) Unpause() {
	if p.state != Paused || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.state = Playing
}

// Stop halts output. The stream stays loaded so a later Play restarts it.
func (p *Player) Stop() {
	if p.state == Stopped {
		return
	}
	p.halt()
}

// Busy reports whether a stream is playing or paused and has not reached its end.
func (p *Player) Busy() bool {
	return p.busy.Load()
}

// Position returns the time elapsed since the last Play.
func (p *Player) Position() time.Duration {
	if p.streamer == nil || p.state == Stopped {
		return 0
	}
	// Read without the speaker lock; a slightly stale value is fine for display.
	return p.format.SampleRate.D(max(p.streamer.Position()-p.startPos, 0))
}

// AbsolutePosition returns the position within the loaded stream.
func (p *Player) AbsolutePosition() time.Duration {
	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Position())
}

// State returns the output state.
func (p *Player) State() State { return p.state }

// Path returns the loaded file path, or "" if nothing is loaded.
func (p *Player) Path() string { return p.path }

// Close stops output and releases the loaded stream.
func (p *Player) Close() error {
	p.Stop()
	return p.release()
}

// halt clears the speaker and invalidates the running stream's end callback.
func (p *Player) halt() {
	speaker.Clear()
	p.generation.Add(1)
	p.busy.Store(false)
	p.ctrl = nil
	p.volume = nil
	p.state = Stopped
}

func (p *Player) release() error {
	var err error
	if p.streamer != nil {
		err = p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		// The decoder usually closed it already.
		_ = p.file.Close()
		p.file = nil
	}
	p.path = ""
	return err
}
