//go:build linux

package mpris

import (
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/events"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/rs/zerolog"

	"github.com/llehouerou/ripple/internal/playback"
	"github.com/llehouerou/ripple/internal/tags"
)

// Adapter serves MPRIS over D-Bus.
type Adapter struct {
	server *server.Server
	events *events.EventHandler
	logger zerolog.Logger
}

// New creates and starts the adapter. It fails when no session bus is
// reachable.
func New(status StatusFunc, dispatch Dispatcher, logger zerolog.Logger) (*Adapter, error) {
	if _, err := dbus.SessionBus(); err != nil {
		return nil, errors.Wrap(err, "connect session bus")
	}

	s := server.NewServer(Name, &rootAdapter{}, &playerAdapter{status: status, dispatch: dispatch})
	a := &Adapter{
		server: s,
		events: events.NewEventHandler(s),
		logger: logger.With().Str("component", "mpris").Logger(),
	}

	go func() {
		if err := s.Listen(); err != nil {
			a.logger.Warn().Err(err).Msg("mpris server stopped")
		}
	}()
	return a, nil
}

// TrackChanged signals new metadata to MPRIS clients.
func (a *Adapter) TrackChanged() {
	if err := a.events.Player.OnTitle(); err != nil {
		a.logger.Debug().Err(err).Msg("emit metadata change")
	}
}

// StateChanged signals a new playback status.
func (a *Adapter) StateChanged() {
	if err := a.events.Player.OnPlayPause(); err != nil {
		a.logger.Debug().Err(err).Msg("emit playback status change")
	}
}

// Seeked signals a position jump.
func (a *Adapter) Seeked(pos time.Duration) {
	if err := a.events.Player.OnSeek(types.Microseconds(pos.Microseconds())); err != nil {
		a.logger.Debug().Err(err).Msg("emit seeked")
	}
}

// Close stops the server and releases the bus name.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error                { return nil }
func (r *rootAdapter) Quit() error                 { return nil }
func (r *rootAdapter) CanQuit() (bool, error)      { return false, nil }
func (r *rootAdapter) CanRaise() (bool, error)     { return false, nil }
func (r *rootAdapter) HasTrackList() (bool, error) { return false, nil }
func (r *rootAdapter) Identity() (string, error)   { return "Ripple", nil }

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/wav", "audio/ogg"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter. Queries read
// the published snapshot; commands go through dispatch.
type playerAdapter struct {
	status   StatusFunc
	dispatch Dispatcher
}

func (p *playerAdapter) send(c Command) error {
	p.dispatch(c)
	return nil
}

func (p *playerAdapter) Next() error      { return p.send(Command{Action: ActionNext}) }
func (p *playerAdapter) Previous() error  { return p.send(Command{Action: ActionPrevious}) }
func (p *playerAdapter) Pause() error     { return p.send(Command{Action: ActionPause}) }
func (p *playerAdapter) PlayPause() error { return p.send(Command{Action: ActionPlayPause}) }
func (p *playerAdapter) Stop() error      { return p.send(Command{Action: ActionStop}) }
func (p *playerAdapter) Play() error      { return p.send(Command{Action: ActionPlay}) }

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	return p.send(Command{Action: ActionSeek, Offset: time.Duration(offset) * time.Microsecond})
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	return p.send(Command{Action: ActionSetPosition, Position: time.Duration(position) * time.Microsecond})
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error { return nil }

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	return playbackStatus(p.status().State), nil
}

func (p *playerAdapter) Rate() (float64, error)  { return 1.0, nil }
func (p *playerAdapter) SetRate(_ float64) error { return nil }

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	st := p.status()
	if st.Track == nil {
		return types.Metadata{}, nil
	}
	t := st.Track
	meta := types.Metadata{
		TrackId: dbus.ObjectPath(trackID(t.Path)),
		Length:  types.Microseconds(st.Duration.Microseconds()),
		Title:   t.Title,
		Artist:  []string{t.Artist},
		Album:   t.Album,
	}
	if art := tags.FolderArtPath(filepath.Dir(t.Path)); art != "" {
		meta.ArtUrl = "file://" + art
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) { return p.status().Volume, nil }

func (p *playerAdapter) SetVolume(v float64) error {
	return p.send(Command{Action: ActionSetVolume, Volume: v})
}

func (p *playerAdapter) Position() (int64, error) {
	return p.status().Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) { return 1.0, nil }
func (p *playerAdapter) MaximumRate() (float64, error) { return 1.0, nil }

// The playlist wraps around, so next and previous are always possible
// once it has tracks.
func (p *playerAdapter) CanGoNext() (bool, error)     { return p.status().Len > 0, nil }
func (p *playerAdapter) CanGoPrevious() (bool, error) { return p.status().Len > 0, nil }
func (p *playerAdapter) CanPlay() (bool, error)       { return p.status().Len > 0, nil }
func (p *playerAdapter) CanPause() (bool, error)      { return true, nil }
func (p *playerAdapter) CanControl() (bool, error)    { return true, nil }

func (p *playerAdapter) CanSeek() (bool, error) {
	st := p.status()
	return st.Track != nil && st.Duration > 0, nil
}

func playbackStatus(s playback.State) types.PlaybackStatus {
	switch s {
	case playback.StatePlaying:
		return types.PlaybackStatusPlaying
	case playback.StatePaused:
		return types.PlaybackStatusPaused
	case playback.StateStopped:
		return types.PlaybackStatusStopped
	}
	return types.PlaybackStatusStopped
}
