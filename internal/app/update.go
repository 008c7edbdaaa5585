package app

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ripple/internal/errmsg"
	"github.com/llehouerou/ripple/internal/mpris"
	"github.com/llehouerou/ripple/internal/ui/action"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case TickMsg:
		return m, m.handleTick(msg)

	case ScrubReleaseMsg:
		return m, m.handleScrubRelease(msg)

	case StateChangedMsg:
		if m.mpris != nil {
			m.mpris.StateChanged()
		}
		return m, m.WatchServiceEvents()

	case TrackChangedMsg:
		m.handleTrackChanged(msg)
		return m, m.WatchServiceEvents()

	case PositionChangedMsg:
		if m.mpris != nil {
			m.mpris.Seeked(msg.Position)
		}
		return m, m.WatchServiceEvents()

	case ServiceErrorMsg:
		m.status = errmsg.FormatWith(msg.Operation, filepath.Base(msg.Path), msg.Err)
		return m, m.WatchServiceEvents()

	case ServiceClosedMsg:
		return m, nil

	case action.Msg:
		return m, m.handleAction(msg)

	case mpris.Command:
		return m, m.handleMPRIS(msg)

	case FilesCollectedMsg:
		m.handleFilesCollected(msg)
		return m, nil
	}

	// Directory listings and other picker-internal messages.
	if m.pickerOpen {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleFilesCollected(msg FilesCollectedMsg) {
	if msg.Err != nil {
		m.logger.Warn().Err(msg.Err).Msg("some paths could not be read")
		m.status = errmsg.Format(errmsg.OpPlaylistAdd, msg.Err)
	}
	if len(msg.Paths) == 0 {
		return
	}
	m.playlist.Add(msg.Paths...)
	m.ctrl.Refresh()
	m.logger.Info().Int("count", len(msg.Paths)).Msg("tracks added")
}

func (m *Model) handleTrackChanged(msg TrackChangedMsg) {
	m.status = ""
	m.playlistView.SetPlaying(msg.Index)

	if np, ok := m.ctrl.NowPlaying(); ok {
		if err := m.art.Set(np.Path, np.Picture); err != nil {
			m.logger.Debug().Err(err).Str("path", np.Path).Msg("album art")
		}
	}
	if m.mpris != nil {
		m.mpris.TrackChanged()
	}
	if m.notifier != nil && msg.Current != nil {
		if err := m.notifier.Announce(*msg.Current); err != nil {
			m.logger.Debug().Err(err).Msg("notification")
		}
	}
}
