package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ripple/internal/keymap"
	"github.com/llehouerou/ripple/internal/mpris"
	"github.com/llehouerou/ripple/internal/playback"
	"github.com/llehouerou/ripple/internal/ui/action"
	"github.com/llehouerou/ripple/internal/ui/filepicker"
	"github.com/llehouerou/ripple/internal/ui/playlistview"
)

// Controller errors are reported through ServiceErrorMsg, so handlers
// discard the returned error.

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	a := m.keys.Resolve(key)

	if m.pickerOpen {
		return m.handlePickerKey(msg, key, a)
	}

	switch a {
	case keymap.ActionQuit:
		return tea.Quit
	case keymap.ActionHelp:
		m.showHelp = !m.showHelp
		return nil
	case keymap.ActionOpenFiles:
		return m.openPicker()
	case keymap.ActionCancel:
		m.showHelp = false
		return nil
	}

	if cmd, ok := m.playlistView.HandleAction(a); ok {
		return cmd
	}
	return m.handlePlayback(a)
}

func (m *Model) handlePickerKey(msg tea.KeyMsg, key string, a keymap.Action) tea.Cmd {
	switch {
	case key == "ctrl+c":
		return tea.Quit
	case a == keymap.ActionCancel:
		m.closePicker()
		return nil
	case a == keymap.ActionAddDirectory:
		return m.picker.AddDirectory()
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return cmd
}

func (m *Model) handlePlayback(a keymap.Action) tea.Cmd {
	c := m.ctrl
	switch a {
	case keymap.ActionPlayPause:
		_ = c.PlayPause()
	case keymap.ActionStop:
		c.Stop()
	case keymap.ActionNextTrack:
		_ = c.Next()
	case keymap.ActionPrevTrack:
		_ = c.Previous()
	case keymap.ActionSeekForward:
		_ = c.Seek(c.Position() + m.cfg.SeekStep)
	case keymap.ActionSeekBack:
		_ = c.Seek(c.Position() - m.cfg.SeekStep)
	case keymap.ActionScrubForward:
		return m.scrub(1)
	case keymap.ActionScrubBack:
		return m.scrub(-1)
	case keymap.ActionVolumeUp:
		c.SetVolume(c.Volume() + volumeStep)
	case keymap.ActionVolumeDown:
		c.SetVolume(c.Volume() - volumeStep)
	default:
		return nil
	}
	return m.ensureTicking()
}

// scrub moves the slider preview one seek step and re-arms the release
// timer. The seek happens when the timer fires without a newer press.
func (m *Model) scrub(direction int) tea.Cmd {
	c := m.ctrl
	if !c.Loaded() {
		return nil
	}
	if !c.Scrubbing() {
		c.BeginScrub()
	}
	c.ScrubTo(c.ScrubTarget() + m.cfg.SeekStep*time.Duration(direction))
	m.scrubVersion++
	return ScrubReleaseCmd(m.cfg.ScrubRelease, m.scrubVersion)
}

func (m *Model) handleScrubRelease(msg ScrubReleaseMsg) tea.Cmd {
	if msg.Version != m.scrubVersion || !m.ctrl.Scrubbing() {
		return nil
	}
	_ = m.ctrl.EndScrub()
	return m.ensureTicking()
}

// ensureTicking starts a tick chain when the controller needs one and none
// is running.
func (m *Model) ensureTicking() tea.Cmd {
	if m.ticking || !m.ctrl.Ticking() {
		return nil
	}
	m.ticking = true
	m.tickGen++
	return TickCmd(m.cfg.TickInterval, m.tickGen)
}

func (m *Model) handleTick(msg TickMsg) tea.Cmd {
	if !m.ticking || msg.Gen != m.tickGen {
		return nil
	}
	if res := m.ctrl.Tick(); res.Advanced {
		m.logger.Debug().Dur("position", res.Position).Msg("advanced to next track")
	}
	if !m.ctrl.Ticking() {
		m.ticking = false
		return nil
	}
	return TickCmd(m.cfg.TickInterval, m.tickGen)
}

func (m *Model) handleAction(msg action.Msg) tea.Cmd {
	switch a := msg.Action.(type) {
	case playlistview.Select:
		_ = m.ctrl.Select(a.Index)
		return m.ensureTicking()
	case filepicker.AddPaths:
		m.closePicker()
		return CollectCmd(a.Paths)
	}
	m.logger.Debug().Str("source", msg.Source).Str("action", msg.Action.ActionType()).Msg("unhandled action")
	return nil
}

// handleMPRIS applies a command received over D-Bus.
func (m *Model) handleMPRIS(cmd mpris.Command) tea.Cmd {
	c := m.ctrl
	switch cmd.Action {
	case mpris.ActionPlayPause:
		_ = c.PlayPause()
	case mpris.ActionPlay:
		if c.State() != playback.StatePlaying {
			_ = c.PlayPause()
		}
	case mpris.ActionPause:
		if c.State() == playback.StatePlaying {
			_ = c.PlayPause()
		}
	case mpris.ActionStop:
		c.Stop()
	case mpris.ActionNext:
		_ = c.Next()
	case mpris.ActionPrevious:
		_ = c.Previous()
	case mpris.ActionSeek:
		_ = c.Seek(c.Position() + cmd.Offset)
	case mpris.ActionSetPosition:
		_ = c.Seek(cmd.Position)
	case mpris.ActionSetVolume:
		c.SetVolume(cmd.Volume)
	}
	return m.ensureTicking()
}

func (m *Model) openPicker() tea.Cmd {
	m.picker = filepicker.New(m.theme, m.pickerDir)
	m.pickerOpen = true
	m.playlistView.SetFocused(false)
	m.resize()
	return m.picker.Init()
}

func (m *Model) closePicker() {
	if !m.pickerOpen {
		return
	}
	m.pickerDir = m.picker.Dir()
	m.pickerOpen = false
	m.playlistView.SetFocused(true)
}
