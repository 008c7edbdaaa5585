package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ripple/internal/player"
	"github.com/llehouerou/ripple/internal/playlist"
)

// TickCmd sends TickMsg for generation gen after interval.
func TickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return TickMsg{Gen: gen}
	})
}

// ScrubReleaseCmd sends ScrubReleaseMsg after delay.
func ScrubReleaseCmd(delay time.Duration, version int) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ScrubReleaseMsg{Version: version}
	})
}

// CollectCmd walks paths for playable files off the UI loop.
func CollectCmd(paths []string) tea.Cmd {
	return func() tea.Msg {
		found, err := playlist.Collect(paths, player.Supported)
		return FilesCollectedMsg{Paths: found, Err: err}
	}
}

// WatchServiceEvents waits for the next controller event and converts it to
// a tea.Msg. Each handler re-arms the watch.
func (m Model) WatchServiceEvents() tea.Cmd {
	sub := m.sub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return StateChangedMsg{e}
		case e := <-sub.TrackChanged:
			return TrackChangedMsg{e}
		case e := <-sub.PositionChanged:
			return PositionChangedMsg{e}
		case e := <-sub.Error:
			return ServiceErrorMsg{e}
		case <-sub.Done:
			return ServiceClosedMsg{}
		}
	}
}
