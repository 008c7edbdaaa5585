package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/ripple/internal/keymap"
	"github.com/llehouerou/ripple/internal/ui"
	"github.com/llehouerou/ripple/internal/ui/playerbar"
	"github.com/llehouerou/ripple/internal/ui/render"
)

const (
	artGap       = 2
	footerHeight = 1
)

// helpContexts orders the sections of the help panel.
var helpContexts = []string{"playback", "playlist", "global", "filepicker"}

// View implements tea.Model.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	var body string
	switch {
	case m.pickerOpen:
		body = m.picker.View()
	case m.showHelp:
		body = m.renderHelp(m.width, m.panelHeight())
	default:
		body = m.playlistView.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.renderTop(), body, m.renderFooter())
}

func (m Model) showArt() bool {
	w, h := m.art.Size()
	return w > 0 && h > 0 && m.width >= ui.MinArtWidth && m.width-w-artGap > 0
}

func (m Model) topHeight() int {
	if m.showArt() {
		_, h := m.art.Size()
		return max(h, playerbar.Height)
	}
	return playerbar.Height
}

func (m Model) panelHeight() int {
	return max(m.height-m.topHeight()-footerHeight, 0)
}

func (m *Model) resize() {
	h := m.panelHeight()
	m.playlistView.SetSize(m.width, h)
	if m.pickerOpen {
		m.picker.SetSize(m.width, h)
	}
}

// renderTop lays out the cover next to the now-playing block.
func (m Model) renderTop() string {
	state := playerbar.NewState(m.ctrl)
	if !m.showArt() {
		return playerbar.Render(m.theme, state, m.width)
	}
	w, _ := m.art.Size()
	bar := playerbar.Render(m.theme, state, m.width-w-artGap)
	bar = lipgloss.NewStyle().Height(m.topHeight()).Render(bar)
	return lipgloss.JoinHorizontal(lipgloss.Top, m.art.View(), strings.Repeat(" ", artGap), bar)
}

func (m Model) renderFooter() string {
	st := m.theme.S()
	if m.status != "" {
		return st.Error.Render(render.Truncate(m.status, m.width))
	}
	return st.Subtle.Render(render.Truncate(m.hint(), m.width))
}

// hint is the one-line key summary shown under the playlist.
func (m Model) hint() string {
	if m.pickerOpen {
		return "enter add file · tab add folder · esc close"
	}
	parts := []struct {
		action keymap.Action
		label  string
	}{
		{keymap.ActionPlayPause, "play/pause"},
		{keymap.ActionNextTrack, "next"},
		{keymap.ActionPrevTrack, "prev"},
		{keymap.ActionSeekForward, "seek"},
		{keymap.ActionOpenFiles, "add"},
		{keymap.ActionHelp, "help"},
		{keymap.ActionQuit, "quit"},
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		keys := m.keys.KeysFor(p.action)
		if len(keys) == 0 {
			continue
		}
		out = append(out, keyLabel(keys[0])+" "+p.label)
	}
	return strings.Join(out, " · ")
}

func (m Model) renderHelp(width, height int) string {
	if height <= 0 {
		return ""
	}
	st := m.theme.S()
	inner := max(width-ui.BorderSize, 0)

	var lines []string
	for _, ctx := range helpContexts {
		lines = append(lines, st.Title.Render(render.Fit(ctx, inner)))
		for _, b := range keymap.ByContext(ctx) {
			keys := make([]string, len(b.Keys))
			for i, k := range b.Keys {
				keys[i] = keyLabel(k)
			}
			key := st.Playing.Render(render.Fit(strings.Join(keys, "/"), 16))
			lines = append(lines, key+st.Base.Render(render.Fit(b.Description, max(inner-16, 0))))
		}
	}

	rows := height - ui.BorderSize
	if len(lines) > rows {
		lines = lines[:max(rows, 0)]
	}
	for len(lines) < rows {
		lines = append(lines, strings.Repeat(" ", inner))
	}
	return m.theme.PanelStyle(true).Width(inner).Render(strings.Join(lines, "\n"))
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
