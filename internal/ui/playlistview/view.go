package playlistview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/ripple/internal/icons"
	"github.com/llehouerou/ripple/internal/playlist"
	"github.com/llehouerou/ripple/internal/ui/render"
)

const sizeWidth = 8

const emptyHint = "No tracks. Press o to add files."

// View renders the bordered panel.
func (m Model) View() string {
	if m.Width() <= 0 || m.Height() <= 0 {
		return ""
	}
	width := m.InnerWidth()
	st := m.theme.S()

	header := st.Title.Render(render.Fit(m.header(), width))
	rows := m.renderRows(width, m.ListHeight())

	return m.theme.PanelStyle(m.IsFocused()).
		Width(width).
		Render(header + "\n" + rows)
}

func (m Model) header() string {
	n := m.playlist.Len()
	if n == 0 {
		return "Playlist"
	}
	return fmt.Sprintf("Playlist (%d/%d)", m.playlist.CurrentIndex()+1, n)
}

func (m Model) renderRows(width, height int) string {
	if height <= 0 {
		return ""
	}
	lines := make([]string, 0, height)
	if m.playlist.IsEmpty() {
		lines = append(lines, m.theme.S().Subtle.Render(render.Fit(emptyHint, width)))
	}

	n := m.playlist.Len()
	start, end := m.cursor.Visible(n, height)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(*m.playlist.Track(i), i, width))
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

// renderRow renders "▶ name        4.2 MB", with the marker only on the
// loaded track.
func (m Model) renderRow(t playlist.Track, idx, width int) string {
	marker := icons.Current()
	prefix := strings.Repeat(" ", lipgloss.Width(marker))
	if idx == m.playing {
		prefix = marker
	}

	size := ""
	if t.Size > 0 {
		size = humanize.Bytes(uint64(t.Size))
	}
	nameWidth := width - lipgloss.Width(prefix) - sizeWidth - 1
	if nameWidth < 1 {
		return render.Fit(prefix+t.Name, width)
	}
	line := prefix + render.Fit(t.Name, nameWidth) + " " + fmt.Sprintf("%*s", sizeWidth, size)

	return m.rowStyle(idx).Render(line)
}

func (m Model) rowStyle(idx int) lipgloss.Style {
	st := m.theme.S()
	isCursor := idx == m.cursor.Pos() && m.IsFocused()
	isPlaying := idx == m.playing

	switch {
	case isCursor && isPlaying:
		return st.Cursor.Inherit(st.Playing)
	case isCursor:
		return st.Cursor
	case isPlaying:
		return st.Playing
	default:
		return st.Base
	}
}
