package playerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/ripple/internal/icons"
	"github.com/llehouerou/ripple/internal/playback"
	"github.com/llehouerou/ripple/internal/ui/styles"
)

const (
	filledBlock = "━"
	emptyBlock  = "─"
	minBarWidth = 3
	gap         = "  "
)

// RenderProgressBar renders the transport line.
// Format: ▶  1:23  ━━━━━─────  4:56  🔊  70%
func RenderProgressBar(t *styles.Theme, s State, width int) string {
	st := t.S()

	status := icons.Stop()
	switch {
	case s.Playing:
		status = icons.Play()
	case s.Paused:
		status = icons.Pause()
	}

	pos := playback.FormatTime(s.Position)
	dur := playback.FormatTime(s.Duration)
	vol := RenderVolume(s.Volume)

	fixed := lipgloss.Width(status) + lipgloss.Width(pos) + lipgloss.Width(dur) +
		lipgloss.Width(vol) + 4*len(gap)
	barWidth := width - fixed
	if barWidth < minBarWidth {
		return st.Subtle.Render(status + gap + pos + " / " + dur)
	}

	filled := filledCells(s, barWidth)
	filledStyle := st.BarFilled
	if s.Scrubbing {
		filledStyle = lipgloss.NewStyle().Foreground(t.Lavender)
	}
	bar := filledStyle.Render(strings.Repeat(filledBlock, filled)) +
		st.BarEmpty.Render(strings.Repeat(emptyBlock, barWidth-filled))

	return status + gap + st.Muted.Render(pos) + gap + bar + gap +
		st.Muted.Render(dur) + gap + st.Subtle.Render(vol)
}

func filledCells(s State, barWidth int) int {
	if s.Duration <= 0 || s.Position <= 0 {
		return 0
	}
	ratio := float64(s.Position) / float64(s.Duration)
	return min(int(float64(barWidth)*ratio), barWidth)
}
