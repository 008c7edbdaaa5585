// Package playerbar renders the now-playing block: title, artist line and
// the progress bar with the volume indicator.
package playerbar

import (
	"strings"
	"time"

	"github.com/llehouerou/ripple/internal/playback"
	"github.com/llehouerou/ripple/internal/ui/render"
	"github.com/llehouerou/ripple/internal/ui/styles"
)

// Height is the number of lines Render produces.
const Height = 3

const infoSeparator = " · "

// State holds everything needed to render the player bar.
type State struct {
	Loaded    bool
	Playing   bool
	Paused    bool
	Title     string
	Artist    string
	Album     string
	Year      string
	Position  time.Duration
	Duration  time.Duration
	Scrubbing bool
	Volume    float64
}

// NewState reads the controller. While scrubbing, Position is the slider
// preview rather than the playback position.
func NewState(c *playback.Controller) State {
	s := State{
		Playing:   c.State() == playback.StatePlaying,
		Paused:    c.State() == playback.StatePaused,
		Position:  c.Position(),
		Duration:  c.Duration(),
		Scrubbing: c.Scrubbing(),
		Volume:    c.Volume(),
	}
	if s.Scrubbing {
		s.Position = c.ScrubTarget()
	}
	if np, ok := c.NowPlaying(); ok {
		s.Loaded = true
		s.Title = np.Title
		s.Artist = np.Artist
		s.Album = np.Album
		s.Year = np.Year
	}
	return s
}

// Info returns the "Artist · Album · Year: X" line. The year part is
// omitted when unknown.
func (s State) Info() string {
	parts := []string{s.Artist, s.Album}
	if s.Year != "" {
		parts = append(parts, "Year: "+s.Year)
	}
	return strings.Join(parts, infoSeparator)
}

// Render returns Height lines, each at most width cells.
func Render(t *styles.Theme, s State, width int) string {
	if width <= 0 {
		return ""
	}
	st := t.S()

	if !s.Loaded {
		return strings.Join([]string{
			st.Subtle.Render(render.Truncate("Nothing loaded", width)),
			"",
			RenderProgressBar(t, s, width),
		}, "\n")
	}

	title := t.Gradient(render.Truncate(s.Title, width))
	info := st.Muted.Render(render.Truncate(s.Info(), width))
	return strings.Join([]string{title, info, RenderProgressBar(t, s, width)}, "\n")
}
