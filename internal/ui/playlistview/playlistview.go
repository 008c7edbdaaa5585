// Package playlistview renders the playlist panel and turns navigation keys
// into cursor moves and track selection.
package playlistview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ripple/internal/keymap"
	"github.com/llehouerou/ripple/internal/playlist"
	"github.com/llehouerou/ripple/internal/ui"
	"github.com/llehouerou/ripple/internal/ui/action"
	"github.com/llehouerou/ripple/internal/ui/cursor"
	"github.com/llehouerou/ripple/internal/ui/styles"
)

// Source names this component in action messages.
const Source = "playlist"

// Select asks the app to play the track at Index.
type Select struct {
	Index int
}

// ActionType implements action.Action.
func (Select) ActionType() string { return "playlist.select" }

// Model is the playlist panel.
type Model struct {
	ui.Base
	theme    *styles.Theme
	playlist *playlist.Playlist
	cursor   cursor.Cursor
	playing  int // index of the loaded track, -1 if none
}

// New creates a panel over pl.
func New(theme *styles.Theme, pl *playlist.Playlist) Model {
	return Model{
		theme:    theme,
		playlist: pl,
		cursor:   cursor.New(ui.ScrollMargin),
		playing:  -1,
	}
}

// Cursor returns the highlighted index.
func (m Model) Cursor() int { return m.cursor.Pos() }

// Playing returns the index marked as loaded, or -1.
func (m Model) Playing() int { return m.playing }

// SetPlaying marks index as the loaded track and moves the cursor onto it.
func (m *Model) SetPlaying(index int) {
	m.playing = index
	if index >= 0 {
		m.cursor.Jump(index, m.playlist.Len(), m.ListHeight())
	}
}

// SetSize resizes the panel and keeps the cursor in view.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.cursor.Jump(m.cursor.Pos(), m.playlist.Len(), m.ListHeight())
}

// HandleAction applies a navigation action. handled is false for actions
// this panel does not own.
func (m *Model) HandleAction(a keymap.Action) (cmd tea.Cmd, handled bool) {
	n, h := m.playlist.Len(), m.ListHeight()
	switch a {
	case keymap.ActionMoveUp:
		m.cursor.Move(-1, n, h)
	case keymap.ActionMoveDown:
		m.cursor.Move(1, n, h)
	case keymap.ActionJumpStart:
		m.cursor.Start()
	case keymap.ActionJumpEnd:
		m.cursor.End(n, h)
	case keymap.ActionPageUp:
		m.cursor.Page(-1, n, h)
	case keymap.ActionPageDown:
		m.cursor.Page(1, n, h)
	case keymap.ActionSelect:
		if n == 0 {
			return nil, true
		}
		return action.Cmd(Source, Select{Index: m.cursor.Pos()}), true
	default:
		return nil, false
	}
	return nil, true
}
