// Package app is the bubbletea model: it routes keys and desktop commands to
// the playback controller and lays out the panels.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/ripple/internal/config"
	"github.com/llehouerou/ripple/internal/keymap"
	"github.com/llehouerou/ripple/internal/playback"
	"github.com/llehouerou/ripple/internal/playlist"
	"github.com/llehouerou/ripple/internal/ui/albumart"
	"github.com/llehouerou/ripple/internal/ui/filepicker"
	"github.com/llehouerou/ripple/internal/ui/playlistview"
	"github.com/llehouerou/ripple/internal/ui/styles"
)

// volumeStep is the change applied by one volume key press.
const volumeStep = 0.05

// Broadcaster publishes player changes to desktop media controls.
type Broadcaster interface {
	TrackChanged()
	StateChanged()
	Seeked(pos time.Duration)
}

// Announcer shows a desktop notification for a new track.
type Announcer interface {
	Announce(t playback.Track) error
}

// Model is the root application model.
type Model struct {
	cfg      *config.Config
	theme    *styles.Theme
	keys     *keymap.Resolver
	ctrl     *playback.Controller
	playlist *playlist.Playlist
	sub      *playback.Subscription
	mpris    Broadcaster
	notifier Announcer
	logger   zerolog.Logger

	playlistView playlistview.Model
	picker       filepicker.Model
	pickerOpen   bool
	pickerDir    string
	art          *albumart.Renderer

	showHelp bool
	status   string // last error, cleared on the next track change

	// Tick chain. A new chain gets a new generation; ticks from an older
	// one are dropped.
	ticking bool
	tickGen int

	// Scrub release debounce: only the latest key press ends the scrub.
	scrubVersion int

	width, height int
}

// Option configures a Model.
type Option func(*Model)

// WithMPRIS publishes changes to b.
func WithMPRIS(b Broadcaster) Option {
	return func(m *Model) { m.mpris = b }
}

// WithNotifier announces track changes through a.
func WithNotifier(a Announcer) Option {
	return func(m *Model) { m.notifier = a }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Model) { m.logger = l.With().Str("component", "app").Logger() }
}

// New creates the model. The controller must not be shared with another
// event loop.
func New(cfg *config.Config, ctrl *playback.Controller, pl *playlist.Playlist, opts ...Option) Model {
	theme := styles.New(cfg.Theme)
	m := Model{
		cfg:          cfg,
		theme:        theme,
		keys:         keymap.Default(),
		ctrl:         ctrl,
		playlist:     pl,
		sub:          ctrl.Subscribe(),
		logger:       zerolog.Nop(),
		playlistView: playlistview.New(theme, pl),
		pickerDir:    cfg.StartFolder(),
		art:          albumart.New(theme, cfg.AlbumArt.Width, cfg.AlbumArt.Height),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.playlistView.SetFocused(true)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("ripple"), m.WatchServiceEvents())
}

// Status returns the error line, if any.
func (m Model) Status() string { return m.status }
