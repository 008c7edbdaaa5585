// Package filepicker wraps the bubbles file picker for adding audio files
// and folders to the playlist.
package filepicker

import (
	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ripple/internal/tags"
	"github.com/llehouerou/ripple/internal/ui"
	"github.com/llehouerou/ripple/internal/ui/action"
	"github.com/llehouerou/ripple/internal/ui/render"
	"github.com/llehouerou/ripple/internal/ui/styles"
)

// Source names this component in action messages.
const Source = "filepicker"

// AddPaths asks the app to add files, or folders to walk, to the playlist.
type AddPaths struct {
	Paths []string
}

// ActionType implements action.Action.
func (AddPaths) ActionType() string { return "filepicker.add_paths" }

// AllowedTypes are the extensions offered by the picker.
var AllowedTypes = []string{tags.ExtMP3, tags.ExtFLAC, tags.ExtWAV, tags.ExtOGG}

// Model is the file picker panel.
type Model struct {
	ui.Base
	theme  *styles.Theme
	picker filepicker.Model
}

// New creates a picker rooted at dir.
func New(theme *styles.Theme, dir string) Model {
	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.AllowedTypes = AllowedTypes
	fp.FileAllowed = true
	fp.DirAllowed = false
	fp.ShowSize = true
	fp.ShowPermissions = false
	fp.AutoHeight = false
	fp.Styles = pickerStyles(theme)

	return Model{theme: theme, picker: fp}
}

func pickerStyles(t *styles.Theme) filepicker.Styles {
	st := t.S()
	s := filepicker.DefaultStyles()
	s.Cursor = st.Title
	s.Directory = st.Playing
	s.File = st.Base
	s.Selected = st.Title
	s.DisabledFile = st.Subtle
	s.DisabledSelected = st.Subtle
	s.FileSize = st.Subtle.Width(8)
	s.EmptyDirectory = st.Subtle.SetString("No files here.")
	return s
}

// Init reads the starting directory.
func (m Model) Init() tea.Cmd {
	return m.picker.Init()
}

// Dir returns the directory being browsed.
func (m Model) Dir() string { return m.picker.CurrentDirectory }

// SetSize resizes the panel.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.picker.Height = max(m.ListHeight(), 1)
}

// Update forwards msg to the picker and emits AddPaths when a file is chosen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		return m, tea.Batch(cmd, action.Cmd(Source, AddPaths{Paths: []string{path}}))
	}
	return m, cmd
}

// AddDirectory emits AddPaths for the directory being browsed.
func (m Model) AddDirectory() tea.Cmd {
	return action.Cmd(Source, AddPaths{Paths: []string{m.picker.CurrentDirectory}})
}

// View renders the bordered panel.
func (m Model) View() string {
	if m.Width() <= 0 || m.Height() <= 0 {
		return ""
	}
	width := m.InnerWidth()
	header := m.theme.S().Title.Render(render.Fit("Add: "+m.picker.CurrentDirectory, width))

	body := m.theme.S().Base.
		Width(width).
		Height(m.ListHeight()).
		MaxHeight(m.ListHeight()).
		Render(m.picker.View())

	return m.theme.PanelStyle(true).Width(width).Render(header + "\n" + body)
}
