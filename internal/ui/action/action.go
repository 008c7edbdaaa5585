// Package action defines the messages UI components send to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is a request from a UI component. ActionType names it in logs.
type Action interface {
	ActionType() string
}

// Msg wraps an action with the name of the component that raised it.
type Msg struct {
	Source string // "playlist", "filepicker"
	Action Action
}

var _ tea.Msg = Msg{}

// Cmd returns a command that delivers a as a Msg from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg { return Msg{Source: source, Action: a} }
}
