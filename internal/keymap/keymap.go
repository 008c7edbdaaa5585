// Package keymap defines key bindings for the application.
package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "playlist", "filepicker"
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},
	{ActionOpenFiles, []string{"o", "a"}, "Add files", "global"},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionStop, []string{"s"}, "Stop", "playback"},
	{ActionNextTrack, []string{"n", "pgdown"}, "Next track", "playback"},
	{ActionPrevTrack, []string{"p", "pgup"}, "Previous track", "playback"},
	{ActionSeekForward, []string{"right", "l"}, "Seek forward", "playback"},
	{ActionSeekBack, []string{"left", "h"}, "Seek back", "playback"},
	{ActionScrubForward, []string{"shift+right", "L"}, "Drag position forward", "playback"},
	{ActionScrubBack, []string{"shift+left", "H"}, "Drag position back", "playback"},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", "playback"},
	{ActionVolumeDown, []string{"-"}, "Volume down", "playback"},

	// Playlist
	{ActionMoveUp, []string{"k", "up"}, "Move up", "playlist"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "playlist"},
	{ActionJumpStart, []string{"g", "home"}, "First track", "playlist"},
	{ActionJumpEnd, []string{"G", "end"}, "Last track", "playlist"},
	{ActionPageUp, []string{"ctrl+u"}, "Page up", "playlist"},
	{ActionPageDown, []string{"ctrl+d"}, "Page down", "playlist"},
	{ActionSelect, []string{"enter"}, "Play highlighted track", "playlist"},

	// File picker
	{ActionAddDirectory, []string{"tab"}, "Add current folder", "filepicker"},
	{ActionCancel, []string{"esc"}, "Close file picker", "filepicker"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Default returns a resolver over All.
func Default() *Resolver {
	return NewResolver(All)
}
