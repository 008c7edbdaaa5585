// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit      Action = "quit"
	ActionHelp      Action = "help"
	ActionOpenFiles Action = "open_files"

	// Playback actions
	ActionPlayPause    Action = "play_pause"
	ActionStop         Action = "stop"
	ActionNextTrack    Action = "next_track"
	ActionPrevTrack    Action = "prev_track"
	ActionSeekForward  Action = "seek_forward"
	ActionSeekBack     Action = "seek_back"
	ActionScrubForward Action = "scrub_forward"
	ActionScrubBack    Action = "scrub_back"
	ActionVolumeUp     Action = "volume_up"
	ActionVolumeDown   Action = "volume_down"

	// Playlist navigation
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"
	ActionSelect    Action = "select" // enter - play the highlighted track

	// File picker
	ActionAddDirectory Action = "add_directory"
	ActionCancel       Action = "cancel"
)
