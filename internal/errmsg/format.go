// Package errmsg turns failed operations into the one-line messages shown in
// the status bar.
package errmsg

import "github.com/cockroachdb/errors"

// Op names a user-visible operation. It reads after "Failed to".
type Op string

const (
	OpPlaybackLoad  Op = "load track"
	OpPlaybackStart Op = "start playback"
	OpPlaybackSeek  Op = "seek"
	OpPlaylistAdd   Op = "add files"

	OpConfigLoad  Op = "load configuration"
	OpInitialize  Op = "initialize application"
	OpMPRISStart  Op = "start media controls"
	OpNotifyStart Op = "connect to notification service"
)

// Format returns "Failed to <op>: <err>", or "" when err is nil.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return "Failed to " + string(op) + ": " + err.Error()
}

// FormatWith names the file the operation was about. The subject already
// identifies what failed, so only the root cause of err is kept.
func FormatWith(op Op, subject string, err error) string {
	if err == nil {
		return ""
	}
	if subject == "" {
		return Format(op, err)
	}
	return "Failed to " + string(op) + " '" + subject + "': " + errors.UnwrapAll(err).Error()
}
