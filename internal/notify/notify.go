// Package notify sends desktop notifications via D-Bus.
package notify

import (
	"path/filepath"
	"strings"

	"github.com/llehouerou/ripple/internal/playback"
	"github.com/llehouerou/ripple/internal/tags"
)

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// trackTimeout is how long a track change notification stays up, in ms.
const trackTimeout = 4000

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// Nop discards notifications.
type Nop struct{}

// Notify implements Notifier.
func (Nop) Notify(Notification) (uint32, error) { return 0, nil }

// Close implements Notifier.
func (Nop) Close(uint32) error { return nil }

// ForTrack builds the "now playing" notification for t.
func ForTrack(t playback.Track) Notification {
	var body []string
	for _, s := range []string{t.Artist, t.Album} {
		if s != "" {
			body = append(body, s)
		}
	}
	return Notification{
		Title:   t.Title,
		Body:    strings.Join(body, " - "),
		Icon:    tags.FolderArtPath(filepath.Dir(t.Path)),
		Timeout: trackTimeout,
		Urgency: UrgencyLow,
	}
}

// TrackNotifier announces track changes, replacing its previous
// notification instead of stacking a new one per track.
type TrackNotifier struct {
	notifier Notifier
	lastID   uint32
}

// NewTrackNotifier wraps n.
func NewTrackNotifier(n Notifier) *TrackNotifier {
	return &TrackNotifier{notifier: n}
}

// Announce shows t.
func (tn *TrackNotifier) Announce(t playback.Track) error {
	n := ForTrack(t)
	n.ReplacesID = tn.lastID
	id, err := tn.notifier.Notify(n)
	if err != nil {
		return err
	}
	tn.lastID = id
	return nil
}
