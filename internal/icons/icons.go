package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Folder  string
	Audio   string
	Play    string
	Pause   string
	Stop    string
	Volume  string
	Mute    string
	Current string // playlist marker for the loaded track
}

var (
	nerdIcons = Icons{
		Folder:  "\uf07b ", // nf-fa-folder
		Audio:   "\uf001 ", // nf-fa-music
		Play:    "\uf04b",  // nf-fa-play
		Pause:   "\uf04c",  // nf-fa-pause
		Stop:    "\uf04d",  // nf-fa-stop
		Volume:  "\uf028",  // nf-fa-volume_up
		Mute:    "\uf026",  // nf-fa-volume_off
		Current: "\uf04b ", // nf-fa-play
	}

	unicodeIcons = Icons{
		Folder:  "📁 ",
		Audio:   "🎵 ",
		Play:    "▶",
		Pause:   "⏸",
		Stop:    "■",
		Volume:  "🔊",
		Mute:    "🔇",
		Current: "▶ ",
	}

	noneIcons = Icons{
		Folder:  "/",
		Audio:   "",
		Play:    ">",
		Pause:   "||",
		Stop:    "[]",
		Volume:  "vol",
		Mute:    "mute",
		Current: "> ",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// FormatDir formats a directory name with the appropriate icon.
// For "none" style the folder marker is a suffix.
func FormatDir(name string) string {
	if current == noneIcons {
		return name + current.Folder
	}
	return current.Folder + name
}

// FormatAudio formats an audio file name with the appropriate icon.
func FormatAudio(name string) string {
	return current.Audio + name
}

// Play returns the icon shown while paused or stopped.
func Play() string { return current.Play }

// Pause returns the icon shown while playing.
func Pause() string { return current.Pause }

// Stop returns the stop icon.
func Stop() string { return current.Stop }

// Volume returns the volume icon, or the mute icon at zero.
func Volume(level float64) string {
	if level <= 0 {
		return current.Mute
	}
	return current.Volume
}

// Current returns the marker for the loaded playlist entry.
func Current() string { return current.Current }
