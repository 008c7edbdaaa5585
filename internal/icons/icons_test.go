//nolint:goconst // test cases intentionally repeat strings for readability
package icons

import (
	"testing"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		style    string
		expected Icons
	}{
		{"nerd style", "nerd", nerdIcons},
		{"unicode style", "unicode", unicodeIcons},
		{"none style", "none", noneIcons},
		{"empty string defaults to none", "", noneIcons},
		{"unknown style defaults to none", "invalid", noneIcons},
		{"case sensitive - NERD defaults to none", "NERD", noneIcons},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)
			if current != tt.expected {
				t.Errorf("Init(%q) selected %+v", tt.style, current)
			}
		})
	}

	Init("none")
}

func TestFormatDir(t *testing.T) {
	tests := []struct {
		style    string
		expected string
	}{
		{"none", "music/"},
		{"nerd", "\uf07b music"},
		{"unicode", "📁 music"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			if got := FormatDir("music"); got != tt.expected {
				t.Errorf("FormatDir(music) = %q, want %q", got, tt.expected)
			}
		})
	}

	Init("none")
}

func TestFormatAudio(t *testing.T) {
	Init("none")
	if got := FormatAudio("a.mp3"); got != "a.mp3" {
		t.Errorf("FormatAudio = %q, want plain name", got)
	}
	Init("unicode")
	if got := FormatAudio("a.mp3"); got != "🎵 a.mp3" {
		t.Errorf("FormatAudio = %q", got)
	}
	Init("none")
}

func TestTransportIcons(t *testing.T) {
	Init("none")
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"play", Play(), ">"},
		{"pause", Pause(), "||"},
		{"stop", Stop(), "[]"},
		{"volume", Volume(0.5), "vol"},
		{"mute", Volume(0), "mute"},
		{"current", Current(), "> "},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}
