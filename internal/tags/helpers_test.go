package tags

import (
	"os"
	"testing"

	"github.com/bogem/id3v2/v2"
)

// createMinimalMP3 writes a single MPEG1 Layer3 128kbps 44100Hz frame.
func createMinimalMP3(t *testing.T, path string) {
	t.Helper()
	frame := make([]byte, 417)
	frame[0] = 0xff
	frame[1] = 0xfb
	frame[2] = 0x90
	frame[3] = 0x00

	if err := os.WriteFile(path, frame, 0o600); err != nil {
		t.Fatalf("failed to create test MP3: %v", err)
	}
}

// tagMP3 opens path with bogem/id3v2, lets fn add frames, and saves.
func tagMP3(t *testing.T, path string, fn func(tag *id3v2.Tag)) {
	t.Helper()
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("failed to open MP3 for tagging: %v", err)
	}
	defer tag.Close()

	fn(tag)

	if err := tag.Save(); err != nil {
		t.Fatalf("failed to save ID3 tags: %v", err)
	}
}
