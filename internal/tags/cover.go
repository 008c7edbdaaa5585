package tags

import (
	"os"
	"path/filepath"
	"strings"
)

// Cover image filenames looked up next to a track when it has no embedded picture.
var coverArtFilenames = []string{
	"cover.jpg", "cover.jpeg", "cover.png",
	"folder.jpg", "folder.jpeg", "folder.png",
	"album.jpg", "album.jpeg", "album.png",
	"front.jpg", "front.jpeg", "front.png",
}

// FolderArtPath returns the first cover image file in dir, or "".
func FolderArtPath(dir string) string {
	for _, name := range coverArtFilenames {
		for _, candidate := range []string{name, strings.ToUpper(name)} {
			path := filepath.Join(dir, candidate)
			if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() && fi.Size() > 0 {
				return path
			}
		}
	}
	return ""
}

// FolderArt reads the cover image in dir. It returns nil data when none exists.
func FolderArt(dir string) (data []byte, mimeType string) {
	path := FolderArtPath(dir)
	if path == "" {
		return nil, ""
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, ""
	}
	return b, imageMIME(path)
}

func imageMIME(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}
