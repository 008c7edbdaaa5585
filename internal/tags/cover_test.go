package tags

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, data, 0o600))
}

func TestFolderArtPath_Priority(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "folder.png"), []byte{0x89, 'P', 'N', 'G'})
	assert.Equal(t, filepath.Join(dir, "folder.png"), FolderArtPath(dir))

	writeFile(t, filepath.Join(dir, "cover.jpg"), []byte{0xFF, 0xD8, 0xFF})
	assert.Equal(t, filepath.Join(dir, "cover.jpg"), FolderArtPath(dir))
}

func TestFolderArtPath_SkipsEmptyFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "cover.jpg"), nil)
	assert.Empty(t, FolderArtPath(dir))
}

func TestFolderArt_ReadsData(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "front.png"), []byte("png-bytes"))

	data, mime := FolderArt(dir)
	assert.Equal(t, []byte("png-bytes"), data)
	assert.Equal(t, "image/png", mime)
}
