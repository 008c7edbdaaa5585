package albumart

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/ripple/internal/ui/styles"
)

func pngBytes(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func assertBlock(t *testing.T, view string, width, height int) {
	t.Helper()
	lines := strings.Split(view, "\n")
	require.Len(t, lines, height)
	for i, line := range lines {
		assert.Equal(t, width, lipgloss.Width(line), "line %d", i)
	}
}

func TestPlaceholderByDefault(t *testing.T) {
	r := New(styles.Default(), 8, 4)

	assert.False(t, r.HasImage())
	assertBlock(t, r.View(), 8, 4)
	assert.NotContains(t, r.View(), upperHalf)
}

func TestSet_RendersHalfBlocks(t *testing.T) {
	r := New(styles.Default(), 6, 3)

	require.NoError(t, r.Set("a.mp3", pngBytes(t, 32, 32, color.RGBA{R: 255, A: 255})))

	assert.True(t, r.HasImage())
	assertBlock(t, r.View(), 6, 3)
	assert.Equal(t, 18, strings.Count(r.View(), upperHalf))
}

func TestSet_UndecodableShowsPlaceholder(t *testing.T) {
	r := New(styles.Default(), 4, 2)

	err := r.Set("a.mp3", []byte("not an image"))

	assert.Error(t, err)
	assert.False(t, r.HasImage())
	assertBlock(t, r.View(), 4, 2)
}

func TestSet_EmptyClearsPrevious(t *testing.T) {
	r := New(styles.Default(), 4, 2)
	require.NoError(t, r.Set("a.mp3", pngBytes(t, 8, 8, color.White)))

	require.NoError(t, r.Set("b.mp3", nil))

	assert.False(t, r.HasImage())
}

func TestSetSize_Rerenders(t *testing.T) {
	r := New(styles.Default(), 4, 2)
	require.NoError(t, r.Set("a.mp3", pngBytes(t, 8, 8, color.White)))

	r.SetSize(10, 5)

	w, h := r.Size()
	assert.Equal(t, 10, w)
	assert.Equal(t, 5, h)
	assertBlock(t, r.View(), 10, 5)
}

func TestClear(t *testing.T) {
	r := New(styles.Default(), 4, 2)
	require.NoError(t, r.Set("a.mp3", pngBytes(t, 8, 8, color.White)))

	r.Clear()

	assert.False(t, r.HasImage())
	assert.NotContains(t, r.View(), upperHalf)
}

func TestZeroSize(t *testing.T) {
	r := New(styles.Default(), 0, 0)
	assert.Empty(t, r.View())
}
