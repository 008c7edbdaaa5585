// Package albumart renders cover images as half-block characters, two
// pixels per terminal cell, so they compose with regular lipgloss layout.
package albumart

import (
	"bytes"
	"image"
	_ "image/jpeg" // JPEG decoder for album art
	_ "image/png"  // PNG decoder for album art
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"

	"github.com/llehouerou/ripple/internal/ui/styles"
)

const upperHalf = "▀"

// Renderer holds the rendered cover for the current track. Rendering is
// done once per track and size; View returns the cached string.
type Renderer struct {
	theme  *styles.Theme
	width  int
	height int

	key      string
	data     []byte
	img      image.Image
	rendered string
}

// New creates a renderer for a width x height cell area.
func New(theme *styles.Theme, width, height int) *Renderer {
	r := &Renderer{theme: theme, width: width, height: height}
	r.rendered = r.placeholder()
	return r
}

// SetSize changes the cell area, re-rendering the current image.
func (r *Renderer) SetSize(width, height int) {
	if width == r.width && height == r.height {
		return
	}
	r.width, r.height = width, height
	r.render()
}

// Size returns the cell area.
func (r *Renderer) Size() (width, height int) { return r.width, r.height }

// Set decodes data as the cover for key (usually the track path). Empty or
// undecodable data shows the placeholder. The error reports decode failures.
func (r *Renderer) Set(key string, data []byte) error {
	if key == r.key && bytes.Equal(data, r.data) {
		return nil
	}
	r.key = key
	r.data = data
	r.img = nil

	var err error
	if len(data) > 0 {
		r.img, _, err = image.Decode(bytes.NewReader(data))
		err = errors.Wrap(err, "decode album art")
	}
	r.render()
	return err
}

// Clear drops the current image.
func (r *Renderer) Clear() {
	r.key = ""
	r.data = nil
	r.img = nil
	r.render()
}

// HasImage reports whether a decoded image is shown.
func (r *Renderer) HasImage() bool { return r.img != nil }

// View returns the rendered block, exactly width x height cells.
func (r *Renderer) View() string { return r.rendered }

func (r *Renderer) render() {
	if r.img == nil || r.width <= 0 || r.height <= 0 {
		r.rendered = r.placeholder()
		return
	}
	r.rendered = halfBlocks(r.img, r.width, r.height, r.theme.Surface1)
}

func (r *Renderer) placeholder() string {
	if r.width <= 0 || r.height <= 0 {
		return ""
	}
	line := r.theme.S().Placeholder.Render(strings.Repeat(" ", r.width))
	lines := make([]string, r.height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// halfBlocks scales img to width x 2*height pixels and draws each pair of
// rows as one line of upper-half blocks: foreground is the top pixel,
// background the bottom one.
func halfBlocks(img image.Image, width, height int, fallback lipgloss.Color) string {
	//nolint:gosec // cell counts are small
	scaled := resize.Resize(uint(width), uint(height*2), img, resize.Lanczos3)
	b := scaled.Bounds()

	var sb strings.Builder
	for row := range height {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range width {
			top := pixelColor(scaled, b.Min.X+col, b.Min.Y+row*2, fallback)
			bottom := pixelColor(scaled, b.Min.X+col, b.Min.Y+row*2+1, fallback)
			sb.WriteString(lipgloss.NewStyle().
				Foreground(top).
				Background(bottom).
				Render(upperHalf))
		}
	}
	return sb.String()
}

func pixelColor(img image.Image, x, y int, fallback lipgloss.Color) lipgloss.Color {
	c, ok := colorful.MakeColor(img.At(x, y))
	if !ok {
		return fallback
	}
	return lipgloss.Color(c.Hex())
}
