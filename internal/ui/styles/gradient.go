package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// fallbackGray stands in for colors that are not hex, such as ANSI indices.
var fallbackGray = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Gradient renders text in bold, each grapheme tinted along a blend from
// Lavender to Blue. Used for the now-playing title.
func (t *Theme) Gradient(text string) string {
	n := uniseg.GraphemeClusterCount(text)
	if n == 0 {
		return ""
	}
	colors := blendColors(n, t.Lavender, t.Blue)

	var b strings.Builder
	g := uniseg.NewGraphemes(text)
	for i := 0; g.Next(); i++ {
		style := lipgloss.NewStyle().Bold(true).Foreground(colors[i])
		b.WriteString(style.Render(g.Str()))
	}
	return b.String()
}

// blendColors returns n colors spaced evenly in HCL space from from to to.
func blendColors(n int, from, to lipgloss.Color) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []lipgloss.Color{from}
	}
	a, b := parseColor(from), parseColor(to)
	out := make([]lipgloss.Color, n)
	for i := range out {
		out[i] = lipgloss.Color(a.BlendHcl(b, float64(i)/float64(n-1)).Clamped().Hex())
	}
	return out
}

func parseColor(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return fallbackGray
	}
	return col
}
