package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/ripple/internal/config"
)

func TestNew_MapsPalette(t *testing.T) {
	p := config.Default().Theme
	p.Blue = "#112233"

	th := New(p)

	assert.Equal(t, lipgloss.Color("#112233"), th.Blue)
	assert.Equal(t, lipgloss.Color("#45475a"), th.Surface1)
	assert.Equal(t, lipgloss.Color("#1e1e2e"), th.Base)
}

func TestS_IsCached(t *testing.T) {
	th := Default()
	assert.Same(t, th.S(), th.S())
}

func TestGradient(t *testing.T) {
	th := Default()
	assert.Empty(t, th.Gradient(""))
	assert.Equal(t, "abc", ansi.Strip(th.Gradient("abc")))
	assert.Equal(t, "é", ansi.Strip(th.Gradient("é")))
}

func TestBlendColors_Endpoints(t *testing.T) {
	colors := blendColors(3, "#000000", "#ffffff")
	assert.Len(t, colors, 3)
	assert.Less(t, parseColor(colors[0]).DistanceLab(colorful.Color{}), 0.01)
	assert.Less(t, parseColor(colors[2]).DistanceLab(colorful.Color{R: 1, G: 1, B: 1}), 0.01)
	assert.Len(t, blendColors(1, "#123456", "#ffffff"), 1)
	assert.Empty(t, blendColors(0, "#123456", "#ffffff"))
}

func TestParseColor_NonHexIsGray(t *testing.T) {
	assert.Equal(t, fallbackGray, parseColor("240"))
	c, err := colorful.Hex("#89b4fa")
	assert.NoError(t, err)
	assert.Equal(t, c, parseColor("#89b4fa"))
}
