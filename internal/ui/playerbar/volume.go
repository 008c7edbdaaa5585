package playerbar

import (
	"fmt"
	"math"

	"github.com/llehouerou/ripple/internal/icons"
)

// RenderVolume renders the volume indicator, e.g. "🔊  70%".
func RenderVolume(level float64) string {
	pct := int(math.Round(level * 100))
	return fmt.Sprintf("%s %3d%%", icons.Volume(level), pct)
}
