package player

import (
	"math"

	"github.com/gopxl/beep/v2/speaker"
)

// SetVolume sets the output level (0.0 to 1.0). The level survives track
// changes and is applied to every subsequent Play.
func (p *Player) SetVolume(level float64) {
	p.level = clampLevel(level)
	if p.volume != nil {
		speaker.Lock()
		p.applyVolume()
		speaker.Unlock()
	}
}

// Volume returns the current output level.
func (p *Player) Volume() float64 {
	return p.level
}

func (p *Player) applyVolume() {
	p.volume.Volume = levelToVolume(p.level)
	p.volume.Silent = p.level <= 0
}

func clampLevel(level float64) float64 {
	return min(max(level, 0), 1)
}

// levelToVolume converts a 0.0-1.0 level to beep's Volume value.
// beep uses a logarithmic scale with base 2: 0 is unchanged, -1 is half.
// We map: 1.0 -> 0, 0.5 -> -1, 0.25 -> -2, 0 -> -10 (essentially silent)
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}
