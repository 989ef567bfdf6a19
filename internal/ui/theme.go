package ui

import (
	"image/color"

	"github.com/crazy3lf/colorconv"
)

// Theme is the shared display-mode state. Particle lightness is derived from
// it on every draw call; nothing downstream caches the resolved colors.
type Theme struct {
	Dark bool
}

func (t *Theme) Toggle() { t.Dark = !t.Dark }

func (t *Theme) Background() color.Color {
	if t.Dark {
		return color.RGBA{16, 18, 28, 255}
	}
	return color.RGBA{244, 245, 249, 255}
}

// ParticleColor maps a hue to hsl(hue, 100%, L) with L at 70% on dark
// backgrounds and 50% on light ones.
func (t *Theme) ParticleColor(hue float64) color.Color {
	light := 0.5
	if t.Dark {
		light = 0.7
	}
	r, g, b, err := colorconv.HSLToRGB(hue, 1, light)
	if err != nil {
		// Hue is kept in [0,360) by the simulation; reaching this means a
		// caller bug, so paint it loudly.
		return color.RGBA{255, 0, 255, 255}
	}
	return color.RGBA{r, g, b, 255}
}

func (t *Theme) IndicatorColor() color.Color {
	if t.Dark {
		return color.RGBA{235, 235, 245, 255}
	}
	return color.RGBA{40, 42, 54, 255}
}

var (
	colBarBG        = color.RGBA{15, 15, 15, 230}
	colButtonBorder = color.RGBA{240, 240, 240, 255}
	colButtonFill   = color.RGBA{40, 40, 40, 255}
)
