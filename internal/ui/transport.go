package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const barHeight = 36

// Transport is the control bar along the top edge: a pause toggle and a
// theme toggle. Its buttons are the surface's interactive elements, so the
// follower's hover state keys off them.
type Transport struct {
	pauseRect image.Rectangle
	themeRect image.Rectangle
	hovered   bool
}

func NewTransport() *Transport {
	return &Transport{
		pauseRect: image.Rect(10, 7, 70, 29),
		themeRect: image.Rect(80, 7, 140, 29),
	}
}

func in(x, y int, r image.Rectangle) bool {
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}

// Update reads the cursor and reports which buttons were clicked this tick.
func (t *Transport) Update() (pauseClicked, themeClicked bool) {
	x, y := cursorPosition()
	t.hovered = in(x, y, t.pauseRect) || in(x, y, t.themeRect)

	if !isMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false, false
	}
	return in(x, y, t.pauseRect), in(x, y, t.themeRect)
}

// Hovered reports whether the raw pointer is over any button.
func (t *Transport) Hovered() bool { return t.hovered }

func (t *Transport) Draw(dst *ebiten.Image, paused, dark bool) {
	w := dst.Bounds().Dx()
	drawRect(dst, image.Rect(0, 0, w, barHeight), colBarBG, true)

	drawButton(dst, t.pauseRect, colButtonFill, colButtonBorder, paused)
	label := "pause"
	if paused {
		label = "resume"
	}
	ebitenutil.DebugPrintAt(dst, label, t.pauseRect.Min.X+6, t.pauseRect.Min.Y+3)

	drawButton(dst, t.themeRect, colButtonFill, colButtonBorder, !dark)
	ebitenutil.DebugPrintAt(dst, "theme", t.themeRect.Min.X+6, t.themeRect.Min.Y+3)
}
