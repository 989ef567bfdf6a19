package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	cursorPosition           = ebiten.CursorPosition
	isMouseButtonJustPressed = inpututil.IsMouseButtonJustPressed
	isKeyJustPressed         = inpututil.IsKeyJustPressed
)

// SetInputForTest replaces input functions during tests and returns a
// function to restore the originals.
func SetInputForTest(
	cursor func() (int, int),
	mouseJust func(ebiten.MouseButton) bool,
	keyJust func(ebiten.Key) bool,
) func() {
	oldCursor := cursorPosition
	oldMouse := isMouseButtonJustPressed
	oldKey := isKeyJustPressed
	cursorPosition = cursor
	isMouseButtonJustPressed = mouseJust
	isKeyJustPressed = keyJust
	return func() {
		cursorPosition = oldCursor
		isMouseButtonJustPressed = oldMouse
		isKeyJustPressed = oldKey
	}
}
