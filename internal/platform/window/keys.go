package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/coursefield/internal/core"
)

// KeyState reports keyboard state for the current tick.
type KeyState interface {
	JustPressed(k ebiten.Key) bool
	Pressed(k ebiten.Key) bool
}

// ebitenKeys reads the real keyboard.
type ebitenKeys struct{}

func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) Pressed(k ebiten.Key) bool { return ebiten.IsKeyPressed(k) }

// MapKeys translates this tick's key presses into editor actions.
func MapKeys(ks KeyState) core.InputFrame {
	frame := core.NewInputFrame()
	shift := ks.Pressed(ebiten.KeyShift)
	ctrl := ks.Pressed(ebiten.KeyControl)

	if ks.JustPressed(ebiten.KeyEscape) {
		frame.Set(core.ActionQuit)
	}
	if ctrl && ks.JustPressed(ebiten.KeyS) {
		frame.Set(core.ActionExport)
	}

	arrows := []struct {
		key          ebiten.Key
		plain, shift core.Action
	}{
		{ebiten.KeyArrowUp, core.ActionNone, core.ActionNudgeUp},
		{ebiten.KeyArrowDown, core.ActionNone, core.ActionNudgeDown},
		{ebiten.KeyArrowLeft, core.ActionPrevDirection, core.ActionNudgeLeft},
		{ebiten.KeyArrowRight, core.ActionNextDirection, core.ActionNudgeRight},
		// '[' ']' change columns, '{' '}' rows
		{ebiten.KeyBracketLeft, core.ActionRemoveColumn, core.ActionRemoveRow},
		{ebiten.KeyBracketRight, core.ActionAddColumn, core.ActionAddRow},
	}
	for _, a := range arrows {
		if !ks.JustPressed(a.key) {
			continue
		}
		if shift {
			frame.Set(a.shift)
		} else {
			frame.Set(a.plain)
		}
	}

	if ks.JustPressed(ebiten.KeyBackspace) || ks.JustPressed(ebiten.KeyDelete) {
		frame.Set(core.ActionClearGoal)
	}
	return frame
}
