package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/blocky/menu"
	"github.com/milk9111/blocky/obj"
)

const stickDeadzone = 0.2

// Input polls the keyboard and the first gamepad once per frame.
type Input struct {
	running bool
}

// Poll samples the movement flags. Space (or the left face button) latches
// running on; it stays on until the level ends.
func (i *Input) Poll() obj.Input {
	in := obj.Input{
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Quit:  inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		i.running = true
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		in.Left = in.Left || x < -stickDeadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		in.Right = in.Right || x > stickDeadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		in.Up = in.Up || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.Quit = in.Quit || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft) {
			i.running = true
		}
	}

	in.Running = i.running
	return in
}

// Reset clears latched state for a new level.
func (i *Input) Reset() {
	i.running = false
}

// menuKeys returns this frame's key presses mapped to menu keys.
func menuKeys() []menu.Key {
	var out []menu.Key
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		switch k {
		case ebiten.KeyArrowUp, ebiten.KeyW:
			out = append(out, menu.KeyUp)
		case ebiten.KeyArrowDown, ebiten.KeyS:
			out = append(out, menu.KeyDown)
		case ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace:
			out = append(out, menu.KeyConfirm)
		case ebiten.KeyEscape:
			out = append(out, menu.KeyEscape)
		default:
			out = append(out, menu.KeyOther)
		}
	}
	return out
}

// anyPressed reports a fresh key press or left click.
func anyPressed() bool {
	return len(inpututil.AppendJustPressedKeys(nil)) > 0 ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}
