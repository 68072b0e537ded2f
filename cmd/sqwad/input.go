package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/sqwad/input"
)

const stickDeadzone = 0.2

func anyKeyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyKeyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// pollInput reads the keyboard, mouse and the first gamepad. World y points
// up, so pushing up gives a positive MoveY.
func pollInput() input.State {
	var in input.State

	if anyKeyPressed(ebiten.KeyA, ebiten.KeyArrowLeft) {
		in.MoveX -= 1
	}
	if anyKeyPressed(ebiten.KeyD, ebiten.KeyArrowRight) {
		in.MoveX += 1
	}
	if anyKeyPressed(ebiten.KeyW, ebiten.KeyArrowUp) {
		in.MoveY += 1
	}
	if anyKeyPressed(ebiten.KeyS, ebiten.KeyArrowDown) {
		in.MoveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		in.RotateAxis -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		in.RotateAxis += 1
	}

	fire := ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	firePressed := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	selectPressed := anyKeyJustPressed(ebiten.KeyEnter, ebiten.KeySpace)
	cancelPressed := anyKeyJustPressed(ebiten.KeyEscape, ebiten.KeyBackspace)
	upPressed := anyKeyJustPressed(ebiten.KeyArrowUp, ebiten.KeyW)
	downPressed := anyKeyJustPressed(ebiten.KeyArrowDown, ebiten.KeyS)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			in.MoveX = lx
			in.MoveY = -ly
		}
		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		if math.Abs(rx) > math.Abs(in.RotateAxis) {
			in.RotateAxis = rx
		}

		fire = fire || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
		firePressed = firePressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
		selectPressed = selectPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		cancelPressed = cancelPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightRight)
		upPressed = upPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftTop)
		downPressed = downPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftBottom)
	}

	in.SetButton(input.Fire, fire, firePressed)
	in.SetButton(input.Select, selectPressed, selectPressed)
	in.SetButton(input.Cancel, cancelPressed, cancelPressed)
	in.SetButton(input.Up, upPressed, upPressed)
	in.SetButton(input.Down, downPressed, downPressed)

	x, y := ebiten.CursorPosition()
	in.PointerX = float64(x)
	in.PointerY = float64(y)
	return in
}
