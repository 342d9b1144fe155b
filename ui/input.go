package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"retro-snake/game/types"
)

// keyBindings is checked in this order every frame.
var keyBindings = []struct {
	key int32
	dir types.Direction
}{
	{rl.KeyUp, types.UP},
	{rl.KeyRight, types.RIGHT},
	{rl.KeyDown, types.DOWN},
	{rl.KeyLeft, types.LEFT},
}

// PressedDirections returns the directions whose key went down this frame.
func PressedDirections() []types.Direction {
	return pressed(rl.IsKeyPressed)
}

func pressed(isPressed func(key int32) bool) []types.Direction {
	var dirs []types.Direction
	for _, b := range keyBindings {
		if isPressed(b.key) {
			dirs = append(dirs, b.dir)
		}
	}
	return dirs
}
