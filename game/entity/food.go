package entity

import "retro-snake/game/types"

// Food is the single pellet on the board.
type Food struct {
	Position types.Cell
}
