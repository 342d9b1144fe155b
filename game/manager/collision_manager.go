package manager

import (
	"retro-snake/game/entity"
	"retro-snake/game/types"
)

type CollisionManager struct {
	cfg types.Config
}

func NewCollisionManager(cfg types.Config) *CollisionManager {
	return &CollisionManager{
		cfg: cfg,
	}
}

// IsWallCollision reports whether pos has left the board. The head can
// only ever be one step outside, so this is the x or y in {-1, CellCount} check.
func (cm *CollisionManager) IsWallCollision(pos types.Cell) bool {
	return !cm.cfg.InBounds(pos)
}

// IsSelfCollision checks the head against every non-head segment.
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	head := snake.Head()
	for i := 1; i < len(snake.Body); i++ {
		if snake.Body[i] == head {
			return true
		}
	}
	return false
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Cell, food *entity.Food) bool {
	return pos == food.Position
}

// ValidateSpawnPosition checks if a position is a legal place for food.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Cell, occupied []types.Cell) bool {
	if cm.IsWallCollision(pos) {
		return false
	}
	return !types.Contains(occupied, pos)
}
