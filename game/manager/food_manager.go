package manager

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"retro-snake/game/entity"
	"retro-snake/game/types"
)

// ErrNoFreeCell is returned when the snake covers the whole board.
var ErrNoFreeCell = errors.New("no free cell left for food")

// maxSpawnAttempts bounds the random probing before falling back to
// picking from the explicit list of free cells.
const maxSpawnAttempts = 64

type FoodManager struct {
	cfg          types.Config
	food         *entity.Food
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

// NewFoodManager places the first pellet outside of occupied.
func NewFoodManager(cfg types.Config, collisionMgr *CollisionManager, rng *rand.Rand, occupied []types.Cell) (*FoodManager, error) {
	fm := &FoodManager{
		cfg:          cfg,
		food:         &entity.Food{},
		rng:          rng,
		collisionMgr: collisionMgr,
	}
	if _, err := fm.Relocate(occupied); err != nil {
		return nil, err
	}
	return fm, nil
}

func (fm *FoodManager) Food() *entity.Food {
	return fm.food
}

func (fm *FoodManager) Position() types.Cell {
	return fm.food.Position
}

// Relocate moves the food to a uniformly random cell not in occupied.
// On failure the food stays where it was.
func (fm *FoodManager) Relocate(occupied []types.Cell) (types.Cell, error) {
	pos, err := fm.GenerateFood(occupied)
	if err != nil {
		return fm.food.Position, err
	}
	fm.food.Position = pos
	return pos, nil
}

// GenerateFood samples random cells until one is free. Near a full board
// it switches to choosing directly among the free cells, which keeps the
// result uniform and always terminates.
func (fm *FoodManager) GenerateFood(occupied []types.Cell) (types.Cell, error) {
	for i := 0; i < maxSpawnAttempts; i++ {
		food := fm.randomCell()
		if fm.collisionMgr.ValidateSpawnPosition(food, occupied) {
			return food, nil
		}
	}

	free := fm.freeCells(occupied)
	if len(free) == 0 {
		return types.Cell{}, ErrNoFreeCell
	}
	return free[fm.rng.Intn(len(free))], nil
}

func (fm *FoodManager) randomCell() types.Cell {
	return types.Cell{
		X: fm.rng.Intn(fm.cfg.CellCount),
		Y: fm.rng.Intn(fm.cfg.CellCount),
	}
}

func (fm *FoodManager) freeCells(occupied []types.Cell) []types.Cell {
	taken := make(map[types.Cell]struct{}, len(occupied))
	for _, c := range occupied {
		taken[c] = struct{}{}
	}
	var free []types.Cell
	for y := 0; y < fm.cfg.CellCount; y++ {
		for x := 0; x < fm.cfg.CellCount; x++ {
			c := types.Cell{X: x, Y: y}
			if _, ok := taken[c]; !ok {
				free = append(free, c)
			}
		}
	}
	return free
}
