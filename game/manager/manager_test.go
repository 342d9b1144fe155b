package manager

import (
	"testing"
	"time"

	"golang.org/x/exp/rand"

	"retro-snake/game/entity"
	"retro-snake/game/types"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestIsWallCollision(t *testing.T) {
	cm := NewCollisionManager(types.DefaultConfig())
	tests := []struct {
		name string
		pos  types.Cell
		want bool
	}{
		{name: "inside", pos: types.Cell{X: 12, Y: 12}, want: false},
		{name: "origin", pos: types.Cell{X: 0, Y: 0}, want: false},
		{name: "far corner", pos: types.Cell{X: 24, Y: 24}, want: false},
		{name: "left", pos: types.Cell{X: -1, Y: 9}, want: true},
		{name: "right", pos: types.Cell{X: 25, Y: 9}, want: true},
		{name: "top", pos: types.Cell{X: 9, Y: -1}, want: true},
		{name: "bottom", pos: types.Cell{X: 9, Y: 25}, want: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := cm.IsWallCollision(tc.pos); got != tc.want {
				t.Fatalf("IsWallCollision(%v) = %v, want %v", tc.pos, got, tc.want)
			}
		})
	}
}

func TestIsSelfCollision(t *testing.T) {
	cm := NewCollisionManager(types.DefaultConfig())
	s := entity.NewSnake()
	if cm.IsSelfCollision(s) {
		t.Fatal("initial snake should not collide with itself")
	}

	s.Body = []types.Cell{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}, {X: 5, Y: 5}}
	if !cm.IsSelfCollision(s) {
		t.Fatal("head on the last segment should collide")
	}

	s.Body = []types.Cell{{X: 1, Y: 1}}
	if cm.IsSelfCollision(s) {
		t.Fatal("single cell snake cannot collide with itself")
	}
}

func TestGenerateFoodAvoidsOccupied(t *testing.T) {
	cfg := types.DefaultConfig()
	cm := NewCollisionManager(cfg)
	s := entity.NewSnake()
	fm, err := NewFoodManager(cfg, cm, newRand(1), s.Body)
	if err != nil {
		t.Fatalf("NewFoodManager: %v", err)
	}
	for i := 0; i < 500; i++ {
		pos, err := fm.Relocate(s.Body)
		if err != nil {
			t.Fatalf("Relocate: %v", err)
		}
		if s.Occupies(pos) || !cfg.InBounds(pos) {
			t.Fatalf("food placed at %v", pos)
		}
		if fm.Position() != pos {
			t.Fatalf("Position = %v, want %v", fm.Position(), pos)
		}
	}
}

func boardExcept(cfg types.Config, free ...types.Cell) []types.Cell {
	var occupied []types.Cell
	for y := 0; y < cfg.CellCount; y++ {
		for x := 0; x < cfg.CellCount; x++ {
			c := types.Cell{X: x, Y: y}
			if !types.Contains(free, c) {
				occupied = append(occupied, c)
			}
		}
	}
	return occupied
}

func TestGenerateFoodNearlyFullBoard(t *testing.T) {
	cfg := types.DefaultConfig()
	cm := NewCollisionManager(cfg)
	fm, err := NewFoodManager(cfg, cm, newRand(7), nil)
	if err != nil {
		t.Fatalf("NewFoodManager: %v", err)
	}
	last := types.Cell{X: 17, Y: 3}
	pos, err := fm.Relocate(boardExcept(cfg, last))
	if err != nil {
		t.Fatalf("Relocate: %v", err)
	}
	if pos != last {
		t.Fatalf("Relocate = %v, want the only free cell %v", pos, last)
	}
}

func TestRelocateFullBoard(t *testing.T) {
	cfg := types.DefaultConfig()
	cm := NewCollisionManager(cfg)
	fm, err := NewFoodManager(cfg, cm, newRand(3), nil)
	if err != nil {
		t.Fatalf("NewFoodManager: %v", err)
	}
	before := fm.Position()
	if _, err := fm.Relocate(boardExcept(cfg)); err != ErrNoFreeCell {
		t.Fatalf("Relocate err = %v, want ErrNoFreeCell", err)
	}
	if fm.Position() != before {
		t.Fatalf("food moved to %v on failure", fm.Position())
	}
	if _, err := NewFoodManager(cfg, cm, newRand(3), boardExcept(cfg)); err != ErrNoFreeCell {
		t.Fatalf("NewFoodManager err = %v, want ErrNoFreeCell", err)
	}
}

func TestStateManager(t *testing.T) {
	sm := NewStateManager()
	if sm.Running() {
		t.Fatal("new state should be stopped")
	}
	sm.Start()
	sm.AddPoint()
	sm.AddPoint()
	if sm.GetScore() != 2 || sm.GetHighScore() != 2 {
		t.Fatalf("score=%d high=%d, want 2 and 2", sm.GetScore(), sm.GetHighScore())
	}
	if final := sm.GameOver(); final != 2 {
		t.Fatalf("GameOver returned %d, want 2", final)
	}
	if sm.Running() || sm.GetScore() != 0 {
		t.Fatalf("after game over running=%v score=%d", sm.Running(), sm.GetScore())
	}
	sm.Start()
	sm.AddPoint()
	if sm.GetHighScore() != 2 {
		t.Fatalf("high score = %d, want 2", sm.GetHighScore())
	}
	if sm.GetRounds() != 1 {
		t.Fatalf("rounds = %d, want 1", sm.GetRounds())
	}
}

func TestTickManagerReady(t *testing.T) {
	tm := NewTickManager(200 * time.Millisecond)
	steps := []struct {
		now  time.Duration
		want bool
	}{
		{now: 100 * time.Millisecond, want: false},
		{now: 200 * time.Millisecond, want: true},
		{now: 350 * time.Millisecond, want: false},
		{now: 400 * time.Millisecond, want: true},
		{now: 1 * time.Second, want: true},
		{now: 1100 * time.Millisecond, want: false},
	}
	for _, st := range steps {
		if got := tm.Ready(st.now); got != st.want {
			t.Fatalf("Ready(%s) = %v, want %v", st.now, got, st.want)
		}
	}
}
