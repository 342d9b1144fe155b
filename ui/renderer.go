package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"retro-snake/game"
	"retro-snake/game/types"
)

const (
	Title         = "Retro Snake"
	fontSize      = 40
	frameThick    = 5
	segmentRound  = 0.5
	segmentSmooth = 6
)

var (
	LightGreen = rl.Color{R: 173, G: 204, B: 96, A: 255}
	DarkGreen  = rl.Color{R: 43, G: 51, B: 24, A: 255}
)

type Renderer struct {
	cfg    types.Config
	assets *Assets
}

func NewRenderer(cfg types.Config, assets *Assets) *Renderer {
	return &Renderer{
		cfg:    cfg,
		assets: assets,
	}
}

// CellRect maps a board cell to its pixel rectangle.
func CellRect(cfg types.Config, c types.Cell) rl.Rectangle {
	return rl.Rectangle{
		X:      float32(cfg.Offset + c.X*cfg.CellSize),
		Y:      float32(cfg.Offset + c.Y*cfg.CellSize),
		Width:  float32(cfg.CellSize),
		Height: float32(cfg.CellSize),
	}
}

// FrameRect is the border drawn just outside the board.
func FrameRect(cfg types.Config) rl.Rectangle {
	return rl.Rectangle{
		X:      float32(cfg.Offset - frameThick),
		Y:      float32(cfg.Offset - frameThick),
		Width:  float32(cfg.BoardPixels() + 2*frameThick),
		Height: float32(cfg.BoardPixels() + 2*frameThick),
	}
}

func ScoreText(g *game.Game) string {
	return fmt.Sprintf("Score: %d  Best: %d", g.Score(), g.HighScore())
}

func (r *Renderer) Draw(g *game.Game) {
	rl.BeginDrawing()
	rl.ClearBackground(LightGreen)

	rl.DrawRectangleLinesEx(FrameRect(r.cfg), frameThick, DarkGreen)

	for _, c := range g.GetSnake().Body {
		rl.DrawRectangleRounded(CellRect(r.cfg, c), segmentRound, segmentSmooth, DarkGreen)
	}

	food := CellRect(r.cfg, g.GetFood())
	rl.DrawTexture(r.assets.Food, int32(food.X), int32(food.Y), rl.White)

	textX := int32(r.cfg.Offset - frameThick)
	rl.DrawText(Title, textX, 20, fontSize, DarkGreen)
	rl.DrawText(ScoreText(g), textX, int32(r.cfg.Offset+r.cfg.BoardPixels()+10), fontSize, DarkGreen)

	rl.EndDrawing()
}
