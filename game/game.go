package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"retro-snake/game/entity"
	"retro-snake/game/manager"
	"retro-snake/game/types"
)

// Game owns one snake and one pellet and decides what a tick does to them.
type Game struct {
	id  string
	cfg types.Config

	snake        *entity.Snake
	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
	stateMgr     *manager.StateManager

	log zerolog.Logger
	rng *rand.Rand
}

type Option func(*Game)

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) {
		g.log = l
	}
}

// WithRand fixes the random source used for food placement.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		g.rng = r
	}
}

func NewGame(cfg types.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid game config")
	}

	g := &Game{
		id:  uuid.New().String(),
		cfg: cfg,
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	g.log = g.log.With().Str("game", g.id).Logger()

	g.snake = entity.NewSnake()
	g.collisionMgr = manager.NewCollisionManager(cfg)
	g.stateMgr = manager.NewStateManager()

	foodMgr, err := manager.NewFoodManager(cfg, g.collisionMgr, g.rng, g.snake.Body)
	if err != nil {
		return nil, errors.Wrap(err, "placing initial food")
	}
	g.foodMgr = foodMgr

	return g, nil
}

// ID is the session id attached to every log line.
func (g *Game) ID() string {
	return g.id
}

func (g *Game) Config() types.Config {
	return g.cfg
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() types.Cell {
	return g.foodMgr.Position()
}

func (g *Game) Running() bool {
	return g.stateMgr.Running()
}

func (g *Game) Score() int {
	return g.stateMgr.GetScore()
}

func (g *Game) HighScore() int {
	return g.stateMgr.GetHighScore()
}

func (g *Game) Rounds() int {
	return g.stateMgr.GetRounds()
}

// ChangeDirection applies a directional input. An accepted direction also
// starts the game, which is the only way out of the stopped state.
func (g *Game) ChangeDirection(dir types.Direction) bool {
	if !g.snake.ChangeDirection(dir) {
		return false
	}
	g.stateMgr.Start()
	return true
}

// Update advances the game by one tick and reports what happened. While
// stopped it does nothing. Food is checked before the border and the
// body, so a move that eats and then crashes still scores the pellet
// before the round resets.
func (g *Game) Update() types.Event {
	if !g.stateMgr.Running() {
		return types.EventNone
	}

	g.snake.Update()
	head := g.snake.Head()
	ev := types.EventNone

	if g.collisionMgr.IsFoodCollision(head, g.foodMgr.Food()) {
		ev |= types.EventAte
		g.snake.Grow()
		g.stateMgr.AddPoint()
		if _, err := g.foodMgr.Relocate(g.snake.Body); err != nil {
			g.log.Warn().Err(err).Int("length", g.snake.Len()).Msg("board is full")
			return ev | types.EventBoardFull | g.gameOver("board full")
		}
		g.log.Debug().
			Int("score", g.stateMgr.GetScore()).
			Interface("food", g.foodMgr.Position()).
			Msg("food eaten")
	}

	if g.collisionMgr.IsWallCollision(head) {
		return ev | types.EventHitWall | g.gameOver("wall")
	}

	if g.collisionMgr.IsSelfCollision(g.snake) {
		return ev | types.EventHitSelf | g.gameOver("self")
	}

	return ev
}

// gameOver resets snake, food, score and the running flag together.
func (g *Game) gameOver(cause string) types.Event {
	length := g.snake.Len()
	g.snake.Reset()
	if _, err := g.foodMgr.Relocate(g.snake.Body); err != nil {
		// Unreachable with a validated config: the reset snake is 3 cells.
		g.log.Error().Err(err).Msg("relocating food after reset")
	}
	final := g.stateMgr.GameOver()

	g.log.Info().
		Str("cause", cause).
		Int("score", final).
		Int("length", length).
		Int("best", g.stateMgr.GetHighScore()).
		Int("round", g.stateMgr.GetRounds()).
		Msg("game over")
	return types.EventGameOver
}
