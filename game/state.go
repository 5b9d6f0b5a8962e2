package game

import (
	"math/rand"

	"github.com/rs/zerolog/log"

	"github.com/kuredoro/snake_smooth/config"
	"github.com/kuredoro/snake_smooth/core"
)

type State int

const (
	PreGame State = iota
	Playing
)

// GameData holds the game objects and manages player input. It is
// mutated only by the frame loop, one update at a time.
type GameData struct {
	Snake      *Snake
	Food       Food
	Inputs     []core.Direction
	InputTimer float64
	Score      int
	State      State

	cfg *config.Config
	r   *rand.Rand
}

// NewGameData creates the game in the PreGame state, with the snake in
// the middle of the field and the food at a random spot.
func NewGameData(cfg *config.Config, r *rand.Rand) *GameData {
	g := &GameData{
		cfg:   cfg,
		r:     r,
		State: PreGame,
	}

	g.Snake = g.newSnake()
	g.Food = g.spawnFood()

	return g
}

// Config returns the active configuration.
func (g *GameData) Config() *config.Config {
	return g.cfg
}

// SetConfig swaps the configuration. A snake stranded outside a shrunk
// field is handled by the regular wall check on the next update.
func (g *GameData) SetConfig(cfg *config.Config) {
	g.cfg = cfg
}

// Start switches from the pre-game screen to the running game.
func (g *GameData) Start() {
	g.State = Playing
}

// PushInput appends a direction to the pending input queue. Inputs are
// filtered and applied by UpdateInput, not here.
func (g *GameData) PushInput(dir core.Direction) {
	g.Inputs = append(g.Inputs, dir)
}

func (g *GameData) newSnake() *Snake {
	s := NewSnake(g.cfg.FieldWidth/2, g.cfg.FieldHeight/2, core.Right)
	s.Grow(g.cfg.InitialLength)
	return s
}

// spawnFood places new food anywhere the snake isn't. Rejection
// sampling: the snake covers a tiny fraction of the field, so the loop
// finishes almost immediately.
func (g *GameData) spawnFood() Food {
	food := NewFood(g.r, g.cfg.FieldRect(), g.cfg.FoodSize)
	for g.Snake.Collide(food.BBox) {
		food = NewFood(g.r, g.cfg.FieldRect(), g.cfg.FoodSize)
	}
	return food
}

// Reset discards the game objects and returns to the pre-game screen.
func (g *GameData) Reset() {
	g.Snake = g.newSnake()
	g.Food = g.spawnFood()
	g.Inputs = nil
	g.Score = 0
	g.State = PreGame
}

// UpdateInput applies at most one turn per InputInterval seconds. The
// queue is scanned from the most recent entry to the oldest one for the
// first direction that is not colinear with the current one. That entry
// becomes the turn, newer entries are discarded as noise, and older
// ones are kept for the next tick. If every entry is colinear, the
// whole queue is redundant and dropped.
func (g *GameData) UpdateInput(dt float64) {
	g.InputTimer += dt
	if g.InputTimer < g.cfg.InputInterval {
		return
	}

	for i := len(g.Inputs) - 1; i >= 0; i-- {
		if g.Inputs[i].IsColinear(g.Snake.Dir()) {
			continue
		}

		dir := g.Inputs[i]
		g.Inputs = g.Inputs[:i]

		g.Snake.Turn(dir)
		g.InputTimer = 0

		log.Debug().Stringer("dir", dir).Msg("Turn applied")
		return
	}

	g.Inputs = g.Inputs[:0]
}

// UpdateSnake advances the game by one frame: eat, crash, or move.
func (g *GameData) UpdateSnake(dt float64) {
	if g.Snake.Collide(g.Food.BBox) {
		g.Snake.Grow(g.cfg.FoodSize)
		g.Score++
		g.Food = g.spawnFood()

		log.Info().Int("score", g.Score).Float64("length", g.Snake.Length()).Msg("Food eaten")
		return
	}

	if g.Snake.SelfCollide() || g.Snake.WallCollide(g.cfg.FieldRect()) {
		log.Info().Int("score", g.Score).Msg("Snake crashed")
		g.Reset()
		return
	}

	g.Snake.Move(dt * g.cfg.Speed)
}
