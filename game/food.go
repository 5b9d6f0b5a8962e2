package game

import (
	"math/rand"

	"github.com/kuredoro/snake_smooth/core"
)

// Food is a square item placed on the field. Eating it grows the snake
// by the food's size.
type Food struct {
	Pos  core.Vec
	BBox core.Rect
}

// NewFood places a food item of the given size at a random position,
// fully inside the field.
func NewFood(r *rand.Rand, field core.Rect, size float64) Food {
	pos := core.Vec{
		X: field.X + r.Float64()*(field.W-size),
		Y: field.Y + r.Float64()*(field.H-size),
	}

	return Food{
		Pos:  pos,
		BBox: core.Rect{X: pos.X, Y: pos.Y, W: size, H: size},
	}
}
