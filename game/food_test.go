package game_test

import (
	"math/rand"
	"testing"

	"github.com/kuredoro/snake_smooth/core"
	"github.com/kuredoro/snake_smooth/game"
)

func TestNewFood(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	field := core.Rect{X: 0, Y: 0, W: 800, H: 600}

	for i := 0; i < 100; i++ {
		f := game.NewFood(r, field, 30)

		if !field.Contains(f.BBox) {
			t.Fatalf("food #%d spawned at %v, outside the field", i, f.BBox)
		}

		if f.BBox.W != 30 || f.BBox.H != 30 {
			t.Fatalf("food #%d has box %v, want a 30x30 square", i, f.BBox)
		}

		if f.BBox.X != f.Pos.X || f.BBox.Y != f.Pos.Y {
			t.Fatalf("food #%d box %v detached from its position %v", i, f.BBox, f.Pos)
		}
	}
}
