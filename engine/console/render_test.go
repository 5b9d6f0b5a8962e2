package console

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/kuredoro/snake_smooth/config"
	"github.com/kuredoro/snake_smooth/core"
	"github.com/kuredoro/snake_smooth/game"
)

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func assertSimulationScreen(t *testing.T, got tcell.SimulationScreen, want []string) {
	t.Helper()

	gotCells, w, h := got.GetContents()
	wantCells, wantWidth, wantHeight := simCellsFromStrings(want)

	if w != wantWidth || h != wantHeight {
		t.Fatalf("got simulation screen of size %dx%d, want %dx%d", w, h, wantWidth, wantHeight)
	}

	for i := range gotCells {
		if len(gotCells[i].Runes) == 0 && len(wantCells[i].Runes) == 1 && wantCells[i].Runes[0] == ' ' {
			continue
		}

		if !runesEqual(gotCells[i].Runes, wantCells[i].Runes) {
			t.Errorf("at %dx%d got simcell with contents %q, want %q", i%w+1, i/w+1,
				gotCells[i].Runes, wantCells[i].Runes)
		}
	}
}

func simCellsFromStrings(rows []string) ([]tcell.SimCell, int, int) {
	if len(rows) == 0 {
		return nil, 0, 0
	}

	width := len([]rune(rows[0]))
	for i := range rows {
		if got := len([]rune(rows[i])); got != width {
			panic(fmt.Sprintf("inconsistent simulation screen row dimensions: "+
				"row #1 being %d columns wide, while row #%d being %d",
				width, i+1, got))
		}
	}

	cells := make([]tcell.SimCell, len(rows)*width)
	for y := range rows {
		for x, r := range []rune(rows[y]) {
			cells[width*y+x].Runes = []rune{r}
		}
	}

	return cells, width, len(rows)
}

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()

	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(w, h)

	return s
}

// testGame builds a game on a 100x100 field projected onto a 10x10
// cell box, so every 10 world units map onto one cell.
func testGame(t *testing.T) (*Game, *game.GameData) {
	t.Helper()

	cfg := config.Default()
	cfg.FieldWidth = 100
	cfg.FieldHeight = 100

	data := game.NewGameData(cfg, rand.New(rand.NewSource(1)))
	g := NewGame(data, nil, nil)
	g.bound = Boundary{Cell{X: 0, Y: 0}, Cell{X: 11, Y: 11}}

	return g, data
}

func TestCellOf(t *testing.T) {
	g, _ := testGame(t)

	cases := []struct {
		v    core.Vec
		want Cell
	}{
		{core.Vec{X: 0, Y: 0}, Cell{X: 1, Y: 1}},
		{core.Vec{X: 55, Y: 25}, Cell{X: 6, Y: 3}},
		{core.Vec{X: 99.9, Y: 99.9}, Cell{X: 10, Y: 10}},
		// Out-of-field points clamp to the box interior.
		{core.Vec{X: -50, Y: 150}, Cell{X: 1, Y: 10}},
	}

	for _, test := range cases {
		if got := g.cellOf(test.v); got != test.want {
			t.Errorf("cellOf(%v) = %v, want %v", test.v, got, test.want)
		}
	}
}

func TestDrawSegment(t *testing.T) {
	g, _ := testGame(t)
	s := newSimScreen(t, 12, 12)

	l := game.NewLine(core.Vec{X: 10, Y: 50}, core.Right)
	l.Grow(50 - l.Size())

	g.drawSegment(s, &l, 'x', tcell.StyleDefault)
	s.Sync()

	assertSimulationScreen(t, s, []string{
		"            ",
		"            ",
		"            ",
		"            ",
		"            ",
		"            ",
		"  xxxxxx    ",
		"            ",
		"            ",
		"            ",
		"            ",
		"            ",
	})
}

func TestDrawFood(t *testing.T) {
	g, data := testGame(t)
	s := newSimScreen(t, 12, 12)

	data.Food = game.Food{
		Pos:  core.Vec{X: 70, Y: 20},
		BBox: core.Rect{X: 70, Y: 20, W: 30, H: 30},
	}

	g.drawFood(s, tcell.StyleDefault)
	s.Sync()

	assertSimulationScreen(t, s, []string{
		"            ",
		"            ",
		"            ",
		"            ",
		"         #  ",
		"            ",
		"            ",
		"            ",
		"            ",
		"            ",
		"            ",
		"            ",
	})
}

func TestDrawBox(t *testing.T) {
	s := newSimScreen(t, 5, 4)

	drawBox(s, Boundary{Cell{X: 0, Y: 0}, Cell{X: 4, Y: 3}}, tcell.StyleDefault)
	s.Sync()

	assertSimulationScreen(t, s, []string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	})
}
