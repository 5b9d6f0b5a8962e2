package console

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/kuredoro/snake_smooth/audio"
	"github.com/kuredoro/snake_smooth/config"
	"github.com/kuredoro/snake_smooth/core"
	"github.com/kuredoro/snake_smooth/game"
)

// Boundary is the terminal-cell box the field is drawn in. The world
// coordinates of the game are projected onto its interior.
type Boundary struct {
	TopLeft     Cell
	BottomRight Cell
}

type Cell struct {
	X, Y int
}

var defaultBoundary = Boundary{Cell{X: 1, Y: 1}, Cell{X: 81, Y: 41}}

var key2Dir = map[tcell.Key]core.Direction{
	tcell.KeyLeft:  core.Left,
	tcell.KeyRight: core.Right,
	tcell.KeyUp:    core.Up,
	tcell.KeyDown:  core.Down,
}

// Game renders a GameData onto a tcell screen and feeds terminal input
// back into it.
type Game struct {
	data    *game.GameData
	sounds  *audio.SoundManager
	updates <-chan *config.Config
	bound   Boundary
}

// NewGame wraps data for terminal play. sounds and updates may be nil:
// a nil sound manager is mute and a nil updates channel never fires.
func NewGame(data *game.GameData, sounds *audio.SoundManager, updates <-chan *config.Config) *Game {
	return &Game{
		data:    data,
		sounds:  sounds,
		updates: updates,
		bound:   defaultBoundary,
	}
}

func drawText(s tcell.Screen, x1, y1, x2, y2 int, style tcell.Style, text string) {
	row := y1
	col := x1
	for _, r := range []rune(text) {
		s.SetContent(col, row, r, nil, style)
		col++
		if col >= x2 {
			row++
			col = x1
		}
		if row > y2 {
			break
		}
	}
}

func drawBox(s tcell.Screen, boundary Boundary, style tcell.Style) {
	x1, y1 := boundary.TopLeft.X, boundary.TopLeft.Y
	x2, y2 := boundary.BottomRight.X, boundary.BottomRight.Y

	// Clear the interior
	for row := y1 + 1; row < y2; row++ {
		for col := x1 + 1; col < x2; col++ {
			s.SetContent(col, row, ' ', nil, style)
		}
	}

	// Draw borders
	for col := x1; col <= x2; col++ {
		s.SetContent(col, y1, tcell.RuneHLine, nil, style)
		s.SetContent(col, y2, tcell.RuneHLine, nil, style)
	}
	for row := y1 + 1; row < y2; row++ {
		s.SetContent(x1, row, tcell.RuneVLine, nil, style)
		s.SetContent(x2, row, tcell.RuneVLine, nil, style)
	}

	s.SetContent(x1, y1, tcell.RuneULCorner, nil, style)
	s.SetContent(x2, y1, tcell.RuneURCorner, nil, style)
	s.SetContent(x1, y2, tcell.RuneLLCorner, nil, style)
	s.SetContent(x2, y2, tcell.RuneLRCorner, nil, style)
}

// cellOf projects a world point onto a terminal cell inside the box.
func (g *Game) cellOf(v core.Vec) Cell {
	cfg := g.data.Config()
	innerW := g.bound.BottomRight.X - g.bound.TopLeft.X - 1
	innerH := g.bound.BottomRight.Y - g.bound.TopLeft.Y - 1

	col := g.bound.TopLeft.X + 1 + int(v.X/cfg.FieldWidth*float64(innerW))
	row := g.bound.TopLeft.Y + 1 + int(v.Y/cfg.FieldHeight*float64(innerH))

	if col < g.bound.TopLeft.X+1 {
		col = g.bound.TopLeft.X + 1
	}
	if col > g.bound.BottomRight.X-1 {
		col = g.bound.BottomRight.X - 1
	}
	if row < g.bound.TopLeft.Y+1 {
		row = g.bound.TopLeft.Y + 1
	}
	if row > g.bound.BottomRight.Y-1 {
		row = g.bound.BottomRight.Y - 1
	}

	return Cell{X: col, Y: row}
}

// drawSegment draws one body segment as a straight run of cells from
// its trailing point to its leading point.
func (g *Game) drawSegment(s tcell.Screen, l *game.Line, r rune, style tcell.Style) {
	beg := g.cellOf(l.Beg())
	end := g.cellOf(l.End())

	if beg.X > end.X {
		beg.X, end.X = end.X, beg.X
	}
	if beg.Y > end.Y {
		beg.Y, end.Y = end.Y, beg.Y
	}

	for row := beg.Y; row <= end.Y; row++ {
		for col := beg.X; col <= end.X; col++ {
			s.SetContent(col, row, r, nil, style)
		}
	}
}

func (g *Game) drawSnake(s tcell.Screen, style tcell.Style) {
	segs := g.data.Snake.Segments()
	for i := range segs {
		g.drawSegment(s, &segs[i], tcell.RuneBlock, style)
	}

	head := g.cellOf(g.data.Snake.Head().End())
	s.SetContent(head.X, head.Y, tcell.RuneDiamond, nil, style)
}

func (g *Game) drawFood(s tcell.Screen, style tcell.Style) {
	half := g.data.Config().FoodSize / 2
	center := g.data.Food.Pos.Add(core.Vec{X: half, Y: half})
	cell := g.cellOf(center)
	s.SetContent(cell.X, cell.Y, '#', nil, style)
}

func (g *Game) drawScore(s tcell.Screen, style tcell.Style) {
	text := fmt.Sprintf("Score: %d  Length: %.0f", g.data.Score, g.data.Snake.Length())
	drawText(s, g.bound.TopLeft.X+1, g.bound.TopLeft.Y-1, g.bound.BottomRight.X-1, g.bound.TopLeft.Y-1, style, text)
}

func (g *Game) drawPreGame(s tcell.Screen, style tcell.Style) {
	const text = "Press an arrow key to start"
	width := len(text) + 4

	x1 := (g.bound.TopLeft.X + g.bound.BottomRight.X - width) / 2
	y1 := (g.bound.TopLeft.Y + g.bound.BottomRight.Y - 2) / 2
	drawBox(s, Boundary{Cell{X: x1, Y: y1}, Cell{X: x1 + width, Y: y1 + 2}}, style)
	drawText(s, x1+2, y1+1, x1+width-1, y1+1, style, text)
}

// Draw renders one full frame onto s.
func (g *Game) Draw(s tcell.Screen) {
	boxStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	snakeStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	foodStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	textStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	drawBox(s, g.bound, boxStyle)
	g.drawSnake(s, snakeStyle)
	g.drawFood(s, foodStyle)
	g.drawScore(s, textStyle)

	if g.data.State == game.PreGame {
		g.drawPreGame(s, textStyle)
	}
}

// update advances the game by dt seconds and plays the sound cues for
// whatever happened during the frame.
func (g *Game) update(dt float64) {
	if g.data.State != game.Playing {
		return
	}

	prevScore := g.data.Score

	g.data.UpdateInput(dt)
	g.data.UpdateSnake(dt)

	if g.data.Score > prevScore {
		g.sounds.PlayEat()
	}
	if g.data.State == game.PreGame {
		g.sounds.PlayCrash()
	}
}

// Run owns the terminal until the player quits with Escape or Ctrl-C.
func (g *Game) Run() error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %v", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("init screen: %v", err)
	}
	defer s.Fini()

	s.DisableMouse()
	s.Clear()
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset))

	eventCh := make(chan tcell.Event)
	go func() {
		for {
			e := s.PollEvent()
			if e == nil {
				return
			}
			eventCh <- e
		}
	}()

	frame := time.NewTicker(time.Second / time.Duration(g.data.Config().FPS))
	defer frame.Stop()

	last := time.Now()
	for {
		g.Draw(s)
		s.Show()

		select {
		case <-frame.C:
			now := time.Now()
			g.update(now.Sub(last).Seconds())
			last = now
		case cfg, ok := <-g.updates:
			if !ok {
				g.updates = nil
				continue
			}
			g.data.SetConfig(cfg)
			log.Info().Msg("Config reloaded")
		case ev := <-eventCh:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				s.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}

				dir, arrow := key2Dir[ev.Key()]
				if !arrow {
					continue
				}

				if g.data.State == game.PreGame {
					g.data.Start()
					last = time.Now()
				}
				g.data.PushInput(dir)
			}
		}
	}
}
