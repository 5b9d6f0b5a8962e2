// snakesim drives the game headlessly with a scripted input sequence.
// Handy for eyeballing the update pipeline without a terminal game.
package main

import (
	"flag"
	"math/rand"
	"os"

	"github.com/i582/cfmt/cmd/cfmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kuredoro/snake_smooth/config"
	"github.com/kuredoro/snake_smooth/core"
	"github.com/kuredoro/snake_smooth/game"
)

func main() {
	seedFlag := flag.Int64("seed", 42, "seed for food placement")
	secondsFlag := flag.Float64("seconds", 10, "simulated game time")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	cfg := config.Default()
	g := game.NewGameData(cfg, rand.New(rand.NewSource(*seedFlag)))
	g.Start()

	// Walk a clockwise rectangle around the middle of the field.
	script := []core.Direction{
		core.Down, core.Left, core.Up, core.Right,
	}

	dt := 1.0 / float64(cfg.FPS)
	frames := int(*secondsFlag * float64(cfg.FPS))
	next := 0

	cfmt.Printf("{{snakesim}}::lightGreen|bold seed=%d seconds=%v\n", *seedFlag, *secondsFlag)

	resets := 0
	for i := 0; i < frames; i++ {
		// One scripted turn per second.
		if i%cfg.FPS == 0 {
			g.PushInput(script[next%len(script)])
			next++
		}

		prevState := g.State
		g.UpdateInput(dt)
		g.UpdateSnake(dt)

		if prevState == game.Playing && g.State == game.PreGame {
			resets++
			cfmt.Printf("{{crash}}::lightRed|bold at frame %d, restarting\n", i)
			g.Start()
		}

		if i%cfg.FPS == cfg.FPS-1 {
			head := g.Snake.Head().End()
			cfmt.Printf("t=%2ds score=%d length=%.1f segments=%d head=(%.0f, %.0f)\n",
				(i+1)/cfg.FPS, g.Score, g.Snake.Length(), len(g.Snake.Segments()), head.X, head.Y)
		}
	}

	cfmt.Printf("{{done}}::lightGreen|bold score=%d length=%.1f resets=%d\n",
		g.Score, g.Snake.Length(), resets)
}
