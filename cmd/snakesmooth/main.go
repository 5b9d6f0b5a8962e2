package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/i582/cfmt/cmd/cfmt"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kuredoro/snake_smooth/audio"
	"github.com/kuredoro/snake_smooth/config"
	"github.com/kuredoro/snake_smooth/engine/console"
	"github.com/kuredoro/snake_smooth/game"
)

func main() {
	configFlag := flag.String("config", "config.json", "path to the config file")
	muteFlag := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		cfmt.Printf("{{error:}}::lightRed|bold load config: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so the log goes to a file.
	logFile, err := os.Create(cfg.Log)
	if err != nil {
		cfmt.Printf("{{error:}}::lightRed|bold open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: logFile, NoColor: true})

	var sounds *audio.SoundManager
	if cfg.Sound && !*muteFlag {
		sounds = audio.NewSoundManager()
		if err := sounds.Initialize(); err != nil {
			cfmt.Printf("{{warning:}}::lightYellow|bold audio disabled: %v\n", err)
			sounds = nil
		}
		defer sounds.Cleanup()
	}

	updates, stopWatch, err := config.Watch(*configFlag)
	if err != nil {
		log.Err(err).Msg("Watch config")
	} else {
		defer stopWatch()
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	data := game.NewGameData(cfg, r)
	g := console.NewGame(data, sounds, updates)

	app := tview.NewApplication()
	menu := console.Cover(
		func() {
			app.Suspend(func() {
				if err := g.Run(); err != nil {
					log.Err(err).Msg("Run game")
				}
			})
		},
		func() {
			app.Stop()
		},
	)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyCtrlC {
			app.Stop()
			return nil
		}
		return event
	})

	if err := app.SetRoot(menu, true).EnableMouse(true).Run(); err != nil {
		cfmt.Printf("{{error:}}::lightRed|bold %v\n", err)
		os.Exit(1)
	}
}
