package console

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	welcome    = `Welcome to snake_smooth.`
	navigation = `Arrow keys to steer, Escape to leave a game`
)

// Cover builds the menu screen shown before and between games.
func Cover(onStart, onQuit func()) tview.Primitive {
	// Create a frame for the subtitle and navigation infos.
	frame := tview.NewFrame(tview.NewBox()).
		SetBorders(0, 0, 0, 0, 0, 0).
		AddText(welcome, true, tview.AlignCenter, tcell.ColorGreen).
		AddText("", true, tview.AlignCenter, tcell.ColorWhite).
		AddText(navigation, true, tview.AlignCenter, tcell.ColorDarkMagenta)

	startBtn := tview.NewButton("Start game").SetSelectedFunc(onStart)
	quitBtn := tview.NewButton("Quit").SetSelectedFunc(onQuit)

	// Create a Flex layout that centers the text and the buttons.
	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(tview.NewBox(), 0, 5, false).
		AddItem(frame, 0, 1, false).
		AddItem(tview.NewFlex().
			SetDirection(tview.FlexColumn).
			AddItem(tview.NewBox(), 0, 1, false).
			AddItem(startBtn, 20, 1, true).
			AddItem(quitBtn, 20, 1, false).
			AddItem(tview.NewBox(), 0, 1, false), 1, 1, true).
		AddItem(tview.NewBox(), 0, 5, false)
	return flex
}
