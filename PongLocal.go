package main

import (
	"BouncePong/core"
	"BouncePong/logger"
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell"
	"github.com/mattn/go-runewidth"
)

const PlayingHint = "move the mouse to steer the right paddle, q to quit"
const GameOverHint = "game over, q to quit"

func start(p core.GameProperties) error {
	screen, err := initScreen(p)
	if err != nil {
		return err
	}
	defer screen.Fini()

	state, err := core.NewState(p.CanvasWidth, p.CanvasHeight)
	if err != nil {
		return err
	}

	canvas := core.NewTerminalCanvas(screen, p)
	renderer := core.NewRenderer(canvas, p.Background, p.Foreground)
	input := core.InputAdapter{OffsetTop: p.OffsetTop()}
	game := core.NewGame(state, renderer, input, core.NewTickerScheduler(p.TickInterval))
	logger.Log.WithSession(game.SessionId)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pointer := initUserInput(screen, p, cancel)

	drawHint(screen, p, PlayingHint)
	err = game.Run(ctx, pointer)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return err
	}

	// keep the final frame on screen until the player quits
	drawHint(screen, p, GameOverHint)
	screen.Show()
	<-ctx.Done()
	return nil
}

// initUserInput pumps tcell events on their own goroutine. Mouse movement
// becomes pointer events (latest wins), quit keys cancel the game.
func initUserInput(screen tcell.Screen, p core.GameProperties, cancel context.CancelFunc) chan core.PointerEvent {
	pointer := make(chan core.PointerEvent, 1)

	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				// screen finalized
				return
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if isQuitKey(ev) {
					cancel()
				}
			case *tcell.EventMouse:
				col, row := ev.Position()
				core.OfferLatest(pointer, p.PointerAt(col, row))
			}
		}
	}()

	return pointer
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func initScreen(p core.GameProperties) (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf(logger.ScreenInitFailedMsg, err)
	}
	if e := screen.Init(); e != nil {
		return nil, fmt.Errorf(logger.ScreenInitFailedMsg, e)
	}

	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	return screen, nil
}

// drawHint writes a one line hint in the row above the canvas, if there is one.
func drawHint(screen tcell.Screen, p core.GameProperties, hint string) {
	if p.CanvasTopRow == 0 {
		return
	}
	row := p.CanvasTopRow - 1
	width, _ := screen.Size()
	for col := 0; col < width; col++ {
		screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
	}

	col := p.CanvasLeftCol
	for _, ch := range hint {
		screen.SetContent(col, row, ch, nil, tcell.StyleDefault)
		col += runewidth.RuneWidth(ch)
	}
}
