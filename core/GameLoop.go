package core

import (
	"BouncePong/logger"
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Game drives one match. Pointer events and ticks arrive on separate
// channels and are consumed by Run on a single goroutine, which is the only
// writer of the State.
type Game struct {
	SessionId string

	state     *State
	renderer  *Renderer
	input     InputAdapter
	scheduler Scheduler
}

func NewGame(state *State, renderer *Renderer, input InputAdapter, scheduler Scheduler) *Game {
	return &Game{
		SessionId: uuid.NewString(),
		state:     state,
		renderer:  renderer,
		input:     input,
		scheduler: scheduler,
	}
}

func (g *Game) State() *State {
	return g.state
}

// Tick runs one frame: draw, move, collide. It reports whether the game is
// over, in which case the final frame with the banner has been drawn and
// later calls do nothing.
func (g *Game) Tick() bool {
	s := g.state
	if s.IsGameOver() {
		return true
	}

	g.renderer.Render(s)
	UpdateGame(s)
	report := HandleCollisions(s)
	g.logReport(report)

	if s.IsGameOver() {
		g.renderer.RenderGameOver(s)
		return true
	}
	return false
}

// Run ticks until the game ends (nil) or ctx is cancelled (ctx.Err()).
// A closed pointer channel only stops input, the match goes on.
func (g *Game) Run(ctx context.Context, pointer <-chan PointerEvent) error {
	logger.Log.Info(fmt.Sprintf(logger.SessionStartMsg, g.SessionId, g.state.Width, g.state.Height))

	ticks := g.scheduler.Start()
	defer g.scheduler.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info(fmt.Sprintf(logger.PlayerQuitMsg, g.state.LeftScore(), g.state.RightScore()))
			return ctx.Err()

		case e, ok := <-pointer:
			if !ok {
				pointer = nil
				continue
			}
			g.input.PointerMoved(g.state, e)

		case <-ticks:
			if g.Tick() {
				return nil
			}
		}
	}
}

func (g *Game) logReport(r CollisionReport) {
	s := g.state
	if r.LeftBarHit {
		logger.Log.Debug(fmt.Sprintf(logger.PaddleHitMsg, s.LeftBar.NickName, s.Ball.VelX, s.Ball.VelY))
	}
	if r.RightBarHit {
		logger.Log.Debug(fmt.Sprintf(logger.PaddleHitMsg, s.RightBar.NickName, s.Ball.VelX, s.Ball.VelY))
	}
	if r.LeftScored {
		logger.Log.Info(fmt.Sprintf(logger.PointScoredMsg, s.LeftBar.NickName, s.LeftScore(), s.RightScore()))
	}
	if r.RightScored {
		logger.Log.Info(fmt.Sprintf(logger.PointScoredMsg, s.RightBar.NickName, s.LeftScore(), s.RightScore()))
	}
	if r.GameOver {
		winner := s.LeftBar
		if s.RightScore() > s.LeftScore() {
			winner = s.RightBar
		}
		logger.Log.Info(fmt.Sprintf(logger.GameOverMsg, winner.NickName, s.LeftScore(), s.RightScore()))
	}
}
