package core

import (
	"errors"
	"fmt"
	"time"
)

const FinalScore = 9 // a score above this ends the game
const BallSize = 5
const BarThickness = 5
const BarHeight = 20
const BarMargin = 10
const MaxAISpeed = 2
const TickInterval = 30 * time.Millisecond

const BallStartX = 20
const BallStartY = 30
const BallVelocityX = 4
const BallVelocityY = 2

const LeftBarStartY = 10
const RightBarStartY = 30

var ErrInvalidCanvas = errors.New("canvas size must be positive")

type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// State is the whole mutable game. It is owned by a single goroutine, the
// one running Game.Run, so none of its fields are guarded.
type State struct {
	Width, Height float64

	Ball     *Ball
	LeftBar  *Paddle
	RightBar *Paddle

	Phase Phase
}

// NewState builds the opening position for a canvas of the given size.
func NewState(width, height float64) (*State, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %vx%v", ErrInvalidCanvas, width, height)
	}

	s := &State{
		Width:  width,
		Height: height,
		Ball: &Ball{
			GameObject: GameObject{Width: BallSize, Height: BallSize},
		},
		LeftBar: &Paddle{
			GameObject: GameObject{X: BarMargin, Y: LeftBarStartY,
				Width: BarThickness, Height: BarHeight},
			NickName: "Computer",
		},
		RightBar: &Paddle{
			GameObject: GameObject{X: width - BarThickness - BarMargin, Y: RightBarStartY,
				Width: BarThickness, Height: BarHeight},
			NickName: "Player",
		},
		Phase: PhasePlaying,
	}
	s.StartBall()
	return s, nil
}

// StartBall puts the ball back on its serve spot. Used at start and after every point.
func (s *State) StartBall() {
	s.Ball.X = BallStartX
	s.Ball.Y = BallStartY
	s.Ball.VelX = BallVelocityX
	s.Ball.VelY = BallVelocityY
}

func (s *State) LeftScore() int {
	return s.LeftBar.CurrentScore
}

func (s *State) RightScore() int {
	return s.RightBar.CurrentScore
}

func (s *State) IsGameOver() bool {
	return s.Phase == PhaseGameOver
}
