package core

import (
	"errors"
	"testing"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	s, err := NewState(300, 150)
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	return s
}

func assertServe(t *testing.T, s *State) {
	t.Helper()
	b := s.Ball
	if b.X != BallStartX || b.Y != BallStartY {
		t.Errorf("Expected ball at (%d,%d), got (%v,%v)", BallStartX, BallStartY, b.X, b.Y)
	}
	if b.VelX != BallVelocityX || b.VelY != BallVelocityY {
		t.Errorf("Expected velocity (%d,%d), got (%v,%v)", BallVelocityX, BallVelocityY, b.VelX, b.VelY)
	}
}

func TestNewState(t *testing.T) {
	s := newTestState(t)

	assertServe(t, s)
	if s.Ball.Width != BallSize || s.Ball.Height != BallSize {
		t.Errorf("Expected ball size %d, got %vx%v", BallSize, s.Ball.Width, s.Ball.Height)
	}
	if s.LeftBar.Y != 10 {
		t.Errorf("Expected left bar at 10, got %v", s.LeftBar.Y)
	}
	if s.RightBar.Y != 30 {
		t.Errorf("Expected right bar at 30, got %v", s.RightBar.Y)
	}
	if s.LeftBar.X != BarMargin {
		t.Errorf("Expected left bar x %d, got %v", BarMargin, s.LeftBar.X)
	}
	if s.RightBar.X != 285 {
		t.Errorf("Expected right bar x 285, got %v", s.RightBar.X)
	}
	if s.LeftScore() != 0 || s.RightScore() != 0 {
		t.Errorf("Expected 0:0, got %d:%d", s.LeftScore(), s.RightScore())
	}
	if s.Phase != PhasePlaying {
		t.Errorf("Expected %v, got %v", PhasePlaying, s.Phase)
	}
}

func TestNewStateRejectsInvalidCanvas(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
	}{
		{"Zero width", 0, 150},
		{"Zero height", 300, 0},
		{"Negative width", -1, 150},
		{"Negative both", -300, -150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewState(tt.width, tt.height)
			if !errors.Is(err, ErrInvalidCanvas) {
				t.Errorf("Expected ErrInvalidCanvas, got %v", err)
			}
			if s != nil {
				t.Errorf("Expected no state on error")
			}
		})
	}
}

func TestStartBall(t *testing.T) {
	s := newTestState(t)
	s.Ball.X, s.Ball.Y = 123, 45
	s.Ball.VelX, s.Ball.VelY = -7, 3.5

	s.StartBall()

	assertServe(t, s)
}

func TestPhaseString(t *testing.T) {
	if PhasePlaying.String() != "Playing" {
		t.Errorf("Expected Playing, got %s", PhasePlaying)
	}
	if PhaseGameOver.String() != "GameOver" {
		t.Errorf("Expected GameOver, got %s", PhaseGameOver)
	}
	if Phase(7).String() != "Phase(7)" {
		t.Errorf("Expected Phase(7), got %s", Phase(7))
	}
}
