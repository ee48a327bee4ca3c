package core

// UpdateGame advances the ball by one tick and lets the left paddle chase it.
func UpdateGame(s *State) {
	if s.IsGameOver() {
		return
	}
	s.Ball.X += s.Ball.VelX
	s.Ball.Y += s.Ball.VelY
	moveLeftBar(s)
}

// moveLeftBar steps the computer paddle a fixed amount toward the ball's
// vertical span. No prediction, so it overshoots and jitters.
func moveLeftBar(s *State) {
	ballBounds := s.Ball.Bounds()
	barBounds := s.LeftBar.Bounds()

	if ballBounds.Top < barBounds.Top {
		s.LeftBar.MoveUp(MaxAISpeed)
	} else if ballBounds.Bottom > barBounds.Bottom {
		s.LeftBar.MoveDown(MaxAISpeed)
	}
}
