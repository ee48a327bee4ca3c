package core

import "math"

const AngleStep = 0.5 // vy change when the ball clips a paddle edge

// CollisionReport says which rules fired during one HandleCollisions call.
type CollisionReport struct {
	LeftBarHit  bool
	RightBarHit bool
	LeftScored  bool
	RightScored bool
	WallBounce  bool
	GameOver    bool
}

func (r CollisionReport) Scored() bool {
	return r.LeftScored || r.RightScored
}

// detectBarCollision is a strict AABB overlap test, so touching edges do not count.
func detectBarCollision(ball, bar Bounds) bool {
	return ball.Left < bar.Right &&
		ball.Right > bar.Left &&
		ball.Top < bar.Bottom &&
		ball.Bottom > bar.Top
}

func adjustBallAngle(ball *Ball, distanceFromTop, distanceFromBottom float64) {
	if distanceFromTop < 0 {
		ball.VelY -= AngleStep
	} else if distanceFromBottom < 0 {
		ball.VelY += AngleStep
	}
}

// HandleCollisions applies paddle hits, scoring, game over and the wall bounce
// in that order. The wall check looks at the ball as it is after scoring, so a
// serve is never bounced by where the ball was before the reset.
func HandleCollisions(s *State) CollisionReport {
	var report CollisionReport
	if s.IsGameOver() {
		return report
	}

	ball := s.Ball
	ballBounds := ball.Bounds()
	leftBarBounds := s.LeftBar.Bounds()
	rightBarBounds := s.RightBar.Bounds()

	if detectBarCollision(ballBounds, leftBarBounds) {
		distanceFromTop := ballBounds.Top - leftBarBounds.Top
		distanceFromBottom := leftBarBounds.Bottom - ballBounds.Bottom
		adjustBallAngle(ball, distanceFromTop, distanceFromBottom)
		ball.VelX = math.Abs(ball.VelX)
		report.LeftBarHit = true
	}

	if detectBarCollision(ballBounds, rightBarBounds) {
		distanceFromTop := ballBounds.Top - rightBarBounds.Top
		distanceFromBottom := rightBarBounds.Bottom - ballBounds.Bottom
		adjustBallAngle(ball, distanceFromTop, distanceFromBottom)
		ball.VelX = -math.Abs(ball.VelX)
		report.RightBarHit = true
	}

	if ballBounds.Left < 0 {
		s.RightBar.CurrentScore++
		s.StartBall()
		report.RightScored = true
	}

	if ballBounds.Right > s.Width {
		s.LeftBar.CurrentScore++
		s.StartBall()
		report.LeftScored = true
	}

	if s.LeftBar.CurrentScore > FinalScore || s.RightBar.CurrentScore > FinalScore {
		s.Phase = PhaseGameOver
		report.GameOver = true
	}

	ballBounds = ball.Bounds()
	if ballBounds.Top < 0 || ballBounds.Bottom > s.Height {
		ball.VelY = -ball.VelY
		report.WallBounce = true
	}

	return report
}
