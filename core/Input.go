package core

// PointerEvent is a pointer position in absolute canvas units.
type PointerEvent struct {
	X, Y float64
}

// InputAdapter maps pointer movement onto the player's paddle.
type InputAdapter struct {
	// OffsetTop is how far below the pointer's origin the canvas starts.
	OffsetTop float64
}

// PointerMoved puts the top of the right paddle under the pointer. The value
// is not clamped, so the paddle can leave the canvas.
func (a InputAdapter) PointerMoved(s *State, e PointerEvent) {
	if s.IsGameOver() {
		return
	}
	s.RightBar.Y = e.Y - a.OffsetTop
}

// PointerAt converts a terminal cell into an absolute pointer position in canvas units.
func (p GameProperties) PointerAt(col, row int) PointerEvent {
	return PointerEvent{
		X: float64(col) * p.CellWidth,
		Y: float64(row) * p.CellHeight,
	}
}

// OfferLatest hands e to a one-slot channel, replacing any value the
// consumer has not read yet. It never blocks and must have a single sender.
func OfferLatest(ch chan PointerEvent, e PointerEvent) {
	select {
	case ch <- e:
		return
	default:
	}

	select {
	case <-ch:
	default:
	}

	select {
	case ch <- e:
	default:
	}
}
