package core

// Bounds is an axis-aligned rectangle in canvas units.
type Bounds struct {
	Left, Right float64
	Top, Bottom float64
}

type GameObject struct {
	X, Y          float64
	Width, Height float64
}

func (o GameObject) Bounds() Bounds {
	return Bounds{
		Left:   o.X,
		Right:  o.X + o.Width,
		Top:    o.Y,
		Bottom: o.Y + o.Height,
	}
}

type Ball struct {
	GameObject
	VelX, VelY float64
}

type Paddle struct {
	GameObject
	NickName     string
	CurrentScore int
}

func (p *Paddle) MoveUp(step float64) {
	p.Y -= step
}

func (p *Paddle) MoveDown(step float64) {
	p.Y += step
}
