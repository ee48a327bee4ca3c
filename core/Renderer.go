package core

import "strconv"

const ScoreFont = "30px monospace"
const ScoreInset = 50
const GameOverText = "GAME OVER"

// Renderer paints a State onto a Surface. It never writes to the state.
type Renderer struct {
	surface    Surface
	background string
	foreground string
}

func NewRenderer(surface Surface, background, foreground string) *Renderer {
	return &Renderer{
		surface:    surface,
		background: background,
		foreground: foreground,
	}
}

func (r *Renderer) Render(s *State) {
	r.drawScene(s)
	r.surface.Show()
}

// RenderGameOver paints the final scene with the GAME OVER banner on top.
func (r *Renderer) RenderGameOver(s *State) {
	r.drawScene(s)

	r.surface.SetFillStyle(r.foreground)
	r.surface.SetFont(ScoreFont)
	r.surface.SetTextAlign(AlignCenter)
	r.surface.FillText(GameOverText, s.Width/2, s.Height/2)
	r.surface.Show()
}

func (r *Renderer) drawScene(s *State) {
	c := r.surface

	c.SetFillStyle(r.background)
	c.FillRect(0, 0, s.Width, s.Height)

	c.SetFillStyle(r.foreground)
	fillObject(c, s.Ball.GameObject)
	fillObject(c, s.LeftBar.GameObject)
	fillObject(c, s.RightBar.GameObject)

	c.SetFont(ScoreFont)
	c.SetTextAlign(AlignLeft)
	c.FillText(strconv.Itoa(s.LeftScore()), ScoreInset, ScoreInset)
	c.SetTextAlign(AlignRight)
	c.FillText(strconv.Itoa(s.RightScore()), s.Width-ScoreInset, ScoreInset)
}

func fillObject(c Surface, o GameObject) {
	c.FillRect(o.X, o.Y, o.Width, o.Height)
}
