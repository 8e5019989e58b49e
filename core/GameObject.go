package core

// EntityType is what the collision handlers match on. Both paddles share
// TypePaddle, the human and the scripted one are told apart by tags.
type EntityType int

const (
	TypePaddle EntityType = iota
	TypeBall
)

func (t EntityType) String() string {
	switch t {
	case TypePaddle:
		return "paddle"
	case TypeBall:
		return "ball"
	}
	return "unknown"
}

// Position is the top-left corner in playfield units.
type Position struct {
	X, Y float64
}

// BBox is the rectangle used both for drawing and for collisions.
type BBox struct {
	Width, Height float64
}

type Velocity struct {
	X, Y float64
}

type Type struct {
	Kind EntityType
}

// Collidable marks entities the collision system looks at.
type Collidable struct{}

// Controlled marks the keyboard driven paddle.
type Controlled struct{}

// Scripted marks a paddle that chases the ball at Speed per frame.
type Scripted struct {
	Speed float64
}

// Rect is an axis aligned box, Y grows downwards.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func RectOf(p *Position, b *BBox) Rect {
	return Rect{X: p.X, Y: p.Y, Width: b.Width, Height: b.Height}
}

func (r Rect) Right() float64 {
	return r.X + r.Width
}

func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

func (r Rect) CenterY() float64 {
	return r.Y + r.Height/2
}

// Intersects reports whether the two boxes overlap or touch.
func (r Rect) Intersects(o Rect) bool {
	if r.Right() < o.X || o.Right() < r.X {
		return false
	}
	if r.Bottom() < o.Y || o.Bottom() < r.Y {
		return false
	}
	return true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
