package obj

// Rect is an axis-aligned box in world (or screen) pixels.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Right() float64 {
	return r.X + r.Width
}

func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Intersects reports whether r and other overlap. Rects that only share an
// edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Move returns r translated by dx, dy.
func (r Rect) Move(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}
