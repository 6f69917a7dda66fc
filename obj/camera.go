package obj

// Camera keeps the player centred while never scrolling past the level edges.
// Left and Top are the offset added to world coordinates to get screen
// coordinates, so they are zero or negative for levels larger than the view.
type Camera struct {
	Left float64
	Top  float64

	width  float64
	height float64
	worldW float64
	worldH float64
}

// NewCamera creates a camera with the configured viewport for a level of
// the given pixel size.
func NewCamera(worldW, worldH float64, cfg Config) *Camera {
	return &Camera{
		width:  cfg.ViewportWidth,
		height: cfg.ViewportHeight,
		worldW: worldW,
		worldH: worldH,
	}
}

// SetWorldBounds sets the level pixel dimensions used for clamping.
func (c *Camera) SetWorldBounds(w, h float64) {
	c.worldW = w
	c.worldH = h
}

// Size returns the viewport size.
func (c *Camera) Size() (float64, float64) {
	return c.width, c.height
}

// Offset returns the current screen offset.
func (c *Camera) Offset() (float64, float64) {
	return c.Left, c.Top
}

// Update recentres the camera on target's top-left corner.
func (c *Camera) Update(target Rect) {
	c.Left, c.Top = ClampOffset(target.X, target.Y, c.worldW, c.worldH, c.width, c.height)
}

// Apply maps a world rect to screen space.
func (c *Camera) Apply(r Rect) Rect {
	return r.Move(c.Left, c.Top)
}

// Viewport returns the world-space rect that is currently on screen.
func (c *Camera) Viewport() Rect {
	return Rect{X: -c.Left, Y: -c.Top, Width: c.width, Height: c.height}
}

// ClampOffset computes the camera offset that centres (x, y) and clamps it in
// a fixed order: left edge, right edge, bottom edge, top edge. When the level
// is smaller than the view on an axis the later clamp of that pair wins, so a
// narrow level is pinned by the right-edge clamp and a short level by the
// top-edge clamp.
func ClampOffset(x, y, worldW, worldH, viewW, viewH float64) (left, top float64) {
	left = -x + viewW/2
	top = -y + viewH/2

	left = min(0, left)
	left = max(-(worldW - viewW), left)
	top = max(-(worldH - viewH), top)
	top = min(0, top)
	return left, top
}
