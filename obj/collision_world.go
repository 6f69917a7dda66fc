package obj

// Axis selects which half of an axis-separated move is being resolved.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Contact summarises what a resolve pass touched.
type Contact struct {
	// Hits counts overlapping tiles, including exits.
	Hits int
	// Exit is set when any overlapping tile was an exit.
	Exit bool
	// Grounded is set when a downward move landed on a tile.
	Grounded bool
}

// Merge combines the contacts of two passes.
func (c Contact) Merge(other Contact) Contact {
	return Contact{
		Hits:     c.Hits + other.Hits,
		Exit:     c.Exit || other.Exit,
		Grounded: c.Grounded || other.Grounded,
	}
}

// CollisionWorld resolves the player against the static tiles of a level.
type CollisionWorld struct {
	level *Level
}

func NewCollisionWorld(level *Level) *CollisionWorld {
	return &CollisionWorld{level: level}
}

func (cw *CollisionWorld) Level() *Level {
	if cw == nil {
		return nil
	}
	return cw.level
}

// Resolve pushes p out of every tile it overlaps along one axis. vel is the
// velocity the player moved with on that axis this frame; its sign picks the
// edge to snap to and zero means no correction. Tiles are visited in level
// order and overlap is retested against the corrected position, so when
// several tiles overlap the last one visited wins.
func (cw *CollisionWorld) Resolve(p *Player, vel float64, axis Axis) Contact {
	var c Contact
	if cw == nil || cw.level == nil || p == nil {
		return c
	}

	for _, t := range cw.level.tiles {
		if !p.Rect().Intersects(t.Rect) {
			continue
		}

		c.Hits++
		if t.Kind == KindExit {
			c.Exit = true
		}

		switch axis {
		case AxisX:
			if vel > 0 {
				p.Pos.X = t.X - p.Width
			} else if vel < 0 {
				p.Pos.X = t.Right()
			}
		case AxisY:
			if vel > 0 {
				p.Pos.Y = t.Y - p.Height
				p.OnGround = true
				p.Vel.Y = 0
				c.Grounded = true
			} else if vel < 0 {
				p.Pos.Y = t.Bottom()
			}
		}
	}
	return c
}

// Overlapping returns the tiles the rect currently overlaps, in level order.
func (cw *CollisionWorld) Overlapping(r Rect) []Tile {
	if cw == nil || cw.level == nil {
		return nil
	}
	var out []Tile
	for _, t := range cw.level.tiles {
		if r.Intersects(t.Rect) {
			out = append(out, t)
		}
	}
	return out
}
