package obj

// Level symbols. Any other rune is empty space.
const (
	SymbolPlatform = 'P'
	SymbolExit     = 'E'
	SymbolSpawn    = 'S'
)

// Level is the static geometry built from a level description. Tiles are
// stored row-major, which is also the order the collision resolver visits
// them in.
type Level struct {
	tiles    []Tile
	width    float64
	height   float64
	spawnX   float64
	spawnY   float64
	hasSpawn bool
}

// BuildLevel converts rows of symbols into tiles. Rows may have different
// lengths; only the cells present in a row are considered. The level width
// is taken from the first row.
func BuildLevel(rows []string, tileSize float64) *Level {
	lvl := &Level{}
	if len(rows) == 0 {
		return lvl
	}

	lvl.width = float64(len([]rune(rows[0]))) * tileSize
	lvl.height = float64(len(rows)) * tileSize

	for r, row := range rows {
		y := float64(r) * tileSize
		for c, sym := range []rune(row) {
			x := float64(c) * tileSize
			switch sym {
			case SymbolPlatform:
				lvl.tiles = append(lvl.tiles, Tile{
					Rect: Rect{X: x, Y: y, Width: tileSize, Height: tileSize},
					Kind: KindPlatform,
				})
			case SymbolExit:
				lvl.tiles = append(lvl.tiles, Tile{
					Rect: Rect{X: x, Y: y, Width: tileSize, Height: tileSize},
					Kind: KindExit,
				})
			case SymbolSpawn:
				if !lvl.hasSpawn {
					lvl.spawnX, lvl.spawnY = x, y
					lvl.hasSpawn = true
				}
			}
		}
	}
	return lvl
}

// Tiles returns every tile in level order. Callers must not modify it.
func (l *Level) Tiles() []Tile {
	if l == nil {
		return nil
	}
	return l.tiles
}

// Platforms returns the ordinary solid tiles.
func (l *Level) Platforms() []Tile {
	return l.ofKind(KindPlatform)
}

// Exits returns the tiles that end the level on contact.
func (l *Level) Exits() []Tile {
	return l.ofKind(KindExit)
}

func (l *Level) ofKind(kind Kind) []Tile {
	if l == nil {
		return nil
	}
	var out []Tile
	for _, t := range l.tiles {
		if t.Kind == kind {
			out = append(out, t)
		}
	}
	return out
}

// Width is the level width in pixels.
func (l *Level) Width() float64 {
	if l == nil {
		return 0
	}
	return l.width
}

// Height is the level height in pixels.
func (l *Level) Height() float64 {
	if l == nil {
		return 0
	}
	return l.height
}

func (l *Level) Bounds() Rect {
	return Rect{Width: l.Width(), Height: l.Height()}
}

// Spawn returns the top-left of the first spawn cell, if the level has one.
func (l *Level) Spawn() (x, y float64, ok bool) {
	if l == nil || !l.hasSpawn {
		return 0, 0, false
	}
	return l.spawnX, l.spawnY, true
}
