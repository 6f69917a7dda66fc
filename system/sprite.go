package system

import "github.com/milk9111/blocky/obj"

// Sprite is a positioned thing to draw. Rect is in screen space.
type Sprite struct {
	Kind obj.Kind
	Rect obj.Rect
}

// Sprites returns every visible tile followed by the player, placed through
// the camera. Tiles entirely off screen are skipped.
func (w *World) Sprites() []Sprite {
	view := w.Camera.Viewport()

	tiles := w.Level.Tiles()
	out := make([]Sprite, 0, len(tiles)+1)
	for _, t := range tiles {
		if !t.Rect.Intersects(view) {
			continue
		}
		out = append(out, Sprite{Kind: t.Kind, Rect: w.Camera.Apply(t.Rect)})
	}
	return append(out, Sprite{Kind: obj.KindPlayer, Rect: w.Camera.Apply(w.Player.Rect())})
}
