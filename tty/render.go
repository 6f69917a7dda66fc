package tty

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/blocky/menu"
	"github.com/milk9111/blocky/obj"
	"github.com/milk9111/blocky/system"
)

// A terminal cell is about twice as tall as it is wide, so a 32px tile
// takes two cells across and one down.
const (
	CellWidth  = 16
	CellHeight = 32
)

var (
	stylePlatform = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xDDDDDD))
	styleExit     = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xFF0000))
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x0000FF)).Background(tcell.ColorBlack)
	styleText     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorRed).Italic(true)
)

func glyph(k obj.Kind) (rune, tcell.Style) {
	switch k {
	case obj.KindPlatform:
		return '█', stylePlatform
	case obj.KindExit:
		return '▓', styleExit
	default:
		return '@', stylePlayer
	}
}

// Renderer draws game screens onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// CellRect converts a screen-space pixel rect to the cells it covers, as
// a half-open range [x0, x1) by [y0, y1).
func CellRect(r obj.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.X / CellWidth))
	y0 = int(math.Floor(r.Y / CellHeight))
	x1 = int(math.Ceil(r.Right() / CellWidth))
	y1 = int(math.Ceil(r.Bottom() / CellHeight))
	return x0, y0, x1, y1
}

// DrawWorld draws sprites in order, so later sprites cover earlier ones.
func (r *Renderer) DrawWorld(sprites []system.Sprite) {
	r.screen.Clear()
	w, h := r.screen.Size()
	for _, s := range sprites {
		ch, style := glyph(s.Kind)
		x0, y0, x1, y1 := CellRect(s.Rect)
		for y := max(y0, 0); y < min(y1, h); y++ {
			for x := max(x0, 0); x < min(x1, w); x++ {
				r.screen.SetContent(x, y, ch, nil, style)
			}
		}
	}
	r.screen.Show()
}

// DrawMenu draws the menu items centred, the selected one highlighted.
func (r *Renderer) DrawMenu(m *menu.Model) {
	r.screen.Clear()
	w, h := r.screen.Size()
	for i, item := range m.Items() {
		style := styleText
		if i == m.Selected() {
			style = styleSelected
		}
		x, y := menuItemCell(m, i, w, h)
		r.drawText(x, y, item, style)
	}
	r.screen.Show()
}

// menuItemCell is the first cell of item i: one row per item, each label
// centred on its own width.
func menuItemCell(m *menu.Model, i, w, h int) (int, int) {
	item := m.Items()[i]
	x, y := m.ItemPosition(i, labelWidth(item), 1, float64(w), float64(h))
	return int(x), int(y)
}

func labelWidth(item string) float64 {
	return float64(len([]rune(item)))
}

// MenuItemAt returns the menu item drawn at cell (x, y) on a w by h screen,
// or -1. Cells are hit-tested at their centre, which matches the truncation
// DrawMenu applies to half-cell positions.
func MenuItemAt(m *menu.Model, x, y, w, h int) int {
	return m.ItemAt(float64(x)+0.5, float64(y)+0.5, 1, float64(w), float64(h), labelWidth)
}

// DrawStart draws the start screen.
func (r *Renderer) DrawStart() {
	r.screen.Clear()
	w, h := r.screen.Size()
	lines := []string{"BLOCKY!", "", "Press any key to start"}
	for i, line := range lines {
		r.drawText((w-len(line))/2, h/2-len(lines)/2+i, line, styleText)
	}
	r.screen.Show()
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
