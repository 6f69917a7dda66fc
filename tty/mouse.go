package tty

import (
	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/blocky/menu"
)

// MenuMouse follows the pointer over the menu. Moving it drops the keyboard
// selection; pressing the left button over an item picks it.
type MenuMouse struct {
	x, y    int
	seen    bool
	buttons tcell.ButtonMask
}

// Handle applies one mouse event to m on a w by h screen and returns the
// clicked item, or -1.
func (mm *MenuMouse) Handle(ev *tcell.EventMouse, m *menu.Model, w, h int) int {
	x, y := ev.Position()
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && mm.buttons&tcell.Button1 == 0

	if mm.seen && (x != mm.x || y != mm.y) {
		m.Clear()
	}
	mm.x, mm.y, mm.seen = x, y, true
	mm.buttons = buttons

	if !pressed {
		return -1
	}
	return MenuItemAt(m, x, y, w, h)
}
