package tty

import (
	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/blocky/menu"
	"github.com/milk9111/blocky/obj"
)

// HoldFrames is how long an arrow key counts as held after a press.
// Terminals send no key-up events, only repeats, so a key stays down until
// its repeats stop arriving.
const HoldFrames = 20

// Keys turns terminal key presses into per-frame input flags.
type Keys struct {
	up, down, left, right int
	running               bool
	quit                  bool
}

// Handle records one key event.
func (k *Keys) Handle(ev *tcell.EventKey) {
	k.Press(ev.Key(), ev.Rune())
}

// Press records a key press; ch is only read for tcell.KeyRune.
func (k *Keys) Press(key tcell.Key, ch rune) {
	switch key {
	case tcell.KeyUp:
		k.up = HoldFrames
	case tcell.KeyDown:
		k.down = HoldFrames
	case tcell.KeyLeft:
		k.left = HoldFrames
		k.right = 0
	case tcell.KeyRight:
		k.right = HoldFrames
		k.left = 0
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.quit = true
	case tcell.KeyRune:
		// Space starts running for the rest of the level.
		if ch == ' ' {
			k.running = true
		}
	}
}

// Next returns the flags for this frame and ages held keys by one frame.
func (k *Keys) Next() obj.Input {
	in := obj.Input{
		Up:      k.up > 0,
		Down:    k.down > 0,
		Left:    k.left > 0,
		Right:   k.right > 0,
		Running: k.running,
		Quit:    k.quit,
	}
	k.up = max(k.up-1, 0)
	k.down = max(k.down-1, 0)
	k.left = max(k.left-1, 0)
	k.right = max(k.right-1, 0)
	return in
}

// Reset forgets every key, for a fresh level.
func (k *Keys) Reset() {
	*k = Keys{}
}

// MenuKey maps a key press onto the menu's keys.
func MenuKey(key tcell.Key, ch rune) menu.Key {
	switch key {
	case tcell.KeyUp:
		return menu.KeyUp
	case tcell.KeyDown:
		return menu.KeyDown
	case tcell.KeyEnter:
		return menu.KeyConfirm
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return menu.KeyEscape
	case tcell.KeyRune:
		if ch == ' ' {
			return menu.KeyConfirm
		}
	}
	return menu.KeyOther
}
