package menu

// Item labels.
const (
	ItemStart = "Start"
	ItemQuit  = "Quit"
)

type Key uint8

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyConfirm
	KeyEscape
)

// Action is what the caller should do after an event.
type Action uint8

const (
	ActionNone Action = iota
	ActionStart
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Model is the selection state of the main menu. It holds no drawing state;
// frontends render it however they like.
type Model struct {
	items    []string
	selected int
}

// NewModel returns a menu with nothing selected. Without items it uses
// Start and Quit.
func NewModel(items ...string) *Model {
	if len(items) == 0 {
		items = []string{ItemStart, ItemQuit}
	}
	return &Model{items: append([]string(nil), items...), selected: -1}
}

func (m *Model) Items() []string {
	return append([]string(nil), m.items...)
}

// Selected returns the selected index, or -1.
func (m *Model) Selected() int {
	return m.selected
}

// HandleKey applies one key press. The first press with nothing selected
// selects the first item; Up and Down wrap at both ends. Confirm activates
// the selection, including one made by this same press.
func (m *Model) HandleKey(k Key) Action {
	if k == KeyEscape {
		return ActionQuit
	}

	switch {
	case m.selected < 0:
		m.selected = 0
	case k == KeyUp:
		m.selected = (m.selected - 1 + len(m.items)) % len(m.items)
	case k == KeyDown:
		m.selected = (m.selected + 1) % len(m.items)
	}

	if k == KeyConfirm {
		return m.Activate(m.selected)
	}
	return ActionNone
}

// Activate returns the action for item i, as a click on it would.
func (m *Model) Activate(i int) Action {
	if i < 0 || i >= len(m.items) {
		return ActionNone
	}
	switch m.items[i] {
	case ItemStart:
		return ActionStart
	case ItemQuit:
		return ActionQuit
	}
	return ActionNone
}

// Clear drops the keyboard selection; mouse movement hands control back to
// hover highlighting.
func (m *Model) Clear() {
	m.selected = -1
}

// ItemAt returns the index of the item under point (x, y), or -1. Items are
// laid out as ItemPosition does, each as wide as width reports for its label;
// boxes are half-open so neighbouring items never both match.
func (m *Model) ItemAt(x, y, itemH, screenW, screenH float64, width func(item string) float64) int {
	for i, item := range m.items {
		w := width(item)
		rx, ry := m.ItemPosition(i, w, itemH, screenW, screenH)
		if x >= rx && x < rx+w && y >= ry && y < ry+itemH {
			return i
		}
	}
	return -1
}

// ItemPosition returns the top-left corner of item i when the items are
// stacked and the block is centred on screen.
func (m *Model) ItemPosition(i int, itemW, itemH, screenW, screenH float64) (float64, float64) {
	total := float64(len(m.items)) * itemH
	x := screenW/2 - itemW/2
	y := screenH/2 - total/2 + float64(i)*itemH
	return x, y
}
