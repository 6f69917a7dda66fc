package obj

// Kind tags every drawable thing in a level. The collision resolver and the
// renderers dispatch on it.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindPlatform
	KindExit
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindPlatform:
		return "platform"
	case KindExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Tile is a static solid cell of a level.
type Tile struct {
	Rect
	Kind Kind
}
