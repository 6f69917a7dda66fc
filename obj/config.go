package obj

import "github.com/milk9111/blocky/common"

// Config holds the fixed tuning shared by the level, player and camera. It is
// passed into constructors so separate worlds never share mutable state.
type Config struct {
	TileSize       float64
	ViewportWidth  float64
	ViewportHeight float64

	PlayerWidth  float64
	PlayerHeight float64

	JumpImpulse      float64
	WalkSpeed        float64
	RunSpeed         float64
	Gravity          float64
	TerminalVelocity float64
}

// DefaultConfig returns the game's tuning.
func DefaultConfig() Config {
	return Config{
		TileSize:         common.TileSize,
		ViewportWidth:    common.BaseWidth,
		ViewportHeight:   common.BaseHeight,
		PlayerWidth:      common.TileSize,
		PlayerHeight:     common.TileSize,
		JumpImpulse:      common.JumpImpulse,
		WalkSpeed:        common.WalkSpeed,
		RunSpeed:         common.RunSpeed,
		Gravity:          common.Gravity,
		TerminalVelocity: common.TerminalVelocity,
	}
}
