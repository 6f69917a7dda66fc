package common

const (
	// TileSize is the edge length of one level cell in world pixels.
	TileSize = 32

	// BaseWidth and BaseHeight are the logical screen size. The camera
	// viewport is the same size.
	BaseWidth  = 800
	BaseHeight = 640

	// TPS is the fixed simulation rate.
	TPS = 60

	JumpImpulse      = 10.0
	WalkSpeed        = 8.0
	RunSpeed         = 12.0
	Gravity          = 0.3
	TerminalVelocity = 100.0
)
