package obj

// Input holds the raw flags sampled for one frame. Down is accepted but has
// no effect on the player. Quit is set when the user asks to leave.
type Input struct {
	Up      bool
	Down    bool
	Left    bool
	Right   bool
	Running bool
	Quit    bool
}
