package system

// Outcome tells the driving loop whether to keep stepping.
type Outcome uint8

const (
	OutcomeContinue Outcome = iota
	OutcomeLevelComplete
	OutcomeUserQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeLevelComplete:
		return "level_complete"
	case OutcomeUserQuit:
		return "user_quit"
	default:
		return "unknown"
	}
}

// Done reports whether the outcome ends the frame loop.
func (o Outcome) Done() bool {
	return o != OutcomeContinue
}
