package session

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/milk9111/blocky/levels"
	"github.com/milk9111/blocky/menu"
	"github.com/milk9111/blocky/obj"
	"github.com/milk9111/blocky/system"
)

// State is the screen a session is on.
type State uint8

const (
	StateMenu State = iota
	StateStart
	StatePlaying
	StateDone
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	default:
		return "done"
	}
}

// Options selects the level a session plays.
type Options struct {
	Level     string
	LevelsDir string
	Logger    *log.Logger
	World     []system.Option
}

// Session walks one run of the game from the menu, through the start
// screen, to the end of the level. Frontends feed it events and draw what
// it exposes.
type Session struct {
	Menu  *menu.Model
	World *system.World

	opts    Options
	rows    []string
	state   State
	outcome system.Outcome
	logger  *log.Logger
}

// New loads the level up front so a bad level name fails before any window
// opens.
func New(opts Options) (*Session, error) {
	if opts.Level == "" {
		opts.Level = levels.Default
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rows, err := levels.Load(opts.LevelsDir, opts.Level)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	logger.Info("level loaded", "name", opts.Level, "rows", len(rows))
	return &Session{
		Menu:   menu.NewModel(),
		opts:   opts,
		rows:   rows,
		logger: logger,
	}, nil
}

func (s *Session) State() State {
	return s.state
}

// Outcome is OutcomeContinue until the session is done.
func (s *Session) Outcome() system.Outcome {
	return s.outcome
}

func (s *Session) Done() bool {
	return s.state == StateDone
}

// Level returns the name of the level being played.
func (s *Session) Level() string {
	return s.opts.Level
}

// MenuKey feeds a key press to the menu.
func (s *Session) MenuKey(k menu.Key) {
	if s.state != StateMenu {
		return
	}
	s.apply(s.Menu.HandleKey(k))
}

// MenuClick activates item i, as a mouse click does.
func (s *Session) MenuClick(i int) {
	if s.state != StateMenu {
		return
	}
	s.apply(s.Menu.Activate(i))
}

func (s *Session) apply(a menu.Action) {
	switch a {
	case menu.ActionStart:
		s.state = StateStart
	case menu.ActionQuit:
		s.finish(system.OutcomeUserQuit)
	}
}

// AnyKey leaves the start screen and starts the level. A key or a mouse
// button both count.
func (s *Session) AnyKey() {
	if s.state != StateStart {
		return
	}
	s.World = system.NewWorld(s.rows, s.opts.World...)
	s.state = StatePlaying
	x, y := s.World.Spawn()
	s.logger.Debug("level started", "name", s.opts.Level, "spawn_x", x, "spawn_y", y)
}

// Quit ends the session from any screen.
func (s *Session) Quit() {
	s.finish(system.OutcomeUserQuit)
}

// Step advances the level by one frame. Outside of play it returns the
// current outcome without doing anything.
func (s *Session) Step(in obj.Input) system.Outcome {
	if s.state != StatePlaying {
		return s.outcome
	}
	out := s.World.Step(in)
	if out.Done() {
		s.finish(out)
	}
	return out
}

func (s *Session) finish(out system.Outcome) {
	if s.state == StateDone {
		return
	}
	s.state = StateDone
	s.outcome = out
	frames := 0
	if s.World != nil {
		frames = s.World.Frame()
	}
	s.logger.Info("session finished", "outcome", out, "frames", frames)
}

// Reload rereads the level file at path when it is the level being played.
// Other files are ignored.
func (s *Session) Reload(path string) error {
	if levels.NameOf(path) != levels.NameOf(s.opts.Level) {
		return nil
	}
	rows, err := levels.Load(s.opts.LevelsDir, s.opts.Level)
	if err != nil {
		return fmt.Errorf("session: reload: %w", err)
	}
	s.rows = rows
	if s.World != nil && s.state == StatePlaying {
		s.World.Reload(rows)
	}
	s.logger.Info("level reloaded", "name", s.opts.Level, "rows", len(rows))
	return nil
}
