package system

import (
	"github.com/milk9111/blocky/obj"
)

// Phase names, in the order a frame runs them.
const (
	PhaseIntent     = "intent"
	PhaseGravity    = "gravity"
	PhaseHorizontal = "horizontal_resolve"
	PhaseVertical   = "vertical_resolve"
	PhaseCamera     = "camera_update"
)

// World owns one loaded level, the player and the camera, and steps them one
// frame at a time. It is not safe for concurrent use; a single loop drives it.
type World struct {
	Level          *obj.Level
	CollisionWorld *obj.CollisionWorld
	Player         *obj.Player
	Camera         *obj.Camera

	cfg       obj.Config
	scheduler *Scheduler
	spawnX    float64
	spawnY    float64
	spawnSet  bool

	input   obj.Input
	contact obj.Contact
	frame   int
	outcome Outcome
}

// Option configures a World at construction.
type Option func(w *World)

// WithConfig replaces the default tuning.
func WithConfig(cfg obj.Config) Option {
	return func(w *World) {
		w.cfg = cfg
	}
}

// WithSpawn places the player at x, y instead of the level's spawn cell.
func WithSpawn(x, y float64) Option {
	return func(w *World) {
		w.spawnX, w.spawnY = x, y
		w.spawnSet = true
	}
}

// NewWorld builds the level from rows and places the player. Without a spawn
// cell or WithSpawn the player starts one tile in from the top-left corner.
func NewWorld(rows []string, opts ...Option) *World {
	w := &World{cfg: obj.DefaultConfig()}
	for _, opt := range opts {
		opt(w)
	}

	w.load(rows)

	x, y := w.Spawn()
	w.Player = obj.NewPlayer(x, y, w.cfg)
	w.Camera.Update(w.Player.Rect())

	w.scheduler = NewScheduler(
		Phase{Name: PhaseIntent, Run: func(w *World) { w.Player.ApplyIntent(w.input) }},
		Phase{Name: PhaseGravity, Run: func(w *World) { w.Player.ApplyGravity() }},
		Phase{Name: PhaseHorizontal, Run: func(w *World) {
			w.contact = w.contact.Merge(w.Player.MoveX(w.CollisionWorld))
		}},
		Phase{Name: PhaseVertical, Run: func(w *World) {
			w.contact = w.contact.Merge(w.Player.MoveY(w.CollisionWorld))
		}},
		Phase{Name: PhaseCamera, Run: func(w *World) { w.Camera.Update(w.Player.Rect()) }},
	)
	return w
}

func (w *World) load(rows []string) {
	w.Level = obj.BuildLevel(rows, w.cfg.TileSize)
	w.CollisionWorld = obj.NewCollisionWorld(w.Level)
	if w.Camera == nil {
		w.Camera = obj.NewCamera(w.Level.Width(), w.Level.Height(), w.cfg)
	} else {
		w.Camera.SetWorldBounds(w.Level.Width(), w.Level.Height())
	}
}

// Spawn returns where the player starts.
func (w *World) Spawn() (float64, float64) {
	if w.spawnSet {
		return w.spawnX, w.spawnY
	}
	if x, y, ok := w.Level.Spawn(); ok {
		return x, y
	}
	return w.cfg.TileSize, w.cfg.TileSize
}

// Config returns the tuning the world was built with.
func (w *World) Config() obj.Config {
	return w.cfg
}

// Phases lists the frame phases in run order.
func (w *World) Phases() []string {
	return w.scheduler.Names()
}

// Step simulates one frame. A quit request ends the loop without simulating.
// Once a terminal outcome has been returned, later calls return it again and
// do not advance the simulation.
func (w *World) Step(in obj.Input) Outcome {
	if w.outcome.Done() {
		return w.outcome
	}
	if in.Quit {
		w.outcome = OutcomeUserQuit
		return w.outcome
	}

	w.Begin(in)
	w.scheduler.Run(w)
	return w.Finish()
}

// Begin starts a frame without running any phase, for driving the phases one
// at a time with RunPhase.
func (w *World) Begin(in obj.Input) {
	w.input = in
	w.contact = obj.Contact{}
}

// RunPhase runs a single named phase of the current frame.
func (w *World) RunPhase(name string) bool {
	return w.scheduler.RunPhase(w, name)
}

// Finish closes the current frame and turns its contacts into an outcome.
func (w *World) Finish() Outcome {
	w.frame++
	if w.contact.Exit {
		w.outcome = OutcomeLevelComplete
	}
	return w.outcome
}

// Contact returns what the player touched during the current frame.
func (w *World) Contact() obj.Contact {
	return w.contact
}

// Frame returns the number of simulated frames.
func (w *World) Frame() int {
	return w.frame
}

// Outcome returns the latest outcome.
func (w *World) Outcome() Outcome {
	return w.outcome
}

// Reload swaps in new level geometry, keeping the player where it is when it
// still fits inside the new bounds and respawning it otherwise.
func (w *World) Reload(rows []string) {
	w.load(rows)

	r := w.Player.Rect()
	bounds := w.Level.Bounds()
	inside := r.X >= bounds.X && r.Y >= bounds.Y && r.Right() <= bounds.Right() && r.Bottom() <= bounds.Bottom()
	if !inside || len(w.CollisionWorld.Overlapping(r)) > 0 {
		x, y := w.Spawn()
		w.Player.Reset(x, y)
	}
	w.Camera.Update(w.Player.Rect())
}
