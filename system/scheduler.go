package system

// Phase is one named step of a simulation frame.
type Phase struct {
	Name string
	Run  func(w *World)
}

// Scheduler runs phases in the order they were added.
type Scheduler struct {
	phases []Phase
}

func NewScheduler(phases ...Phase) *Scheduler {
	copied := append([]Phase(nil), phases...)
	return &Scheduler{phases: copied}
}

func (s *Scheduler) Add(phase Phase) {
	if phase.Run == nil {
		return
	}
	s.phases = append(s.phases, phase)
}

// Run executes every phase once.
func (s *Scheduler) Run(w *World) {
	for _, phase := range s.phases {
		phase.Run(w)
	}
}

// RunPhase executes a single phase by name and reports whether it exists.
func (s *Scheduler) RunPhase(w *World, name string) bool {
	for _, phase := range s.phases {
		if phase.Name == name {
			phase.Run(w)
			return true
		}
	}
	return false
}

// Names lists the phases in run order.
func (s *Scheduler) Names() []string {
	names := make([]string, 0, len(s.phases))
	for _, phase := range s.phases {
		names = append(names, phase.Name)
	}
	return names
}
