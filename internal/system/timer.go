package system

import (
	"time"

	coresys "github.com/towerpool/server/internal/core/system"
	"github.com/towerpool/server/internal/world"
)

// TimerSystem advances the scene clock and runs scheduled tasks that came
// due (spawn loop, clear-window reset). Phase 0 (Timers).
type TimerSystem struct {
	scene *world.Scene
}

func NewTimerSystem(scene *world.Scene) *TimerSystem {
	return &TimerSystem{scene: scene}
}

func (s *TimerSystem) Phase() coresys.Phase { return coresys.PhaseTimers }

func (s *TimerSystem) Update(dt time.Duration) {
	s.scene.Advance(dt)
}
