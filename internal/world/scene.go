package world

import (
	"time"

	"github.com/towerpool/server/internal/core/ecs"
	"github.com/towerpool/server/internal/core/event"
	"github.com/towerpool/server/internal/core/pool"
	"github.com/towerpool/server/internal/core/schedule"
)

// Scene owns the simulated clock and everything pooled entities live under:
// the entity table, the scheduler and the event bus. It is the container
// handed to the pool registry.
// Single-goroutine access only (game loop).
type Scene struct {
	Entities *ecs.World
	Sched    *schedule.Scheduler
	Bus      *event.Bus

	now time.Duration
}

func NewScene() *Scene {
	return &Scene{
		Entities: ecs.NewWorld(),
		Sched:    schedule.New(),
		Bus:      event.NewBus(),
	}
}

// Now returns the simulated time since the scene started. A nil scene
// reports zero.
func (s *Scene) Now() time.Duration {
	if s == nil {
		return 0
	}
	return s.now
}

// Advance moves the clock forward by dt and runs scheduled tasks that came
// due.
func (s *Scene) Advance(dt time.Duration) {
	if dt > 0 {
		s.now += dt
	}
	s.Sched.Advance(s.now)
}

func (s *Scene) bus() *event.Bus {
	if s == nil {
		return nil
	}
	return s.Bus
}

// after and every return nil without a scheduler.
func (s *Scene) after(d time.Duration, fn func()) *schedule.Task {
	if s == nil || s.Sched == nil {
		return nil
	}
	return s.Sched.After(d, fn)
}

func (s *Scene) every(interval time.Duration, fn func()) *schedule.Task {
	if s == nil || s.Sched == nil {
		return nil
	}
	return s.Sched.Every(interval, fn)
}

type slotBinder interface {
	BindSlot(*ecs.Slot)
}

// Adopt gives a newly constructed pooled instance its scene slot. Instances
// that do not tick are still tracked so their IDs resolve.
func (s *Scene) Adopt(obj pool.Poolable) {
	if s == nil {
		return
	}
	actor, _ := obj.(ecs.Actor)
	slot := s.Entities.Adopt(actor)
	if b, ok := obj.(slotBinder); ok {
		b.BindSlot(slot)
	}
}
