package ecs

import "time"

// World is the scene table: every pooled instance ever constructed is adopted
// here once and keeps its slot index forever. Iteration order is adoption
// order, which pins the scan order of everything built on top of it.
type World struct {
	slots []*Slot
}

func NewWorld() *World {
	return &World{
		slots: make([]*Slot, 0, 256),
	}
}

// Adopt registers a freshly constructed instance. The returned slot starts
// inactive.
func (w *World) Adopt(a Actor) *Slot {
	s := &Slot{index: uint32(len(w.slots)), actor: a}
	w.slots = append(w.slots, s)
	return s
}

// Alive reports whether id refers to the current life of an active instance.
func (w *World) Alive(id EntityID) bool {
	idx := id.Index()
	if id.IsZero() || int(idx) >= len(w.slots) {
		return false
	}
	s := w.slots[idx]
	return s.active && s.generation == id.Generation()
}

// Get returns the actor behind id if it is still alive.
func (w *World) Get(id EntityID) (Actor, bool) {
	if !w.Alive(id) {
		return nil, false
	}
	return w.slots[id.Index()].actor, true
}

// Len returns the number of adopted instances, active or not.
func (w *World) Len() int { return len(w.slots) }

// ActiveCount returns the number of currently active instances.
func (w *World) ActiveCount() int {
	n := 0
	for _, s := range w.slots {
		if s.active {
			n++
		}
	}
	return n
}

// Each calls fn for every active instance in adoption order. Instances adopted
// during the walk are not visited; instances deactivated during the walk are
// skipped once reached.
func (w *World) Each(fn func(EntityID, Actor)) {
	n := len(w.slots)
	for i := 0; i < n; i++ {
		s := w.slots[i]
		if !s.active {
			continue
		}
		fn(NewEntityID(s.index, s.generation), s.actor)
	}
}

// Tick updates every active actor once. Slots adopted without an actor are
// skipped.
func (w *World) Tick(dt time.Duration) {
	w.Each(func(_ EntityID, a Actor) {
		if a != nil {
			a.Update(dt)
		}
	})
}
