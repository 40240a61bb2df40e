package ecs

import "time"

// EntityID encodes a 32-bit slot index in the lower bits and a 32-bit generation
// in the upper bits. The generation advances every time the slot is activated,
// so an ID captured during one life of a pooled instance goes stale once the
// instance is despawned or recycled.
type EntityID uint64

func NewEntityID(index uint32, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

func (id EntityID) Index() uint32      { return uint32(id) }
func (id EntityID) Generation() uint32 { return uint32(id >> 32) }
func (id EntityID) IsZero() bool       { return id == 0 }

// Actor is anything the scene ticks while it is active.
type Actor interface {
	Update(dt time.Duration)
}

// Slot is the per-instance record the World hands out on adoption. A slot is
// bound to one physical instance for its whole lifetime; only the generation
// and the active flag change.
type Slot struct {
	index      uint32
	generation uint32
	active     bool
	actor      Actor
}

// ID returns the handle for the current life, or zero while inactive.
func (s *Slot) ID() EntityID {
	if s == nil || !s.active {
		return 0
	}
	return NewEntityID(s.index, s.generation)
}

// Activate starts a new life. Calling it on an active slot is a no-op.
func (s *Slot) Activate() {
	if s == nil || s.active {
		return
	}
	s.generation++
	s.active = true
}

// Deactivate ends the current life. Idempotent.
func (s *Slot) Deactivate() {
	if s == nil {
		return
	}
	s.active = false
}

func (s *Slot) Active() bool { return s != nil && s.active }
