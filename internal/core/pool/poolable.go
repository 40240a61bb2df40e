package pool

import (
	"github.com/towerpool/server/internal/core/ecs"
	"github.com/towerpool/server/internal/geom"
)

// Poolable is the capability set any recyclable entity exposes to a pool.
//
// OnSpawned and OnDespawned must not call the return handler themselves, and
// OnDespawned must tolerate being called on an already inactive instance.
type Poolable interface {
	// OnSpawned resets the instance to a fresh, active state.
	OnSpawned()
	// OnDespawned deactivates the instance.
	OnDespawned()
	// SetReturnHandler installs the callback used for self-initiated return.
	SetReturnHandler(h func(Poolable))
	// ReturnHandler exposes the installed callback so a forced despawn can
	// route through the owning pool.
	ReturnHandler() func(Poolable)
	// Place positions the instance after it is handed out.
	Place(pos geom.Vec2, heading float64)
}

// Instance is the constraint pools are instantiated with: a comparable
// Poolable, in practice a pointer type.
type Instance interface {
	comparable
	Poolable
}

// Base is embeddable bookkeeping for Poolable types: return handler slot,
// transform, active flag and the scene slot that carries the entity ID.
// Embedders implement OnSpawned/OnDespawned and call Activate/Deactivate.
type Base struct {
	ret     func(Poolable)
	slot    *ecs.Slot
	active  bool
	pos     geom.Vec2
	heading float64
}

// SetReturnHandler installs h. The first handler wins: a pool binds an
// instance once at construction and it stays bound to that pool.
func (b *Base) SetReturnHandler(h func(Poolable)) {
	if b.ret != nil {
		return
	}
	b.ret = h
}

func (b *Base) ReturnHandler() func(Poolable) { return b.ret }

func (b *Base) Place(pos geom.Vec2, heading float64) {
	b.pos = pos
	b.heading = heading
}

func (b *Base) Position() geom.Vec2     { return b.pos }
func (b *Base) SetPosition(p geom.Vec2) { b.pos = p }
func (b *Base) Heading() float64        { return b.heading }
func (b *Base) SetHeading(h float64)    { b.heading = h }
func (b *Base) Active() bool            { return b.active }

// BindSlot attaches the scene slot handed out when the instance was adopted.
func (b *Base) BindSlot(s *ecs.Slot) { b.slot = s }

// ID returns the entity ID of the current life, zero when inactive or not
// adopted by a scene.
func (b *Base) ID() ecs.EntityID { return b.slot.ID() }

// Activate marks the instance live and starts a new scene generation.
func (b *Base) Activate() {
	b.active = true
	b.slot.Activate()
}

// Deactivate marks the instance inactive. Idempotent.
func (b *Base) Deactivate() {
	b.active = false
	b.slot.Deactivate()
}
