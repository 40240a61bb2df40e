package pool

import (
	"testing"

	"github.com/towerpool/server/internal/core/ecs"
	"github.com/towerpool/server/internal/geom"
)

type widget struct {
	Base
	spawned   int
	despawned int
}

func (w *widget) OnSpawned() {
	w.spawned++
	w.Activate()
}

func (w *widget) OnDespawned() {
	w.despawned++
	w.Deactivate()
}

func (w *widget) release() {
	if h := w.ReturnHandler(); h != nil {
		h(w)
	}
}

type gadget struct {
	Base
}

func (g *gadget) OnSpawned()   { g.Activate() }
func (g *gadget) OnDespawned() { g.Deactivate() }

func newWidgetArchetype(name string) *Archetype[*widget] {
	return &Archetype[*widget]{Name: name, New: func() *widget { return &widget{} }}
}

type recordingContainer struct {
	adopted []Poolable
}

func (c *recordingContainer) Adopt(obj Poolable) { c.adopted = append(c.adopted, obj) }

func checkConservation(t *testing.T, p *Pool[*widget], issued map[*widget]bool) {
	t.Helper()
	if p.Created() != p.Active()+p.Free() {
		t.Errorf("expected created %d == active %d + free %d", p.Created(), p.Active(), p.Free())
	}
	active := 0
	for w, out := range issued {
		if !out {
			continue
		}
		active++
		if p.Holds(w) {
			t.Errorf("issued instance found in free list")
		}
		if !w.Active() {
			t.Errorf("issued instance is not active")
		}
	}
	if active != p.Active() {
		t.Errorf("expected %d active instances, pool reports %d", active, p.Active())
	}
}

func TestPoolPreload(t *testing.T) {
	c := &recordingContainer{}
	p := NewPool(newWidgetArchetype("w"), 4, c)

	if p.Free() != 4 {
		t.Fatalf("expected 4 free instances, got %d", p.Free())
	}
	if p.Created() != 4 {
		t.Errorf("expected 4 created instances, got %d", p.Created())
	}
	if len(c.adopted) != 4 {
		t.Errorf("expected container to adopt 4 instances, got %d", len(c.adopted))
	}
	for _, obj := range c.adopted {
		w := obj.(*widget)
		if w.Active() {
			t.Error("expected preloaded instance to be inactive")
		}
		if w.despawned != 1 {
			t.Errorf("expected preloaded instance despawned once, got %d", w.despawned)
		}
	}
}

func TestPoolNegativePreload(t *testing.T) {
	p := NewPool(newWidgetArchetype("w"), -3, nil)
	if p.Free() != 0 || p.Created() != 0 {
		t.Errorf("expected empty pool, got free=%d created=%d", p.Free(), p.Created())
	}
}

func TestPoolConservation(t *testing.T) {
	p := NewPool(newWidgetArchetype("w"), 2, nil)
	issued := map[*widget]bool{}
	var out []*widget

	// get, get, get, return, get, return, return, return, get
	ops := []bool{true, true, true, false, true, false, false, false, true}
	for _, get := range ops {
		if get {
			w := p.Get()
			issued[w] = true
			out = append(out, w)
		} else {
			w := out[0]
			out = out[1:]
			w.release()
			issued[w] = false
		}
		checkConservation(t, p, issued)
	}
	if p.Created() != 3 {
		t.Errorf("expected 3 instances ever built, got %d", p.Created())
	}
}

func TestPoolGetFIFO(t *testing.T) {
	p := NewPool(newWidgetArchetype("w"), 0, nil)
	a, b := p.Get(), p.Get()
	a.release()
	b.release()
	if got := p.Get(); got != a {
		t.Error("expected the oldest returned instance first")
	}
}

func TestReturnHandlerBinding(t *testing.T) {
	const n = 8
	p := NewPool(newWidgetArchetype("w"), n, nil)
	got := make([]*widget, 0, n)
	for i := 0; i < n; i++ {
		w := p.Get()
		if w.ReturnHandler() == nil {
			t.Fatal("expected a bound return handler")
		}
		if !w.Active() || w.spawned != 1 {
			t.Errorf("expected active instance spawned once, got active=%v spawned=%d", w.Active(), w.spawned)
		}
		got = append(got, w)
	}
	if p.Free() != 0 {
		t.Fatalf("expected empty free list, got %d", p.Free())
	}
	for _, w := range got {
		w.release()
	}
	if p.Free() != n {
		t.Errorf("expected free list back at %d, got %d", n, p.Free())
	}
}

func TestReturnHandlerInstalledOnce(t *testing.T) {
	p := NewPool(newWidgetArchetype("w"), 0, nil)
	w := p.Get()
	called := false
	w.SetReturnHandler(func(Poolable) { called = true })
	w.release()
	if called {
		t.Error("expected the original pool handler to stay installed")
	}
	if p.Free() != 1 {
		t.Errorf("expected instance back in its pool, got free=%d", p.Free())
	}
}

func TestDoubleReturnIsNoop(t *testing.T) {
	p := NewPool(newWidgetArchetype("w"), 0, nil)
	w := p.Get()
	w.release()
	w.release()
	if p.Free() != 1 {
		t.Errorf("expected 1 free instance, got %d", p.Free())
	}
	if w.despawned != 1 {
		t.Errorf("expected one OnDespawned call, got %d", w.despawned)
	}
	a, b := p.Get(), p.Get()
	if a == b {
		t.Error("double return handed the same instance out twice")
	}
}

func TestReturnMismatchedKind(t *testing.T) {
	p := NewPool(newWidgetArchetype("w"), 1, nil)
	p.Return(&gadget{})
	p.Return(nil)
	if p.Free() != 1 || p.Created() != 1 {
		t.Errorf("expected pool untouched, got free=%d created=%d", p.Free(), p.Created())
	}
}

func TestReturnForeignInstance(t *testing.T) {
	p := NewPool(newWidgetArchetype("w"), 0, nil)
	p.Put(&widget{})
	if p.Free() != 0 {
		t.Errorf("expected foreign instance dropped, got free=%d", p.Free())
	}
}

func TestBaseSlotGenerations(t *testing.T) {
	world := ecs.NewWorld()
	w := &widget{}
	w.BindSlot(world.Adopt(nil))

	if !w.ID().IsZero() {
		t.Error("expected zero ID before first spawn")
	}
	w.OnSpawned()
	first := w.ID()
	if !world.Alive(first) {
		t.Fatal("expected first life to be alive")
	}
	w.OnDespawned()
	if world.Alive(first) {
		t.Error("expected ID to go stale after despawn")
	}
	w.OnSpawned()
	if world.Alive(first) {
		t.Error("expected old ID to stay stale after respawn")
	}
	if !world.Alive(w.ID()) || w.ID() == first {
		t.Error("expected a fresh live ID after respawn")
	}
}

func TestRegistryOnePoolPerArchetype(t *testing.T) {
	r := NewRegistry(nil, nil)
	a := newWidgetArchetype("a")
	b := newWidgetArchetype("b")

	if PoolFor(r, a, 3) != PoolFor(r, a, 10) {
		t.Error("expected the same pool for repeated requests")
	}
	if PoolFor(r, a, 0) == PoolFor(r, b, 0) {
		t.Error("expected distinct pools for distinct archetypes")
	}
	if r.Len() != 2 {
		t.Errorf("expected 2 pools, got %d", r.Len())
	}
	if got := PoolFor(r, a, 0).Created(); got != 3 {
		t.Errorf("expected preload from the first request only, got %d", got)
	}
}

func TestRegistrySpawnPlaces(t *testing.T) {
	r := NewRegistry(nil, nil)
	a := newWidgetArchetype("a")
	w := Spawn(r, a, geom.V(3, 4), 1.5, 0)
	if w.Position() != geom.V(3, 4) || w.Heading() != 1.5 {
		t.Errorf("expected pose (3,4)/1.5, got %v/%v", w.Position(), w.Heading())
	}
	if !w.Active() {
		t.Error("expected spawned instance to be active")
	}
}

func TestRegistryDespawnRoutesToOwner(t *testing.T) {
	r := NewRegistry(nil, nil)
	a := newWidgetArchetype("a")
	b := newWidgetArchetype("b")
	wa := Spawn(r, a, geom.Vec2{}, 0, 0)
	wb := Spawn(r, b, geom.Vec2{}, 0, 0)

	r.Despawn(wb)
	r.Despawn(wa)

	if !PoolFor(r, a, 0).Holds(wa) {
		t.Error("expected wa back in pool a")
	}
	if !PoolFor(r, b, 0).Holds(wb) {
		t.Error("expected wb back in pool b")
	}
	if PoolFor(r, a, 0).Holds(wb) {
		t.Error("wb leaked into pool a")
	}
}

func TestRegistryDespawnUnbound(t *testing.T) {
	r := NewRegistry(nil, nil)
	r.Despawn(nil)
	r.Despawn(&widget{})
	r.Despawn((*widget)(nil))
	if r.Len() != 0 {
		t.Errorf("expected no pools, got %d", r.Len())
	}
}

func TestRegistryStats(t *testing.T) {
	r := NewRegistry(nil, nil)
	b := newWidgetArchetype("bullet")
	e := newWidgetArchetype("enemy")
	Spawn(r, e, geom.Vec2{}, 0, 2)
	Spawn(r, b, geom.Vec2{}, 0, 0)

	stats := r.Stats()
	if len(stats) != 2 {
		t.Fatalf("expected 2 stats rows, got %d", len(stats))
	}
	if stats[0].Name != "bullet" || stats[1].Name != "enemy" {
		t.Errorf("expected rows sorted by name, got %q, %q", stats[0].Name, stats[1].Name)
	}
	if stats[1].Created != 2 || stats[1].Active != 1 || stats[1].Free != 1 {
		t.Errorf("unexpected enemy stats %+v", stats[1])
	}
}
