package pool

// Archetype is the template one pool builds from. Its pointer identity is the
// registry key, so two archetypes sharing a constructor still get separate
// pools.
type Archetype[T Instance] struct {
	Name string
	New  func() T
}

// Container is the positioning context instances live under. It sees every
// instance exactly once, right after construction.
type Container interface {
	Adopt(obj Poolable)
}

// Stats is a point-in-time view of one pool.
type Stats struct {
	Name    string
	Created int
	Free    int
	Active  int
}

// Pool is a single-kind free-list pool. It is the only constructor of its
// instances; each one is at any time either held in the free list or issued
// to a caller. Game-loop goroutine only.
type Pool[T Instance] struct {
	archetype *Archetype[T]
	container Container
	free      []T
	held      map[T]struct{}
	owned     map[T]struct{}
}

// NewPool builds preload inactive instances up front.
func NewPool[T Instance](a *Archetype[T], preload int, c Container) *Pool[T] {
	if preload < 0 {
		preload = 0
	}
	p := &Pool[T]{
		archetype: a,
		container: c,
		free:      make([]T, 0, preload),
		held:      make(map[T]struct{}, preload),
		owned:     make(map[T]struct{}, preload),
	}
	for i := 0; i < preload; i++ {
		obj := p.construct()
		obj.OnDespawned()
		p.push(obj)
	}
	return p
}

func (p *Pool[T]) construct() T {
	obj := p.archetype.New()
	obj.SetReturnHandler(p.Return)
	p.owned[obj] = struct{}{}
	if p.container != nil {
		p.container.Adopt(obj)
	}
	return obj
}

func (p *Pool[T]) push(obj T) {
	p.free = append(p.free, obj)
	p.held[obj] = struct{}{}
}

// Get hands out the oldest free instance, or a new one when the free list is
// empty. The result is active and bound to this pool.
func (p *Pool[T]) Get() T {
	var obj T
	if len(p.free) > 0 {
		obj = p.free[0]
		var zero T
		p.free[0] = zero
		p.free = p.free[1:]
		delete(p.held, obj)
	} else {
		obj = p.construct()
	}
	obj.OnSpawned()
	return obj
}

// Return is the handler installed on every instance. Anything this pool did
// not build is ignored, as is a second return of the same instance.
func (p *Pool[T]) Return(obj Poolable) {
	o, ok := obj.(T)
	if !ok {
		return
	}
	p.Put(o)
}

// Put is the typed form of Return.
func (p *Pool[T]) Put(obj T) {
	if _, ok := p.owned[obj]; !ok {
		return
	}
	if _, ok := p.held[obj]; ok {
		return
	}
	obj.OnDespawned()
	p.push(obj)
}

// Holds reports whether obj is currently in the free list.
func (p *Pool[T]) Holds(obj T) bool {
	_, ok := p.held[obj]
	return ok
}

func (p *Pool[T]) Created() int { return len(p.owned) }
func (p *Pool[T]) Free() int    { return len(p.free) }
func (p *Pool[T]) Active() int  { return len(p.owned) - len(p.free) }

func (p *Pool[T]) Stats() Stats {
	return Stats{
		Name:    p.archetype.Name,
		Created: len(p.owned),
		Free:    len(p.free),
		Active:  p.Active(),
	}
}
