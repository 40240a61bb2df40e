package pool

import (
	"reflect"
	"sort"

	"github.com/towerpool/server/internal/geom"
	"go.uber.org/zap"
)

// Registry keeps one pool per archetype, created on first use. Every pool it
// creates shares the registry's container.
type Registry struct {
	container Container
	pools     map[any]statser
	log       *zap.Logger
}

type statser interface {
	Stats() Stats
}

// NewRegistry creates an empty registry. Instances built by its pools are
// adopted by c (nil is allowed).
func NewRegistry(c Container, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		container: c,
		pools:     make(map[any]statser),
		log:       log,
	}
}

// PoolFor returns the pool for a, creating it with preload instances if this
// is the first request for that archetype. preload is ignored afterwards.
func PoolFor[T Instance](r *Registry, a *Archetype[T], preload int) *Pool[T] {
	if p, ok := r.pools[a]; ok {
		return p.(*Pool[T])
	}
	p := NewPool(a, preload, r.container)
	r.pools[a] = p
	r.log.Debug("pool created",
		zap.String("archetype", a.Name),
		zap.Int("preload", preload),
	)
	return p
}

// Spawn takes an instance of a from its pool and places it.
func Spawn[T Instance](r *Registry, a *Archetype[T], pos geom.Vec2, heading float64, preload int) T {
	obj := PoolFor(r, a, preload).Get()
	obj.Place(pos, heading)
	return obj
}

// Despawn routes obj back through its own return handler, so it always lands
// in the pool that built it regardless of who calls. A nil object, a typed
// nil pointer or an unbound object is ignored.
func (r *Registry) Despawn(obj Poolable) {
	if isNil(obj) {
		return
	}
	if h := obj.ReturnHandler(); h != nil {
		h(obj)
	}
}

func isNil(obj Poolable) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Len returns the number of archetypes with a pool.
func (r *Registry) Len() int { return len(r.pools) }

// Stats returns per-archetype pool stats sorted by archetype name.
func (r *Registry) Stats() []Stats {
	out := make([]Stats, 0, len(r.pools))
	for _, p := range r.pools {
		out = append(out, p.Stats())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
