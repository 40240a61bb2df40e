package system

import (
	"time"

	"github.com/towerpool/server/internal/core/event"
	"github.com/towerpool/server/internal/core/pool"
	coresys "github.com/towerpool/server/internal/core/system"
	"go.uber.org/zap"
)

// Totals are the running counters StatsSystem keeps from bus events.
type Totals struct {
	Spawned       int
	Killed        int
	ReachedTower  int
	Cleared       int
	ShotsFired    int
	DamageToTower int
	TowerHealth   int
	TowerMax      int
}

// StatsSystem tallies domain events and logs a summary, including pool
// occupancy, every interval of simulated time. Phase 3 (PostUpdate).
type StatsSystem struct {
	registry *pool.Registry
	log      *zap.Logger
	interval time.Duration
	elapsed  time.Duration
	totals   Totals
}

func NewStatsSystem(bus *event.Bus, registry *pool.Registry, interval time.Duration, log *zap.Logger) *StatsSystem {
	if log == nil {
		log = zap.NewNop()
	}
	s := &StatsSystem{registry: registry, log: log, interval: interval}

	event.Subscribe(bus, func(event.EnemySpawned) { s.totals.Spawned++ })
	event.Subscribe(bus, func(event.EnemyKilled) { s.totals.Killed++ })
	event.Subscribe(bus, func(event.EnemyReachedTower) { s.totals.ReachedTower++ })
	event.Subscribe(bus, func(ev event.EnemiesCleared) { s.totals.Cleared += ev.Count })
	event.Subscribe(bus, func(event.ShotFired) { s.totals.ShotsFired++ })
	event.Subscribe(bus, func(ev event.TowerDamaged) {
		s.totals.DamageToTower += ev.Amount
		s.totals.TowerHealth = ev.Current
		s.totals.TowerMax = ev.Max
	})
	event.Subscribe(bus, func(event.TowerDestroyed) {
		s.log.Warn("final totals", s.fields()...)
	})
	return s
}

func (s *StatsSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *StatsSystem) Update(dt time.Duration) {
	if s.interval <= 0 {
		return
	}
	s.elapsed += dt
	if s.elapsed < s.interval {
		return
	}
	s.elapsed = 0
	s.Log()
}

// Log writes the current totals and pool stats at info level.
func (s *StatsSystem) Log() {
	s.log.Info("stats", s.fields()...)
	if s.registry == nil {
		return
	}
	for _, ps := range s.registry.Stats() {
		s.log.Info("pool",
			zap.String("archetype", ps.Name),
			zap.Int("created", ps.Created),
			zap.Int("active", ps.Active),
			zap.Int("free", ps.Free),
		)
	}
}

func (s *StatsSystem) fields() []zap.Field {
	return []zap.Field{
		zap.Int("spawned", s.totals.Spawned),
		zap.Int("killed", s.totals.Killed),
		zap.Int("reached_tower", s.totals.ReachedTower),
		zap.Int("cleared", s.totals.Cleared),
		zap.Int("shots", s.totals.ShotsFired),
		zap.Int("tower_damage", s.totals.DamageToTower),
	}
}

// Totals returns the counters as of the last dispatched tick.
func (s *StatsSystem) Totals() Totals { return s.totals }
