package world

import (
	"math"
	"math/rand"
	"time"

	"github.com/towerpool/server/internal/combat"
	"github.com/towerpool/server/internal/config"
	"github.com/towerpool/server/internal/core/event"
	"github.com/towerpool/server/internal/core/pool"
	"github.com/towerpool/server/internal/core/schedule"
	"github.com/towerpool/server/internal/data"
	"github.com/towerpool/server/internal/geom"
	"go.uber.org/zap"
)

// Spawner issues enemies from their prefab pools on a fixed schedule and owns
// the set of enemies currently in play.
type Spawner struct {
	scene    *Scene
	registry *pool.Registry
	tower    *Tower
	table    *data.EnemyTable
	cfg      config.SpawnerConfig
	enemyCfg config.EnemyConfig
	rng      *rand.Rand
	log      *zap.Logger

	archetypes map[string]*pool.Archetype[*Enemy]
	active     *activeSet

	spawnTask  *schedule.Task
	clearTask  *schedule.Task
	allRemoved bool
	spawned    uint64
}

// NewSpawner builds a spawner with one enemy archetype per prefab named in
// table. A nil table is allowed; the spawner then never spawns anything.
func NewSpawner(scene *Scene, registry *pool.Registry, tower *Tower, table *data.EnemyTable,
	damage combat.Model, cfg config.SpawnerConfig, enemyCfg config.EnemyConfig, rng *rand.Rand, log *zap.Logger) *Spawner {
	if log == nil {
		log = zap.NewNop()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Spawner{
		scene:      scene,
		registry:   registry,
		tower:      tower,
		table:      table,
		cfg:        cfg,
		enemyCfg:   enemyCfg,
		rng:        rng,
		log:        log,
		archetypes: make(map[string]*pool.Archetype[*Enemy]),
		active:     newActiveSet(),
	}
	if table != nil {
		for _, prefab := range table.Prefabs() {
			s.archetypes[prefab] = &pool.Archetype[*Enemy]{
				Name: prefab,
				New: func() *Enemy {
					return newEnemy(scene, tower, s, damage, enemyCfg)
				},
			}
		}
	}
	return s
}

// StartSpawning spawns one enemy right away and then one every spawn_rate.
// Calling it while already spawning does nothing.
func (s *Spawner) StartSpawning() {
	if s.spawnTask.Pending() {
		return
	}
	s.spawnOnce()
	s.spawnTask = s.scene.every(s.cfg.SpawnRate, s.spawnOnce)
	s.log.Info("spawning started", zap.Duration("rate", s.cfg.SpawnRate))
}

// StopSpawning cancels the spawn loop before its next fire.
func (s *Spawner) StopSpawning() {
	if !s.spawnTask.Pending() {
		return
	}
	s.spawnTask.Cancel()
	s.spawnTask = nil
	s.log.Info("spawning stopped", zap.Uint64("spawned", s.spawned))
}

func (s *Spawner) Spawning() bool { return s.spawnTask.Pending() }

// spawnOnce picks a random enemy type and spawns it on the spawn circle.
// Types without a known prefab are skipped.
func (s *Spawner) spawnOnce() {
	if s.table == nil || s.table.Count() == 0 {
		s.log.Debug("spawn skipped: no enemy types")
		return
	}
	all := s.table.All()
	d := all[s.rng.Intn(len(all))]
	arch, ok := s.archetypes[d.Prefab]
	if !ok {
		s.log.Debug("spawn skipped: no prefab", zap.String("type", d.Type))
		return
	}

	e := pool.Spawn(s.registry, arch, s.randomSpawnPosition(), 0, s.enemyCfg.Preload)
	e.Configure(d)
	s.active.add(e)
	s.spawned++
	event.Emit(s.scene.bus(), event.EnemySpawned{EntityID: e.ID(), Type: d.Type})
	s.log.Debug("enemy spawned",
		zap.Uint64("entity", uint64(e.ID())),
		zap.String("type", d.Type),
		zap.Int("active", s.active.len()),
	)
}

func (s *Spawner) randomSpawnPosition() geom.Vec2 {
	angle := s.rng.Float64() * 2 * math.Pi
	return geom.FromHeading(angle).Scale(s.cfg.SpawnRadius)
}

// RemoveEnemy drops e from the active set. Unknown enemies are ignored.
func (s *Spawner) RemoveEnemy(e *Enemy) {
	s.active.remove(e)
}

// EachEnemy visits active enemies in spawn order until fn returns false.
func (s *Spawner) EachEnemy(fn func(*Enemy) bool) {
	for _, e := range s.active.snapshot() {
		if e.Dead() {
			continue
		}
		if !fn(e) {
			return
		}
	}
}

// FirstEnemyWithin returns the first live enemy, in spawn order, no farther
// than radius from pos.
func (s *Spawner) FirstEnemyWithin(pos geom.Vec2, radius float64) *Enemy {
	for _, e := range s.active.list {
		if !e.Dead() && e.Position().Dist(pos) <= radius {
			return e
		}
	}
	return nil
}

// ActiveEnemies returns a copy of the active set in spawn order.
func (s *Spawner) ActiveEnemies() []*Enemy { return s.active.snapshot() }

func (s *Spawner) ActiveEnemyCount() int { return s.active.len() }

func (s *Spawner) Spawned() uint64 { return s.spawned }

// RemoveAllEnemies despawns every enemy in play and raises AllEnemiesRemoved
// for d. A second call inside the window restarts it.
func (s *Spawner) RemoveAllEnemies(d time.Duration) {
	s.allRemoved = true

	victims := s.active.snapshot()
	s.active.clear()
	for _, e := range victims {
		s.registry.Despawn(e)
	}
	event.Emit(s.scene.bus(), event.EnemiesCleared{Count: len(victims)})
	s.log.Info("enemies cleared", zap.Int("count", len(victims)), zap.Duration("window", d))

	s.clearTask.Cancel()
	s.clearTask = s.scene.after(d, func() {
		s.allRemoved = false
		s.clearTask = nil
	})
	if s.clearTask == nil {
		// no clock to hold the window open
		s.allRemoved = false
	}
}

// AllEnemiesRemoved reports whether a mass-clear window is open.
func (s *Spawner) AllEnemiesRemoved() bool { return s.allRemoved }
