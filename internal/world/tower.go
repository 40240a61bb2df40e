package world

import (
	"math"
	"time"

	"github.com/towerpool/server/internal/config"
	"github.com/towerpool/server/internal/core/event"
	"github.com/towerpool/server/internal/core/pool"
	"github.com/towerpool/server/internal/geom"
	"go.uber.org/zap"
)

// EnemySource is what the tower scans for targets. The spawner implements it.
type EnemySource interface {
	EnemyQuery
	// EachEnemy visits live enemies in scan order until fn returns false.
	EachEnemy(fn func(*Enemy) bool)
}

// GameOverHandler is told once when the tower is destroyed.
type GameOverHandler interface {
	GameOver()
}

// HealthFunc observes tower health as (current, max).
type HealthFunc func(current, max int)

type healthSub struct {
	fn HealthFunc
}

// Tower sits at a fixed position, turns toward the nearest enemy and fires
// pooled bullets along its facing whenever it is reloaded and on target.
type Tower struct {
	scene     *Scene
	registry  *pool.Registry
	cfg       config.TowerConfig
	bulletCfg config.BulletConfig
	bullets   *pool.Archetype[*Bullet]
	targets   EnemySource
	gameOver  GameOverHandler
	log       *zap.Logger

	pos           geom.Vec2
	heading       float64
	targetHeading float64
	tolerance     float64

	health    int
	maxHealth int
	destroyed bool
	lastFire  time.Duration
	shots     uint64
	subs      []*healthSub
}

func NewTower(scene *Scene, registry *pool.Registry, cfg config.TowerConfig, bulletCfg config.BulletConfig, log *zap.Logger) *Tower {
	if log == nil {
		log = zap.NewNop()
	}
	t := &Tower{
		scene:     scene,
		registry:  registry,
		cfg:       cfg,
		bulletCfg: bulletCfg,
		log:       log,
		heading:   geom.NormalizeAngle(geom.Deg2Rad(cfg.Heading)),
		tolerance: geom.Deg2Rad(cfg.AimTolerance),
		maxHealth: max(1, cfg.MaxHealth),
	}
	t.targetHeading = t.heading
	t.health = t.maxHealth
	t.bullets = &pool.Archetype[*Bullet]{
		Name: "bullet",
		New:  func() *Bullet { return newBullet(scene, t, bulletCfg) },
	}
	return t
}

// SetTargets wires the enemy source. Until it is set the tower idles.
func (t *Tower) SetTargets(src EnemySource) { t.targets = src }

func (t *Tower) SetGameOverHandler(h GameOverHandler) { t.gameOver = h }

// Subscribe registers fn for health changes and calls it right away with the
// current values. The returned func removes the subscription.
func (t *Tower) Subscribe(fn HealthFunc) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	s := &healthSub{fn: fn}
	t.subs = append(t.subs, s)
	fn(t.health, t.maxHealth)
	return func() {
		for i, p := range t.subs {
			if p == s {
				t.subs = append(t.subs[:i], t.subs[i+1:]...)
				return
			}
		}
	}
}

func (t *Tower) notify() {
	subs := append([]*healthSub(nil), t.subs...)
	for _, s := range subs {
		s.fn(t.health, t.maxHealth)
	}
}

func (t *Tower) Update(dt time.Duration) {
	now := t.scene.Now()
	target := t.findNearest()
	if target == nil {
		if now >= t.lastFire+t.cfg.FireRate {
			t.lastFire = now
		}
		return
	}

	t.rotateTowards(target.Position(), dt)
	if now >= t.lastFire+t.cfg.FireRate && t.IsAimed() {
		t.shoot()
		t.lastFire = now
	}
}

// findNearest returns the closest live enemy; ties go to the earliest in
// scan order.
func (t *Tower) findNearest() *Enemy {
	if t.targets == nil {
		return nil
	}
	var nearest *Enemy
	best := math.MaxFloat64
	t.targets.EachEnemy(func(e *Enemy) bool {
		if d := t.pos.Dist(e.Position()); d < best {
			best = d
			nearest = e
		}
		return true
	})
	return nearest
}

func (t *Tower) rotateTowards(target geom.Vec2, dt time.Duration) {
	dir := target.Sub(t.pos)
	if dir.IsZero() {
		return
	}
	t.targetHeading = dir.Heading()
	step := geom.Clamp(t.cfg.RotationSpeed*dt.Seconds(), 0, 1)
	t.heading = geom.LerpAngle(t.heading, t.targetHeading, step)
}

// IsAimed reports whether the current heading is within aim tolerance of the
// last target heading.
func (t *Tower) IsAimed() bool {
	return math.Abs(geom.AngleDiff(t.heading, t.targetHeading)) <= t.tolerance
}

func (t *Tower) shoot() {
	facing := geom.FromHeading(t.heading)
	muzzle := t.pos.Add(facing.Scale(t.cfg.MuzzleOffset))
	b := pool.Spawn(t.registry, t.bullets, muzzle, t.heading, t.bulletCfg.Preload)
	b.Launch(facing, t)
	t.shots++
	event.Emit(t.scene.bus(), event.ShotFired{EntityID: b.ID(), Heading: t.heading})
	t.log.Debug("shot fired",
		zap.Uint64("bullet", uint64(b.ID())),
		zap.Float64("heading", t.heading),
	)
}

// TakeDamage lowers health (never below zero), notifies subscribers, and
// reports game over the first time health reaches zero.
func (t *Tower) TakeDamage(n int) {
	if n < 0 {
		n = 0
	}
	before := t.health
	t.health = max(0, t.health-n)
	event.Emit(t.scene.bus(), event.TowerDamaged{Current: t.health, Max: t.maxHealth, Amount: before - t.health})
	t.notify()

	if t.health > 0 || t.destroyed {
		return
	}
	t.destroyed = true
	event.Emit(t.scene.bus(), event.TowerDestroyed{})
	t.log.Info("tower destroyed", zap.Uint64("shots", t.shots))
	if t.gameOver != nil {
		t.gameOver.GameOver()
	}
}

// FirstEnemyWithin forwards to the target source so bullets see the same
// enemies the tower does.
func (t *Tower) FirstEnemyWithin(pos geom.Vec2, radius float64) *Enemy {
	if t.targets == nil {
		return nil
	}
	return t.targets.FirstEnemyWithin(pos, radius)
}

func (t *Tower) Health() int             { return t.health }
func (t *Tower) MaxHealth() int          { return t.maxHealth }
func (t *Tower) Destroyed() bool         { return t.destroyed }
func (t *Tower) BaseDamage() int         { return t.cfg.BaseDamage }
func (t *Tower) ShotsFired() uint64      { return t.shots }
func (t *Tower) Position() geom.Vec2     { return t.pos }
func (t *Tower) Heading() float64        { return t.heading }
func (t *Tower) TargetHeading() float64  { return t.targetHeading }
func (t *Tower) LastFire() time.Duration { return t.lastFire }

// BulletArchetype is the archetype this tower spawns its bullets from.
func (t *Tower) BulletArchetype() *pool.Archetype[*Bullet] { return t.bullets }
